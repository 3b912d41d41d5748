// Package witbridge maps component-model WIT types onto native descriptors.
//
// Only types with a fixed scalar layout in linear memory have a descriptor:
// the primitives, enums, flags up to 64 bits, and typedefs of those. Strings,
// lists and aggregates are rejected.
package witbridge

import (
	"go.bytecodealliance.org/wit"

	cerrors "github.com/wippyai/ctypes/errors"
	"github.com/wippyai/ctypes/types"
)

// Descriptor returns the descriptor for t in reg. A named typedef of a
// scalar becomes a descriptor derived from the scalar under the WIT name.
func Descriptor(reg *types.Registry, t wit.Type) (*types.Descriptor, error) {
	switch typ := t.(type) {
	case wit.Bool:
		return reg.Get("bool")
	case wit.S8:
		return reg.Get("int8")
	case wit.U8:
		return reg.Get("uint8")
	case wit.S16:
		return reg.Get("int16")
	case wit.U16:
		return reg.Get("uint16")
	case wit.S32:
		return reg.Get("int32")
	case wit.U32, wit.Char:
		return reg.Get("uint32")
	case wit.S64:
		return reg.Get("int64")
	case wit.U64:
		return reg.Get("uint64")
	case wit.F32:
		return reg.Get("float")
	case wit.F64:
		return reg.Get("double")
	case *wit.TypeDef:
		d, err := typeDef(reg, typ)
		if err != nil {
			return nil, err
		}
		if typ.Name == nil {
			return d, nil
		}
		return types.Derive(*typ.Name, d, types.WithAlignment(d.Alignment())), nil
	}
	return nil, cerrors.Unsupported(cerrors.PhaseLookup, "WIT type "+TypeName(t)+" has no scalar layout")
}

func typeDef(reg *types.Registry, t *wit.TypeDef) (*types.Descriptor, error) {
	switch kind := t.Kind.(type) {
	case *wit.Enum:
		return unsignedOfWidth(reg, discriminantSize(len(kind.Cases)))
	case *wit.Flags:
		n := len(kind.Flags)
		switch {
		case n == 0:
			return nil, cerrors.Unsupported(cerrors.PhaseLookup, "empty flags")
		case n <= 8:
			return unsignedOfWidth(reg, 1)
		case n <= 16:
			return unsignedOfWidth(reg, 2)
		case n <= 32:
			return unsignedOfWidth(reg, 4)
		case n <= 64:
			return unsignedOfWidth(reg, 8)
		}
		return nil, cerrors.Unsupported(cerrors.PhaseLookup, "flags wider than 64 bits")
	case wit.Type:
		return Descriptor(reg, kind)
	}
	return nil, cerrors.Unsupported(cerrors.PhaseLookup, "WIT type "+TypeName(t)+" has no scalar layout")
}

func discriminantSize(numCases int) int {
	if numCases <= 256 {
		return 1
	} else if numCases <= 65536 {
		return 2
	}
	return 4
}

func unsignedOfWidth(reg *types.Registry, width int) (*types.Descriptor, error) {
	switch width {
	case 1:
		return reg.Get("uint8")
	case 2:
		return reg.Get("uint16")
	case 4:
		return reg.Get("uint32")
	}
	return reg.Get("uint64")
}

// TypeName returns the WIT spelling of t.
func TypeName(t wit.Type) string {
	switch v := t.(type) {
	case wit.Bool:
		return "bool"
	case wit.U8:
		return "u8"
	case wit.S8:
		return "s8"
	case wit.U16:
		return "u16"
	case wit.S16:
		return "s16"
	case wit.U32:
		return "u32"
	case wit.S32:
		return "s32"
	case wit.U64:
		return "u64"
	case wit.S64:
		return "s64"
	case wit.F32:
		return "f32"
	case wit.F64:
		return "f64"
	case wit.Char:
		return "char"
	case wit.String:
		return "string"
	case *wit.TypeDef:
		if v.Name != nil {
			return *v.Name
		}
		return "typedef"
	default:
		return "unknown"
	}
}
