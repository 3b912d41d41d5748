package types

import (
	"github.com/wippyai/ctypes/codec64"
	"github.com/wippyai/ctypes/native"
)

// newVoid returns the opaque pointee: size 0, reads nil and never touches
// memory.
func newVoid() *Descriptor {
	return New("void", 0,
		func([]byte, int) any { return nil },
		func([]byte, int, any) error { return nil },
		WithCategory(CategoryVoid),
	)
}

func integer(name string, size int, mode textMode, get GetFunc, write func(b []byte, off int, bits uint64)) *Descriptor {
	return New(name, size, get, func(b []byte, off int, v any) error {
		bits, err := integerBits(name, v, mode)
		if err != nil {
			return err
		}
		write(b, off, bits)
		return nil
	})
}

// canonicalSet builds the fixed-width descriptors. 64-bit values close over
// the codec for order, which is the native pair when order is the host's.
func canonicalSet(order native.Endian) []*Descriptor {
	i64 := codec64.Int64(order)
	u64 := codec64.Uint64(order)

	return []*Descriptor{
		newVoid(),
		integer("int8", 1, textChar,
			func(b []byte, off int) any { return int64(native.ReadInt8(b, off)) },
			func(b []byte, off int, bits uint64) { native.WriteInt8(b, off, int8(bits)) }),
		integer("uint8", 1, textChar,
			func(b []byte, off int) any { return uint64(native.ReadUint8(b, off)) },
			func(b []byte, off int, bits uint64) { native.WriteUint8(b, off, uint8(bits)) }),
		integer("int16", 2, textNone,
			func(b []byte, off int) any { return int64(native.ReadInt16(b, off)) },
			func(b []byte, off int, bits uint64) { native.WriteInt16(b, off, int16(bits)) }),
		integer("uint16", 2, textNone,
			func(b []byte, off int) any { return uint64(native.ReadUint16(b, off)) },
			func(b []byte, off int, bits uint64) { native.WriteUint16(b, off, uint16(bits)) }),
		integer("int32", 4, textNone,
			func(b []byte, off int) any { return int64(native.ReadInt32(b, off)) },
			func(b []byte, off int, bits uint64) { native.WriteInt32(b, off, int32(bits)) }),
		integer("uint32", 4, textNone,
			func(b []byte, off int) any { return uint64(native.ReadUint32(b, off)) },
			func(b []byte, off int, bits uint64) { native.WriteUint32(b, off, uint32(bits)) }),
		integer("int64", 8, textSigned,
			func(b []byte, off int) any { return Int64Value(i64.Read(b, off)) },
			func(b []byte, off int, bits uint64) { i64.Write(b, off, int64(bits)) }),
		integer("uint64", 8, textUnsigned,
			func(b []byte, off int) any { return Uint64Value(u64.Read(b, off)) },
			func(b []byte, off int, bits uint64) { u64.Write(b, off, bits) }),
		New("float", 4,
			func(b []byte, off int) any { return float64(native.ReadFloat32(b, off)) },
			func(b []byte, off int, v any) error {
				f, err := floatValue("float", v)
				if err != nil {
					return err
				}
				native.WriteFloat32(b, off, float32(f))
				return nil
			}),
		New("double", 8,
			func(b []byte, off int) any { return native.ReadFloat64(b, off) },
			func(b []byte, off int, v any) error {
				f, err := floatValue("double", v)
				if err != nil {
					return err
				}
				native.WriteFloat64(b, off, f)
				return nil
			}),
	}
}
