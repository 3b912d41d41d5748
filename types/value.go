package types

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	cerrors "github.com/wippyai/ctypes/errors"
)

// MaxSafeInteger is the largest magnitude a 64-bit getter returns as a
// number. Beyond it an IEEE double cannot hold every integer, so the value
// comes back as a base-10 string.
const MaxSafeInteger = 1<<53 - 1

// textMode selects which string forms an integer setter accepts.
type textMode int

const (
	textNone     textMode = iota
	textChar              // single character, written as its code point
	textSigned            // base-10 int64
	textUnsigned          // base-10 uint64
)

// integerBits returns the two's complement bit pattern of v. Callers write
// the low-order bytes they need.
func integerBits(typeName string, v any, mode textMode) (uint64, error) {
	switch x := v.(type) {
	case int:
		return uint64(x), nil
	case int8:
		return uint64(x), nil
	case int16:
		return uint64(x), nil
	case int32:
		return uint64(x), nil
	case int64:
		return uint64(x), nil
	case uint:
		return uint64(x), nil
	case uint8:
		return uint64(x), nil
	case uint16:
		return uint64(x), nil
	case uint32:
		return uint64(x), nil
	case uint64:
		return x, nil
	case uintptr:
		return uint64(x), nil
	case float32:
		return floatBits(typeName, float64(x))
	case float64:
		return floatBits(typeName, x)
	case string:
		return textBits(typeName, x, mode)
	}
	return 0, cerrors.InvalidArgument(typeName, v, fmt.Sprintf("cannot encode %T", v))
}

func floatBits(typeName string, f float64) (uint64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, cerrors.InvalidArgument(typeName, f, "not an integral number")
	}
	switch {
	case f >= -(1<<63) && f < 1<<63:
		return uint64(int64(f)), nil
	case f >= 0 && f < 1<<64:
		return uint64(f), nil
	}
	return 0, cerrors.InvalidArgument(typeName, f, "out of 64-bit range")
}

func textBits(typeName, s string, mode textMode) (uint64, error) {
	switch mode {
	case textChar:
		r, size := utf8.DecodeRuneInString(s)
		if size == 0 || size != len(s) {
			return 0, cerrors.InvalidArgument(typeName, s, "expected a single-character string")
		}
		return uint64(r), nil
	case textSigned:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, cerrors.New(cerrors.PhaseEncode, cerrors.KindInvalidArgument).
				TypeName(typeName).Value(s).Cause(err).
				Detail("not a base-10 int64").
				Build()
		}
		return uint64(n), nil
	case textUnsigned:
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, cerrors.New(cerrors.PhaseEncode, cerrors.KindInvalidArgument).
				TypeName(typeName).Value(s).Cause(err).
				Detail("not a base-10 uint64").
				Build()
		}
		return n, nil
	}
	return 0, cerrors.InvalidArgument(typeName, s, "strings are not accepted")
}

func floatValue(typeName string, v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	}
	return 0, cerrors.InvalidArgument(typeName, v, fmt.Sprintf("cannot encode %T as a float", v))
}

// Int64Value returns v as int64 when its magnitude is at most
// MaxSafeInteger, otherwise as a base-10 string.
func Int64Value(v int64) any {
	if v >= -MaxSafeInteger && v <= MaxSafeInteger {
		return v
	}
	return strconv.FormatInt(v, 10)
}

// Uint64Value returns v as uint64 when it is at most MaxSafeInteger,
// otherwise as a base-10 string.
func Uint64Value(v uint64) any {
	if v <= MaxSafeInteger {
		return v
	}
	return strconv.FormatUint(v, 10)
}

// truthy reports whether a decoded integer is non-zero.
func truthy(v any) bool {
	switch x := v.(type) {
	case int64:
		return x != 0
	case uint64:
		return x != 0
	case string:
		return x != "0"
	case bool:
		return x
	case nil:
		return false
	}
	return true
}
