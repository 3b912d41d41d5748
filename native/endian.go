// Package native is the fixed-width codec backend.
//
// It reads and writes 8, 16, 32 and 64-bit integers and IEEE-754 floats in
// the host's byte order, and reports memory addresses of byte slices. Every
// higher layer of the module builds on these primitives; nothing here knows
// about type names.
package native

import (
	"encoding/binary"
	"unsafe"
)

// Endian is a byte order tag.
type Endian string

const (
	LittleEndian Endian = "LE"
	BigEndian    Endian = "BE"
)

// Host is the byte order of the running processor.
var Host = detect()

func detect() Endian {
	var probe uint16 = 0x0102
	if *(*byte)(unsafe.Pointer(&probe)) == 0x02 {
		return LittleEndian
	}
	return BigEndian
}

// Opposite returns the other byte order.
func (e Endian) Opposite() Endian {
	if e == LittleEndian {
		return BigEndian
	}
	return LittleEndian
}

// Valid reports whether e is one of the two known tags.
func (e Endian) Valid() bool {
	return e == LittleEndian || e == BigEndian
}

// ByteOrder returns the encoding/binary order for e.
func (e Endian) ByteOrder() binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// order is the host order used by every codec in this package.
var order = binary.NativeEndian
