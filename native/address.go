package native

import (
	"strconv"
	"strings"
	"unsafe"
)

// PointerSize is the width of a host address in bytes.
const PointerSize = int(unsafe.Sizeof(uintptr(0)))

// Address returns the memory address of b[off]. A nil slice has address 0
// regardless of off, so the NULL buffer always reports the zero address.
func Address(b []byte, off int) uint64 {
	base := unsafe.SliceData(b)
	if base == nil {
		return 0
	}
	return uint64(uintptr(unsafe.Pointer(base))) + uint64(off)
}

// HexAddress returns Address as lower-case hex, zero padded to the host
// pointer width.
func HexAddress(b []byte, off int) string {
	s := strconv.FormatUint(Address(b, off), 16)
	if pad := PointerSize*2 - len(s); pad > 0 {
		s = strings.Repeat("0", pad) + s
	}
	return s
}

// IsNull reports whether b[off] lives at address 0.
func IsNull(b []byte, off int) bool {
	return Address(b, off) == 0
}
