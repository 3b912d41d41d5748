// Package codec64 reads and writes 64-bit integers in an explicitly tagged
// byte order.
//
// The backend only encodes 64-bit values in host order. The other order is
// synthesized by reversing the eight bytes through a scratch array: reads
// copy the source bytes reversed into the scratch and decode it natively,
// writes encode natively into the scratch and copy it out reversed. The
// scratch lives on the caller's stack, so concurrent goroutines never share
// it.
package codec64

import "github.com/wippyai/ctypes/native"

// Size is the width of every value handled by this package.
const Size = 8

// Int64Ops is the read/write pair for int64 in one byte order.
type Int64Ops struct {
	Read  func(b []byte, off int) int64
	Write func(b []byte, off int, v int64)
}

// Uint64Ops is the read/write pair for uint64 in one byte order.
type Uint64Ops struct {
	Read  func(b []byte, off int) uint64
	Write func(b []byte, off int, v uint64)
}

var (
	int64Ops  = map[native.Endian]Int64Ops{}
	uint64Ops = map[native.Endian]Uint64Ops{}
)

func init() {
	int64Ops[native.Host] = Int64Ops{Read: native.ReadInt64, Write: native.WriteInt64}
	int64Ops[native.Host.Opposite()] = Int64Ops{Read: readInt64Swapped, Write: writeInt64Swapped}
	uint64Ops[native.Host] = Uint64Ops{Read: native.ReadUint64, Write: native.WriteUint64}
	uint64Ops[native.Host.Opposite()] = Uint64Ops{Read: readUint64Swapped, Write: writeUint64Swapped}
}

// Int64 returns the int64 operations for order.
func Int64(order native.Endian) Int64Ops { return int64Ops[order] }

// Uint64 returns the uint64 operations for order.
func Uint64(order native.Endian) Uint64Ops { return uint64Ops[order] }

func ReadInt64LE(b []byte, off int) int64 { return int64Ops[native.LittleEndian].Read(b, off) }

func ReadInt64BE(b []byte, off int) int64 { return int64Ops[native.BigEndian].Read(b, off) }

func WriteInt64LE(b []byte, off int, v int64) { int64Ops[native.LittleEndian].Write(b, off, v) }

func WriteInt64BE(b []byte, off int, v int64) { int64Ops[native.BigEndian].Write(b, off, v) }

func ReadUint64LE(b []byte, off int) uint64 { return uint64Ops[native.LittleEndian].Read(b, off) }

func ReadUint64BE(b []byte, off int) uint64 { return uint64Ops[native.BigEndian].Read(b, off) }

func WriteUint64LE(b []byte, off int, v uint64) { uint64Ops[native.LittleEndian].Write(b, off, v) }

func WriteUint64BE(b []byte, off int, v uint64) { uint64Ops[native.BigEndian].Write(b, off, v) }

// reverseInto copies the eight bytes of src into dst in reverse order.
func reverseInto(dst, src []byte) {
	_ = src[Size-1]
	_ = dst[Size-1]
	for i := 0; i < Size; i++ {
		dst[i] = src[Size-1-i]
	}
}

func readInt64Swapped(b []byte, off int) int64 {
	var scratch [Size]byte
	reverseInto(scratch[:], b[off:off+Size])
	return native.ReadInt64(scratch[:], 0)
}

func writeInt64Swapped(b []byte, off int, v int64) {
	var scratch [Size]byte
	native.WriteInt64(scratch[:], 0, v)
	reverseInto(b[off:off+Size], scratch[:])
}

func readUint64Swapped(b []byte, off int) uint64 {
	var scratch [Size]byte
	reverseInto(scratch[:], b[off:off+Size])
	return native.ReadUint64(scratch[:], 0)
}

func writeUint64Swapped(b []byte, off int, v uint64) {
	var scratch [Size]byte
	native.WriteUint64(scratch[:], 0, v)
	reverseInto(b[off:off+Size], scratch[:])
}
