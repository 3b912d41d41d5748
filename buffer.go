package ctypes

import (
	"github.com/wippyai/ctypes/codec64"
	"github.com/wippyai/ctypes/native"
	"github.com/wippyai/ctypes/types"
)

// Buffer is a byte region tagged with the type of the value it holds.
// The storage is owned by the caller; Buffer never allocates or frees it.
type Buffer struct {
	typ  *types.Descriptor
	data []byte
}

// NULL is the zero-length buffer at address 0. Its type is void.
var NULL = &Buffer{typ: types.Default().MustGet("void")}

// Wrap returns a view of data holding values of type t. A nil t means void.
func Wrap(data []byte, t *types.Descriptor) *Buffer {
	if t == nil {
		t = types.Default().MustGet("void")
	}
	return &Buffer{typ: t, data: data}
}

// Bytes returns the underlying storage.
func (b *Buffer) Bytes() []byte { return b.data }

func (b *Buffer) Len() int { return len(b.data) }

// Type returns the descriptor of the value the buffer holds.
func (b *Buffer) Type() *types.Descriptor { return b.typ }

// Reinterpret returns a view of the same bytes with another type.
func (b *Buffer) Reinterpret(t *types.Descriptor) *Buffer {
	return Wrap(b.data, t)
}

// Get decodes the buffer's type at off.
func (b *Buffer) Get(off int) any { return b.typ.Get(b.data, off) }

// Set encodes v as the buffer's type at off.
func (b *Buffer) Set(off int, v any) error { return b.typ.Set(b.data, off, v) }

// Address returns the memory address of the first byte.
func (b *Buffer) Address() uint64 { return native.Address(b.data, 0) }

// HexAddress returns Address as zero-padded hex.
func (b *Buffer) HexAddress() string { return native.HexAddress(b.data, 0) }

// IsNull reports whether the buffer starts at address 0.
func (b *Buffer) IsNull() bool { return native.IsNull(b.data, 0) }

// ReadPointer returns the address value stored at off. A buffer typed as a
// pointer reads that type's width, so a view over 32-bit guest memory reads
// 4 bytes on any host; other buffers use the host pointer width.
func (b *Buffer) ReadPointer(off int) uint64 {
	width := native.PointerSize
	if b.typ.Category() == types.CategoryPointer {
		width = b.typ.Size()
	}
	if width == 4 {
		return uint64(native.ReadUint32(b.data, off))
	}
	return native.ReadUint64(b.data, off)
}

func (b *Buffer) ReadInt64LE(off int) int64 { return codec64.ReadInt64LE(b.data, off) }

func (b *Buffer) ReadInt64BE(off int) int64 { return codec64.ReadInt64BE(b.data, off) }

func (b *Buffer) WriteInt64LE(off int, v int64) { codec64.WriteInt64LE(b.data, off, v) }

func (b *Buffer) WriteInt64BE(off int, v int64) { codec64.WriteInt64BE(b.data, off, v) }

func (b *Buffer) ReadUint64LE(off int) uint64 { return codec64.ReadUint64LE(b.data, off) }

func (b *Buffer) ReadUint64BE(off int) uint64 { return codec64.ReadUint64BE(b.data, off) }

func (b *Buffer) WriteUint64LE(off int, v uint64) { codec64.WriteUint64LE(b.data, off, v) }

func (b *Buffer) WriteUint64BE(off int, v uint64) { codec64.WriteUint64BE(b.data, off, v) }

// String renders the buffer with Describe.
func (b *Buffer) String() string { return Describe(b) }
