// Package wasmmem gives descriptor-typed access to wazero linear memory.
//
// Guest pointers are offsets into the module's memory. Every access is
// bounds checked against the memory's current size before a descriptor
// touches it, and views share storage with the guest, so writes are visible
// to it immediately.
package wasmmem

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/ctypes"
	cerrors "github.com/wippyai/ctypes/errors"
	"github.com/wippyai/ctypes/native"
	"github.com/wippyai/ctypes/types"
)

// Memory adapts a wazero api.Memory to descriptor reads and writes.
type Memory struct {
	Mem      api.Memory
	Registry *types.Registry
}

// Wrap wraps mem using the default registry.
func Wrap(mem api.Memory) *Memory {
	return WrapWith(mem, types.Default())
}

// WrapWith wraps mem using reg for name lookups.
func WrapWith(mem api.Memory, reg *types.Registry) *Memory {
	if mem == nil {
		return nil
	}
	return &Memory{Mem: mem, Registry: reg}
}

// View returns a buffer over [ptr, ptr+length) of guest memory.
func (m *Memory) View(ptr, length uint32, t *types.Descriptor) (*ctypes.Buffer, error) {
	data, ok := m.Mem.Read(ptr, length)
	if !ok {
		return nil, cerrors.OutOfBounds(cerrors.PhaseRuntime, int(ptr), int(length), int(m.Mem.Size()))
	}
	return ctypes.Wrap(data, t), nil
}

func (m *Memory) region(phase cerrors.Phase, t *types.Descriptor, ptr uint32) ([]byte, error) {
	// wasm memory is little-endian; host-order descriptors only match it on LE hosts
	if native.Host != native.LittleEndian {
		return nil, cerrors.Unsupported(phase, "linear memory access from a big-endian host")
	}
	size := uint32(t.Size())
	data, ok := m.Mem.Read(ptr, size)
	if !ok {
		return nil, cerrors.OutOfBounds(phase, int(ptr), int(size), int(m.Mem.Size()))
	}
	return data, nil
}

// Get decodes one value of type t at ptr.
func (m *Memory) Get(t *types.Descriptor, ptr uint32) (any, error) {
	data, err := m.region(cerrors.PhaseDecode, t, ptr)
	if err != nil {
		return nil, err
	}
	return t.Get(data, 0), nil
}

// Set encodes v as type t at ptr.
func (m *Memory) Set(t *types.Descriptor, ptr uint32, v any) error {
	data, err := m.region(cerrors.PhaseEncode, t, ptr)
	if err != nil {
		return err
	}
	return t.Set(data, 0, v)
}

// GetNamed decodes the value at ptr for a type expression like "uint16".
func (m *Memory) GetNamed(expr string, ptr uint32) (any, error) {
	t, err := m.Registry.Coerce(expr)
	if err != nil {
		return nil, err
	}
	return m.Get(t, ptr)
}

// SetNamed encodes v at ptr for a type expression.
func (m *Memory) SetNamed(expr string, ptr uint32, v any) error {
	t, err := m.Registry.Coerce(expr)
	if err != nil {
		return err
	}
	return m.Set(t, ptr, v)
}

// Aligned reports whether ptr satisfies t's alignment. Types without an
// alignment are always aligned.
func Aligned(t *types.Descriptor, ptr uint32) bool {
	a := uint32(t.Alignment())
	return a == 0 || ptr%a == 0
}

// ReadCString reads a NUL-terminated string starting at ptr, looking at
// most limit bytes ahead.
func (m *Memory) ReadCString(ptr, limit uint32) (string, error) {
	if avail := m.Mem.Size(); ptr <= avail && limit > avail-ptr {
		limit = avail - ptr
	}
	buf, err := m.View(ptr, limit, nil)
	if err != nil {
		return "", err
	}
	return ctypes.ReadCString(buf, 0)
}
