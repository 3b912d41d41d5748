package types

import (
	"strings"

	cerrors "github.com/wippyai/ctypes/errors"
	"github.com/wippyai/ctypes/native"
)

// RefType returns the pointer-to-d descriptor: one more level of
// indirection, pointer width, and an address value as its content. Repeated
// calls return the same descriptor.
func (r *Registry) RefType(d *Descriptor) *Descriptor {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ref, ok := r.refs[d]; ok {
		return ref
	}

	size := r.PointerSize()
	get, set := addressCodec(size)
	ref := Derive(d.Name()+"*", d,
		WithSize(size),
		WithIndirection(d.Indirection()+1),
		WithCategory(CategoryPointer),
		WithGetter(get),
		WithSetter(set),
	)
	ref.referent = d
	r.refs[d] = ref
	return ref
}

// DerefType returns the descriptor one level of indirection below d.
func (r *Registry) DerefType(d *Descriptor) (*Descriptor, error) {
	if d.referent != nil {
		return d.referent, nil
	}
	ind := d.Indirection()
	if ind <= 1 {
		return nil, cerrors.InvalidArgument(d.Name(), ind, "cannot dereference a direct value type")
	}
	return Derive(strings.TrimSuffix(d.Name(), "*"), d, WithIndirection(ind-1)), nil
}

// Coerce resolves a type expression such as "int", "char *" or "void **".
// Each trailing star adds one level of indirection.
func (r *Registry) Coerce(expr string) (*Descriptor, error) {
	name := strings.TrimSpace(expr)
	stars := 0
	for strings.HasSuffix(name, "*") {
		name = strings.TrimSpace(strings.TrimSuffix(name, "*"))
		stars++
	}

	d, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	for ; stars > 0; stars-- {
		d = r.RefType(d)
	}
	return d, nil
}

// addressCodec reads and writes an address value of the given width.
func addressCodec(size int) (GetFunc, SetFunc) {
	if size == 4 {
		return func(b []byte, off int) any {
				return uint64(native.ReadUint32(b, off))
			}, func(b []byte, off int, v any) error {
				bits, err := addressBits(v)
				if err != nil {
					return err
				}
				native.WriteUint32(b, off, uint32(bits))
				return nil
			}
	}
	return func(b []byte, off int) any {
			return native.ReadUint64(b, off)
		}, func(b []byte, off int, v any) error {
			bits, err := addressBits(v)
			if err != nil {
				return err
			}
			native.WriteUint64(b, off, bits)
			return nil
		}
}

func addressBits(v any) (uint64, error) {
	if v == nil {
		return 0, nil
	}
	return integerBits("pointer", v, textNone)
}
