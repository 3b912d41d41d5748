package types

// Category groups descriptors by how their values are stored.
type Category int

const (
	CategoryScalar Category = iota
	CategoryVoid
	CategoryPointer
)

func (c Category) String() string {
	switch c {
	case CategoryVoid:
		return "void"
	case CategoryPointer:
		return "pointer"
	default:
		return "scalar"
	}
}

// GetFunc decodes one value at b[off:]. It must not modify b.
type GetFunc func(b []byte, off int) any

// SetFunc encodes v into b[off:].
type SetFunc func(b []byte, off int, v any) error

// Descriptor describes one native type.
//
// A descriptor is either a root, holding every field itself, or derived from
// a base. A derived descriptor answers Size, Indirection, Category, Get and
// Set from its own override when present and from the base's current value
// otherwise, so later overrides on the base show through. Name and Alignment
// always belong to the descriptor itself. Only the get and set functions may
// change after construction.
type Descriptor struct {
	base     *Descriptor
	referent *Descriptor
	get      GetFunc
	set      SetFunc
	name     string

	size        int
	indirection int
	alignment   int
	category    Category

	ownSize        bool
	ownIndirection bool
	ownCategory    bool
}

// Option configures a descriptor at construction.
type Option func(*Descriptor)

// WithSize overrides the byte width.
func WithSize(n int) Option {
	return func(d *Descriptor) {
		d.size = n
		d.ownSize = true
	}
}

// WithIndirection overrides the pointer depth.
func WithIndirection(n int) Option {
	return func(d *Descriptor) {
		d.indirection = n
		d.ownIndirection = true
	}
}

// WithCategory overrides the category.
func WithCategory(c Category) Option {
	return func(d *Descriptor) {
		d.category = c
		d.ownCategory = true
	}
}

// WithAlignment sets the alignment. Registries fill it from the platform
// table when left at zero.
func WithAlignment(n int) Option {
	return func(d *Descriptor) {
		d.alignment = n
	}
}

// WithGetter overrides the decoder.
func WithGetter(fn GetFunc) Option {
	return func(d *Descriptor) { d.get = fn }
}

// WithSetter overrides the encoder.
func WithSetter(fn SetFunc) Option {
	return func(d *Descriptor) { d.set = fn }
}

// New creates a root descriptor with indirection 1.
func New(name string, size int, get GetFunc, set SetFunc, opts ...Option) *Descriptor {
	d := &Descriptor{
		name:           name,
		size:           size,
		indirection:    1,
		get:            get,
		set:            set,
		ownSize:        true,
		ownIndirection: true,
		ownCategory:    true,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Derive creates a descriptor named name that delegates to base for every
// field not set by opts.
func Derive(name string, base *Descriptor, opts ...Option) *Descriptor {
	d := &Descriptor{name: name, base: base}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Descriptor) Name() string { return d.name }

// Base returns the descriptor d derives from, or nil for a root.
func (d *Descriptor) Base() *Descriptor { return d.base }

// Size returns the byte width of one value.
func (d *Descriptor) Size() int {
	if d.ownSize || d.base == nil {
		return d.size
	}
	return d.base.Size()
}

// Indirection returns the pointer depth; 1 is a direct value.
func (d *Descriptor) Indirection() int {
	if d.ownIndirection || d.base == nil {
		return d.indirection
	}
	return d.base.Indirection()
}

func (d *Descriptor) Category() Category {
	if d.ownCategory || d.base == nil {
		return d.category
	}
	return d.base.Category()
}

// Alignment returns the required byte alignment. Pointer-category
// descriptors report 0.
func (d *Descriptor) Alignment() int { return d.alignment }

// OverridesGet reports whether d has its own decoder.
func (d *Descriptor) OverridesGet() bool { return d.get != nil }

// OverridesSet reports whether d has its own encoder.
func (d *Descriptor) OverridesSet() bool { return d.set != nil }

// OverrideGet replaces the decoder. Descriptors derived from d without their
// own decoder pick up the change.
func (d *Descriptor) OverrideGet(fn GetFunc) { d.get = fn }

// OverrideSet replaces the encoder.
func (d *Descriptor) OverrideSet(fn SetFunc) { d.set = fn }

func (d *Descriptor) getter() GetFunc {
	for t := d; t != nil; t = t.base {
		if t.get != nil {
			return t.get
		}
	}
	return nil
}

func (d *Descriptor) setter() SetFunc {
	for t := d; t != nil; t = t.base {
		if t.set != nil {
			return t.set
		}
	}
	return nil
}

// Get decodes the value at b[off:]. A buffer shorter than off+Size panics.
func (d *Descriptor) Get(b []byte, off int) any {
	if get := d.getter(); get != nil {
		return get(b, off)
	}
	return nil
}

// Set encodes v at b[off:]. A buffer shorter than off+Size panics.
func (d *Descriptor) Set(b []byte, off int, v any) error {
	if set := d.setter(); set != nil {
		return set(b, off, v)
	}
	return nil
}

func (d *Descriptor) String() string { return d.name }
