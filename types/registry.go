package types

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	cerrors "github.com/wippyai/ctypes/errors"
	"github.com/wippyai/ctypes/native"
	"github.com/wippyai/ctypes/platform"
)

// AliasNames are the platform-dependent type names resolved onto canonical
// fixed-width descriptors when a registry is built.
var AliasNames = []string{
	"bool", "byte", "char", "uchar", "short", "ushort", "int", "uint",
	"long", "ulong", "longlong", "ulonglong", "size_t", "wchar_t",
}

// Registry maps type names to descriptors for one platform layout.
//
// A registry is fully built by NewRegistry. Lookups are safe for concurrent
// use; Register and RefType take a lock.
type Registry struct {
	layout *platform.Layout
	types  map[string]*Descriptor
	refs   map[*Descriptor]*Descriptor
	mu     sync.RWMutex
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry for the host layout. It panics
// if the host tables are inconsistent, since no partial registry can serve.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := NewRegistry(platform.Host())
		if err != nil {
			panic(err)
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Lookup resolves name in the default registry.
func Lookup(name string) (*Descriptor, error) {
	return Default().Get(name)
}

// NewRegistry builds the canonical descriptors, derives every alias and
// assigns alignments from l. Any inconsistency in l aborts construction.
func NewRegistry(l *platform.Layout) (*Registry, error) {
	if l.Endian != native.Host {
		return nil, cerrors.Unsupported(cerrors.PhaseInit,
			"layout "+l.Name+" is "+string(l.Endian)+" but the host is "+string(native.Host))
	}

	r := &Registry{
		layout: l.Clone(),
		types:  make(map[string]*Descriptor, 32),
		refs:   make(map[*Descriptor]*Descriptor),
	}
	if n, ok := l.Sizeof(platform.PointerName); ok && n != 4 && n != 8 {
		return nil, cerrors.New(cerrors.PhaseInit, cerrors.KindInvalidTypeWidth).
			TypeName(platform.PointerName).
			Value(n).
			Detail("pointer width %d not 4 or 8", n).
			Build()
	}
	log := Logger().With(zap.String("layout", l.Name))

	for _, d := range canonicalSet(l.Endian) {
		if n, ok := l.Sizeof(d.Name()); ok && n != d.Size() {
			return nil, cerrors.InvalidTypeWidth(d.Name(), n)
		}
		r.types[d.Name()] = d
	}

	for _, name := range AliasNames {
		d, err := r.deriveAlias(name)
		if err != nil {
			return nil, err
		}
		r.types[name] = d
		log.Debug("alias resolved",
			zap.String("alias", name),
			zap.String("canonical", d.Base().Name()),
			zap.Int("size", d.Size()))
	}

	installBoolCoercion(r.types["bool"])

	for name, d := range r.types {
		if err := r.assignAlignment(d); err != nil {
			return nil, err
		}
		log.Debug("alignment assigned", zap.String("type", name), zap.Int("align", d.Alignment()))
	}

	return r, nil
}

func isUnsignedAlias(name string) bool {
	switch name {
	case "bool", "byte", "size_t":
		return true
	}
	return strings.HasPrefix(name, "u")
}

func (r *Registry) deriveAlias(name string) (*Descriptor, error) {
	width, ok := r.layout.Sizeof(name)
	if !ok {
		return nil, cerrors.New(cerrors.PhaseInit, cerrors.KindInvalidTypeWidth).
			TypeName(name).
			Detail("no platform size entry").
			Build()
	}
	if width < 1 || width > 8 {
		return nil, cerrors.InvalidTypeWidth(name, width)
	}

	canonical := "int" + strconv.Itoa(width*8)
	if isUnsignedAlias(name) {
		canonical = "u" + canonical
	}
	base, ok := r.types[canonical]
	if !ok {
		return nil, cerrors.UnknownCanonicalType(name, canonical)
	}
	return Derive(name, base), nil
}

func (r *Registry) assignAlignment(d *Descriptor) error {
	if d.Category() == CategoryPointer || d.alignment > 0 {
		return nil
	}
	align, ok := r.layout.Alignof(d.Name())
	if !ok || align <= 0 {
		return cerrors.MissingAlignment(d.Name())
	}
	d.alignment = align
	return nil
}

// Layout returns a copy of the platform layout the registry was built from.
func (r *Registry) Layout() *platform.Layout {
	return r.layout.Clone()
}

// PointerSize returns the platform width of a raw pointer.
func (r *Registry) PointerSize() int {
	if n, ok := r.layout.Sizeof(platform.PointerName); ok {
		return n
	}
	return native.PointerSize
}

// Get returns the descriptor registered as name.
func (r *Registry) Get(name string) (*Descriptor, error) {
	r.mu.RLock()
	d, ok := r.types[name]
	r.mu.RUnlock()
	if !ok {
		return nil, cerrors.UnknownType(name)
	}
	return d, nil
}

// MustGet is Get for names known to exist; it panics otherwise.
func (r *Registry) MustGet(name string) *Descriptor {
	d, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return d
}

// Register adds an externally built descriptor. A non-pointer descriptor
// without an alignment takes it from the platform table.
func (r *Registry) Register(d *Descriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[d.Name()]; exists {
		return cerrors.DuplicateType(d.Name())
	}
	if err := r.assignAlignment(d); err != nil {
		return err
	}
	r.types[d.Name()] = d
	Logger().Debug("type registered", zap.String("type", d.Name()), zap.Int("size", d.Size()))
	return nil
}

// Names returns every registered name, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}
