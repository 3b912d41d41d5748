package types

import (
	"errors"
	"testing"

	cerrors "github.com/wippyai/ctypes/errors"
	"github.com/wippyai/ctypes/native"
	"github.com/wippyai/ctypes/platform"
)

func TestRefType(t *testing.T) {
	r := newTestRegistry(t, platform.Host())
	i := r.MustGet("int")

	p := r.RefType(i)
	if p.Name() != "int*" {
		t.Errorf("Name = %s", p.Name())
	}
	if p.Indirection() != 2 {
		t.Errorf("Indirection = %d, want 2", p.Indirection())
	}
	if p.Size() != native.PointerSize {
		t.Errorf("Size = %d, want %d", p.Size(), native.PointerSize)
	}
	if p.Category() != CategoryPointer {
		t.Errorf("Category = %s", p.Category())
	}
	if p.Alignment() != 0 {
		t.Errorf("pointer Alignment = %d, want 0", p.Alignment())
	}
	if r.RefType(i) != p {
		t.Error("RefType should be cached")
	}

	pp := r.RefType(p)
	if pp.Indirection() != 3 || pp.Name() != "int**" {
		t.Errorf("int** = %s/%d", pp.Name(), pp.Indirection())
	}

	back, err := r.DerefType(pp)
	if err != nil || back != p {
		t.Errorf("DerefType(int**) = %v, %v", back, err)
	}
}

func TestRefType_AddressValue(t *testing.T) {
	r := newTestRegistry(t, platform.Host())
	p := r.RefType(r.MustGet("void"))
	buf := make([]byte, 8)

	if err := p.Set(buf, 0, uint64(0xdead0000)); err != nil {
		t.Fatal(err)
	}
	if got := p.Get(buf, 0); got != uint64(0xdead0000) {
		t.Errorf("Get = %#v", got)
	}
	if err := p.Set(buf, 0, nil); err != nil {
		t.Fatal(err)
	}
	if got := p.Get(buf, 0); got != uint64(0) {
		t.Errorf("Get after nil = %#v", got)
	}
	if err := p.Set(buf, 0, "0x10"); err == nil {
		t.Error("string address should be rejected")
	}
}

func TestRefType_NarrowPointers(t *testing.T) {
	l := platform.ILP32.Clone()
	l.Endian = native.Host
	r := newTestRegistry(t, l)

	p := r.RefType(r.MustGet("char"))
	if p.Size() != 4 {
		t.Fatalf("Size = %d, want 4", p.Size())
	}
	buf := make([]byte, 8)
	if err := p.Set(buf, 0, int64(0x1_0000_0010)); err != nil {
		t.Fatal(err)
	}
	if got := p.Get(buf, 0); got != uint64(0x10) {
		t.Errorf("Get = %#v, want low 32 bits", got)
	}
	if buf[4] != 0 || buf[5] != 0 || buf[6] != 0 || buf[7] != 0 {
		t.Errorf("4-byte pointer wrote past its width: %x", buf)
	}
}

func TestDerefType(t *testing.T) {
	r := newTestRegistry(t, platform.Host())

	_, err := r.DerefType(r.MustGet("int"))
	if !errors.Is(err, invalidArgument) {
		t.Errorf("DerefType(int) err = %v", err)
	}

	ext := Derive("node**", r.MustGet("void"), WithIndirection(3), WithCategory(CategoryPointer))
	d, err := r.DerefType(ext)
	if err != nil {
		t.Fatal(err)
	}
	if d.Indirection() != 2 || d.Name() != "node*" {
		t.Errorf("DerefType(node**) = %s/%d", d.Name(), d.Indirection())
	}
}

func TestCoerce(t *testing.T) {
	r := newTestRegistry(t, platform.Host())

	tests := []struct {
		expr        string
		name        string
		indirection int
	}{
		{"int", "int", 1},
		{"  double ", "double", 1},
		{"char *", "char*", 2},
		{"char*", "char*", 2},
		{"void **", "void**", 3},
		{"uint8 * *", "uint8**", 3},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			d, err := r.Coerce(tt.expr)
			if err != nil {
				t.Fatalf("Coerce: %v", err)
			}
			if d.Name() != tt.name || d.Indirection() != tt.indirection {
				t.Errorf("Coerce(%q) = %s/%d, want %s/%d", tt.expr, d.Name(), d.Indirection(), tt.name, tt.indirection)
			}
		})
	}

	if _, err := r.Coerce("struct foo *"); !errors.Is(err, &cerrors.Error{Phase: cerrors.PhaseLookup, Kind: cerrors.KindUnknownType}) {
		t.Errorf("Coerce unknown err = %v", err)
	}
}
