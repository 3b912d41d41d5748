// Package platform supplies the sizeof, alignof and endianness tables the
// type registry is built from.
//
// A Layout describes one ABI. The predefined layouts cover the common data
// models; Host picks the one matching the running process. Profiles loaded
// from YAML or TOML start from a predefined layout and override entries, which
// lets tooling inspect buffers produced under a different ABI of the same byte
// order.
package platform

import (
	"maps"
	"runtime"
	"sort"

	"github.com/wippyai/ctypes/native"
)

// PointerName is the sizeof key for a raw data pointer. It has no alignof
// entry.
const PointerName = "pointer"

// Layout is a per-ABI table of type widths and alignments keyed by name.
type Layout struct {
	Sizes  map[string]int
	Aligns map[string]int
	Name   string
	Endian native.Endian
}

// Sizeof returns the byte width of name.
func (l *Layout) Sizeof(name string) (int, bool) {
	n, ok := l.Sizes[name]
	return n, ok
}

// Alignof returns the required alignment of name.
func (l *Layout) Alignof(name string) (int, bool) {
	n, ok := l.Aligns[name]
	return n, ok
}

// Names returns every name with a sizeof entry, sorted.
func (l *Layout) Names() []string {
	names := make([]string, 0, len(l.Sizes))
	for name := range l.Sizes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy that can be modified independently.
func (l *Layout) Clone() *Layout {
	return &Layout{
		Name:   l.Name,
		Endian: l.Endian,
		Sizes:  maps.Clone(l.Sizes),
		Aligns: maps.Clone(l.Aligns),
	}
}

type entry struct {
	name  string
	size  int
	align int
}

// fixed entries shared by every data model
var fixed = []entry{
	{"void", 0, 1},
	{"int8", 1, 1}, {"uint8", 1, 1},
	{"int16", 2, 2}, {"uint16", 2, 2},
	{"int32", 4, 4}, {"uint32", 4, 4},
	{"int64", 8, 8}, {"uint64", 8, 8},
	{"float", 4, 4}, {"double", 8, 8},
	{"bool", 1, 1}, {"byte", 1, 1},
	{"char", 1, 1}, {"uchar", 1, 1},
	{"short", 2, 2}, {"ushort", 2, 2},
	{"int", 4, 4}, {"uint", 4, 4},
	{"longlong", 8, 8}, {"ulonglong", 8, 8},
}

func newLayout(name string, overrides ...entry) *Layout {
	l := &Layout{
		Name:   name,
		Endian: native.Host,
		Sizes:  make(map[string]int, len(fixed)+len(overrides)),
		Aligns: make(map[string]int, len(fixed)+len(overrides)),
	}
	for _, set := range [][]entry{fixed, overrides} {
		for _, e := range set {
			l.Sizes[e.name] = e.size
			if e.name != PointerName {
				l.Aligns[e.name] = e.align
			}
		}
	}
	return l
}

var (
	// LP64 is the 64-bit Unix model: long and pointers are 8 bytes.
	LP64 = newLayout("lp64",
		entry{"long", 8, 8}, entry{"ulong", 8, 8},
		entry{"size_t", 8, 8}, entry{"wchar_t", 4, 4},
		entry{PointerName, 8, 8},
	)

	// LLP64 is the 64-bit Windows model: long stays 4 bytes, wchar_t is UTF-16.
	LLP64 = newLayout("llp64",
		entry{"long", 4, 4}, entry{"ulong", 4, 4},
		entry{"size_t", 8, 8}, entry{"wchar_t", 2, 2},
		entry{PointerName, 8, 8},
	)

	// ILP32 is the 32-bit model with naturally aligned 64-bit values (ARM, MIPS).
	ILP32 = newLayout("ilp32",
		entry{"long", 4, 4}, entry{"ulong", 4, 4},
		entry{"size_t", 4, 4}, entry{"wchar_t", 4, 4},
		entry{PointerName, 4, 4},
	)

	// I386 is the System V i386 model: 64-bit values are 4-byte aligned.
	I386 = newLayout("i386",
		entry{"long", 4, 4}, entry{"ulong", 4, 4},
		entry{"size_t", 4, 4}, entry{"wchar_t", 4, 4},
		entry{"int64", 8, 4}, entry{"uint64", 8, 4},
		entry{"longlong", 8, 4}, entry{"ulonglong", 8, 4},
		entry{"double", 8, 4},
		entry{PointerName, 4, 4},
	)

	// Win32 is the 32-bit Windows model.
	Win32 = newLayout("win32",
		entry{"long", 4, 4}, entry{"ulong", 4, 4},
		entry{"size_t", 4, 4}, entry{"wchar_t", 2, 2},
		entry{PointerName, 4, 4},
	)
)

var byName = map[string]*Layout{
	LP64.Name:  LP64,
	LLP64.Name: LLP64,
	ILP32.Name: ILP32,
	I386.Name:  I386,
	Win32.Name: Win32,
}

// ByName returns a copy of the predefined layout called name. "host" resolves
// to Host().
func ByName(name string) (*Layout, bool) {
	if name == "host" {
		return Host(), true
	}
	l, ok := byName[name]
	if !ok {
		return nil, false
	}
	return l.Clone(), true
}

// Host returns a copy of the layout of the running process.
func Host() *Layout {
	return hostFor(runtime.GOOS, runtime.GOARCH, native.PointerSize)
}

func hostFor(goos, goarch string, ptrSize int) *Layout {
	var l *Layout
	switch {
	case goos == "windows" && ptrSize == 8:
		l = LLP64
	case goos == "windows":
		l = Win32
	case ptrSize == 8:
		l = LP64
	case goarch == "386":
		l = I386
	default:
		l = ILP32
	}
	return l.Clone()
}
