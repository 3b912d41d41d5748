package ctypes

import (
	"strconv"
	"strings"
)

// MaxInspectBytes caps how many bytes a rendering shows.
const MaxInspectBytes = 50

// Renderer produces the human-readable form of a buffer.
type Renderer interface {
	Render(b *Buffer) string
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(b *Buffer) string

func (f RendererFunc) Render(b *Buffer) string { return f(b) }

// Plain renders "<Buffer 01 02 ...>" without an address.
var Plain Renderer = RendererFunc(func(b *Buffer) string {
	var sb strings.Builder
	sb.WriteString("<Buffer")
	writeBytes(&sb, b.data)
	sb.WriteByte('>')
	return sb.String()
})

func writeBytes(sb *strings.Builder, data []byte) {
	n := min(len(data), MaxInspectBytes)
	for _, c := range data[:n] {
		sb.WriteByte(' ')
		if c < 0x10 {
			sb.WriteByte('0')
		}
		sb.WriteString(strconv.FormatUint(uint64(c), 16))
	}
	if rest := len(data) - n; rest > 0 {
		sb.WriteString(" ... ")
		sb.WriteString(strconv.Itoa(rest))
		sb.WriteString(" more bytes")
	}
}

// addressRenderer is the marker type WithAddress checks for.
type addressRenderer struct {
	inner Renderer
}

func (r addressRenderer) Render(b *Buffer) string {
	s := r.inner.Render(b)
	tag := strings.IndexAny(s, " >")
	if !strings.HasPrefix(s, "<") || tag < 0 {
		return s
	}
	return s[:tag] + "@0x" + b.HexAddress() + s[tag:]
}

// WithAddress returns a renderer that inserts "@0x<address>" right after
// the type tag of r's output. Applying it to its own result returns that
// result unchanged.
func WithAddress(r Renderer) Renderer {
	if _, ok := r.(addressRenderer); ok {
		return r
	}
	return addressRenderer{inner: r}
}

var described = WithAddress(Plain)

// Describe renders b with its address: "<Buffer@0x00000000deadbeef 01 02>".
func Describe(b *Buffer) string {
	return described.Render(b)
}
