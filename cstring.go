package ctypes

import (
	"bytes"

	cerrors "github.com/wippyai/ctypes/errors"
)

// ReadCString returns the bytes from off up to the first NUL, or to the end
// of the buffer when there is none.
func ReadCString(b *Buffer, off int) (string, error) {
	if off < 0 || off > len(b.data) {
		return "", cerrors.OutOfBounds(cerrors.PhaseDecode, off, 0, len(b.data))
	}
	rest := b.data[off:]
	if end := bytes.IndexByte(rest, 0); end >= 0 {
		rest = rest[:end]
	}
	return string(rest), nil
}

// WriteCString stores s followed by a NUL at off. The buffer must have room
// for len(s)+1 bytes.
func WriteCString(b *Buffer, off int, s string) error {
	need := len(s) + 1
	if off < 0 || off+need > len(b.data) {
		return cerrors.OutOfBounds(cerrors.PhaseEncode, off, need, len(b.data))
	}
	copy(b.data[off:], s)
	b.data[off+len(s)] = 0
	return nil
}
