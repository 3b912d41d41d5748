package native

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"
)

func TestHostMatchesEncodingBinary(t *testing.T) {
	b := make([]byte, 2)
	binary.NativeEndian.PutUint16(b, 0x0102)
	want := BigEndian
	if b[0] == 0x02 {
		want = LittleEndian
	}
	if Host != want {
		t.Errorf("Host = %s, want %s", Host, want)
	}
}

func TestEndian_Opposite(t *testing.T) {
	if LittleEndian.Opposite() != BigEndian {
		t.Error("LE opposite should be BE")
	}
	if BigEndian.Opposite() != LittleEndian {
		t.Error("BE opposite should be LE")
	}
	if !Host.Valid() || Endian("XE").Valid() {
		t.Error("Valid mismatch")
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	b := make([]byte, 16)

	WriteInt8(b, 1, -5)
	if got := ReadInt8(b, 1); got != -5 {
		t.Errorf("int8 = %d", got)
	}
	WriteUint8(b, 1, 250)
	if got := ReadUint8(b, 1); got != 250 {
		t.Errorf("uint8 = %d", got)
	}
	WriteInt16(b, 2, math.MinInt16)
	if got := ReadInt16(b, 2); got != math.MinInt16 {
		t.Errorf("int16 = %d", got)
	}
	WriteUint16(b, 2, math.MaxUint16)
	if got := ReadUint16(b, 2); got != math.MaxUint16 {
		t.Errorf("uint16 = %d", got)
	}
	WriteInt32(b, 4, math.MinInt32)
	if got := ReadInt32(b, 4); got != math.MinInt32 {
		t.Errorf("int32 = %d", got)
	}
	WriteUint32(b, 4, math.MaxUint32)
	if got := ReadUint32(b, 4); got != math.MaxUint32 {
		t.Errorf("uint32 = %d", got)
	}
	WriteInt64(b, 8, math.MinInt64)
	if got := ReadInt64(b, 8); got != math.MinInt64 {
		t.Errorf("int64 = %d", got)
	}
	WriteUint64(b, 8, math.MaxUint64)
	if got := ReadUint64(b, 8); got != math.MaxUint64 {
		t.Errorf("uint64 = %d", got)
	}
}

func TestFloatRoundTrip(t *testing.T) {
	b := make([]byte, 8)
	WriteFloat32(b, 0, 3.5)
	if got := ReadFloat32(b, 0); got != 3.5 {
		t.Errorf("float32 = %v", got)
	}
	WriteFloat64(b, 0, -1e300)
	if got := ReadFloat64(b, 0); got != -1e300 {
		t.Errorf("float64 = %v", got)
	}
}

func TestNativeOrderBytes(t *testing.T) {
	b := make([]byte, 4)
	WriteUint32(b, 0, 0x01020304)
	want := Host.ByteOrder().Uint32(b)
	if want != 0x01020304 {
		t.Errorf("bytes %x not in %s order", b, Host)
	}
}

func TestAddress(t *testing.T) {
	if Address(nil, 0) != 0 {
		t.Error("nil slice should have address 0")
	}
	if !IsNull(nil, 0) {
		t.Error("nil slice should be null")
	}

	b := make([]byte, 8)
	a := Address(b, 0)
	if a == 0 {
		t.Fatal("allocated slice has zero address")
	}
	if Address(b, 3) != a+3 {
		t.Errorf("offset address = %d, want %d", Address(b, 3), a+3)
	}
	if IsNull(b, 0) {
		t.Error("allocated slice should not be null")
	}
}

func TestHexAddress(t *testing.T) {
	if got := HexAddress(nil, 0); got != strings.Repeat("0", PointerSize*2) {
		t.Errorf("HexAddress(nil) = %q", got)
	}
	b := make([]byte, 4)
	h := HexAddress(b, 0)
	if len(h) != PointerSize*2 {
		t.Errorf("HexAddress width = %d, want %d", len(h), PointerSize*2)
	}
	if strings.TrimLeft(h, "0") == "" {
		t.Errorf("HexAddress = %q, want non-zero", h)
	}
}
