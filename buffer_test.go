package ctypes

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	cerrors "github.com/wippyai/ctypes/errors"
	"github.com/wippyai/ctypes/native"
	"github.com/wippyai/ctypes/platform"
	"github.com/wippyai/ctypes/types"
)

func TestNULL(t *testing.T) {
	if NULL.Len() != 0 {
		t.Errorf("NULL.Len = %d", NULL.Len())
	}
	if !NULL.IsNull() {
		t.Error("NULL should be null")
	}
	if NULL.Address() != 0 {
		t.Errorf("NULL.Address = %d", NULL.Address())
	}
	if NULL.Type().Name() != "void" {
		t.Errorf("NULL type = %s", NULL.Type().Name())
	}
	if NULL.Get(0) != nil {
		t.Error("NULL.Get should be nil")
	}
	if err := NULL.Set(0, 1); err != nil {
		t.Errorf("NULL.Set = %v", err)
	}
}

func TestBuffer_NotNull(t *testing.T) {
	b := Wrap(make([]byte, 4), nil)
	if b.IsNull() {
		t.Error("allocated buffer should not be null")
	}
	if b.Address() == 0 {
		t.Error("allocated buffer has address 0")
	}
	if b.Type().Name() != "void" {
		t.Errorf("default type = %s", b.Type().Name())
	}
	if len(b.HexAddress()) != native.PointerSize*2 {
		t.Errorf("HexAddress = %q", b.HexAddress())
	}
}

func TestBuffer_TypedAccess(t *testing.T) {
	reg := types.Default()
	b := Wrap(make([]byte, 8), reg.MustGet("int32"))

	if err := b.Set(4, -9); err != nil {
		t.Fatal(err)
	}
	if got := b.Get(4); got != int64(-9) {
		t.Errorf("Get = %#v", got)
	}

	u := b.Reinterpret(reg.MustGet("uint32"))
	if got := u.Get(4); got != uint64(0xfffffff7) {
		t.Errorf("reinterpreted Get = %#v", got)
	}
	if &u.Bytes()[0] != &b.Bytes()[0] {
		t.Error("Reinterpret should share storage")
	}
}

func TestBuffer_Int64Accessors(t *testing.T) {
	b := Wrap(make([]byte, 8), nil)

	b.WriteInt64LE(0, -2)
	if int64(binary.LittleEndian.Uint64(b.Bytes())) != -2 {
		t.Errorf("WriteInt64LE bytes = %x", b.Bytes())
	}
	if b.ReadInt64LE(0) != -2 {
		t.Errorf("ReadInt64LE = %d", b.ReadInt64LE(0))
	}

	b.WriteInt64BE(0, -3)
	if int64(binary.BigEndian.Uint64(b.Bytes())) != -3 {
		t.Errorf("WriteInt64BE bytes = %x", b.Bytes())
	}
	if b.ReadInt64BE(0) != -3 {
		t.Errorf("ReadInt64BE = %d", b.ReadInt64BE(0))
	}

	b.WriteUint64LE(0, 1<<63)
	if binary.LittleEndian.Uint64(b.Bytes()) != 1<<63 || b.ReadUint64LE(0) != 1<<63 {
		t.Errorf("uint64 LE = %x", b.Bytes())
	}

	b.WriteUint64BE(0, 5)
	if !bytes.Equal(b.Bytes(), []byte{0, 0, 0, 0, 0, 0, 0, 5}) || b.ReadUint64BE(0) != 5 {
		t.Errorf("uint64 BE = %x", b.Bytes())
	}
}

func TestBuffer_64BitStringScenario(t *testing.T) {
	reg := types.Default()
	b := Wrap(make([]byte, 8), reg.MustGet("int64"))
	if err := b.Set(0, "9223372036854775807"); err != nil {
		t.Fatal(err)
	}
	if got := b.Get(0); got != "9223372036854775807" {
		t.Errorf("int64 Get = %#v", got)
	}

	u := b.Reinterpret(reg.MustGet("uint64"))
	if err := u.Set(0, "18446744073709551615"); err != nil {
		t.Fatal(err)
	}
	if got := u.Get(0); got != "18446744073709551615" {
		t.Errorf("uint64 Get = %#v", got)
	}
}

func TestBuffer_ReadPointer(t *testing.T) {
	reg := types.Default()
	b := Wrap(make([]byte, 8), nil)
	p := reg.RefType(reg.MustGet("void"))
	if err := p.Set(b.Bytes(), 0, uint64(0x1234)); err != nil {
		t.Fatal(err)
	}
	if got := b.ReadPointer(0); got != 0x1234 {
		t.Errorf("ReadPointer = %#x", got)
	}
}

func TestBuffer_ReadPointerUsesTypeWidth(t *testing.T) {
	l := platform.ILP32.Clone()
	l.Endian = native.Host
	reg, err := types.NewRegistry(l)
	if err != nil {
		t.Fatal(err)
	}
	p, err := reg.Coerce("int *")
	if err != nil {
		t.Fatal(err)
	}

	data := []byte{0, 0, 0, 0, 0xff, 0xff, 0xff, 0xff}
	native.WriteUint32(data, 0, 0x1234)
	b := Wrap(data, p)
	if got := b.ReadPointer(0); got != 0x1234 {
		t.Errorf("ReadPointer = %#x, want 0x1234", got)
	}
	if got := b.ReadPointer(4); got != 0xffffffff {
		t.Errorf("ReadPointer(4) = %#x, want 0xffffffff", got)
	}
}

func TestCString(t *testing.T) {
	b := Wrap(make([]byte, 8), nil)

	if err := WriteCString(b, 1, "hello"); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b.Bytes(), []byte{0, 'h', 'e', 'l', 'l', 'o', 0, 0}) {
		t.Errorf("bytes = %q", b.Bytes())
	}
	s, err := ReadCString(b, 1)
	if err != nil || s != "hello" {
		t.Errorf("ReadCString = %q, %v", s, err)
	}
	if s, _ := ReadCString(b, 0); s != "" {
		t.Errorf("ReadCString at NUL = %q", s)
	}

	full := Wrap([]byte("abc"), nil)
	if s, _ := ReadCString(full, 0); s != "abc" {
		t.Errorf("unterminated ReadCString = %q", s)
	}

	oob := &cerrors.Error{Phase: cerrors.PhaseEncode, Kind: cerrors.KindOutOfBounds}
	if err := WriteCString(b, 3, "hello"); !errors.Is(err, oob) {
		t.Errorf("WriteCString overflow err = %v", err)
	}
	if _, err := ReadCString(b, 9); err == nil {
		t.Error("ReadCString past end should fail")
	}
}

func TestDescribe(t *testing.T) {
	b := Wrap([]byte{0x01, 0xab, 0x00}, nil)

	if got := Plain.Render(b); got != "<Buffer 01 ab 00>" {
		t.Errorf("Plain = %q", got)
	}

	want := "<Buffer@0x" + b.HexAddress() + " 01 ab 00>"
	if got := Describe(b); got != want {
		t.Errorf("Describe = %q, want %q", got, want)
	}
	if b.String() != want {
		t.Errorf("String = %q", b.String())
	}

	if got := Describe(NULL); got != "<Buffer@0x"+strings.Repeat("0", native.PointerSize*2)+">" {
		t.Errorf("Describe(NULL) = %q", got)
	}
}

func TestDescribe_Truncates(t *testing.T) {
	b := Wrap(make([]byte, MaxInspectBytes+7), nil)
	got := Plain.Render(b)
	if !strings.HasSuffix(got, " ... 7 more bytes>") {
		t.Errorf("Plain = %q", got)
	}
	if strings.Count(got, " 00") != MaxInspectBytes {
		t.Errorf("rendered %d bytes, want %d", strings.Count(got, " 00"), MaxInspectBytes)
	}
}

func TestWithAddress_Idempotent(t *testing.T) {
	b := Wrap([]byte{1, 2}, nil)
	once := WithAddress(Plain)
	twice := WithAddress(once)

	if once.Render(b) != twice.Render(b) {
		t.Errorf("once %q, twice %q", once.Render(b), twice.Render(b))
	}
	if strings.Count(twice.Render(b), "@0x") != 1 {
		t.Errorf("address injected more than once: %q", twice.Render(b))
	}
}

func TestWithAddress_CustomRenderer(t *testing.T) {
	b := Wrap([]byte{9}, nil)
	custom := RendererFunc(func(b *Buffer) string { return "<Int32Array 9>" })
	if got := WithAddress(custom).Render(b); got != "<Int32Array@0x"+b.HexAddress()+" 9>" {
		t.Errorf("custom = %q", got)
	}

	odd := RendererFunc(func(*Buffer) string { return "raw" })
	if got := WithAddress(odd).Render(b); got != "raw" {
		t.Errorf("untagged output should pass through, got %q", got)
	}
}
