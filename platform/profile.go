package platform

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"

	cerrors "github.com/wippyai/ctypes/errors"
	"github.com/wippyai/ctypes/native"
)

// Format is a profile file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the profile format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", cerrors.Unsupported(cerrors.PhaseConfig, "profile extension "+filepath.Ext(path))
	}
}

// Profile overrides entries of a predefined layout.
//
//	name: embedded-arm
//	base: ilp32
//	endianness: LE
//	sizeof:
//	  wchar_t: 2
//	alignof:
//	  wchar_t: 2
type Profile struct {
	Sizeof     map[string]int `yaml:"sizeof" toml:"sizeof"`
	Alignof    map[string]int `yaml:"alignof" toml:"alignof"`
	Name       string         `yaml:"name" toml:"name"`
	Base       string         `yaml:"base" toml:"base" default:"host"`
	Endianness string         `yaml:"endianness" toml:"endianness"`
}

// LoadProfile reads a profile file and resolves it to a Layout.
func LoadProfile(path string) (*Layout, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.PhaseConfig, cerrors.KindInvalidData, err, "read profile")
	}
	return ParseProfile(data, format)
}

// ParseProfile decodes a profile and resolves it to a Layout.
func ParseProfile(data []byte, format Format) (*Layout, error) {
	var p Profile
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
			return nil, cerrors.ParseFailed("yaml profile", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &p)
		if err != nil {
			return nil, cerrors.ParseFailed("toml profile", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, cerrors.New(cerrors.PhaseConfig, cerrors.KindInvalidData).
				Detail("unknown profile key %q", undecoded[0].String()).
				Build()
		}
	default:
		return nil, cerrors.Unsupported(cerrors.PhaseConfig, "profile format "+string(format))
	}
	if err := defaults.Set(&p); err != nil {
		return nil, cerrors.Wrap(cerrors.PhaseConfig, cerrors.KindInvalidData, err, "apply profile defaults")
	}
	return p.Layout()
}

// Layout applies the profile to its base layout.
func (p *Profile) Layout() (*Layout, error) {
	base := p.Base
	if base == "" {
		base = "host"
	}
	l, ok := ByName(base)
	if !ok {
		return nil, cerrors.New(cerrors.PhaseConfig, cerrors.KindInvalidData).
			Value(base).
			Detail("unknown base layout %q", base).
			Build()
	}
	if p.Name != "" {
		l.Name = p.Name
	}
	if p.Endianness != "" {
		e := native.Endian(strings.ToUpper(p.Endianness))
		if !e.Valid() {
			return nil, cerrors.New(cerrors.PhaseConfig, cerrors.KindInvalidData).
				Value(p.Endianness).
				Detail("endianness must be LE or BE").
				Build()
		}
		l.Endian = e
	}
	for name, size := range p.Sizeof {
		if size < 0 {
			return nil, cerrors.New(cerrors.PhaseConfig, cerrors.KindInvalidData).
				TypeName(name).
				Value(size).
				Detail("negative size").
				Build()
		}
		l.Sizes[name] = size
	}
	for name, align := range p.Alignof {
		if align <= 0 {
			return nil, cerrors.New(cerrors.PhaseConfig, cerrors.KindInvalidData).
				TypeName(name).
				Value(align).
				Detail("alignment must be positive").
				Build()
		}
		l.Aligns[name] = align
	}
	return l, nil
}
