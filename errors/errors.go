package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseInit    Phase = "init"    // registry construction
	PhaseLookup  Phase = "lookup"  // type resolution by name
	PhaseEncode  Phase = "encode"  // Go value to memory
	PhaseDecode  Phase = "decode"  // memory to Go value
	PhaseConfig  Phase = "config"  // platform profile loading
	PhaseRuntime Phase = "runtime" // buffer and memory operations
)

// Kind categorizes the error
type Kind string

const (
	KindUnknownType          Kind = "unknown_type"
	KindInvalidTypeWidth     Kind = "invalid_type_width"
	KindUnknownCanonicalType Kind = "unknown_canonical_type"
	KindMissingAlignment     Kind = "missing_alignment"
	KindInvalidArgument      Kind = "invalid_argument"
	KindDuplicateType        Kind = "duplicate_type"
	KindOutOfBounds          Kind = "out_of_bounds"
	KindUnsupported          Kind = "unsupported"
	KindInvalidData          Kind = "invalid_data"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	TypeName string
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.TypeName != "" {
		b.WriteString(": type ")
		b.WriteString(e.TypeName)
	}

	if e.Detail != "" {
		if e.TypeName != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// TypeName sets the native type name
func (b *Builder) TypeName(name string) *Builder {
	b.err.TypeName = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for the registry taxonomy

// UnknownType creates an error for a lookup of an unregistered type name
func UnknownType(name string) *Error {
	return &Error{
		Phase:    PhaseLookup,
		Kind:     KindUnknownType,
		TypeName: name,
		Detail:   fmt.Sprintf("type %q is not registered", name),
	}
}

// InvalidTypeWidth creates an error for an alias whose platform width is outside 1..8
func InvalidTypeWidth(name string, width int) *Error {
	return &Error{
		Phase:    PhaseInit,
		Kind:     KindInvalidTypeWidth,
		TypeName: name,
		Detail:   fmt.Sprintf("platform width %d not in 1..8", width),
		Value:    width,
	}
}

// UnknownCanonicalType creates an error for an alias resolving to a missing canonical type
func UnknownCanonicalType(alias, canonical string) *Error {
	return &Error{
		Phase:    PhaseInit,
		Kind:     KindUnknownCanonicalType,
		TypeName: alias,
		Detail:   fmt.Sprintf("canonical type %q is not registered", canonical),
		Value:    canonical,
	}
}

// MissingAlignment creates an error for a non-pointer type without an alignment entry
func MissingAlignment(name string) *Error {
	return &Error{
		Phase:    PhaseInit,
		Kind:     KindMissingAlignment,
		TypeName: name,
		Detail:   "no platform alignment entry",
	}
}

// InvalidArgument creates an error for a value a setter cannot encode
func InvalidArgument(typeName string, value any, detail string) *Error {
	return &Error{
		Phase:    PhaseEncode,
		Kind:     KindInvalidArgument,
		TypeName: typeName,
		Detail:   detail,
		Value:    value,
	}
}

// DuplicateType creates an error for registering a name twice
func DuplicateType(name string) *Error {
	return &Error{
		Phase:    PhaseInit,
		Kind:     KindDuplicateType,
		TypeName: name,
		Detail:   "already registered",
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, offset, size, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("range [%d, %d) out of bounds (length %d)", offset, offset+size, length),
		Value:  offset,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// ParseFailed creates a parsing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindInvalidData,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}
