// Package errors provides structured error types for the ctypes library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the native type name, the offending value and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindInvalidArgument).
//		TypeName("int8").
//		Value("ab").
//		Detail("expected a single character").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnknownType("quad")
//	err := errors.OutOfBounds(errors.PhaseRuntime, 10, 4, 12)
//
// All errors implement the standard error interface and support errors.Is/As.
// Is matches on Phase and Kind only.
package errors
