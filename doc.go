// Package ctypes provides a typed view over raw native memory for foreign
// function interop.
//
// Given a byte region and an offset, a type descriptor reads or writes one
// value of a declared native type while hiding platform differences in
// width, alignment and byte order.
//
// # Architecture Overview
//
//	ctypes/        Buffer, the NULL sentinel and Describe
//	├── native/    Host-order fixed-width codecs and memory addresses
//	├── codec64/   64-bit codecs in explicit LE/BE order
//	├── platform/  sizeof/alignof/endianness tables and profiles
//	├── types/     Descriptor registry, aliases, bool and pointer types
//	├── wasmmem/   Descriptor access to wazero linear memory
//	├── witbridge/ WIT primitive types mapped to descriptors
//	├── errors/    Structured error types
//	└── cmd/ctypes CLI and interactive type explorer
//
// # Quick Start
//
//	buf := ctypes.Wrap(make([]byte, 8), nil)
//	long := types.Default().MustGet("long")
//	if err := long.Set(buf.Bytes(), 0, -1); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(long.Get(buf.Bytes(), 0)) // -1
//	fmt.Println(ctypes.Describe(buf))      // <Buffer@0x000000c000012345 ff ff ff ff ff ff ff ff>
//
// # Values
//
// Signed integers decode to int64, unsigned ones to uint64, floats to
// float64 and bool to bool. 64-bit values whose magnitude exceeds 2^53-1
// decode to base-10 strings so dynamic consumers never lose precision;
// setters accept those strings back.
//
// # Thread Safety
//
// Descriptors and registries are safe for concurrent use once built. The
// opposite byte order codecs keep their scratch space on the stack.
package ctypes
