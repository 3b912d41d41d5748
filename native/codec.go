package native

import "math"

// All readers and writers use host byte order. The slice must hold the full
// width at off; short slices panic like any other out-of-range index.

func ReadInt8(b []byte, off int) int8 { return int8(b[off]) }

func ReadUint8(b []byte, off int) uint8 { return b[off] }

func ReadInt16(b []byte, off int) int16 { return int16(order.Uint16(b[off:])) }

func ReadUint16(b []byte, off int) uint16 { return order.Uint16(b[off:]) }

func ReadInt32(b []byte, off int) int32 { return int32(order.Uint32(b[off:])) }

func ReadUint32(b []byte, off int) uint32 { return order.Uint32(b[off:]) }

func ReadInt64(b []byte, off int) int64 { return int64(order.Uint64(b[off:])) }

func ReadUint64(b []byte, off int) uint64 { return order.Uint64(b[off:]) }

func ReadFloat32(b []byte, off int) float32 {
	return math.Float32frombits(order.Uint32(b[off:]))
}

func ReadFloat64(b []byte, off int) float64 {
	return math.Float64frombits(order.Uint64(b[off:]))
}

func WriteInt8(b []byte, off int, v int8) { b[off] = byte(v) }

func WriteUint8(b []byte, off int, v uint8) { b[off] = v }

func WriteInt16(b []byte, off int, v int16) { order.PutUint16(b[off:], uint16(v)) }

func WriteUint16(b []byte, off int, v uint16) { order.PutUint16(b[off:], v) }

func WriteInt32(b []byte, off int, v int32) { order.PutUint32(b[off:], uint32(v)) }

func WriteUint32(b []byte, off int, v uint32) { order.PutUint32(b[off:], v) }

func WriteInt64(b []byte, off int, v int64) { order.PutUint64(b[off:], uint64(v)) }

func WriteUint64(b []byte, off int, v uint64) { order.PutUint64(b[off:], v) }

func WriteFloat32(b []byte, off int, v float32) {
	order.PutUint32(b[off:], math.Float32bits(v))
}

func WriteFloat64(b []byte, off int, v float64) {
	order.PutUint64(b[off:], math.Float64bits(v))
}
