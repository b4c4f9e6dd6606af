package ndarray

import (
	"fmt"
	"math"

	"github.com/x448/float16"
)

// Buffer is a flat, typed, contiguous element store.
//
// The length is fixed at creation; only element values change. A Buffer may
// back any number of arrays (views), and lives as long as one of them does.
type Buffer struct {
	dtype DataType
	data  any // typed backing slice, one of the cases in NewBuffer
	n     int
}

// NewBuffer allocates a zero-filled buffer of n elements.
func NewBuffer(dtype DataType, n int) *Buffer {
	var data any
	switch dtype {
	case Int8:
		data = make([]int8, n)
	case Int16:
		data = make([]int16, n)
	case Int32:
		data = make([]int32, n)
	case Uint8:
		data = make([]uint8, n)
	case Uint16:
		data = make([]uint16, n)
	case Uint32:
		data = make([]uint32, n)
	case Float16:
		data = make([]float16.Float16, n)
	case Float32:
		data = make([]float32, n)
	case Float64, Generic:
		data = make([]float64, n)
	default:
		panic(fmt.Sprintf("buffer: unknown dtype %d", dtype))
	}
	return &Buffer{dtype: dtype, data: data, n: n}
}

// DType returns the element type.
func (b *Buffer) DType() DataType {
	return b.dtype
}

// Len returns the number of elements.
func (b *Buffer) Len() int {
	return b.n
}

// At returns element i widened to float64.
func (b *Buffer) At(i int) float64 {
	switch d := b.data.(type) {
	case []int8:
		return float64(d[i])
	case []int16:
		return float64(d[i])
	case []int32:
		return float64(d[i])
	case []uint8:
		return float64(d[i])
	case []uint16:
		return float64(d[i])
	case []uint32:
		return float64(d[i])
	case []float16.Float16:
		return float64(d[i].Float32())
	case []float32:
		return float64(d[i])
	case []float64:
		return d[i]
	}
	panic("buffer: corrupt backing slice")
}

// SetAt stores v at element i, converting it the way a native buffer of the
// element type would: integers truncate toward zero and wrap, narrow floats
// round to nearest.
func (b *Buffer) SetAt(i int, v float64) {
	switch d := b.data.(type) {
	case []int8:
		d[i] = int8(wrap(v))
	case []int16:
		d[i] = int16(wrap(v))
	case []int32:
		d[i] = int32(wrap(v))
	case []uint8:
		d[i] = uint8(wrap(v))
	case []uint16:
		d[i] = uint16(wrap(v))
	case []uint32:
		d[i] = uint32(wrap(v))
	case []float16.Float16:
		d[i] = float16.Fromfloat32(float32(v))
	case []float32:
		d[i] = float32(v)
	case []float64:
		d[i] = v
	default:
		panic("buffer: corrupt backing slice")
	}
}

// Float64s returns the backing slice of a Float64 or Generic buffer.
// Panics for other dtypes.
//
// WARNING: the slice aliases the buffer.
func (b *Buffer) Float64s() []float64 {
	d, ok := b.data.([]float64)
	if !ok {
		panic(fmt.Sprintf("buffer dtype is %s, not float64", b.dtype))
	}
	return d
}

// wrap truncates v toward zero and reduces it modulo 2^32, so that narrowing
// integer conversions wrap like fixed-width native buffers. NaN and ±Inf map to 0.
func wrap(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int64(math.Mod(math.Trunc(v), 1<<32))
}
