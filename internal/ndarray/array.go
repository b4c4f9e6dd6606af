package ndarray

import (
	"fmt"
	"reflect"
)

// Array is a strided view over a Buffer: element idx lives at buffer
// position offset + Σ idx[i]*strides[i].
//
// View operations (Pick, Step, Slice, Transpose, Flip, Rot90, 2-D Diag and
// contiguous Reshape) return arrays that share the buffer, so writes through
// one are visible through the others. Arrays sharing a buffer are not safe
// for concurrent unsynchronized mutation; Clone first when that is needed.
type Array struct {
	buf     *Buffer
	shape   Shape
	strides []int
	offset  int
}

// newArray allocates a zero-filled contiguous row-major array.
func newArray(shape Shape, dtype DataType) *Array {
	return &Array{
		buf:     NewBuffer(dtype, shape.NumElements()),
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
	}
}

// FromBuffer creates a view over buf. Every reachable position must lie
// inside the buffer.
func FromBuffer(buf *Buffer, shape Shape, strides []int, offset int) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(strides) != len(shape) {
		return nil, fmt.Errorf("strides %v do not match shape %v: %w", strides, shape, ErrValue)
	}
	if shape.NumElements() > 0 {
		lo, hi := offset, offset
		for i, dim := range shape {
			span := strides[i] * (dim - 1)
			if span < 0 {
				lo += span
			} else {
				hi += span
			}
		}
		if lo < 0 || hi >= buf.Len() {
			return nil, fmt.Errorf("view [%d, %d] outside buffer of length %d: %w", lo, hi, buf.Len(), ErrValue)
		}
	}
	return &Array{
		buf:     buf,
		shape:   shape.Clone(),
		strides: append([]int(nil), strides...),
		offset:  offset,
	}, nil
}

// FromSlice creates a contiguous array of the given shape from row-major data.
// The data is copied and converted to dtype.
func FromSlice(data []float64, shape Shape, dtype DataType) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d: %w",
			shape, shape.NumElements(), len(data), ErrValue)
	}
	a := newArray(shape, dtype)
	for i, v := range data {
		a.buf.SetAt(i, v)
	}
	return a, nil
}

// Scalar creates a 0-D array holding v.
func Scalar(v float64, dtype DataType) *Array {
	a := newArray(Shape{}, dtype)
	a.buf.SetAt(0, v)
	return a
}

// New creates an array from nested Go slices or a numeric scalar.
//
// The shape is inferred from the nesting depth and the length of the first
// element at each level; rows of different lengths are rejected with ErrValue.
// An *Array argument is cloned into dtype.
//
// Example:
//
//	a, err := ndarray.New([][]float64{{1, 2}, {3, 4}}, ndarray.Float64) // shape (2, 2)
func New(data any, dtype DataType) (*Array, error) {
	if src, ok := data.(*Array); ok {
		return src.AsType(dtype), nil
	}

	v := reflect.ValueOf(data)
	if !v.IsValid() {
		return nil, fmt.Errorf("new: nil data: %w", ErrValue)
	}

	shape := inferShape(v)
	flat := make([]float64, 0, shape.NumElements())
	flat, err := flattenNested(v, shape, 0, flat)
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	return FromSlice(flat, shape, dtype)
}

func inferShape(v reflect.Value) Shape {
	var shape Shape
	for {
		v = unwrapInterface(v)
		if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
			return shape
		}
		shape = append(shape, v.Len())
		if v.Len() == 0 {
			return shape
		}
		v = v.Index(0)
	}
}

func flattenNested(v reflect.Value, shape Shape, depth int, out []float64) ([]float64, error) {
	v = unwrapInterface(v)
	isSeq := v.Kind() == reflect.Slice || v.Kind() == reflect.Array

	if depth == len(shape) {
		if isSeq {
			return nil, fmt.Errorf("irregular nesting at depth %d: %w", depth, ErrValue)
		}
		f, ok := toFloat(v)
		if !ok {
			return nil, fmt.Errorf("unsupported element type %s: %w", v.Type(), ErrValue)
		}
		return append(out, f), nil
	}

	if !isSeq || v.Len() != shape[depth] {
		return nil, fmt.Errorf("irregular nesting at depth %d (expected length %d): %w", depth, shape[depth], ErrValue)
	}
	var err error
	for i := 0; i < v.Len(); i++ {
		if out, err = flattenNested(v.Index(i), shape, depth+1, out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func unwrapInterface(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	return v
}

func toFloat(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Bool:
		if v.Bool() {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// Shape returns the array's dimensions. The caller must not modify it.
func (a *Array) Shape() Shape {
	return a.shape
}

// Strides returns the array's strides. The caller must not modify it.
func (a *Array) Strides() []int {
	return a.strides
}

// Offset returns the buffer position of the first element.
func (a *Array) Offset() int {
	return a.offset
}

// Buffer returns the backing buffer.
func (a *Array) Buffer() *Buffer {
	return a.buf
}

// DType returns the element type.
func (a *Array) DType() DataType {
	return a.buf.dtype
}

// NDim returns the number of dimensions.
func (a *Array) NDim() int {
	return len(a.shape)
}

// Size returns the total number of elements.
func (a *Array) Size() int {
	return a.shape.NumElements()
}

// SharesBuffer reports whether a and other are views of the same buffer.
func (a *Array) SharesBuffer(other *Array) bool {
	return a.buf == other.buf
}

// Operand returns the addressing of a for Walk.
func (a *Array) Operand() Operand {
	return Operand{Strides: a.strides, Offset: a.offset}
}

// IsContiguous reports whether the elements are laid out densely in row-major order.
func (a *Array) IsContiguous() bool {
	expected := a.shape.ComputeStrides()
	for i, dim := range a.shape {
		if dim > 1 && a.strides[i] != expected[i] {
			return false
		}
	}
	return true
}

func (a *Array) position(idx []int) (int, error) {
	pos := a.offset
	for i, x := range idx {
		if x < 0 || x >= a.shape[i] {
			return 0, fmt.Errorf("index %d out of bounds for axis %d (size %d): %w", x, i, a.shape[i], ErrValue)
		}
		pos += x * a.strides[i]
	}
	return pos, nil
}

// Get returns the element at the given coordinates. Exactly NDim coordinates
// are required; use Index to select a sub-array.
func (a *Array) Get(idx ...int) (float64, error) {
	if len(idx) != len(a.shape) {
		return 0, fmt.Errorf("get: expected %d indices, got %d: %w", len(a.shape), len(idx), ErrValue)
	}
	pos, err := a.position(idx)
	if err != nil {
		return 0, fmt.Errorf("get: %w", err)
	}
	return a.buf.At(pos), nil
}

// Set stores v at the given coordinates.
func (a *Array) Set(v float64, idx ...int) error {
	if len(idx) != len(a.shape) {
		return fmt.Errorf("set: expected %d indices, got %d: %w", len(a.shape), len(idx), ErrValue)
	}
	pos, err := a.position(idx)
	if err != nil {
		return fmt.Errorf("set: %w", err)
	}
	a.buf.SetAt(pos, v)
	return nil
}

// Index fixes the leading axes to idx and returns the remaining sub-array as a
// view. With NDim coordinates the result is a 0-D view of one element.
func (a *Array) Index(idx ...int) (*Array, error) {
	if len(idx) > len(a.shape) {
		return nil, fmt.Errorf("index: expected at most %d indices, got %d: %w", len(a.shape), len(idx), ErrValue)
	}
	return a.Pick(idx...)
}

// Item returns the only element of a size-1 array.
func (a *Array) Item() (float64, error) {
	if a.Size() != 1 {
		return 0, fmt.Errorf("item: array of shape %v has %d elements: %w", a.shape, a.Size(), ErrValue)
	}
	return a.buf.At(a.offset), nil
}

// ForEach calls fn for every element in row-major order. idx is reused
// between calls.
func (a *Array) ForEach(fn func(idx []int, v float64)) {
	walkIndex(a.shape, a.Operand(), func(pos int, idx []int) {
		fn(idx, a.buf.At(pos))
	})
}

// Data returns the elements in row-major traversal order as a new slice.
func (a *Array) Data() []float64 {
	out := make([]float64, 0, a.Size())
	walkIndex(a.shape, a.Operand(), func(pos int, _ []int) {
		out = append(out, a.buf.At(pos))
	})
	return out
}

// ToNested returns the elements as nested []any slices of float64, or a
// float64 for a 0-D array.
func (a *Array) ToNested() any {
	data := a.Data()
	if len(a.shape) == 0 {
		return data[0]
	}
	nested, _ := nest(data, a.shape)
	return nested
}

func nest(data []float64, shape Shape) (any, []float64) {
	if len(shape) == 0 {
		return data[0], data[1:]
	}
	out := make([]any, shape[0])
	for i := range out {
		out[i], data = nest(data, shape[1:])
	}
	return out, data
}

// Assign copies src into a element by element. src must have a's shape or
// broadcast to it.
func (a *Array) Assign(src *Array) error {
	out, err := BroadcastShapes(a.shape, src.shape)
	if err != nil {
		return fmt.Errorf("assign: %w", err)
	}
	if !out.Equal(a.shape) {
		return fmt.Errorf("assign: cannot broadcast %v into %v: %w", src.shape, a.shape, ErrShape)
	}
	srcOp := Operand{Strides: BroadcastStrides(src.shape, src.strides, a.shape), Offset: src.offset}
	// Read everything first so overlapping views copy correctly.
	vals := make([]float64, 0, a.Size())
	Walk(a.shape, []Operand{srcOp}, func(pos []int) {
		vals = append(vals, src.buf.At(pos[0]))
	})
	i := 0
	Walk(a.shape, []Operand{a.Operand()}, func(pos []int) {
		a.buf.SetAt(pos[0], vals[i])
		i++
	})
	return nil
}

// Clone returns a deep copy with a fresh contiguous row-major buffer.
func (a *Array) Clone() *Array {
	return a.AsType(a.DType())
}

// AsType returns a contiguous copy converted to dtype.
func (a *Array) AsType(dtype DataType) *Array {
	out := newArray(a.shape, dtype)
	i := 0
	Walk(a.shape, []Operand{a.Operand()}, func(pos []int) {
		out.buf.SetAt(i, a.buf.At(pos[0]))
		i++
	})
	return out
}

// Fill sets every element of the view to v.
func (a *Array) Fill(v float64) {
	Walk(a.shape, []Operand{a.Operand()}, func(pos []int) {
		a.buf.SetAt(pos[0], v)
	})
}
