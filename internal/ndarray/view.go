package ndarray

import (
	"fmt"
	"math"
)

// All is the Pick wildcard: the axis is kept as-is.
const All = math.MinInt

// End as a SliceSpec.Stop runs the slice to the end of the axis in the
// direction of the step.
const End = math.MaxInt

// SliceSpec selects start:stop:step along one axis.
// Negative Start/Stop count from the end; Step 0 means 1.
type SliceSpec struct {
	Start, Stop, Step int
}

// view returns a new array over the same buffer.
func (a *Array) view(shape Shape, strides []int, offset int) *Array {
	return &Array{buf: a.buf, shape: shape, strides: strides, offset: offset}
}

// Pick fixes the given axes to an index and drops them from the shape.
// All keeps an axis; axes past len(idx) are kept too.
//
// Example:
//
//	row, _ := m.Pick(1)            // second row of a matrix
//	col, _ := m.Pick(ndarray.All, 0) // first column
func (a *Array) Pick(idx ...int) (*Array, error) {
	if len(idx) > len(a.shape) {
		return nil, fmt.Errorf("pick: %d indices for %d-D array: %w", len(idx), len(a.shape), ErrValue)
	}
	offset := a.offset
	shape := make(Shape, 0, len(a.shape))
	strides := make([]int, 0, len(a.shape))
	for i := range a.shape {
		if i < len(idx) && idx[i] != All {
			x := idx[i]
			if x < 0 || x >= a.shape[i] {
				return nil, fmt.Errorf("pick: index %d out of bounds for axis %d (size %d): %w", x, i, a.shape[i], ErrValue)
			}
			offset += x * a.strides[i]
			continue
		}
		shape = append(shape, a.shape[i])
		strides = append(strides, a.strides[i])
	}
	return a.view(shape, strides, offset), nil
}

// Step multiplies each axis's stride by steps[i]. A negative step traverses
// the axis backwards starting from its last element. The new length is
// ceil(shape[i] / |steps[i]|); a step longer than the axis keeps at most its
// first (or, negated, last) element.
func (a *Array) Step(steps ...int) (*Array, error) {
	if len(steps) > len(a.shape) {
		return nil, fmt.Errorf("step: %d steps for %d-D array: %w", len(steps), len(a.shape), ErrValue)
	}
	shape := a.shape.Clone()
	strides := append([]int(nil), a.strides...)
	offset := a.offset
	for i, s := range steps {
		if s == 0 {
			return nil, fmt.Errorf("step: zero step for axis %d: %w", i, ErrValue)
		}
		s = capStep(s, shape[i])
		switch {
		case s < 0:
			if shape[i] > 0 {
				offset += strides[i] * (shape[i] - 1)
			}
			shape[i] = ceilDiv(shape[i], -s)
		default:
			shape[i] = ceilDiv(shape[i], s)
		}
		strides[i] *= s
	}
	return a.view(shape, strides, offset), nil
}

// Hi truncates each axis to its first idx[i] elements. Negative entries
// (including All) leave the axis unchanged.
func (a *Array) Hi(idx ...int) (*Array, error) {
	if len(idx) > len(a.shape) {
		return nil, fmt.Errorf("hi: %d indices for %d-D array: %w", len(idx), len(a.shape), ErrValue)
	}
	shape := a.shape.Clone()
	for i, x := range idx {
		if x < 0 {
			continue
		}
		if x > shape[i] {
			return nil, fmt.Errorf("hi: %d exceeds axis %d (size %d): %w", x, i, shape[i], ErrValue)
		}
		shape[i] = x
	}
	return a.view(shape, append([]int(nil), a.strides...), a.offset), nil
}

// Lo drops the first idx[i] elements of each axis. Negative entries
// (including All) leave the axis unchanged.
func (a *Array) Lo(idx ...int) (*Array, error) {
	if len(idx) > len(a.shape) {
		return nil, fmt.Errorf("lo: %d indices for %d-D array: %w", len(idx), len(a.shape), ErrValue)
	}
	shape := a.shape.Clone()
	offset := a.offset
	for i, x := range idx {
		if x < 0 {
			continue
		}
		if x > shape[i] {
			return nil, fmt.Errorf("lo: %d exceeds axis %d (size %d): %w", x, i, shape[i], ErrValue)
		}
		if x < shape[i] {
			offset += a.strides[i] * x
		}
		shape[i] -= x
	}
	return a.view(shape, append([]int(nil), a.strides...), offset), nil
}

// Slice applies one SliceSpec per leading axis and returns the view.
// Start and Stop are clamped to the axis like Go's and Python's slicing.
//
// Example:
//
//	rev, _ := v.Slice(ndarray.SliceSpec{Start: -1, Stop: ndarray.End, Step: -1})
func (a *Array) Slice(specs ...SliceSpec) (*Array, error) {
	if len(specs) > len(a.shape) {
		return nil, fmt.Errorf("slice: %d specs for %d-D array: %w", len(specs), len(a.shape), ErrValue)
	}
	shape := a.shape.Clone()
	strides := append([]int(nil), a.strides...)
	offset := a.offset
	for i, sp := range specs {
		start, n, step := sliceIndices(sp, shape[i])
		if n > 0 {
			offset += start * strides[i]
		}
		shape[i] = n
		strides[i] *= step
	}
	return a.view(shape, strides, offset), nil
}

// sliceIndices resolves sp against an axis of length n and returns the first
// index, the number of selected elements and the step.
func sliceIndices(sp SliceSpec, n int) (start, length, step int) {
	step = sp.Step
	if step == 0 {
		step = 1
	}
	step = capStep(step, n)
	start, stop := sp.Start, sp.Stop

	if step > 0 {
		start = clampIndex(start, n, 0, n)
		if stop == End {
			stop = n
		}
		stop = clampIndex(stop, n, 0, n)
		if stop <= start {
			return start, 0, step
		}
		return start, ceilDiv(stop-start, step), step
	}

	start = clampIndex(start, n, -1, n-1)
	if stop == End {
		stop = -1
	} else {
		stop = clampIndex(stop, n, -1, n-1)
	}
	if start <= stop {
		return start, 0, step
	}
	return start, ceilDiv(start-stop, -step), step
}

// capStep limits |step| to max(n, 1). Any larger step selects at most one
// element of an axis of length n, and the cap keeps -step and stride*step
// from overflowing.
func capStep(step, n int) int {
	limit := max(n, 1)
	switch {
	case step > limit:
		return limit
	case step < -limit:
		return -limit
	}
	return step
}

func clampIndex(x, n, lo, hi int) int {
	if x < 0 {
		x += n
	}
	return min(max(x, lo), hi)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Transpose permutes the axes. With no arguments the axis order is reversed.
// The result always shares the buffer.
func (a *Array) Transpose(axes ...int) (*Array, error) {
	ndim := len(a.shape)
	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}
	if len(axes) != ndim {
		return nil, fmt.Errorf("transpose: axes length %d != ndim %d: %w", len(axes), ndim, ErrValue)
	}

	seen := make([]bool, ndim)
	shape := make(Shape, ndim)
	strides := make([]int, ndim)
	for i, ax := range axes {
		if ax < 0 || ax >= ndim {
			return nil, fmt.Errorf("transpose: invalid axis %d for %d-D array: %w", ax, ndim, ErrValue)
		}
		if seen[ax] {
			return nil, fmt.Errorf("transpose: duplicate axis %d: %w", ax, ErrValue)
		}
		seen[ax] = true
		shape[i] = a.shape[ax]
		strides[i] = a.strides[ax]
	}
	return a.view(shape, strides, a.offset), nil
}

// Reshape returns an array with the same elements in row-major order and a new
// shape. One dimension may be -1 and is inferred. Contiguous arrays are
// reshaped as views; others are copied first.
func (a *Array) Reshape(dims ...int) (*Array, error) {
	shape, err := a.resolveShape(dims)
	if err != nil {
		return nil, err
	}
	src := a
	if !a.IsContiguous() {
		src = a.Clone()
	}
	return src.view(shape, shape.ComputeStrides(), src.offset), nil
}

func (a *Array) resolveShape(dims []int) (Shape, error) {
	shape := Shape(dims).Clone()
	infer := -1
	known := 1
	for i, d := range shape {
		switch {
		case d == -1:
			if infer >= 0 {
				return nil, fmt.Errorf("reshape: more than one -1 in %v: %w", dims, ErrValue)
			}
			infer = i
		case d < 0:
			return nil, fmt.Errorf("reshape: invalid dimension %d: %w", d, ErrValue)
		default:
			known *= d
		}
	}
	size := a.Size()
	if infer >= 0 {
		if known == 0 || size%known != 0 {
			return nil, fmt.Errorf("reshape: cannot infer -1 for %d elements into %v: %w", size, dims, ErrValue)
		}
		shape[infer] = size / known
	}
	if shape.NumElements() != size {
		return nil, fmt.Errorf("reshape: incompatible shapes %v -> %v: %w", a.shape, shape, ErrValue)
	}
	return shape, nil
}

// Flatten returns the elements as a 1-D array in row-major order. The result
// shares the buffer only when a is already contiguous.
func (a *Array) Flatten() *Array {
	flat, err := a.Reshape(a.Size())
	if err != nil {
		panic(fmt.Sprintf("flatten: %v", err)) // size always matches
	}
	return flat
}

// Diag extracts or constructs a diagonal.
//
// For a 1-D array of length n it returns a new n×n array with the values on
// the main diagonal. For a 2-D array it returns a 1-D view of the main
// diagonal that shares the buffer.
func (a *Array) Diag() (*Array, error) {
	switch len(a.shape) {
	case 1:
		n := a.shape[0]
		out := newArray(Shape{n, n}, a.DType())
		i := 0
		Walk(a.shape, []Operand{a.Operand()}, func(pos []int) {
			out.buf.SetAt(i*(n+1), a.buf.At(pos[0]))
			i++
		})
		return out, nil
	case 2:
		n := min(a.shape[0], a.shape[1])
		return a.view(Shape{n}, []int{a.strides[0] + a.strides[1]}, a.offset), nil
	default:
		return nil, fmt.Errorf("diag: expected 1-D or 2-D array, got %d-D: %w", len(a.shape), ErrValue)
	}
}

// Flip reverses the traversal order of one axis. O(1), shares the buffer.
func (a *Array) Flip(axis int) (*Array, error) {
	ax, err := NormalizeAxis(axis, len(a.shape))
	if err != nil {
		return nil, fmt.Errorf("flip: %w", err)
	}
	strides := append([]int(nil), a.strides...)
	offset := a.offset
	if a.shape[ax] > 0 {
		offset += strides[ax] * (a.shape[ax] - 1)
	}
	strides[ax] = -strides[ax]
	return a.view(a.shape.Clone(), strides, offset), nil
}

// Rot90 rotates the plane given by axes by 90 degrees k times, from the first
// axis towards the second. The result is always a view.
func (a *Array) Rot90(k int, axes [2]int) (*Array, error) {
	ndim := len(a.shape)
	if ndim < 2 {
		return nil, fmt.Errorf("rot90: expected at least 2-D array, got %d-D: %w", ndim, ErrValue)
	}
	ax0, err := NormalizeAxis(axes[0], ndim)
	if err != nil {
		return nil, fmt.Errorf("rot90: %w", err)
	}
	ax1, err := NormalizeAxis(axes[1], ndim)
	if err != nil {
		return nil, fmt.Errorf("rot90: %w", err)
	}
	if ax0 == ax1 {
		return nil, fmt.Errorf("rot90: axes must differ, got %v: %w", axes, ErrValue)
	}

	perm := make([]int, ndim)
	for i := range perm {
		perm[i] = i
	}
	perm[ax0], perm[ax1] = perm[ax1], perm[ax0]

	switch ((k % 4) + 4) % 4 {
	case 0:
		return a.view(a.shape.Clone(), append([]int(nil), a.strides...), a.offset), nil
	case 1:
		f, err := a.Flip(ax1)
		if err != nil {
			return nil, err
		}
		return f.Transpose(perm...)
	case 2:
		f, err := a.Flip(ax0)
		if err != nil {
			return nil, err
		}
		return f.Flip(ax1)
	default:
		t, err := a.Transpose(perm...)
		if err != nil {
			return nil, err
		}
		return t.Flip(ax1)
	}
}
