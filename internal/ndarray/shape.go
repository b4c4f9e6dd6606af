package ndarray

import "fmt"

// Shape represents the dimensions of an array.
type Shape []int

// NumElements returns the total number of elements.
// The empty shape describes a scalar and has one element.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that no dimension is negative.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be >= 0): %w", i, dim, ErrValue)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major (C order) strides for the shape.
// stride[i] is the product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	acc := 1
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= s[i]
	}
	return strides
}

// ComputeStridesColMajor calculates column-major (Fortran order) strides.
func (s Shape) ComputeStridesColMajor() []int {
	strides := make([]int, len(s))
	acc := 1
	for i := range s {
		strides[i] = acc
		acc *= s[i]
	}
	return strides
}

// BroadcastShapes aligns a and b from the trailing dimension and returns the
// broadcast shape.
//
// For each aligned pair (da, db):
//   - db if da is missing or 1
//   - da if db is missing or 1
//   - da if da == db
//   - otherwise the shapes are incompatible and ErrShape is returned
//
// Examples:
//
//	(3, 1) + (1, 4) → (3, 4)
//	(2, 3) + (3)    → (2, 3)
//	(2, 3) + (4)    → ErrShape
func BroadcastShapes(a, b Shape) (Shape, error) {
	n := max(len(a), len(b))
	result := make(Shape, n)

	for i := 0; i < n; i++ {
		ai := len(a) - 1 - i
		bi := len(b) - 1 - i

		switch {
		case ai < 0:
			result[n-1-i] = b[bi]
		case bi < 0:
			result[n-1-i] = a[ai]
		case a[ai] == 1:
			result[n-1-i] = b[bi]
		case b[bi] == 1, a[ai] == b[bi]:
			result[n-1-i] = a[ai]
		default:
			return nil, fmt.Errorf("%v vs %v (dimension %d: %d vs %d): %w",
				a, b, n-1-i, a[ai], b[bi], ErrShape)
		}
	}

	return result, nil
}

// BroadcastStrides returns strides that read an array of shape in with the
// given strides as if it had shape out. Padded and size-1 axes get stride 0.
// out must be a valid broadcast target of in.
func BroadcastStrides(in Shape, strides []int, out Shape) []int {
	result := make([]int, len(out))
	pad := len(out) - len(in)
	for i := pad; i < len(out); i++ {
		if in[i-pad] != 1 {
			result[i] = strides[i-pad]
		}
	}
	return result
}

// NormalizeAxis wraps a negative axis by adding ndim until it is non-negative.
// The wrap is computed in one step, so any int is handled in constant time.
func NormalizeAxis(axis, ndim int) (int, error) {
	if ndim > 0 && axis < 0 {
		axis = ((axis % ndim) + ndim) % ndim
	}
	if axis < 0 || axis >= ndim {
		return 0, fmt.Errorf("axis %d out of range for %d-D array: %w", axis, ndim, ErrValue)
	}
	return axis, nil
}
