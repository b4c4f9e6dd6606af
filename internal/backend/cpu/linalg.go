package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/pppp606/numgo/internal/ndarray"
)

// Dot computes the dot product, dispatching on operand ranks:
//
//	(k)   · (k)   → scalar (0-D array)
//	(m,k) · (k)   → (m)
//	(k)   · (k,n) → (n)
//	(m,k) · (k,n) → (m,n)
//
// Other rank combinations and inner-dimension mismatches return ErrValue.
// Products are computed in float64 through gonum and stored in the promoted dtype.
func (cpu *CPUBackend) Dot(a, b *ndarray.Array) (*ndarray.Array, error) {
	as, bs := a.Shape(), b.Shape()
	dtype := ndarray.Promote(a.DType(), b.DType())

	switch {
	case len(as) == 1 && len(bs) == 1:
		if as[0] != bs[0] {
			return nil, fmt.Errorf("dot: vector lengths %d and %d differ: %w", as[0], bs[0], ndarray.ErrValue)
		}
		return ndarray.Scalar(floats.Dot(a.Data(), b.Data()), dtype), nil

	case len(as) == 2 && len(bs) == 1:
		m, k := as[0], as[1]
		if k != bs[0] {
			return nil, fmt.Errorf("dot: shape mismatch %v · %v: %w", as, bs, ndarray.ErrValue)
		}
		if m == 0 || k == 0 {
			return ndarray.Zeros(ndarray.Shape{m}, dtype)
		}
		var r mat.VecDense
		r.MulVec(mat.NewDense(m, k, a.Data()), mat.NewVecDense(k, b.Data()))
		return ndarray.FromSlice(r.RawVector().Data, ndarray.Shape{m}, dtype)

	case len(as) == 1 && len(bs) == 2:
		k, n := bs[0], bs[1]
		if as[0] != k {
			return nil, fmt.Errorf("dot: shape mismatch %v · %v: %w", as, bs, ndarray.ErrValue)
		}
		if k == 0 || n == 0 {
			return ndarray.Zeros(ndarray.Shape{n}, dtype)
		}
		var r mat.VecDense
		r.MulVec(mat.NewDense(k, n, b.Data()).T(), mat.NewVecDense(k, a.Data()))
		return ndarray.FromSlice(r.RawVector().Data, ndarray.Shape{n}, dtype)

	case len(as) == 2 && len(bs) == 2:
		m, k, n := as[0], as[1], bs[1]
		if k != bs[0] {
			return nil, fmt.Errorf("dot: shape mismatch [%d,%d] · [%d,%d]: %w", m, k, bs[0], n, ndarray.ErrValue)
		}
		if m == 0 || k == 0 || n == 0 {
			return ndarray.Zeros(ndarray.Shape{m, n}, dtype)
		}
		var c mat.Dense
		c.Mul(mat.NewDense(m, k, a.Data()), mat.NewDense(k, n, b.Data()))
		return ndarray.FromSlice(c.RawMatrix().Data, ndarray.Shape{m, n}, dtype)

	default:
		return nil, fmt.Errorf("dot: unsupported ranks %d and %d: %w", len(as), len(bs), ndarray.ErrValue)
	}
}

// Concatenate joins arrays along the last axis.
//
// Only the last axis (axis = ndim-1 or -1) and ranks 1 to 3 are supported;
// every other axis must agree in size. The result dtype is the promotion of
// all input dtypes.
func (cpu *CPUBackend) Concatenate(arrays []*ndarray.Array, axis int) (*ndarray.Array, error) {
	if len(arrays) == 0 {
		return nil, fmt.Errorf("concatenate: no arrays: %w", ndarray.ErrValue)
	}
	first := arrays[0].Shape()
	ndim := len(first)
	if ndim < 1 || ndim > 3 {
		return nil, fmt.Errorf("concatenate: unsupported rank %d (1 to 3): %w", ndim, ndarray.ErrValue)
	}
	ax, err := ndarray.NormalizeAxis(axis, ndim)
	if err != nil {
		return nil, fmt.Errorf("concatenate: %w", err)
	}
	if ax != ndim-1 {
		return nil, fmt.Errorf("concatenate: only the last axis is supported, got %d: %w", axis, ndarray.ErrValue)
	}

	outShape := first.Clone()
	outShape[ax] = 0
	dtype := arrays[0].DType()
	for i, arr := range arrays {
		s := arr.Shape()
		if len(s) != ndim {
			return nil, fmt.Errorf("concatenate: array %d has rank %d, want %d: %w", i, len(s), ndim, ndarray.ErrValue)
		}
		for d := 0; d < ax; d++ {
			if s[d] != first[d] {
				return nil, fmt.Errorf("concatenate: array %d has shape %v, incompatible with %v: %w", i, s, first, ndarray.ErrValue)
			}
		}
		outShape[ax] += s[ax]
		dtype = ndarray.Promote(dtype, arr.DType())
	}

	result, err := ndarray.Zeros(outShape, dtype)
	if err != nil {
		return nil, fmt.Errorf("concatenate: %w", err)
	}

	lo := make([]int, ndim)
	hi := make([]int, ndim)
	for d := range hi {
		hi[d] = -1
	}
	start := 0
	for _, arr := range arrays {
		lo[ax] = start
		hi[ax] = arr.Shape()[ax]
		dst, err := result.Lo(lo...)
		if err != nil {
			return nil, fmt.Errorf("concatenate: %w", err)
		}
		if dst, err = dst.Hi(hi...); err != nil {
			return nil, fmt.Errorf("concatenate: %w", err)
		}
		if err := dst.Assign(arr); err != nil {
			return nil, fmt.Errorf("concatenate: %w", err)
		}
		start += arr.Shape()[ax]
	}
	return result, nil
}

// Stack joins equal-shaped arrays along a new axis. The arrays are first
// stacked along a new leading axis, which is then moved to axis (negative
// values count from the end of the result's axes).
func (cpu *CPUBackend) Stack(arrays []*ndarray.Array, axis int) (*ndarray.Array, error) {
	if len(arrays) == 0 {
		return nil, fmt.Errorf("stack: no arrays: %w", ndarray.ErrValue)
	}
	shape := arrays[0].Shape()
	dtype := arrays[0].DType()
	for i, arr := range arrays {
		if !arr.Shape().Equal(shape) {
			return nil, fmt.Errorf("stack: array %d has shape %v, want %v: %w", i, arr.Shape(), shape, ndarray.ErrValue)
		}
		dtype = ndarray.Promote(dtype, arr.DType())
	}

	ndim := len(shape) + 1
	ax, err := ndarray.NormalizeAxis(axis, ndim)
	if err != nil {
		return nil, fmt.Errorf("stack: %w", err)
	}

	outShape := append(ndarray.Shape{len(arrays)}, shape...)
	result, err := ndarray.Zeros(outShape, dtype)
	if err != nil {
		return nil, fmt.Errorf("stack: %w", err)
	}
	for i, arr := range arrays {
		dst, err := result.Pick(i)
		if err != nil {
			return nil, fmt.Errorf("stack: %w", err)
		}
		if err := dst.Assign(arr); err != nil {
			return nil, fmt.Errorf("stack: %w", err)
		}
	}
	if ax == 0 {
		return result, nil
	}

	// Move the leading axis to position ax.
	perm := make([]int, 0, ndim)
	for d := 1; d <= ax; d++ {
		perm = append(perm, d)
	}
	perm = append(perm, 0)
	for d := ax + 1; d < ndim; d++ {
		perm = append(perm, d)
	}
	return result.Transpose(perm...)
}
