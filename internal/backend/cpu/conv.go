package cpu

import (
	"fmt"

	"github.com/pppp606/numgo/internal/ndarray"
)

// validShape checks the operands of a valid-mode convolution and returns the
// output shape: input_dim - kernel_dim + 1 per axis.
func validShape(name string, x, kernel *ndarray.Array) (ndarray.Shape, error) {
	xs, ks := x.Shape(), kernel.Shape()
	if len(xs) == 0 || len(xs) != len(ks) {
		return nil, fmt.Errorf("%s: input rank %d and kernel rank %d must match and be > 0: %w",
			name, len(xs), len(ks), ndarray.ErrValue)
	}
	out := make(ndarray.Shape, len(xs))
	for i := range xs {
		if ks[i] < 1 || ks[i] > xs[i] {
			return nil, fmt.Errorf("%s: kernel shape %v does not fit input shape %v: %w", name, ks, xs, ndarray.ErrValue)
		}
		out[i] = xs[i] - ks[i] + 1
	}
	return out, nil
}

// Convolve computes the valid-mode N-dimensional convolution of x with kernel
// directly: every output element is a sum over the full kernel footprint,
// O(N·K). The kernel is flipped on every axis (true convolution).
func (cpu *CPUBackend) Convolve(x, kernel *ndarray.Array) (*ndarray.Array, error) {
	outShape, err := validShape("convolve", x, kernel)
	if err != nil {
		return nil, err
	}

	flipped := kernel
	for axis := 0; axis < kernel.NDim(); axis++ {
		if flipped, err = flipped.Flip(axis); err != nil {
			return nil, fmt.Errorf("convolve: %w", err)
		}
	}

	result, err := ndarray.Zeros(outShape, ndarray.Promote(x.DType(), kernel.DType()))
	if err != nil {
		return nil, fmt.Errorf("convolve: %w", err)
	}

	xBuf, kBuf, rBuf := x.Buffer(), flipped.Buffer(), result.Buffer()
	window := ndarray.Operand{Strides: x.Strides()}
	kernelOp := flipped.Operand()

	// Output position p reads the window of x starting at p; x's strides
	// advance both the output index and the window.
	ndarray.Walk(outShape, []ndarray.Operand{result.Operand(), x.Operand()}, func(pos []int) {
		window.Offset = pos[1]
		var acc float64
		ndarray.Walk(kernel.Shape(), []ndarray.Operand{window, kernelOp}, func(kp []int) {
			acc += xBuf.At(kp[0]) * kBuf.At(kp[1])
		})
		rBuf.SetAt(pos[0], acc)
	})
	return result, nil
}

// FFTConvolve computes the same valid-mode convolution as Convolve through
// the frequency domain: the kernel is zero-padded to the input shape, both are
// transformed, multiplied, transformed back and the valid region is extracted.
//
// Results match Convolve up to floating-point round-off (about 1e-9 relative
// for float64 inputs of moderate size) and are stored in a float dtype.
func (cpu *CPUBackend) FFTConvolve(x, kernel *ndarray.Array) (*ndarray.Array, error) {
	outShape, err := validShape("fftconvolve", x, kernel)
	if err != nil {
		return nil, err
	}
	padded := x.Shape()

	xr := x.AsType(ndarray.Float64)
	xi, err := ndarray.Zeros(padded, ndarray.Float64)
	if err != nil {
		return nil, fmt.Errorf("fftconvolve: %w", err)
	}
	kr, err := ndarray.Zeros(padded, ndarray.Float64)
	if err != nil {
		return nil, fmt.Errorf("fftconvolve: %w", err)
	}
	ki, err := ndarray.Zeros(padded, ndarray.Float64)
	if err != nil {
		return nil, fmt.Errorf("fftconvolve: %w", err)
	}
	corner, err := kr.Hi(kernel.Shape()...)
	if err != nil {
		return nil, fmt.Errorf("fftconvolve: %w", err)
	}
	if err := corner.Assign(kernel); err != nil {
		return nil, fmt.Errorf("fftconvolve: %w", err)
	}

	if err := fftND(1, xr, xi); err != nil {
		return nil, fmt.Errorf("fftconvolve: %w", err)
	}
	if err := fftND(1, kr, ki); err != nil {
		return nil, fmt.Errorf("fftconvolve: %w", err)
	}

	// (a+bi)(c+di) = (ac-bd) + (ad+bc)i, written back into xr/xi.
	a, b := xr.Buffer().Float64s(), xi.Buffer().Float64s()
	c, d := kr.Buffer().Float64s(), ki.Buffer().Float64s()
	for i := range a {
		a[i], b[i] = a[i]*c[i]-b[i]*d[i], a[i]*d[i]+b[i]*c[i]
	}

	if err := fftND(-1, xr, xi); err != nil {
		return nil, fmt.Errorf("fftconvolve: %w", err)
	}

	start := make([]int, len(padded))
	for i, k := range kernel.Shape() {
		start[i] = k - 1
	}
	valid, err := xr.Lo(start...)
	if err != nil {
		return nil, fmt.Errorf("fftconvolve: %w", err)
	}
	if valid, err = valid.Hi(outShape...); err != nil {
		return nil, fmt.Errorf("fftconvolve: %w", err)
	}
	return valid.AsType(ndarray.Promote(x.DType(), kernel.DType()).Float()), nil
}
