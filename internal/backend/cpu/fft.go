package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/pppp606/numgo/internal/ndarray"
)

// FFT computes the forward N-dimensional discrete Fourier transform.
//
// The last axis of x must have length 2 and holds the real and imaginary
// parts; the transform runs over all other axes. x is not modified.
func (cpu *CPUBackend) FFT(x *ndarray.Array) (*ndarray.Array, error) {
	return transform("fft", x, 1)
}

// IFFT computes the inverse transform of FFT, scaled by 1/N.
func (cpu *CPUBackend) IFFT(x *ndarray.Array) (*ndarray.Array, error) {
	return transform("ifft", x, -1)
}

func transform(name string, x *ndarray.Array, sign int) (*ndarray.Array, error) {
	shape := x.Shape()
	if len(shape) == 0 || shape[len(shape)-1] != 2 {
		return nil, fmt.Errorf("%s: last dimension must be 2 (real, imag), got shape %v: %w", name, shape, ndarray.ErrValue)
	}

	out := x.AsType(x.DType().Float())
	re, im, err := complexParts(out)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err := fftND(sign, re, im); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

// complexParts picks the real and imaginary channels of an array whose last
// axis has length 2. Both are views of x.
func complexParts(x *ndarray.Array) (re, im *ndarray.Array, err error) {
	idx := make([]int, x.NDim())
	for i := range idx {
		idx[i] = ndarray.All
	}
	last := len(idx) - 1

	idx[last] = 0
	if re, err = x.Pick(idx...); err != nil {
		return nil, nil, err
	}
	idx[last] = 1
	if im, err = x.Pick(idx...); err != nil {
		return nil, nil, err
	}
	return re, im, nil
}

// fftND transforms the complex array (re, im) in place along every axis.
// sign > 0 runs the forward transform; otherwise the inverse, scaled by 1/n
// per axis. re and im may be strided views.
func fftND(sign int, re, im *ndarray.Array) error {
	shape := re.Shape()
	if !shape.Equal(im.Shape()) {
		return fmt.Errorf("real shape %v != imaginary shape %v: %w", shape, im.Shape(), ndarray.ErrValue)
	}
	if re.Size() == 0 {
		return nil
	}

	plans := make(map[int]*fourier.CmplxFFT)
	reBuf, imBuf := re.Buffer(), im.Buffer()

	for axis, n := range shape {
		if n == 1 {
			continue
		}
		plan, ok := plans[n]
		if !ok {
			plan = fourier.NewCmplxFFT(n)
			plans[n] = plan
		}

		// Visit the start of every line along axis.
		lines := shape.Clone()
		lines[axis] = 1
		reStride, imStride := re.Strides()[axis], im.Strides()[axis]
		line := make([]complex128, n)
		scale := 1 / float64(n)

		ndarray.Walk(lines, []ndarray.Operand{re.Operand(), im.Operand()}, func(pos []int) {
			for j := range line {
				line[j] = complex(reBuf.At(pos[0]+j*reStride), imBuf.At(pos[1]+j*imStride))
			}
			if sign > 0 {
				plan.Coefficients(line, line)
			} else {
				plan.Sequence(line, line)
			}
			for j, c := range line {
				r, i := real(c), imag(c)
				if sign <= 0 {
					r, i = r*scale, i*scale
				}
				reBuf.SetAt(pos[0]+j*reStride, r)
				imBuf.SetAt(pos[1]+j*imStride, i)
			}
		})
	}
	return nil
}
