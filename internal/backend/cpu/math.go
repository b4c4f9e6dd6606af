package cpu

import (
	"math"

	"github.com/pppp606/numgo/internal/ndarray"
)

// Exp computes element-wise exponential: exp(x).
func (cpu *CPUBackend) Exp(x *ndarray.Array) *ndarray.Array {
	return unary(x, x.DType().Float(), math.Exp)
}

// Log computes element-wise natural logarithm. Non-positive inputs give
// NaN or -Inf.
func (cpu *CPUBackend) Log(x *ndarray.Array) *ndarray.Array {
	return unary(x, x.DType().Float(), math.Log)
}

// Sqrt computes element-wise square root.
func (cpu *CPUBackend) Sqrt(x *ndarray.Array) *ndarray.Array {
	return unary(x, x.DType().Float(), math.Sqrt)
}

// Sin computes element-wise sine.
func (cpu *CPUBackend) Sin(x *ndarray.Array) *ndarray.Array {
	return unary(x, x.DType().Float(), math.Sin)
}

// Cos computes element-wise cosine.
func (cpu *CPUBackend) Cos(x *ndarray.Array) *ndarray.Array {
	return unary(x, x.DType().Float(), math.Cos)
}

// Tan computes element-wise tangent.
func (cpu *CPUBackend) Tan(x *ndarray.Array) *ndarray.Array {
	return unary(x, x.DType().Float(), math.Tan)
}

// Arcsin computes element-wise inverse sine.
func (cpu *CPUBackend) Arcsin(x *ndarray.Array) *ndarray.Array {
	return unary(x, x.DType().Float(), math.Asin)
}

// Arccos computes element-wise inverse cosine.
func (cpu *CPUBackend) Arccos(x *ndarray.Array) *ndarray.Array {
	return unary(x, x.DType().Float(), math.Acos)
}

// Arctan computes element-wise inverse tangent.
func (cpu *CPUBackend) Arctan(x *ndarray.Array) *ndarray.Array {
	return unary(x, x.DType().Float(), math.Atan)
}

// Tanh computes element-wise hyperbolic tangent.
func (cpu *CPUBackend) Tanh(x *ndarray.Array) *ndarray.Array {
	return unary(x, x.DType().Float(), math.Tanh)
}

// Negative flips the sign of every element.
func (cpu *CPUBackend) Negative(x *ndarray.Array) *ndarray.Array {
	return unary(x, x.DType(), func(v float64) float64 { return -v })
}

// Abs computes element-wise absolute value.
func (cpu *CPUBackend) Abs(x *ndarray.Array) *ndarray.Array {
	return unary(x, x.DType(), math.Abs)
}

// Round rounds every element to the nearest integer, halves towards +Inf
// (-2.5 rounds to -2).
func (cpu *CPUBackend) Round(x *ndarray.Array) *ndarray.Array {
	return unary(x, x.DType(), roundHalfUp)
}

func roundHalfUp(v float64) float64 {
	r := math.Floor(v)
	if v-r >= 0.5 {
		r++
	}
	return r
}
