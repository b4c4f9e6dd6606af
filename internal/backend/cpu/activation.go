package cpu

import (
	"math"

	"github.com/pppp606/numgo/internal/ndarray"
)

// sigmoidSaturation bounds |t·x| beyond which Sigmoid returns exactly 0 or 1.
const sigmoidSaturation = 30

// Sigmoid computes 1 / (1 + exp(-t·x)) element-wise.
func (cpu *CPUBackend) Sigmoid(x *ndarray.Array, t float64) *ndarray.Array {
	return unary(x, x.DType().Float(), func(v float64) float64 {
		z := t * v
		switch {
		case z > sigmoidSaturation:
			return 1
		case z < -sigmoidSaturation:
			return 0
		default:
			return 1 / (1 + math.Exp(-z))
		}
	})
}

// LeakyRelu computes max(alpha·x, x) element-wise.
func (cpu *CPUBackend) LeakyRelu(x *ndarray.Array, alpha float64) *ndarray.Array {
	return unary(x, x.DType().Float(), func(v float64) float64 {
		return math.Max(alpha*v, v)
	})
}

// Clip clamps every element into [lo, hi].
func (cpu *CPUBackend) Clip(x *ndarray.Array, lo, hi float64) *ndarray.Array {
	return unary(x, x.DType(), func(v float64) float64 {
		return math.Min(math.Max(v, lo), hi)
	})
}

// Softmax computes exp(x) / sum(exp(x)) over the whole array.
// The maximum is subtracted before exponentiation so large inputs do not overflow.
func (cpu *CPUBackend) Softmax(x *ndarray.Array) *ndarray.Array {
	peak, err := cpu.Max(x)
	if err != nil {
		return x.AsType(x.DType().Float()) // empty
	}
	if math.IsInf(peak, 0) {
		peak = 0
	}
	e := unary(x, ndarray.Float64, func(v float64) float64 { return math.Exp(v - peak) })
	total := cpu.Sum(e)
	return unary(e, x.DType().Float(), func(v float64) float64 { return v / total })
}
