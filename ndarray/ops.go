// Copyright 2025 The numgo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/pppp606/numgo/internal/backend/cpu"
	"github.com/pppp606/numgo/internal/ndarray"
)

// Backend defines the compute operations on arrays.
// See backend/cpu for the default implementation.
type Backend = ndarray.Backend

// std is the backend used by the package-level functions.
var std Backend = cpu.New()

// Element-wise arithmetic

// Add returns a + b with broadcasting.
func Add(a, b *Array) (*Array, error) { return std.Add(a, b) }

// Subtract returns a - b with broadcasting.
func Subtract(a, b *Array) (*Array, error) { return std.Sub(a, b) }

// Multiply returns a * b with broadcasting.
func Multiply(a, b *Array) (*Array, error) { return std.Mul(a, b) }

// Divide returns a / b with broadcasting.
func Divide(a, b *Array) (*Array, error) { return std.Div(a, b) }

// Mod returns the remainder of a / b with the sign of a.
func Mod(a, b *Array) (*Array, error) { return std.Mod(a, b) }

// Power returns a raised to b with broadcasting.
func Power(a, b *Array) (*Array, error) { return std.Pow(a, b) }

// EqualElements returns a uint8 mask of element-wise equality.
func EqualElements(a, b *Array) (*Array, error) { return std.EqualElements(a, b) }

// AddScalar returns x + s.
func AddScalar(x *Array, s float64) *Array { return std.AddScalar(x, s) }

// SubtractScalar returns x - s.
func SubtractScalar(x *Array, s float64) *Array { return std.SubScalar(x, s) }

// MultiplyScalar returns x * s.
func MultiplyScalar(x *Array, s float64) *Array { return std.MulScalar(x, s) }

// DivideScalar returns x / s.
func DivideScalar(x *Array, s float64) *Array { return std.DivScalar(x, s) }

// ModScalar returns x mod s.
func ModScalar(x *Array, s float64) *Array { return std.ModScalar(x, s) }

// PowerScalar returns x raised to s.
func PowerScalar(x *Array, s float64) *Array { return std.PowScalar(x, s) }

// Element-wise math

// Exp computes e**x element-wise.
func Exp(x *Array) *Array { return std.Exp(x) }

// Log computes the natural logarithm element-wise.
func Log(x *Array) *Array { return std.Log(x) }

// Sqrt computes the square root element-wise.
func Sqrt(x *Array) *Array { return std.Sqrt(x) }

// Sin computes the sine element-wise.
func Sin(x *Array) *Array { return std.Sin(x) }

// Cos computes the cosine element-wise.
func Cos(x *Array) *Array { return std.Cos(x) }

// Tan computes the tangent element-wise.
func Tan(x *Array) *Array { return std.Tan(x) }

// Arcsin computes the inverse sine element-wise.
func Arcsin(x *Array) *Array { return std.Arcsin(x) }

// Arccos computes the inverse cosine element-wise.
func Arccos(x *Array) *Array { return std.Arccos(x) }

// Arctan computes the inverse tangent element-wise.
func Arctan(x *Array) *Array { return std.Arctan(x) }

// Tanh computes the hyperbolic tangent element-wise.
func Tanh(x *Array) *Array { return std.Tanh(x) }

// Negative flips the sign of every element.
func Negative(x *Array) *Array { return std.Negative(x) }

// Abs computes the absolute value element-wise.
func Abs(x *Array) *Array { return std.Abs(x) }

// Round rounds to the nearest integer, halves towards +Inf.
func Round(x *Array) *Array { return std.Round(x) }

// Activations

// Sigmoid computes 1/(1+exp(-t·x)); t=1 is the standard logistic function.
func Sigmoid(x *Array, t float64) *Array { return std.Sigmoid(x, t) }

// LeakyRelu computes max(alpha·x, x); 1e-3 is the customary alpha.
func LeakyRelu(x *Array, alpha float64) *Array { return std.LeakyRelu(x, alpha) }

// Clip clamps x into [lo, hi]; [0, 1] is the customary range.
func Clip(x *Array, lo, hi float64) *Array { return std.Clip(x, lo, hi) }

// Softmax computes exp(x)/sum(exp(x)) over the whole array.
func Softmax(x *Array) *Array { return std.Softmax(x) }

// Reductions

// Sum adds all elements.
func Sum(x *Array) float64 { return std.Sum(x) }

// Mean averages all elements.
func Mean(x *Array) float64 { return std.Mean(x) }

// Std computes the standard deviation with ddof delta degrees of freedom.
func Std(x *Array, ddof int) float64 { return std.Std(x, ddof) }

// Min returns the smallest element; ErrEmpty for empty arrays.
func Min(x *Array) (float64, error) { return std.Min(x) }

// Max returns the largest element; ErrEmpty for empty arrays.
func Max(x *Array) (float64, error) { return std.Max(x) }

// Equal reports identical shapes and elements.
func Equal(a, b *Array) bool { return std.Equal(a, b) }

// Linear algebra

// Dot computes the vector/matrix product of a and b.
func Dot(a, b *Array) (*Array, error) { return std.Dot(a, b) }

// Concatenate joins arrays along the last axis (axis must be -1 or ndim-1).
func Concatenate(arrays []*Array, axis int) (*Array, error) {
	return std.Concatenate(arrays, axis)
}

// Stack joins equal-shaped arrays along a new axis.
func Stack(arrays []*Array, axis int) (*Array, error) { return std.Stack(arrays, axis) }

// Signal processing

// Convolve computes the valid-mode convolution of x with kernel directly.
func Convolve(x, kernel *Array) (*Array, error) { return std.Convolve(x, kernel) }

// FFTConvolve computes the valid-mode convolution through the FFT.
func FFTConvolve(x, kernel *Array) (*Array, error) { return std.FFTConvolve(x, kernel) }

// FFT transforms x, whose last axis holds (real, imag) pairs.
func FFT(x *Array) (*Array, error) { return std.FFT(x) }

// IFFT inverts FFT.
func IFFT(x *Array) (*Array, error) { return std.IFFT(x) }
