// Copyright 2025 The numgo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides the public API for numgo N-dimensional arrays.
//
// The package defines the core types and a flat function namespace:
//   - Array: strided view over a typed buffer
//   - Shape, DataType: shape and element type
//   - Backend: interface for compute implementations
//   - Zeros, Add, Sum, Dot, Convolve, FFT, ...: functions delegating to the
//     default CPU backend
//
// Example:
//
//	a, _ := ndarray.New([][]float64{{1, 2}, {3, 4}})
//	b, _ := ndarray.New([][]float64{{5, 6}, {7, 8}})
//	c, _ := ndarray.Dot(a, b) // [[19, 22], [43, 50]]
package ndarray

import (
	"github.com/pppp606/numgo/internal/envconfig"
	"github.com/pppp606/numgo/internal/ndarray"
)

// Array is a strided N-dimensional view over a typed buffer.
type Array = ndarray.Array

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} is a 3-D array of 2×3×4 elements.
type Shape = ndarray.Shape

// DataType represents the element type of an array.
type DataType = ndarray.DataType

// Buffer is the flat typed store behind arrays.
type Buffer = ndarray.Buffer

// SliceSpec selects start:stop:step along one axis (see Array.Slice).
type SliceSpec = ndarray.SliceSpec

// ArangeConfig configures Arange.
type ArangeConfig = ndarray.ArangeConfig

// RandomConfig configures Random.
type RandomConfig = ndarray.RandomConfig

// Data type constants.
const (
	Int8    DataType = ndarray.Int8
	Int16   DataType = ndarray.Int16
	Int32   DataType = ndarray.Int32
	Uint8   DataType = ndarray.Uint8
	Uint16  DataType = ndarray.Uint16
	Uint32  DataType = ndarray.Uint32
	Float16 DataType = ndarray.Float16
	Float32 DataType = ndarray.Float32
	Float64 DataType = ndarray.Float64
	Generic DataType = ndarray.Generic
)

// Index markers.
const (
	All = ndarray.All // Pick wildcard: keep the axis.
	End = ndarray.End // SliceSpec.Stop running to the end of the axis.
)

// Errors returned by array operations. Test with errors.Is.
var (
	ErrShape = ndarray.ErrShape
	ErrValue = ndarray.ErrValue
	ErrEmpty = ndarray.ErrEmpty
)

// ParseDataType maps a tag such as "int8" or "float32" to its DataType.
func ParseDataType(tag string) (DataType, error) {
	return ndarray.ParseDataType(tag)
}

// BroadcastShapes returns the shape two arrays broadcast to.
func BroadcastShapes(a, b Shape) (Shape, error) {
	return ndarray.BroadcastShapes(a, b)
}

// FormatValue formats one element the way Array.String does.
func FormatValue(v float64) string {
	return ndarray.FormatValue(v)
}

// Creation functions

// New creates an array from nested slices or a scalar, using the default
// dtype (NUMGO_DTYPE, float64 unless configured).
//
// Example:
//
//	a, err := ndarray.New([][]int{{1, 2, 3}, {4, 5, 6}})
func New(data any) (*Array, error) {
	return ndarray.New(data, envconfig.DefaultDType())
}

// NewOf creates an array from nested slices or a scalar with an explicit dtype.
func NewOf(data any, dtype DataType) (*Array, error) {
	return ndarray.New(data, dtype)
}

// FromSlice creates an array of the given shape from row-major data.
func FromSlice(data []float64, shape Shape, dtype DataType) (*Array, error) {
	return ndarray.FromSlice(data, shape, dtype)
}

// Scalar creates a 0-D array.
func Scalar(v float64, dtype DataType) *Array {
	return ndarray.Scalar(v, dtype)
}

// Zeros creates an array of zeros in the default dtype.
func Zeros(shape ...int) (*Array, error) {
	return ndarray.Zeros(shape, envconfig.DefaultDType())
}

// ZerosOf creates an array of zeros with an explicit dtype.
func ZerosOf(shape Shape, dtype DataType) (*Array, error) {
	return ndarray.Zeros(shape, dtype)
}

// Ones creates an array of ones in the default dtype.
func Ones(shape ...int) (*Array, error) {
	return ndarray.Ones(shape, envconfig.DefaultDType())
}

// OnesOf creates an array of ones with an explicit dtype.
func OnesOf(shape Shape, dtype DataType) (*Array, error) {
	return ndarray.Ones(shape, dtype)
}

// Empty creates an uninitialized array in the default dtype.
func Empty(shape ...int) (*Array, error) {
	return ndarray.Empty(shape, envconfig.DefaultDType())
}

// Full creates an array filled with value.
func Full(shape Shape, value float64, dtype DataType) (*Array, error) {
	return ndarray.Full(shape, value, dtype)
}

// Identity creates an n×n identity matrix in the default dtype.
func Identity(n int) (*Array, error) {
	return ndarray.Identity(n, envconfig.DefaultDType())
}

// Arange creates evenly spaced values in [cfg.Start, cfg.Stop).
func Arange(cfg ArangeConfig) (*Array, error) {
	return ndarray.Arange(cfg)
}

// ArangeN creates [0, 1, ..., stop-1] in the default dtype.
func ArangeN(stop int) (*Array, error) {
	return ndarray.ArangeN(stop, envconfig.DefaultDType())
}

// Random creates an array of uniform values in [0, 1) in the default dtype,
// seeded from NUMGO_SEED.
func Random(shape ...int) (*Array, error) {
	return ndarray.Random(shape, RandomConfig{Seed: envconfig.Seed(), DType: envconfig.DefaultDType()})
}

// RandomWith creates an array of uniform values with an explicit config.
func RandomWith(shape Shape, cfg RandomConfig) (*Array, error) {
	return ndarray.Random(shape, cfg)
}

// View operations

// Transpose permutes the axes of x; no axes reverses them.
func Transpose(x *Array, axes ...int) (*Array, error) {
	return x.Transpose(axes...)
}

// Reshape gives x a new shape with the same elements.
func Reshape(x *Array, shape ...int) (*Array, error) {
	return x.Reshape(shape...)
}

// Flatten returns x as a 1-D array.
func Flatten(x *Array) *Array {
	return x.Flatten()
}

// Diag extracts (2-D input) or constructs (1-D input) a diagonal.
func Diag(x *Array) (*Array, error) {
	return x.Diag()
}

// Flip reverses x along axis.
func Flip(x *Array, axis int) (*Array, error) {
	return x.Flip(axis)
}

// Rot90 rotates x by 90 degrees k times in the plane of axes.
func Rot90(x *Array, k int, axes [2]int) (*Array, error) {
	return x.Rot90(k, axes)
}

// Clone returns a contiguous copy of x.
func Clone(x *Array) *Array {
	return x.Clone()
}

// AsType returns a copy of x converted to dtype.
func AsType(x *Array, dtype DataType) *Array {
	return x.AsType(dtype)
}
