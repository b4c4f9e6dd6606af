package cpu

import (
	"fmt"
	"math"

	"github.com/pppp606/numgo/internal/ndarray"
)

// binaryOp applies a scalar function across two broadcastable arrays.
type binaryOp func(a, b *ndarray.Array) (*ndarray.Array, error)

// binary compiles fn into an element-wise operation with NumPy-style
// broadcasting. resultType picks the output dtype from the operand dtypes.
func binary(name string, fn func(a, b float64) float64, resultType func(a, b ndarray.DataType) ndarray.DataType) binaryOp {
	return func(a, b *ndarray.Array) (*ndarray.Array, error) {
		outShape, err := ndarray.BroadcastShapes(a.Shape(), b.Shape())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		result, err := ndarray.Zeros(outShape, resultType(a.DType(), b.DType()))
		if err != nil {
			return nil, fmt.Errorf("%s: failed to create result array: %w", name, err)
		}

		operands := []ndarray.Operand{
			result.Operand(),
			{Strides: ndarray.BroadcastStrides(a.Shape(), a.Strides(), outShape), Offset: a.Offset()},
			{Strides: ndarray.BroadcastStrides(b.Shape(), b.Strides(), outShape), Offset: b.Offset()},
		}
		dst, src1, src2 := result.Buffer(), a.Buffer(), b.Buffer()
		ndarray.Walk(outShape, operands, func(pos []int) {
			dst.SetAt(pos[0], fn(src1.At(pos[1]), src2.At(pos[2])))
		})
		return result, nil
	}
}

// unary applies fn to every element of x and stores the results in a new
// contiguous array of dtype. x is never modified.
func unary(x *ndarray.Array, dtype ndarray.DataType, fn func(v float64) float64) *ndarray.Array {
	result, err := ndarray.Zeros(x.Shape(), dtype)
	if err != nil {
		panic(fmt.Sprintf("unary: %v", err)) // x's shape is already valid
	}
	dst, src := result.Buffer(), x.Buffer()
	ndarray.Walk(x.Shape(), []ndarray.Operand{result.Operand(), x.Operand()}, func(pos []int) {
		dst.SetAt(pos[0], fn(src.At(pos[1])))
	})
	return result
}

// scalarType keeps x's dtype unless an integer array meets a fractional scalar.
func scalarType(dt ndarray.DataType, s float64) ndarray.DataType {
	if dt.IsInteger() && s != math.Trunc(s) {
		return dt.Float()
	}
	return dt
}

// Add performs element-wise addition with broadcasting.
func (cpu *CPUBackend) Add(a, b *ndarray.Array) (*ndarray.Array, error) {
	return cpu.add(a, b)
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *ndarray.Array) (*ndarray.Array, error) {
	return cpu.sub(a, b)
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *ndarray.Array) (*ndarray.Array, error) {
	return cpu.mul(a, b)
}

// Div performs element-wise true division with broadcasting.
// Integer operands produce a float64 result.
func (cpu *CPUBackend) Div(a, b *ndarray.Array) (*ndarray.Array, error) {
	return cpu.div(a, b)
}

// Mod computes the remainder of a/b with the sign of a (math.Mod).
func (cpu *CPUBackend) Mod(a, b *ndarray.Array) (*ndarray.Array, error) {
	return cpu.mod(a, b)
}

// Pow raises a to the power b element-wise.
func (cpu *CPUBackend) Pow(a, b *ndarray.Array) (*ndarray.Array, error) {
	return cpu.pow(a, b)
}

// EqualElements compares a and b element-wise with broadcasting and returns a
// uint8 mask holding 1 where the elements are equal.
func (cpu *CPUBackend) EqualElements(a, b *ndarray.Array) (*ndarray.Array, error) {
	return cpu.eq(a, b)
}

// AddScalar adds s to every element.
func (cpu *CPUBackend) AddScalar(x *ndarray.Array, s float64) *ndarray.Array {
	return unary(x, scalarType(x.DType(), s), func(v float64) float64 { return v + s })
}

// SubScalar subtracts s from every element.
func (cpu *CPUBackend) SubScalar(x *ndarray.Array, s float64) *ndarray.Array {
	return unary(x, scalarType(x.DType(), s), func(v float64) float64 { return v - s })
}

// MulScalar multiplies every element by s.
func (cpu *CPUBackend) MulScalar(x *ndarray.Array, s float64) *ndarray.Array {
	return unary(x, scalarType(x.DType(), s), func(v float64) float64 { return v * s })
}

// DivScalar divides every element by s. Integer arrays produce float64.
func (cpu *CPUBackend) DivScalar(x *ndarray.Array, s float64) *ndarray.Array {
	return unary(x, x.DType().Float(), func(v float64) float64 { return v / s })
}

// ModScalar computes math.Mod(v, s) for every element.
func (cpu *CPUBackend) ModScalar(x *ndarray.Array, s float64) *ndarray.Array {
	return unary(x, scalarType(x.DType(), s), func(v float64) float64 { return math.Mod(v, s) })
}

// PowScalar raises every element to the power s.
func (cpu *CPUBackend) PowScalar(x *ndarray.Array, s float64) *ndarray.Array {
	return unary(x, scalarType(x.DType(), s), func(v float64) float64 { return math.Pow(v, s) })
}
