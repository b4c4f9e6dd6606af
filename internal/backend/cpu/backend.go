// Package cpu implements the single-threaded CPU backend for numgo arrays.
package cpu

import (
	"math"

	"github.com/pppp606/numgo/internal/ndarray"
)

// CPUBackend implements array operations on CPU in pure Go.
//
// Binary operators are compiled once at construction from scalar functions;
// see binary and unary in elementwise.go.
type CPUBackend struct {
	add, sub, mul, div, mod, pow, eq binaryOp
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		add: binary("add", func(a, b float64) float64 { return a + b }, ndarray.Promote),
		sub: binary("subtract", func(a, b float64) float64 { return a - b }, ndarray.Promote),
		mul: binary("multiply", func(a, b float64) float64 { return a * b }, ndarray.Promote),
		div: binary("divide", func(a, b float64) float64 { return a / b }, divideType),
		mod: binary("mod", math.Mod, ndarray.Promote),
		pow: binary("pow", math.Pow, ndarray.Promote),
		eq: binary("equal", func(a, b float64) float64 {
			if a == b {
				return 1
			}
			return 0
		}, func(_, _ ndarray.DataType) ndarray.DataType { return ndarray.Uint8 }),
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// divideType is true division: integer quotients are stored as floats.
func divideType(a, b ndarray.DataType) ndarray.DataType {
	return ndarray.Promote(a, b).Float()
}

var _ ndarray.Backend = (*CPUBackend)(nil)
