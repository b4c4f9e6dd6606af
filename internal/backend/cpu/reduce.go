package cpu

import (
	"fmt"
	"math"

	"github.com/pppp606/numgo/internal/ndarray"
)

// fold visits every element of x in row-major order.
func fold(x *ndarray.Array, fn func(v float64)) {
	buf := x.Buffer()
	ndarray.Walk(x.Shape(), []ndarray.Operand{x.Operand()}, func(pos []int) {
		fn(buf.At(pos[0]))
	})
}

// Sum adds all elements. The sum of an empty array is 0.
func (cpu *CPUBackend) Sum(x *ndarray.Array) float64 {
	var total float64
	fold(x, func(v float64) { total += v })
	return total
}

// Mean returns Sum / Size. The mean of an empty array is NaN.
func (cpu *CPUBackend) Mean(x *ndarray.Array) float64 {
	return cpu.Sum(x) / float64(x.Size())
}

// Std computes sqrt(Σ(x - mean)² / (count - ddof)).
//
// ddof=0 gives the population and ddof=1 the sample standard deviation.
// count <= ddof follows float division semantics (+Inf or NaN).
func (cpu *CPUBackend) Std(x *ndarray.Array, ddof int) float64 {
	mean := cpu.Mean(x)
	var ss float64
	fold(x, func(v float64) {
		d := v - mean
		ss += d * d
	})
	// A negative divisor would turn 0/n into -0; clamp so count <= ddof gives NaN or +Inf.
	return math.Sqrt(ss / float64(max(0, x.Size()-ddof)))
}

// Min returns the smallest element.
func (cpu *CPUBackend) Min(x *ndarray.Array) (float64, error) {
	if x.Size() == 0 {
		return 0, fmt.Errorf("min: %w", ndarray.ErrEmpty)
	}
	best := math.NaN()
	fold(x, func(v float64) {
		if v < best || math.IsNaN(best) {
			best = v
		}
	})
	return best, nil
}

// Max returns the largest element.
func (cpu *CPUBackend) Max(x *ndarray.Array) (float64, error) {
	if x.Size() == 0 {
		return 0, fmt.Errorf("max: %w", ndarray.ErrEmpty)
	}
	best := math.NaN()
	fold(x, func(v float64) {
		if v > best || math.IsNaN(best) {
			best = v
		}
	})
	return best, nil
}

// Equal reports whether a and b have identical shapes and pairwise equal
// elements. No broadcasting is applied.
func (cpu *CPUBackend) Equal(a, b *ndarray.Array) bool {
	if !a.Shape().Equal(b.Shape()) {
		return false
	}
	equal := true
	bufA, bufB := a.Buffer(), b.Buffer()
	ndarray.Walk(a.Shape(), []ndarray.Operand{a.Operand(), b.Operand()}, func(pos []int) {
		if bufA.At(pos[0]) != bufB.At(pos[1]) {
			equal = false
		}
	})
	return equal
}
