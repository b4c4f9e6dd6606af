package ndarray

import (
	"fmt"
	"math"
	"math/rand"
)

// Zeros creates an array filled with zeros.
func Zeros(shape Shape, dtype DataType) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("zeros: %w", err)
	}
	// Buffers are zero-initialized by make().
	return newArray(shape, dtype), nil
}

// Empty creates an array without meaningful contents. Buffers are always
// zeroed in Go, so this is Zeros under another name.
func Empty(shape Shape, dtype DataType) (*Array, error) {
	return Zeros(shape, dtype)
}

// Ones creates an array filled with ones.
func Ones(shape Shape, dtype DataType) (*Array, error) {
	return Full(shape, 1, dtype)
}

// Full creates an array filled with value.
func Full(shape Shape, value float64, dtype DataType) (*Array, error) {
	a, err := Zeros(shape, dtype)
	if err != nil {
		return nil, err
	}
	if value != 0 {
		for i := 0; i < a.buf.Len(); i++ {
			a.buf.SetAt(i, value)
		}
	}
	return a, nil
}

// Identity creates an n×n array with ones on the main diagonal.
func Identity(n int, dtype DataType) (*Array, error) {
	a, err := Zeros(Shape{n, n}, dtype)
	if err != nil {
		return nil, fmt.Errorf("identity: %w", err)
	}
	for i := 0; i < n; i++ {
		a.buf.SetAt(i*(n+1), 1)
	}
	return a, nil
}

// ArangeConfig configures Arange. The zero Step means 1.
type ArangeConfig struct {
	Start float64
	Stop  float64
	Step  float64
	DType DataType
}

// Arange creates a 1-D array with values Start, Start+Step, ... up to but not
// including Stop.
//
// Example:
//
//	a, _ := ndarray.Arange(ndarray.ArangeConfig{Start: 1, Stop: 10, Step: 2, DType: ndarray.Int32})
//	// [1, 3, 5, 7, 9]
func Arange(cfg ArangeConfig) (*Array, error) {
	step := cfg.Step
	if step == 0 {
		step = 1
	}
	if !isFinite(step) || !isFinite(cfg.Start) || !isFinite(cfg.Stop) {
		return nil, fmt.Errorf("arange: invalid range %v:%v:%v: %w", cfg.Start, cfg.Stop, step, ErrValue)
	}
	count := math.Max(0, math.Ceil((cfg.Stop-cfg.Start)/step))
	// float64(math.MaxInt) rounds up to 2^63, so >= rejects every overflowing count.
	if !isFinite(count) || count >= float64(math.MaxInt) {
		return nil, fmt.Errorf("arange: %v:%v:%v has too many elements: %w", cfg.Start, cfg.Stop, step, ErrValue)
	}
	n := int(count)
	a := newArray(Shape{n}, cfg.DType)
	for i := 0; i < n; i++ {
		a.buf.SetAt(i, cfg.Start+float64(i)*step)
	}
	return a, nil
}

// ArangeN creates [0, 1, ..., stop-1].
func ArangeN(stop int, dtype DataType) (*Array, error) {
	return Arange(ArangeConfig{Stop: float64(stop), DType: dtype})
}

// RandomConfig configures Random. A zero Seed draws from the global source.
type RandomConfig struct {
	Seed  int64
	DType DataType
}

// Random creates an array with values uniformly distributed in [0, 1).
// Note: uses math/rand, not crypto/rand.
func Random(shape Shape, cfg RandomConfig) (*Array, error) {
	a, err := Zeros(shape, cfg.DType)
	if err != nil {
		return nil, fmt.Errorf("random: %w", err)
	}
	next := rand.Float64 //nolint:gosec // G404: numeric sampling, not security sensitive
	if cfg.Seed != 0 {
		next = rand.New(rand.NewSource(cfg.Seed)).Float64 //nolint:gosec // G404: reproducible sampling
	}
	for i := 0; i < a.buf.Len(); i++ {
		a.buf.SetAt(i, next())
	}
	return a, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
