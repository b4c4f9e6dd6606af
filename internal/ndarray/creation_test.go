package ndarray

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerosOnesFull(t *testing.T) {
	z, err := Zeros(Shape{2, 2}, Int16)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, z.Data())
	assert.Equal(t, Int16, z.DType())

	o, err := Ones(Shape{3}, Float32)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1}, o.Data())

	f, err := Full(Shape{2}, 7, Uint8)
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 7}, f.Data())

	e, err := Empty(Shape{0, 3}, Float64)
	require.NoError(t, err)
	assert.Equal(t, 0, e.Size())

	_, err = Zeros(Shape{-1}, Float64)
	assert.ErrorIs(t, err, ErrValue)
}

func TestIdentity(t *testing.T) {
	id, err := Identity(3, Float64)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, id.Data())

	_, err = Identity(-1, Float64)
	assert.ErrorIs(t, err, ErrValue)
}

func TestArange(t *testing.T) {
	tests := []struct {
		name string
		cfg  ArangeConfig
		want []float64
	}{
		{"stop only", ArangeConfig{Stop: 4, DType: Int32}, []float64{0, 1, 2, 3}},
		{"start stop step", ArangeConfig{Start: 1, Stop: 10, Step: 2, DType: Int32}, []float64{1, 3, 5, 7, 9}},
		{"negative step", ArangeConfig{Start: 3, Stop: 0, Step: -1, DType: Float64}, []float64{3, 2, 1}},
		{"fractional", ArangeConfig{Start: 0, Stop: 1, Step: 0.25, DType: Float64}, []float64{0, 0.25, 0.5, 0.75}},
		{"empty", ArangeConfig{Start: 5, Stop: 1, DType: Float64}, []float64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Arange(tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.cfg.DType, a.DType())
			assert.Equal(t, tt.want, a.Data())
		})
	}

	_, err := Arange(ArangeConfig{Stop: math.NaN()})
	assert.ErrorIs(t, err, ErrValue)
}

func TestArange_InvalidRange(t *testing.T) {
	tests := []struct {
		name string
		cfg  ArangeConfig
	}{
		{"infinite stop", ArangeConfig{Stop: math.Inf(1)}},
		{"infinite start", ArangeConfig{Start: math.Inf(-1), Stop: 1}},
		{"infinite step", ArangeConfig{Stop: 1, Step: math.Inf(1)}},
		{"span overflows", ArangeConfig{Start: -math.MaxFloat64, Stop: math.MaxFloat64}},
		{"count exceeds int", ArangeConfig{Stop: 1e19}},
		{"count exceeds int with tiny step", ArangeConfig{Stop: 1, Step: 1e-300}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Arange(tt.cfg)
			assert.ErrorIs(t, err, ErrValue)
			assert.Nil(t, a)
		})
	}
}

func TestRandom(t *testing.T) {
	a, err := Random(Shape{100}, RandomConfig{Seed: 42, DType: Float64})
	require.NoError(t, err)
	for _, v := range a.Data() {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}

	b, err := Random(Shape{100}, RandomConfig{Seed: 42, DType: Float64})
	require.NoError(t, err)
	assert.Equal(t, a.Data(), b.Data(), "equal seeds must give equal draws")
}
