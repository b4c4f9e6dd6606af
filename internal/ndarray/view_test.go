package ndarray

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPick(t *testing.T) {
	a := arange23(t)

	col, err := a.Pick(All, 2)
	require.NoError(t, err)
	assert.Equal(t, Shape{2}, col.Shape())
	assert.Equal(t, []float64{2, 5}, col.Data())
	assert.True(t, col.SharesBuffer(a))

	// Writes through the view reach the original.
	require.NoError(t, col.Set(42, 1))
	v, _ := a.Get(1, 2)
	assert.Equal(t, 42.0, v)

	_, err = a.Pick(2)
	assert.ErrorIs(t, err, ErrValue)
	_, err = a.Pick(0, 0, 0)
	assert.ErrorIs(t, err, ErrValue)
}

func TestStep(t *testing.T) {
	a, err := ArangeN(7, Float64)
	require.NoError(t, err)

	s, err := a.Step(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 4, 6}, s.Data())

	s, err = a.Step(-3)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 3, 0}, s.Data())

	require.NoError(t, s.Set(-1, 1))
	v, _ := a.Get(3)
	assert.Equal(t, -1.0, v)

	_, err = a.Step(0)
	assert.ErrorIs(t, err, ErrValue)
}

func TestStep_Oversized(t *testing.T) {
	a, err := ArangeN(3, Float64)
	require.NoError(t, err)

	tests := []struct {
		step int
		want []float64
	}{
		{4, []float64{0}},
		{math.MaxInt, []float64{0}},
		{-4, []float64{2}},
		{math.MinInt, []float64{2}},
	}
	for _, tt := range tests {
		s, err := a.Step(tt.step)
		require.NoError(t, err)
		assert.Equal(t, Shape{1}, s.Shape(), "step %d", tt.step)
		assert.Equal(t, tt.want, s.Data(), "step %d", tt.step)
		assert.LessOrEqual(t, abs(s.Strides()[0]), 3, "step %d", tt.step)
	}

	empty, err := Zeros(Shape{0}, Float64)
	require.NoError(t, err)
	s, err := empty.Step(math.MinInt)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Size())
}

func TestSlice_OversizedStep(t *testing.T) {
	a, err := ArangeN(5, Float64)
	require.NoError(t, err)

	s, err := a.Slice(SliceSpec{Start: 1, Stop: End, Step: math.MaxInt})
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, s.Data())

	s, err = a.Slice(SliceSpec{Start: -1, Stop: End, Step: math.MinInt})
	require.NoError(t, err)
	assert.Equal(t, []float64{4}, s.Data())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestHiLo(t *testing.T) {
	a, err := ArangeN(16, Float64)
	require.NoError(t, err)
	m, err := a.Reshape(4, 4)
	require.NoError(t, err)

	hi, err := m.Hi(2, -1)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 4}, hi.Shape())

	lo, err := m.Lo(1, 2)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, lo.Shape())
	assert.Equal(t, []float64{6, 7, 10, 11, 14, 15}, lo.Data())

	block, err := lo.Hi(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{6}, block.Data())

	_, err = m.Hi(5)
	assert.ErrorIs(t, err, ErrValue)
	_, err = m.Lo(0, 5)
	assert.ErrorIs(t, err, ErrValue)

	empty, err := m.Lo(4)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Size())
}

func TestSlice(t *testing.T) {
	a, err := ArangeN(10, Float64)
	require.NoError(t, err)

	tests := []struct {
		name string
		spec SliceSpec
		want []float64
	}{
		{"prefix", SliceSpec{Start: 0, Stop: 3}, []float64{0, 1, 2}},
		{"negative start", SliceSpec{Start: -3, Stop: End}, []float64{7, 8, 9}},
		{"stepped", SliceSpec{Start: 1, Stop: 8, Step: 3}, []float64{1, 4, 7}},
		{"reversed", SliceSpec{Start: -1, Stop: End, Step: -1}, []float64{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}},
		{"reversed bounded", SliceSpec{Start: 8, Stop: 2, Step: -2}, []float64{8, 6, 4}},
		{"clamped", SliceSpec{Start: -100, Stop: 100}, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"empty", SliceSpec{Start: 5, Stop: 2}, []float64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := a.Slice(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Data())
		})
	}
}

func TestTranspose(t *testing.T) {
	a := arange23(t)

	tr, err := a.Transpose()
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, tr.Shape())
	assert.Equal(t, []int{1, 3}, tr.Strides())
	assert.Equal(t, []float64{0, 3, 1, 4, 2, 5}, tr.Data())
	assert.True(t, tr.SharesBuffer(a))

	require.NoError(t, tr.Set(-5, 2, 0))
	v, _ := a.Get(0, 2)
	assert.Equal(t, -5.0, v)

	_, err = a.Transpose(0, 0)
	assert.ErrorIs(t, err, ErrValue)
	_, err = a.Transpose(0)
	assert.ErrorIs(t, err, ErrValue)
	_, err = a.Transpose(0, 2)
	assert.ErrorIs(t, err, ErrValue)
}

func TestTranspose_3D(t *testing.T) {
	a, err := ArangeN(24, Float64)
	require.NoError(t, err)
	a, err = a.Reshape(2, 3, 4)
	require.NoError(t, err)

	tr, err := a.Transpose(1, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 4, 2}, tr.Shape())
	v, err := tr.Get(2, 1, 1)
	require.NoError(t, err)
	want, _ := a.Get(1, 2, 1)
	assert.Equal(t, want, v)
}

func TestReshape(t *testing.T) {
	a, err := ArangeN(6, Float64)
	require.NoError(t, err)

	m, err := a.Reshape(2, -1)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, m.Shape())
	assert.True(t, m.SharesBuffer(a))

	back, err := m.Reshape(6)
	require.NoError(t, err)
	assert.Equal(t, a.Data(), back.Data())

	_, err = a.Reshape(4, -1)
	assert.ErrorIs(t, err, ErrValue)
	_, err = a.Reshape(-1, -1)
	assert.ErrorIs(t, err, ErrValue)
	_, err = a.Reshape(7)
	assert.ErrorIs(t, err, ErrValue)
}

func TestReshape_RoundTripNonContiguous(t *testing.T) {
	a := arange23(t)
	tr, err := a.Transpose()
	require.NoError(t, err)
	flipped, err := tr.Flip(0)
	require.NoError(t, err)
	want := flipped.Data()

	m, err := flipped.Reshape(6)
	require.NoError(t, err)
	back, err := m.Reshape(3, 2)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, back.Shape())
	assert.Equal(t, want, back.Data())
	assert.Equal(t, []float64{2, 5, 1, 4, 0, 3}, back.Data())
}

func TestReshape_NonContiguousCopies(t *testing.T) {
	a := arange23(t)
	tr, err := a.Transpose()
	require.NoError(t, err)

	flat := tr.Flatten()
	assert.Equal(t, []float64{0, 3, 1, 4, 2, 5}, flat.Data())
	assert.False(t, flat.SharesBuffer(a))
}

func TestDiag(t *testing.T) {
	v, err := FromSlice([]float64{1, 2, 3}, Shape{3}, Int32)
	require.NoError(t, err)

	m, err := v.Diag()
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 3}, m.Shape())
	assert.Equal(t, Int32, m.DType())
	assert.Equal(t, []float64{1, 0, 0, 0, 2, 0, 0, 0, 3}, m.Data())

	a := arange23(t)
	d, err := a.Diag()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 4}, d.Data())
	assert.True(t, d.SharesBuffer(a))

	require.NoError(t, d.Set(10, 1))
	got, _ := a.Get(1, 1)
	assert.Equal(t, 10.0, got)

	_, err = Scalar(1, Float64).Diag()
	assert.ErrorIs(t, err, ErrValue)
}

func TestFlip(t *testing.T) {
	a := arange23(t)

	f, err := a.Flip(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1, 0, 5, 4, 3}, f.Data())

	f, err = a.Flip(-2)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4, 5, 0, 1, 2}, f.Data())
	assert.True(t, f.SharesBuffer(a))

	_, err = a.Flip(2)
	assert.ErrorIs(t, err, ErrValue)
}

func TestFlip_WritesReachOriginal(t *testing.T) {
	a := arange23(t)
	f, err := a.Flip(1)
	require.NoError(t, err)

	require.NoError(t, f.Set(99, 0, 0))
	v, err := a.Get(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 99.0, v)

	require.NoError(t, a.Set(-7, 1, 0))
	v, err = f.Get(1, 2)
	require.NoError(t, err)
	assert.Equal(t, -7.0, v)
}

func TestFlip_LargeNegativeAxis(t *testing.T) {
	a, err := ArangeN(3, Float64)
	require.NoError(t, err)

	// All is math.MinInt; as an axis it wraps like any negative axis.
	f, err := a.Flip(All)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1, 0}, f.Data())

	m := arange23(t)
	f, err = m.Flip(math.MinInt)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4, 5, 0, 1, 2}, f.Data())
}

func TestRot90(t *testing.T) {
	m, err := New([][]float64{{1, 2}, {3, 4}}, Float64)
	require.NoError(t, err)

	r, err := m.Rot90(1, [2]int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 1, 3}, r.Data())

	r, err = m.Rot90(2, [2]int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 3, 2, 1}, r.Data())

	r, err = m.Rot90(-1, [2]int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 4, 2}, r.Data())
	assert.True(t, r.SharesBuffer(m))
}

func TestRot90_FourTimesIsIdentity(t *testing.T) {
	a := arange23(t)
	r := a
	var err error
	for i := 0; i < 4; i++ {
		r, err = r.Rot90(1, [2]int{0, 1})
		require.NoError(t, err)
	}
	assert.Equal(t, a.Shape(), r.Shape())
	assert.Equal(t, a.Data(), r.Data())
}

func TestRot90_Errors(t *testing.T) {
	v, err := ArangeN(3, Float64)
	require.NoError(t, err)
	_, err = v.Rot90(1, [2]int{0, 1})
	assert.ErrorIs(t, err, ErrValue)

	a := arange23(t)
	_, err = a.Rot90(1, [2]int{1, 1})
	assert.ErrorIs(t, err, ErrValue)
	_, err = a.Rot90(1, [2]int{0, 2})
	assert.ErrorIs(t, err, ErrValue)
}
