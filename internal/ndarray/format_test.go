package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArray_String(t *testing.T) {
	m, err := New([][]int{{1, 2}, {3, 4}}, Int32)
	require.NoError(t, err)
	assert.Equal(t, "array([[1, 2],\n       [3, 4]], dtype=int32)", m.String())

	v, err := New([]float64{0.5, -1, 1e-7}, Float64)
	require.NoError(t, err)
	assert.Equal(t, "array([0.5, -1, 1e-07], dtype=float64)", v.String())

	assert.Equal(t, "array(3, dtype=array)", Scalar(3, Generic).String())

	e, err := Zeros(Shape{0}, Uint8)
	require.NoError(t, err)
	assert.Equal(t, "array([], dtype=uint8)", e.String())
}

func TestArray_String3D(t *testing.T) {
	a, err := ArangeN(8, Int8)
	require.NoError(t, err)
	a, err = a.Reshape(2, 2, 2)
	require.NoError(t, err)
	want := "array([[[0, 1],\n" +
		"        [2, 3]],\n" +
		"\n" +
		"       [[4, 5],\n" +
		"        [6, 7]]], dtype=int8)"
	assert.Equal(t, want, a.String())
}
