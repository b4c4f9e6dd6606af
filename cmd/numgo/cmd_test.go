package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pppp606/numgo/ndarray"
)

// writeJSON stores body in a temp file and returns its path.
func writeJSON(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// run executes the CLI with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewCLI()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "numgo "+version+"\n", out)
}

func TestInfo(t *testing.T) {
	path := writeJSON(t, "a.json", "[[1, 2, 3], [4, 5, 6]]")

	out, err := run(t, "info", path, "--dtype", "int8")
	require.NoError(t, err)
	assert.Contains(t, out, "shape: [2 3]")
	assert.Contains(t, out, "dtype: int8")
	assert.Contains(t, out, "size:  6")
}

func TestInfo_Errors(t *testing.T) {
	_, err := run(t, "info", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	ragged := writeJSON(t, "ragged.json", "[[1, 2], [3]]")
	_, err = run(t, "info", ragged)
	assert.ErrorIs(t, err, ndarray.ErrValue)

	ok := writeJSON(t, "ok.json", "[1]")
	_, err = run(t, "info", ok, "--dtype", "complex")
	assert.ErrorIs(t, err, ndarray.ErrValue)
}

func TestStats(t *testing.T) {
	path := writeJSON(t, "a.json", "[2, 4, 4, 4, 5, 5, 7, 9]")

	out, err := run(t, "stats", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	cells := strings.FieldsFunc(lines[2], func(r rune) bool { return r == ' ' || r == '|' })
	assert.Equal(t, []string{"40", "5", "2", "2", "9"}, cells)
}

func TestStats_Empty(t *testing.T) {
	path := writeJSON(t, "empty.json", "[]")
	_, err := run(t, "stats", path)
	assert.ErrorIs(t, err, ndarray.ErrEmpty)
}

func TestDot(t *testing.T) {
	a := writeJSON(t, "a.json", "[[1, 2], [3, 4]]")
	b := writeJSON(t, "b.json", "[[5, 6], [7, 8]]")

	out, err := run(t, "dot", a, b)
	require.NoError(t, err)
	for _, v := range []string{"19", "22", "43", "50"} {
		assert.Contains(t, out, v)
	}

	v := writeJSON(t, "v.json", "[1, 2, 3]")
	out, err = run(t, "dot", v, v)
	require.NoError(t, err)
	assert.Equal(t, "array(14, dtype=float64)\n", out)
}

func TestConvolve(t *testing.T) {
	x := writeJSON(t, "x.json", "[1, 2, 3, 4, 5]")
	k := writeJSON(t, "k.json", "[1, 1, 1]")

	out, err := run(t, "convolve", x, k)
	require.NoError(t, err)
	assert.Equal(t, "array([6, 9, 12], dtype=float64)\n", out)

	out, err = run(t, "convolve", x, k, "--fft")
	require.NoError(t, err)
	assert.Contains(t, out, "dtype=float64")
}

func TestFFT(t *testing.T) {
	x := writeJSON(t, "x.json", "[[1, 0], [1, 0]]")

	out, err := run(t, "fft", x)
	require.NoError(t, err)
	assert.Contains(t, out, "2")

	bad := writeJSON(t, "bad.json", "[1, 2, 3]")
	_, err = run(t, "fft", bad, "--inverse")
	assert.ErrorIs(t, err, ndarray.ErrValue)
}
