package ndarray

import "errors"

// Common errors. Operations wrap these with context, so test with errors.Is.
var (
	// ErrShape is returned when two shapes cannot be broadcast together.
	ErrShape = errors.New("ndarray: shapes not compatible for broadcasting")

	// ErrValue is returned for invalid arguments: bad rank, axis, step,
	// permutation, index, dtype tag or irregular nested input.
	ErrValue = errors.New("ndarray: invalid value")

	// ErrEmpty is returned by reductions without an identity on empty arrays.
	ErrEmpty = errors.New("ndarray: empty array")
)
