package ndarray

// Operand describes how one array is addressed during a Walk.
type Operand struct {
	Strides []int
	Offset  int
}

// Walk visits every multi-index of shape in row-major order and calls fn with
// the buffer position of each operand at that index. The pos slice is reused
// between calls.
//
// Each operand's strides must have len(shape) entries; broadcast operands use
// stride 0 on expanded axes (see BroadcastStrides).
func Walk(shape Shape, operands []Operand, fn func(pos []int)) {
	total := shape.NumElements()
	if total == 0 {
		return
	}

	ndim := len(shape)
	pos := make([]int, len(operands))
	for k, op := range operands {
		pos[k] = op.Offset
	}
	idx := make([]int, ndim)

	for n := 0; n < total; n++ {
		fn(pos)

		// Odometer increment from the last axis.
		for d := ndim - 1; d >= 0; d-- {
			idx[d]++
			for k, op := range operands {
				pos[k] += op.Strides[d]
			}
			if idx[d] < shape[d] {
				break
			}
			for k, op := range operands {
				pos[k] -= op.Strides[d] * shape[d]
			}
			idx[d] = 0
		}
	}
}

// walkIndex is Walk for a single operand that also exposes the multi-index.
func walkIndex(shape Shape, op Operand, fn func(pos int, idx []int)) {
	total := shape.NumElements()
	if total == 0 {
		return
	}

	ndim := len(shape)
	pos := op.Offset
	idx := make([]int, ndim)

	for n := 0; n < total; n++ {
		fn(pos, idx)

		for d := ndim - 1; d >= 0; d-- {
			idx[d]++
			pos += op.Strides[d]
			if idx[d] < shape[d] {
				break
			}
			pos -= op.Strides[d] * shape[d]
			idx[d] = 0
		}
	}
}
