package ndarray

import (
	"strconv"
	"strings"
)

// String formats the array like NumPy's repr:
//
//	array([[1, 2],
//	       [3, 4]], dtype=int32)
func (a *Array) String() string {
	var sb strings.Builder
	sb.WriteString("array(")
	data := a.Data()
	if len(a.shape) == 0 {
		sb.WriteString(FormatValue(data[0]))
	} else {
		writeNested(&sb, data, a.shape, len("array(")+1)
	}
	sb.WriteString(", dtype=")
	sb.WriteString(a.DType().String())
	sb.WriteString(")")
	return sb.String()
}

func writeNested(sb *strings.Builder, data []float64, shape Shape, indent int) []float64 {
	sb.WriteByte('[')
	if len(shape) == 1 {
		for i := 0; i < shape[0]; i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(FormatValue(data[i]))
		}
		sb.WriteByte(']')
		return data[shape[0]:]
	}
	for i := 0; i < shape[0]; i++ {
		if i > 0 {
			sb.WriteString(",")
			sb.WriteString(strings.Repeat("\n", len(shape)-1))
			sb.WriteString(strings.Repeat(" ", indent))
		}
		data = writeNested(sb, data, shape[1:], indent+1)
	}
	sb.WriteByte(']')
	return data
}

// FormatValue formats one element with the shortest exact representation.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
