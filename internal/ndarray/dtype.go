// Package ndarray provides the strided N-dimensional array core for numgo.
package ndarray

import (
	"fmt"
	"strings"
)

// DataType represents runtime type information for array buffers.
type DataType int

// Supported data types.
//
// Generic is the unconstrained numeric type (registry tag "array"): values
// are kept as float64 with no wraparound or rounding on store.
const (
	Int8 DataType = iota
	Int16
	Int32
	Uint8
	Uint16
	Uint32
	Float16
	Float32
	Float64
	Generic
)

// Size returns the byte size of one element of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Int8, Uint8:
		return 1
	case Int16, Uint16, Float16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Float64, Generic:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns the registry tag of the data type.
func (dt DataType) String() string {
	switch dt {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Float16:
		return "float16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Generic:
		return "array"
	default:
		return "unknown"
	}
}

// IsFloat reports whether values of the type are floating point.
func (dt DataType) IsFloat() bool {
	return dt == Float16 || dt == Float32 || dt == Float64 || dt == Generic
}

// IsInteger reports whether the type is a fixed-width integer.
func (dt DataType) IsInteger() bool {
	return dt >= Int8 && dt <= Uint32
}

// IsSigned reports whether the type can hold negative values.
func (dt DataType) IsSigned() bool {
	return dt != Uint8 && dt != Uint16 && dt != Uint32
}

// Float returns the float type that transcendental results of dt are stored in.
func (dt DataType) Float() DataType {
	if dt.IsInteger() {
		return Float64
	}
	return dt
}

// bits returns the width of the type in bits.
func (dt DataType) bits() int {
	return dt.Size() * 8
}

// ParseDataType maps a registry tag such as "int8" or "float32" to its DataType.
func ParseDataType(tag string) (DataType, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "int8":
		return Int8, nil
	case "int16":
		return Int16, nil
	case "int32":
		return Int32, nil
	case "uint8":
		return Uint8, nil
	case "uint16":
		return Uint16, nil
	case "uint32":
		return Uint32, nil
	case "float16":
		return Float16, nil
	case "float32":
		return Float32, nil
	case "float64":
		return Float64, nil
	case "array":
		return Generic, nil
	default:
		return 0, fmt.Errorf("unknown dtype %q: %w", tag, ErrValue)
	}
}

// Promote returns the result type of a binary operation on a and b.
//
// Rules:
//   - anything with Generic gives Generic
//   - integer with float gives the narrowest float that holds the integer
//     (8-bit with float16 stays float16, 16-bit needs float32, 32-bit needs float64)
//   - integers of equal signedness give the wider one
//   - signed with unsigned gives a signed type wider than the unsigned one,
//     or float64 when no such integer type exists
func Promote(a, b DataType) DataType {
	if a == b {
		return a
	}
	if a == Generic || b == Generic {
		return Generic
	}

	switch {
	case a.IsFloat() && b.IsFloat():
		return maxType(a, b)
	case a.IsFloat():
		return promoteIntFloat(b, a)
	case b.IsFloat():
		return promoteIntFloat(a, b)
	}

	if a.IsSigned() == b.IsSigned() {
		if a.bits() >= b.bits() {
			return a
		}
		return b
	}

	signed, unsigned := a, b
	if !a.IsSigned() {
		signed, unsigned = b, a
	}
	if signed.bits() > unsigned.bits() {
		return signed
	}
	switch unsigned {
	case Uint8:
		return Int16
	case Uint16:
		return Int32
	default:
		return Float64
	}
}

func promoteIntFloat(i, f DataType) DataType {
	var need DataType
	switch i.bits() {
	case 8:
		need = Float16
	case 16:
		need = Float32
	default:
		need = Float64
	}
	return maxType(need, f)
}

// maxType orders float types by width.
func maxType(a, b DataType) DataType {
	if a.bits() >= b.bits() {
		return a
	}
	return b
}
