package dtype

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// Format converts a real element to its token.
func (c Codec[T]) Format(v T) string {
	switch {
	case c.kind.IsFloat():
		return formatFloat(float64(v), c.bits)
	case c.kind.IsUnsigned():
		return strconv.FormatUint(uint64(v), 10)
	default:
		return strconv.FormatInt(int64(v), 10)
	}
}

// FormatComplex converts a complex element to its "(<re>,<im>)" token.
func (c Codec[T]) FormatComplex(v Complex[T]) string {
	return "(" + c.Format(v.Re) + "," + c.Format(v.Im) + ")"
}

// FormatValue converts a single reflected element to its token. It accepts
// every Go type KindOf maps to a numeric kind, including Complex
// instantiations and native complex64/complex128.
func FormatValue(v reflect.Value) (string, error) {
	if IsComplexType(v.Type()) {
		re, err := FormatValue(v.Field(0))
		if err != nil {
			return "", err
		}
		im, err := FormatValue(v.Field(1))
		if err != nil {
			return "", err
		}
		return "(" + re + "," + im + ")", nil
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32:
		return formatFloat(v.Float(), 32), nil
	case reflect.Float64:
		return formatFloat(v.Float(), 64), nil
	case reflect.Complex64:
		c := v.Complex()
		return "(" + formatFloat(real(c), 32) + "," + formatFloat(imag(c), 32) + ")", nil
	case reflect.Complex128:
		c := v.Complex()
		return "(" + formatFloat(real(c), 64) + "," + formatFloat(imag(c), 64) + ")", nil
	default:
		return "", fmt.Errorf("unsupported element type: %v", v.Type())
	}
}

// formatFloat writes the shortest token that parses back to the same value.
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}
