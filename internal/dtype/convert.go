package dtype

// Token Conversion
//
// Every element of a data line is a whitespace separated token. Real tokens
// are plain decimal numbers; complex tokens are "(<re>,<im>)" with no spaces.
// Floating tokens may also be NaN, Inf, -Inf or Octave's NA marker.
//
// Parsing is driven by the Go type requested by the caller rather than the
// kind written in the header, so an int8 matrix may be read into []float64
// and a double matrix into []int32 as long as every token fits.

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// ErrElement is returned when a token cannot be converted to the requested type.
var ErrElement = errors.New("malformed element")

// Codec converts elements of T to and from text tokens.
type Codec[T Real] struct {
	kind Kind
	bits int
}

// NewCodec returns the codec for T.
func NewCodec[T Real]() Codec[T] {
	t := reflect.TypeFor[T]()
	k, _, _ := KindOf(t)
	return Codec[T]{kind: k, bits: int(t.Size()) * 8}
}

// Kind returns the element kind written for T.
func (c Codec[T]) Kind() Kind {
	return c.kind
}

// Parse converts a real token.
func (c Codec[T]) Parse(tok string) (T, error) {
	switch {
	case c.kind.IsFloat():
		f, err := parseFloat(tok, c.bits)
		if err != nil {
			return 0, fmt.Errorf("%w: %q as %s", ErrElement, tok, c.kind)
		}
		return T(f), nil
	case c.kind.IsUnsigned():
		u, err := strconv.ParseUint(tok, 10, c.bits)
		if err != nil {
			return 0, fmt.Errorf("%w: %q as %s", ErrElement, tok, c.kind)
		}
		return T(u), nil
	default:
		i, err := strconv.ParseInt(tok, 10, c.bits)
		if err != nil {
			return 0, fmt.Errorf("%w: %q as %s", ErrElement, tok, c.kind)
		}
		return T(i), nil
	}
}

var complexPunct = strings.NewReplacer("(", " ", ",", " ", ")", " ")

// ParseComplex converts a "(<re>,<im>)" token.
func (c Codec[T]) ParseComplex(tok string) (Complex[T], error) {
	parts := strings.Fields(complexPunct.Replace(tok))
	if len(parts) != 2 {
		return Complex[T]{}, fmt.Errorf("%w: %q is not a complex value", ErrElement, tok)
	}
	re, err := c.Parse(parts[0])
	if err != nil {
		return Complex[T]{}, err
	}
	im, err := c.Parse(parts[1])
	if err != nil {
		return Complex[T]{}, err
	}
	return Complex[T]{Re: re, Im: im}, nil
}

// parseFloat accepts Octave's NA in addition to the strconv spellings.
func parseFloat(tok string, bits int) (float64, error) {
	if tok == "NA" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(tok, bits)
}
