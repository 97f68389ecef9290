package message

import (
	"fmt"
	"strings"

	"github.com/robert-malhotra/go-octtext/internal/dtype"
)

// Class is the object class named by the last word of a type line.
type Class uint8

const (
	ClassScalar Class = iota + 1
	ClassMatrix
	ClassString
)

// Datatype is the parsed value of a type line.
type Datatype struct {
	Class   Class
	Kind    dtype.Kind
	Complex bool
}

// ParseType parses the value of a type line, for example "matrix",
// "complex scalar", "float complex matrix" or "int16 matrix". The kind tag
// and the complex word may come in either order but only once each.
func ParseType(value string) (Datatype, error) {
	words := strings.Fields(value)
	if len(words) == 0 {
		return Datatype{}, fmt.Errorf("%w: empty type", ErrStructure)
	}

	var dt Datatype
	switch last := words[len(words)-1]; last {
	case WordScalar:
		dt.Class = ClassScalar
	case WordMatrix:
		dt.Class = ClassMatrix
	case WordString, WordSqString:
		dt.Class = ClassString
	default:
		return Datatype{}, fmt.Errorf("%w: unsupported type %q", ErrStructure, value)
	}

	tagged := false
	for _, w := range words[:len(words)-1] {
		if w == WordComplex {
			if dt.Complex {
				return Datatype{}, fmt.Errorf("%w: repeated %q in type %q", ErrStructure, w, value)
			}
			dt.Complex = true
			continue
		}
		k, ok := dtype.KindFromTag(w)
		if !ok || tagged {
			return Datatype{}, fmt.Errorf("%w: unsupported type %q", ErrStructure, value)
		}
		dt.Kind = k
		tagged = true
	}

	if dt.Class == ClassString {
		if dt.Complex || tagged {
			return Datatype{}, fmt.Errorf("%w: unsupported type %q", ErrStructure, value)
		}
		dt.Kind = dtype.Char
	}
	return dt, nil
}
