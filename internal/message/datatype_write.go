package message

import "strings"

// String returns the type line value for dt. The kind tag precedes the
// complex word, matching Octave's "float complex matrix".
func (dt Datatype) String() string {
	var words []string
	if dt.Class != ClassString {
		if tag := dt.Kind.Tag(); tag != "" {
			words = append(words, tag)
		}
		if dt.Complex {
			words = append(words, WordComplex)
		}
	}
	switch dt.Class {
	case ClassScalar:
		words = append(words, WordScalar)
	case ClassString:
		words = append(words, WordString)
	default:
		words = append(words, WordMatrix)
	}
	return strings.Join(words, " ")
}
