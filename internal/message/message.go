package message

import "errors"

// Marker starts every metadata line.
const Marker = '#'

// Header tags, including their trailing colon as written in files.
const (
	TagName     = "name:"
	TagType     = "type:"
	TagRows     = "rows:"
	TagColumns  = "columns:"
	TagNdims    = "ndims:"
	TagElements = "elements:"
	TagLength   = "length:"
)

// Words that may appear in the value of a type line.
const (
	WordComplex  = "complex"
	WordScalar   = "scalar"
	WordMatrix   = "matrix"
	WordString   = "string"
	WordSqString = "sq_string"
)

// InvalidName is reported for the name and title of an invalid cursor.
const InvalidName = "INVALID"

// ErrStructure is returned when a required header line or token is missing or
// malformed.
var ErrStructure = errors.New("malformed header")
