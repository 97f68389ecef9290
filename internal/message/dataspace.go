package message

import (
	"fmt"

	"github.com/robert-malhotra/go-octtext/internal/dtype"
)

// Shape is the layout class of a stored object.
type Shape uint8

const (
	Invalid  Shape = iota // No object: end of stream or malformed header
	Scalar                // Single element
	String                // One or more character strings
	Vector                // 1×N
	CoVector              // N×1
	Matrix                // R×C with R, C > 1
)

var shapeNames = [...]string{
	Invalid:  "invalid",
	Scalar:   "scalar",
	String:   "string",
	Vector:   "vector",
	CoVector: "covector",
	Matrix:   "matrix",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("shape(%d)", uint8(s))
}

// Descriptor describes the layout of one stored object.
type Descriptor struct {
	Shape   Shape
	Kind    dtype.Kind
	Complex bool

	// Dims is empty for Scalar, holds the element count for Vector and
	// CoVector, the character length of the first string for String, and
	// rows and columns for Matrix.
	Dims []int

	// Elements is the number of strings of a String object.
	Elements int
}

// Refine returns the shape of a rows×cols matrix: a single row is a Vector,
// otherwise a single column is a CoVector. A 1×1 matrix is a Vector.
func Refine(rows, cols int) Shape {
	switch {
	case rows == 1:
		return Vector
	case cols == 1:
		return CoVector
	default:
		return Matrix
	}
}

// Rows returns the number of data rows of a numeric object.
func (d Descriptor) Rows() int {
	switch d.Shape {
	case Scalar, Vector:
		return 1
	case CoVector:
		return d.dim(0)
	case Matrix:
		return d.dim(0)
	case String:
		return d.Elements
	default:
		return 0
	}
}

// Cols returns the number of data columns of a numeric object, or the
// character length of a String.
func (d Descriptor) Cols() int {
	switch d.Shape {
	case Scalar, CoVector:
		return 1
	case Vector, String:
		return d.dim(0)
	case Matrix:
		return d.dim(1)
	default:
		return 0
	}
}

// NumElements returns the total number of numeric elements.
func (d Descriptor) NumElements() int {
	if d.Shape == String || d.Shape == Invalid {
		return 0
	}
	return d.Rows() * d.Cols()
}

func (d Descriptor) dim(i int) int {
	if i < len(d.Dims) {
		return d.Dims[i]
	}
	return 0
}

// Datatype returns the type line value that describes d.
func (d Descriptor) Datatype() Datatype {
	dt := Datatype{Kind: d.Kind, Complex: d.Complex}
	switch d.Shape {
	case Scalar:
		dt.Class = ClassScalar
	case String:
		dt.Class = ClassString
	default:
		dt.Class = ClassMatrix
	}
	return dt
}

// Validate checks the dimension invariants of d.
func (d Descriptor) Validate() error {
	switch d.Shape {
	case Scalar:
		if len(d.Dims) != 0 {
			return fmt.Errorf("%w: scalar with dimensions %v", ErrStructure, d.Dims)
		}
	case Vector, CoVector:
		if len(d.Dims) != 1 || d.Dims[0] <= 0 {
			return fmt.Errorf("%w: %s with dimensions %v", ErrStructure, d.Shape, d.Dims)
		}
	case String:
		if len(d.Dims) != 1 || d.Dims[0] < 0 || d.Elements < 0 || (d.Elements == 0 && d.Dims[0] != 0) {
			return fmt.Errorf("%w: string with %d elements of length %v", ErrStructure, d.Elements, d.Dims)
		}
		if d.Complex || d.Kind != dtype.Char {
			return fmt.Errorf("%w: string of kind %s", ErrStructure, d.Kind)
		}
	case Matrix:
		if len(d.Dims) != 2 || d.Dims[0] <= 0 || d.Dims[1] <= 0 {
			return fmt.Errorf("%w: matrix with dimensions %v", ErrStructure, d.Dims)
		}
	default:
		return fmt.Errorf("%w: invalid shape", ErrStructure)
	}
	return nil
}
