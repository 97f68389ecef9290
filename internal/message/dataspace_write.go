package message

import "github.com/robert-malhotra/go-octtext/internal/dtype"

// NewScalar returns the descriptor of a single element.
func NewScalar(kind dtype.Kind, complex bool) Descriptor {
	return Descriptor{Shape: Scalar, Kind: kind, Complex: complex}
}

// NewString returns the descriptor of n strings whose first element is
// length characters long.
func NewString(n, length int) Descriptor {
	return Descriptor{Shape: String, Kind: dtype.Char, Dims: []int{length}, Elements: n}
}

// NewMatrix returns the descriptor a reader derives from a rows×cols header.
func NewMatrix(kind dtype.Kind, complex bool, rows, cols int) Descriptor {
	return newArray(Refine(rows, cols), kind, complex, rows, cols)
}

// NewColumn returns the descriptor of an n×1 column. Unlike NewMatrix it keeps
// the CoVector shape when n is 1.
func NewColumn(kind dtype.Kind, complex bool, n int) Descriptor {
	return newArray(CoVector, kind, complex, n, 1)
}

func newArray(shape Shape, kind dtype.Kind, complex bool, rows, cols int) Descriptor {
	d := Descriptor{Shape: shape, Kind: kind, Complex: complex}
	switch shape {
	case Vector:
		d.Dims = []int{cols}
	case CoVector:
		d.Dims = []int{rows}
	default:
		d.Dims = []int{rows, cols}
	}
	return d
}
