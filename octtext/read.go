package octtext

import (
	"fmt"

	"github.com/robert-malhotra/go-octtext/internal/dtype"
	"github.com/robert-malhotra/go-octtext/internal/object"
)

// Read dispatch. Each read states which shapes and which complex flag it
// accepts. The element kind written in the header is not checked: the tokens
// are converted to the requested Go type, which fails with ErrElement when a
// value does not fit. On any failure the Reader stays on the same object.

type match struct {
	shapes  []Shape
	complex bool
}

var (
	scalarMatch        = match{shapes: []Shape{Scalar}}
	complexScalarMatch = match{shapes: []Shape{Scalar}, complex: true}
	vectorMatch        = match{shapes: []Shape{Vector, CoVector}}
	complexVectorMatch = match{shapes: []Shape{Vector, CoVector}, complex: true}
	matrixMatch        = match{shapes: []Shape{Matrix, Vector, CoVector}}
	complexMatrixMatch = match{shapes: []Shape{Matrix, Vector, CoVector}, complex: true}
	stringMatch        = match{shapes: []Shape{String}}
)

func (m match) accepts(d Descriptor) bool {
	if d.Complex != m.complex {
		return false
	}
	for _, s := range m.shapes {
		if d.Shape == s {
			return true
		}
	}
	return false
}

func (m match) String() string {
	s := fmt.Sprint(m.shapes)
	if m.complex {
		s = "complex " + s
	}
	return s
}

// consume decodes the next object when m accepts it and advances past it.
func consume[V any](r *Reader, m match, decode func(Descriptor, *object.Body) (V, error)) (V, bool) {
	var zero V
	if !r.Valid() {
		return zero, false
	}

	h := r.cur.Header()
	if !m.accepts(h.Descriptor) {
		r.last = fmt.Errorf("%w: %s is %s, want %s", ErrKindMismatch, h.Name, describe(h.Descriptor), m)
		r.log.Debug("kind mismatch", "name", h.Name, "err", r.last)
		return zero, false
	}

	b, err := r.cur.Body()
	if err != nil {
		r.log.Debug("reading body", "name", h.Name, "err", err)
		return zero, false
	}
	v, err := decode(h.Descriptor, b)
	if err != nil {
		r.last = fmt.Errorf("decoding %s: %w", h.Name, err)
		r.log.Debug("decoding failed", "name", h.Name, "err", err)
		return zero, false
	}

	r.last = nil
	r.cur.Advance()
	r.logPosition()
	return v, true
}

func describe(d Descriptor) string {
	s := d.Kind.String() + " " + d.Shape.String()
	if d.Complex {
		s = "complex " + s
	}
	return s
}

// ReadScalar reads the next object as a real scalar.
func ReadScalar[T Real](r *Reader) (T, bool) {
	parse := dtype.NewCodec[T]().Parse
	return consume(r, scalarMatch, func(_ Descriptor, b *object.Body) (T, error) {
		return object.DecodeScalar(b, parse)
	})
}

// ReadComplexScalar reads the next object as a complex scalar.
func ReadComplexScalar[T Real](r *Reader) (Complex[T], bool) {
	parse := dtype.NewCodec[T]().ParseComplex
	return consume(r, complexScalarMatch, func(_ Descriptor, b *object.Body) (Complex[T], error) {
		return object.DecodeScalar(b, parse)
	})
}

// ReadVector reads the next object as a real row or column vector.
func ReadVector[T Real](r *Reader) ([]T, bool) {
	parse := dtype.NewCodec[T]().Parse
	return consume(r, vectorMatch, func(d Descriptor, b *object.Body) ([]T, error) {
		return object.DecodeFlat(b, d, parse)
	})
}

// ReadComplexVector reads the next object as a complex row or column vector.
func ReadComplexVector[T Real](r *Reader) ([]Complex[T], bool) {
	parse := dtype.NewCodec[T]().ParseComplex
	return consume(r, complexVectorMatch, func(d Descriptor, b *object.Body) ([]Complex[T], error) {
		return object.DecodeFlat(b, d, parse)
	})
}

// ReadMatrix reads the next object as a real matrix in row-major order.
// Vectors are accepted as single row or single column matrices.
func ReadMatrix[T Real](r *Reader) ([][]T, bool) {
	parse := dtype.NewCodec[T]().Parse
	return consume(r, matrixMatch, func(d Descriptor, b *object.Body) ([][]T, error) {
		return object.DecodeGrid(b, d, parse)
	})
}

// ReadComplexMatrix reads the next object as a complex matrix.
func ReadComplexMatrix[T Real](r *Reader) ([][]Complex[T], bool) {
	parse := dtype.NewCodec[T]().ParseComplex
	return consume(r, complexMatrixMatch, func(d Descriptor, b *object.Body) ([][]Complex[T], error) {
		return object.DecodeGrid(b, d, parse)
	})
}

// ReadString reads the next object as a single string. String objects with
// several elements are rejected; use ReadStrings.
func (r *Reader) ReadString() (string, bool) {
	return consume(r, stringMatch, func(d Descriptor, b *object.Body) (string, error) {
		if len(b.Strings) != 1 {
			return "", fmt.Errorf("%w: %d strings", ErrKindMismatch, len(b.Strings))
		}
		return b.Strings[0], nil
	})
}

// ReadStrings reads the next object as a list of strings.
func (r *Reader) ReadStrings() ([]string, bool) {
	return consume(r, stringMatch, func(_ Descriptor, b *object.Body) ([]string, error) {
		return append([]string(nil), b.Strings...), nil
	})
}
