package octtext

import (
	"fmt"

	"github.com/robert-malhotra/go-octtext/internal/dtype"
	"github.com/robert-malhotra/go-octtext/internal/object"
)

// NamedObject is one object decoded into the Go type matching its descriptor.
//
// Value holds, for an element type T chosen from the kind (float64, float32,
// int8 ... uint64):
//
//	Scalar            T or Complex[T]
//	Vector, CoVector  []T or []Complex[T]
//	Matrix            [][]T or [][]Complex[T]
//	String            string for one element, []string otherwise
type NamedObject struct {
	Name       string
	Descriptor Descriptor
	Value      any
}

var decoders = map[Kind]func(Descriptor, *object.Body) (any, error){
	Double: decodeNumeric[float64],
	Single: decodeNumeric[float32],
	Int8:   decodeNumeric[int8],
	Int16:  decodeNumeric[int16],
	Int32:  decodeNumeric[int32],
	Int64:  decodeNumeric[int64],
	Uint8:  decodeNumeric[uint8],
	Uint16: decodeNumeric[uint16],
	Uint32: decodeNumeric[uint32],
	Uint64: decodeNumeric[uint64],
	Char:   decodeStrings,
}

func decodeNumeric[T Real](d Descriptor, b *object.Body) (any, error) {
	c := dtype.NewCodec[T]()
	if d.Complex {
		return decodeShape(d, b, c.ParseComplex)
	}
	return decodeShape(d, b, c.Parse)
}

func decodeShape[E any](d Descriptor, b *object.Body, parse func(string) (E, error)) (any, error) {
	switch d.Shape {
	case Scalar:
		return box(object.DecodeScalar(b, parse))
	case Vector, CoVector:
		return box(object.DecodeFlat(b, d, parse))
	case Matrix:
		return box(object.DecodeGrid(b, d, parse))
	default:
		return nil, fmt.Errorf("%w: %s object", ErrUnsupported, d.Shape)
	}
}

func decodeStrings(_ Descriptor, b *object.Body) (any, error) {
	if len(b.Strings) == 1 {
		return b.Strings[0], nil
	}
	return append([]string(nil), b.Strings...), nil
}

func box[V any](v V, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ReadObject decodes the next object, whatever its shape and kind, and
// advances past it.
func (r *Reader) ReadObject() (NamedObject, bool) {
	if !r.Valid() {
		return NamedObject{}, false
	}
	h := r.cur.Header()
	dec, ok := decoders[h.Descriptor.Kind]
	if !ok {
		r.last = fmt.Errorf("%w: kind %s", ErrUnsupported, h.Descriptor.Kind)
		return NamedObject{}, false
	}

	exact := match{shapes: []Shape{h.Descriptor.Shape}, complex: h.Descriptor.Complex}
	v, ok := consume(r, exact, dec)
	if !ok {
		return NamedObject{}, false
	}
	return NamedObject{Name: h.Name, Descriptor: h.Descriptor, Value: v}, true
}
