package dtype

import (
	"fmt"
	"reflect"
	"strconv"
)

// Kind identifies the element type of a stored object.
type Kind uint8

// Element kinds. Double is the zero value: a type line without a kind tag
// describes double precision data.
const (
	Double Kind = iota
	Single
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Char
)

var kindTags = [...]string{
	Double: "",
	Single: "float",
	Int8:   "int8",
	Int16:  "int16",
	Int32:  "int32",
	Int64:  "int64",
	Uint8:  "uint8",
	Uint16: "uint16",
	Uint32: "uint32",
	Uint64: "uint64",
	Char:   "",
}

var kindNames = [...]string{
	Double: "double",
	Single: "single",
	Int8:   "int8",
	Int16:  "int16",
	Int32:  "int32",
	Int64:  "int64",
	Uint8:  "uint8",
	Uint16: "uint16",
	Uint32: "uint32",
	Uint64: "uint64",
	Char:   "char",
}

// Tag returns the type-line tag for k, or "" when k is written untagged.
func (k Kind) Tag() string {
	if int(k) < len(kindTags) {
		return kindTags[k]
	}
	return ""
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool {
	return k == Double || k == Single
}

// IsSigned reports whether k is a signed integer kind.
func (k Kind) IsSigned() bool {
	return k >= Int8 && k <= Int64
}

// IsUnsigned reports whether k is an unsigned integer kind.
func (k Kind) IsUnsigned() bool {
	return k >= Uint8 && k <= Uint64
}

// Bits returns the storage width of k in bits.
func (k Kind) Bits() int {
	switch k {
	case Int8, Uint8, Char:
		return 8
	case Int16, Uint16:
		return 16
	case Single, Int32, Uint32:
		return 32
	default:
		return 64
	}
}

// KindFromTag returns the kind named by a type-line tag. "double" is accepted
// even though writers leave double untagged.
func KindFromTag(tag string) (Kind, bool) {
	if tag == "double" {
		return Double, true
	}
	if tag == "" {
		return 0, false
	}
	for k, t := range kindTags {
		if t == tag {
			return Kind(k), true
		}
	}
	return 0, false
}

// Real is the set of Go types that hold one real element.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Complex is a complex element over any real kind. Octave itself only stores
// complex floating data, but the text form is the same for every kind.
type Complex[T Real] struct {
	Re, Im T
}

func (Complex[T]) complexElement() {}

// Complex128 converts c to a native complex number.
func (c Complex[T]) Complex128() complex128 {
	return complex(float64(c.Re), float64(c.Im))
}

// FromComplex128 converts a native complex number to Complex[T].
func FromComplex128[T Real](c complex128) Complex[T] {
	return Complex[T]{Re: T(real(c)), Im: T(imag(c))}
}

type complexElement interface{ complexElement() }

var complexElementType = reflect.TypeFor[complexElement]()

// IsComplexType reports whether t is an instantiation of Complex.
func IsComplexType(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t.Implements(complexElementType)
}

// KindOf returns the element kind stored for values of Go type t, and whether
// t is complex. Strings map to Char.
func KindOf(t reflect.Type) (Kind, bool, error) {
	if IsComplexType(t) {
		k, _, err := KindOf(t.Field(0).Type)
		return k, true, err
	}

	switch t.Kind() {
	case reflect.Int8:
		return Int8, false, nil
	case reflect.Int16:
		return Int16, false, nil
	case reflect.Int32:
		return Int32, false, nil
	case reflect.Int64:
		return Int64, false, nil
	case reflect.Int:
		if strconv.IntSize == 32 {
			return Int32, false, nil
		}
		return Int64, false, nil
	case reflect.Uint8:
		return Uint8, false, nil
	case reflect.Uint16:
		return Uint16, false, nil
	case reflect.Uint32:
		return Uint32, false, nil
	case reflect.Uint64:
		return Uint64, false, nil
	case reflect.Uint:
		if strconv.IntSize == 32 {
			return Uint32, false, nil
		}
		return Uint64, false, nil
	case reflect.Float32:
		return Single, false, nil
	case reflect.Float64:
		return Double, false, nil
	case reflect.Complex64:
		return Single, true, nil
	case reflect.Complex128:
		return Double, true, nil
	case reflect.String:
		return Char, false, nil
	default:
		return 0, false, fmt.Errorf("unsupported element type: %v", t)
	}
}

// KindFor returns the element kind of T.
func KindFor[T Real]() Kind {
	k, _, _ := KindOf(reflect.TypeFor[T]())
	return k
}
