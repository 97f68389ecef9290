package octtext

import (
	"github.com/robert-malhotra/go-octtext/internal/dtype"
	"github.com/robert-malhotra/go-octtext/internal/filter"
	"github.com/robert-malhotra/go-octtext/internal/message"
	"github.com/robert-malhotra/go-octtext/internal/object"
)

// Shape is the layout class of a stored object.
type Shape = message.Shape

// Object shapes. Invalid is reported once a reader has no further object.
const (
	Invalid  = message.Invalid
	Scalar   = message.Scalar
	String   = message.String
	Vector   = message.Vector
	CoVector = message.CoVector
	Matrix   = message.Matrix
)

// Kind is the element type of a stored object.
type Kind = dtype.Kind

// Element kinds.
const (
	Double = dtype.Double
	Single = dtype.Single
	Int8   = dtype.Int8
	Int16  = dtype.Int16
	Int32  = dtype.Int32
	Int64  = dtype.Int64
	Uint8  = dtype.Uint8
	Uint16 = dtype.Uint16
	Uint32 = dtype.Uint32
	Uint64 = dtype.Uint64
	Char   = dtype.Char
)

// Descriptor describes the shape, element kind and dimensions of an object.
type Descriptor = message.Descriptor

// Real is the set of Go element types that can be read and written.
type Real = dtype.Real

// Complex is a complex element with real and imaginary parts of type T.
type Complex[T Real] = dtype.Complex[T]

// DimsForm selects how matrix dimensions are written.
type DimsForm = object.DimsForm

// Dimension forms.
const (
	DimsLegacy = object.DimsLegacy
	DimsNDims  = object.DimsNDims
)

// Compression is a whole-stream compression format.
type Compression = filter.Kind

// Compression formats.
const (
	NoCompression = filter.None
	Gzip          = filter.Gzip
	Zstd          = filter.Zstd
)

// InvalidName is returned for the title and name of an exhausted reader.
const InvalidName = message.InvalidName
