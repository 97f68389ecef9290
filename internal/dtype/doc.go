// Package dtype provides element kinds and the value codec for Octave text data.
//
// This package bridges Octave's element type tags and Go's type system,
// providing functionality to:
//
//   - Name the element kind of a stored object ([Kind], [KindFromTag])
//   - Determine the kind stored for a Go type ([KindOf], [KindFor])
//   - Convert one element to and from its text token ([Codec], [FormatValue])
//
// # Type Mapping Strategy
//
// Element kinds are mapped to Go types as follows:
//
//	Kind    | Type tag | Go Type
//	--------|----------|------------------------------
//	Double  | (none)   | float64
//	Single  | float    | float32
//	Int8-64 | int8-64  | int8, int16, int32, int64 (int)
//	Uint8-64| uint8-64 | uint8, uint16, uint32, uint64 (uint)
//	Char    | (string) | string
//
// Complex data of any real kind uses [Complex]. The writer also accepts Go's
// native complex64 and complex128.
//
// # Tokens
//
// Floating values are written with the shortest decimal representation that
// parses back to the same bits, so text round trips are exact. NaN and the
// infinities use Octave's spelling. Integer kinds, including the 8-bit ones,
// are always written as decimal numbers and never as characters.
//
// Complex values are written as "(<re>,<im>)" without spaces:
//
//	c := dtype.NewCodec[float64]()
//	c.FormatComplex(dtype.Complex[float64]{Re: 1.5, Im: -2.25}) // "(1.5,-2.25)"
package dtype
