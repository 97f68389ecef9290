// Package object handles the records of Octave text streams: the title, the
// per-object headers and the object bodies.
//
// A stream starts with one title record and continues with objects. Each
// object is a header followed by its body and two blank lines:
//
//	# Created by Octave 8.4.0
//	# name: int_mat
//	# type: int32 matrix
//	# rows: 2
//	# columns: 3
//	 0 1 -2
//	 3 -4 5
//
//
// # Dimension Forms
//
// Matrix headers carry their dimensions in one of two forms:
//
//   - Legacy: "# rows: R" and "# columns: C" lines. See header_v1.go.
//
//   - N-dimensional: "# ndims: 2" followed by an unmarked " R C" line. See
//     header_v2.go. Only two dimensions are supported.
//
// [Read] accepts either form. [WriteHeader] writes the form selected by
// [DimsForm].
//
// # Cursor
//
// [Cursor] keeps the header of the next object parsed ahead of its body, so
// callers can inspect a name and [message.Descriptor] before deciding how to
// consume the object:
//
//	c := object.NewCursor(lineio.NewReader(f))
//	for c.Valid() {
//	    h := c.Header()
//	    b, err := c.Body()
//	    ...
//	    c.Advance()
//	}
//
// The body is loaded as raw text by [ReadBody] and converted with the generic
// [DecodeScalar], [DecodeFlat] and [DecodeGrid]. A conversion failure leaves
// the cursor on the same object.
//
// # Errors
//
//   - [ParseError]: wraps a header or element error with its line number
//   - [ErrEndOfStream]: the cursor ran past the last object
//   - [ErrTruncated]: the stream ended inside a body
package object
