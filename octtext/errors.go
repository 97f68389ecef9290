// Package octtext reads and writes Octave text data files.
package octtext

import (
	"errors"

	"github.com/robert-malhotra/go-octtext/internal/dtype"
	"github.com/robert-malhotra/go-octtext/internal/message"
	"github.com/robert-malhotra/go-octtext/internal/object"
)

// Common errors
var (
	ErrKindMismatch = errors.New("object does not match requested kind")
	ErrUnsupported  = errors.New("unsupported value type")
	ErrClosed       = errors.New("stream is closed")
	ErrEmptyName    = errors.New("invalid object name")
	ErrRagged       = errors.New("ragged matrix")
	ErrStopWalk     = errors.New("walk stopped")
)

// Errors reported by the format layers.
var (
	// ErrStructure reports a missing or malformed header line.
	ErrStructure = message.ErrStructure

	// ErrElement reports a data token that does not convert to the requested
	// element type.
	ErrElement = dtype.ErrElement

	// ErrEndOfStream is reported by Reader.Err after the last object.
	ErrEndOfStream = object.ErrEndOfStream

	// ErrTruncated reports a stream that ends inside an object body.
	ErrTruncated = object.ErrTruncated
)

// ParseError carries the line number of a header or element error.
type ParseError = object.ParseError
