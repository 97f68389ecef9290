package object

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/robert-malhotra/go-octtext/internal/lineio"
	"github.com/robert-malhotra/go-octtext/internal/message"
)

// Errors
var (
	ErrEndOfStream = errors.New("end of stream")
	ErrTruncated   = errors.New("truncated object")
)

// ParseError records the input line at which parsing failed.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Header is a parsed object header.
type Header struct {
	// Name is the variable identifier.
	Name string

	// Descriptor describes the body that follows the header.
	Descriptor message.Descriptor

	// Line is the line number of the name line.
	Line int
}

// ReadTitle reads the title record that opens every stream and returns its
// text without the marker and surrounding blanks.
func ReadTitle(r *lineio.Reader) (string, error) {
	line, err := r.NextSignificant()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: missing title", message.ErrStructure)
		}
		return "", err
	}
	s := strings.TrimLeft(line, " \t")
	if s[0] != message.Marker {
		return "", &ParseError{Line: r.Line(), Err: fmt.Errorf("%w: title %q", message.ErrStructure, line)}
	}
	return strings.TrimSpace(s[1:]), nil
}

// Read parses the next object header. Blank lines before the header are
// skipped. io.EOF is returned when the stream ends before a header starts;
// an end of stream inside a header is a structural error.
func Read(r *lineio.Reader) (Header, error) {
	line, err := r.NextSignificant()
	if err != nil {
		return Header{}, err
	}
	h := Header{Line: r.Line()}

	name, err := message.ExpectTag(line, message.TagName)
	if err != nil {
		return Header{}, &ParseError{Line: r.Line(), Err: err}
	}
	if name == "" || strings.ContainsAny(name, " \t") {
		return Header{}, &ParseError{Line: r.Line(), Err: fmt.Errorf("%w: bad name %q", message.ErrStructure, name)}
	}
	h.Name = name

	line, err = nextHeaderLine(r)
	if err != nil {
		return Header{}, err
	}
	value, err := message.ExpectTag(line, message.TagType)
	if err != nil {
		return Header{}, &ParseError{Line: r.Line(), Err: err}
	}
	dt, err := message.ParseType(value)
	if err != nil {
		return Header{}, &ParseError{Line: r.Line(), Err: err}
	}

	switch dt.Class {
	case message.ClassScalar:
		h.Descriptor = message.NewScalar(dt.Kind, dt.Complex)
	case message.ClassString:
		h.Descriptor, err = readStringDims(r)
	default:
		var rows, cols int
		rows, cols, err = readDims(r)
		if err == nil {
			h.Descriptor = message.NewMatrix(dt.Kind, dt.Complex, rows, cols)
		}
	}
	if err != nil {
		return Header{}, err
	}

	if err := h.Descriptor.Validate(); err != nil {
		return Header{}, &ParseError{Line: r.Line(), Err: err}
	}
	return h, nil
}

// readDims dispatches on the first dimension line of a matrix header.
func readDims(r *lineio.Reader) (rows, cols int, err error) {
	line, err := nextHeaderLine(r)
	if err != nil {
		return 0, 0, err
	}
	tag, value, err := message.ParseTagLine(line)
	if err != nil {
		return 0, 0, &ParseError{Line: r.Line(), Err: err}
	}

	switch tag {
	case message.TagRows:
		return readLegacyDims(r, value)
	case message.TagNdims:
		return readNDims(r, value)
	default:
		return 0, 0, &ParseError{Line: r.Line(), Err: fmt.Errorf("%w: expected dimensions, got %q", message.ErrStructure, tag)}
	}
}

// readStringDims reads the element count and the length of the first element.
// A string object without elements has no length line.
func readStringDims(r *lineio.Reader) (message.Descriptor, error) {
	line, err := nextHeaderLine(r)
	if err != nil {
		return message.Descriptor{}, err
	}
	n, err := message.ExpectCount(line, message.TagElements)
	if err != nil {
		return message.Descriptor{}, &ParseError{Line: r.Line(), Err: err}
	}
	if n == 0 {
		return message.NewString(0, 0), nil
	}

	line, err = nextHeaderLine(r)
	if err != nil {
		return message.Descriptor{}, err
	}
	length, err := message.ExpectCount(line, message.TagLength)
	if err != nil {
		return message.Descriptor{}, &ParseError{Line: r.Line(), Err: err}
	}
	return message.NewString(n, length), nil
}

// nextHeaderLine reads the next significant line inside a header, where an
// end of stream is a structural error.
func nextHeaderLine(r *lineio.Reader) (string, error) {
	line, err := r.NextSignificant()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", &ParseError{Line: r.Line(), Err: fmt.Errorf("%w: header ends early", message.ErrStructure)}
		}
		return "", err
	}
	return line, nil
}
