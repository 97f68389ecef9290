package object

import (
	"errors"
	"fmt"
	"io"

	"github.com/robert-malhotra/go-octtext/internal/lineio"
	"github.com/robert-malhotra/go-octtext/internal/message"
)

// Body holds the raw text of one object body. Numeric bodies keep their data
// lines untouched; string bodies keep each element verbatim.
type Body struct {
	// Line is the line number of the first body line.
	Line int

	// Lines holds one entry per data row of a numeric object.
	Lines []string

	// Strings holds the elements of a string object.
	Strings []string
}

// ReadBody reads the body described by d without converting any element.
func ReadBody(r *lineio.Reader, d message.Descriptor) (*Body, error) {
	b := &Body{Line: r.Line() + 1}
	if d.Shape == message.String {
		return b, readStrings(r, d, b)
	}

	n := d.Rows()
	b.Lines = make([]string, 0, capHint(n))
	for range n {
		line, err := r.NextSignificant()
		if err != nil {
			return nil, bodyErr(r, err)
		}
		b.Lines = append(b.Lines, line)
	}
	return b, nil
}

/*
String Body Layout:

	<element 1, exactly L1 bytes>
	# length: <L2>
	<element 2, exactly L2 bytes>
	...

The first length is part of the header. Elements are raw bytes and may hold
blanks or line breaks.
*/

func readStrings(r *lineio.Reader, d message.Descriptor, b *Body) error {
	b.Strings = make([]string, 0, capHint(d.Elements))
	length := d.Cols()
	for i := range d.Elements {
		if i > 0 {
			line, err := r.NextSignificant()
			if err != nil {
				return bodyErr(r, err)
			}
			if length, err = message.ExpectCount(line, message.TagLength); err != nil {
				return &ParseError{Line: r.Line(), Err: err}
			}
		}
		s, err := r.ReadN(length)
		if err != nil {
			return bodyErr(r, err)
		}
		// rest of the element line
		if _, err := r.ReadLine(); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		b.Strings = append(b.Strings, s)
	}
	return nil
}

// maxPrealloc bounds capacity taken from header counts. Larger bodies grow
// as their lines arrive.
const maxPrealloc = 1024

func capHint(n int) int {
	return min(max(n, 0), maxPrealloc)
}

func bodyErr(r *lineio.Reader, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, lineio.ErrShortRead) {
		return &ParseError{Line: r.Line(), Err: fmt.Errorf("%w: %w", ErrTruncated, message.ErrStructure)}
	}
	return err
}
