package object

import (
	"fmt"
	"strings"

	"github.com/robert-malhotra/go-octtext/internal/dtype"
	"github.com/robert-malhotra/go-octtext/internal/lineio"
	"github.com/robert-malhotra/go-octtext/internal/message"
)

// Terminator follows every body.
const Terminator = "\n\n"

// DecodeScalar converts the single token of a scalar body.
func DecodeScalar[E any](b *Body, parse func(string) (E, error)) (E, error) {
	var zero E
	row, err := b.row(0, 1)
	if err != nil {
		return zero, err
	}
	v, err := parse(row[0])
	if err != nil {
		return zero, &ParseError{Line: b.Line, Err: err}
	}
	return v, nil
}

// DecodeFlat converts a Vector or CoVector body to a slice in storage order.
func DecodeFlat[E any](b *Body, d message.Descriptor, parse func(string) (E, error)) ([]E, error) {
	rows, cols := d.Rows(), d.Cols()
	out := make([]E, 0, capHint(d.NumElements()))
	for i := range rows {
		row, err := b.row(i, cols)
		if err != nil {
			return nil, err
		}
		for _, tok := range row {
			v, err := parse(tok)
			if err != nil {
				return nil, &ParseError{Line: b.Line + i, Err: err}
			}
			out = append(out, v)
		}
	}
	return out, nil
}

// DecodeGrid converts a numeric body to rows of elements.
func DecodeGrid[E any](b *Body, d message.Descriptor, parse func(string) (E, error)) ([][]E, error) {
	rows, cols := d.Rows(), d.Cols()
	out := make([][]E, 0, capHint(rows))
	for i := range rows {
		row, err := b.row(i, cols)
		if err != nil {
			return nil, err
		}
		// row holds at least cols tokens, so cols is bounded by the input
		vals := make([]E, cols)
		for j, tok := range row {
			v, err := parse(tok)
			if err != nil {
				return nil, &ParseError{Line: b.Line + i, Err: err}
			}
			vals[j] = v
		}
		out = append(out, vals)
	}
	return out, nil
}

// row splits data line i and returns its first n tokens. Extra tokens are
// ignored.
func (b *Body) row(i, n int) ([]string, error) {
	if i >= len(b.Lines) {
		return nil, &ParseError{Line: b.Line + i, Err: fmt.Errorf("%w: missing row %d", dtype.ErrElement, i)}
	}
	toks := strings.Fields(b.Lines[i])
	if len(toks) < n {
		return nil, &ParseError{Line: b.Line + i, Err: fmt.Errorf("%w: %d of %d values", dtype.ErrElement, len(toks), n)}
	}
	return toks[:n], nil
}

// EncodeScalar writes a scalar body.
func EncodeScalar(w *lineio.Writer, tok string) error {
	w.WriteLine(tok)
	return w.WriteString(Terminator)
}

// EncodeGrid writes a rows×cols numeric body, taking each token from at.
// Every token is preceded by a blank.
func EncodeGrid(w *lineio.Writer, rows, cols int, at func(r, c int) string) error {
	for r := range rows {
		for c := range cols {
			w.WriteString(" ")
			w.WriteString(at(r, c))
		}
		w.WriteString("\n")
	}
	return w.WriteString(Terminator)
}

// EncodeStrings writes a string body. The length of the first element is part
// of the header; later elements carry their own length line.
func EncodeStrings(w *lineio.Writer, ss []string) error {
	for i, s := range ss {
		if i > 0 {
			w.WriteLine(message.FormatTagLine(message.TagLength, itoa(len(s))))
		}
		w.WriteLine(s)
	}
	return w.WriteString(Terminator)
}
