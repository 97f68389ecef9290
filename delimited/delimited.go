// Package delimited reads and writes header-less numeric text: vectors as
// blank or comma separated numbers, matrices as one comma separated row per
// line.
//
//	1.5
//	-2
//	3
//
//	1,2,3
//	4,5,6
//
// Values use the same tokens as Octave text files.
package delimited

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/robert-malhotra/go-octtext/internal/dtype"
)

// ErrElement is returned when a value cannot be converted.
var ErrElement = dtype.ErrElement

// ParseError records the position of a malformed value.
type ParseError struct {
	Line   int // 1-based line number
	Column int // 1-based field number, 0 when unknown
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("line %d, field %d: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func isSeparator(r rune) bool {
	return r == ',' || r == ' ' || r == '\t' || r == '\r'
}

// ReadVector reads every value of r. Values are separated by blanks, commas
// or line breaks.
func ReadVector[T dtype.Real](r io.Reader) ([]T, error) {
	c := dtype.NewCodec[T]()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), 16<<20)

	var out []T
	line := 0
	for sc.Scan() {
		line++
		for i, tok := range strings.FieldsFunc(sc.Text(), isSeparator) {
			v, err := c.Parse(tok)
			if err != nil {
				return nil, &ParseError{Line: line, Column: i + 1, Err: err}
			}
			out = append(out, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading vector: %w", err)
	}
	return out, nil
}

// WriteVector writes one value per line.
func WriteVector[T dtype.Real](w io.Writer, v []T) error {
	c := dtype.NewCodec[T]()
	bw := bufio.NewWriter(w)
	for _, x := range v {
		bw.WriteString(c.Format(x))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// ReadMatrix reads one comma separated row per line. Blanks around values,
// quoted values, a trailing comma and empty lines are tolerated. Rows may
// differ in length.
func ReadMatrix[T dtype.Real](r io.Reader) ([][]T, error) {
	c := dtype.NewCodec[T]()
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var out [][]T
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading matrix: %w", err)
		}
		line, _ := cr.FieldPos(0)

		if n := len(rec); n > 0 && strings.TrimSpace(rec[n-1]) == "" {
			rec = rec[:n-1]
		}
		row := make([]T, len(rec))
		for i, field := range rec {
			if row[i], err = c.Parse(strings.TrimSpace(field)); err != nil {
				return nil, &ParseError{Line: line, Column: i + 1, Err: err}
			}
		}
		out = append(out, row)
	}
}

// WriteMatrix writes one comma separated row per line.
func WriteMatrix[T dtype.Real](w io.Writer, m [][]T) error {
	c := dtype.NewCodec[T]()
	cw := csv.NewWriter(w)
	var rec []string
	for _, row := range m {
		rec = rec[:0]
		for _, x := range row {
			rec = append(rec, c.Format(x))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteUnfolded writes a four dimensional array t[i1][i2][i3][i4] as one value
// per line, with the first index varying fastest. All sub-arrays must have
// the dimensions of t[0][0][0].
func WriteUnfolded[T dtype.Real](w io.Writer, t [][][][]T) error {
	if len(t) == 0 || len(t[0]) == 0 || len(t[0][0]) == 0 {
		return nil
	}
	d1, d2, d3, d4 := len(t), len(t[0]), len(t[0][0]), len(t[0][0][0])
	for _, a := range t {
		if len(a) != d2 {
			return fmt.Errorf("ragged array: %d of %d", len(a), d2)
		}
		for _, b := range a {
			if len(b) != d3 {
				return fmt.Errorf("ragged array: %d of %d", len(b), d3)
			}
			for _, c := range b {
				if len(c) != d4 {
					return fmt.Errorf("ragged array: %d of %d", len(c), d4)
				}
			}
		}
	}

	flat := make([]T, 0, d1*d2*d3*d4)
	for i4 := range d4 {
		for i3 := range d3 {
			for i2 := range d2 {
				for i1 := range d1 {
					flat = append(flat, t[i1][i2][i3][i4])
				}
			}
		}
	}
	return WriteVector(w, flat)
}
