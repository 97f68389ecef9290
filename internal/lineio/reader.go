// Package lineio provides line-oriented text I/O for Octave text streams.
package lineio

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

const defaultBufferSize = 32 << 10

// ErrShortRead is returned when the stream ends inside a fixed-length field.
var ErrShortRead = errors.New("unexpected end of stream")

// Reader reads a text stream one line at a time and tracks the number of
// lines consumed so far.
type Reader struct {
	br   *bufio.Reader
	line int
}

// NewReader creates a line reader over r. An existing *bufio.Reader is used
// directly so bytes already peeked by a caller are not lost.
func NewReader(r io.Reader) *Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return &Reader{br: br}
	}
	return &Reader{br: bufio.NewReaderSize(r, defaultBufferSize)}
}

// Line returns the number of lines consumed so far.
func (r *Reader) Line() int {
	return r.line
}

// ReadLine returns the next line without its "\n" or "\r\n" terminator.
// A final line without a terminator is returned with a nil error; io.EOF is
// returned only when no bytes remain.
func (r *Reader) ReadLine() (string, error) {
	s, err := r.br.ReadString('\n')
	if err != nil {
		if err == io.EOF && len(s) > 0 {
			r.line++
			return trimEOL(s), nil
		}
		return "", err
	}
	r.line++
	return trimEOL(s), nil
}

// NextSignificant skips blank lines and returns the first line holding
// non-space text.
func (r *Reader) NextSignificant() (string, error) {
	for {
		s, err := r.ReadLine()
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(s) != "" {
			return s, nil
		}
	}
}

// ReadN reads exactly n bytes, newlines included. Memory grows with the
// bytes actually read, so a length beyond the end of the stream fails with
// ErrShortRead without reserving n bytes.
func (r *Reader) ReadN(n int) (string, error) {
	if n <= 0 {
		return "", nil
	}
	var sb strings.Builder
	sb.Grow(min(n, defaultBufferSize))
	_, err := io.CopyN(&sb, r.br, int64(n))
	r.line += strings.Count(sb.String(), "\n")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrShortRead
		}
		return "", err
	}
	return sb.String(), nil
}

// Peek returns the next n bytes without consuming them.
func (r *Reader) Peek(n int) ([]byte, error) {
	return r.br.Peek(n)
}

func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
