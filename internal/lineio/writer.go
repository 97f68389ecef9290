package lineio

import (
	"bufio"
	"io"
)

// Writer buffers text output. The first error is kept and returned by every
// later call, so callers may check once after a sequence of writes.
type Writer struct {
	bw      *bufio.Writer
	err     error
	written int64
}

// NewWriter creates a buffered line writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriterSize(w, defaultBufferSize)}
}

// WriteString appends s.
func (w *Writer) WriteString(s string) error {
	if w.err != nil {
		return w.err
	}
	n, err := w.bw.WriteString(s)
	w.written += int64(n)
	if err != nil {
		w.err = err
	}
	return w.err
}

// WriteLine appends the given parts followed by a newline.
func (w *Writer) WriteLine(parts ...string) error {
	for _, p := range parts {
		if err := w.WriteString(p); err != nil {
			return err
		}
	}
	return w.WriteString("\n")
}

// Flush writes buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if err := w.bw.Flush(); err != nil {
		w.err = err
	}
	return w.err
}

// Err reports the first error encountered by the writer.
func (w *Writer) Err() error {
	return w.err
}

// Written returns the number of bytes accepted so far, buffered or not.
func (w *Writer) Written() int64 {
	return w.written
}
