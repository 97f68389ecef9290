package octtext

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/robert-malhotra/go-octtext/internal/filter"
	"github.com/robert-malhotra/go-octtext/internal/lineio"
	"github.com/robert-malhotra/go-octtext/internal/object"
)

// Writer writes named objects to an Octave text stream.
//
// Write errors are sticky: after the first failure every later call returns
// the same error. A Writer is not safe for concurrent use.
type Writer struct {
	path   string
	file   *os.File       // owned output, nil for NewWriter
	zw     io.WriteCloser // compressor, nil for plain text
	w      *lineio.Writer
	dims   DimsForm
	closed bool
	log    *slog.Logger
}

// Create creates the file at path and writes the title line. The file is
// closed by Writer.Close.
func Create(path, title string, opts ...Option) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating file: %w", err)
	}

	w, err := newWriter(f, title, applyOptions(opts))
	if err != nil {
		f.Close()
		os.Remove(path)
		return nil, err
	}
	w.path = path
	w.file = f
	return w, nil
}

// NewWriter writes an Octave text stream with the given title to dst. The
// Writer does not close dst.
func NewWriter(dst io.Writer, title string, opts ...Option) (*Writer, error) {
	if dst == nil {
		return nil, errors.New("octtext: nil destination")
	}
	return newWriter(dst, title, applyOptions(opts))
}

func newWriter(dst io.Writer, title string, o *options) (*Writer, error) {
	w := &Writer{dims: o.dims, log: o.logger}

	out := dst
	if o.compression != NoCompression {
		f, err := filter.New(o.compression, o.level)
		if err != nil {
			return nil, err
		}
		zw, err := f.NewWriter(dst)
		if err != nil {
			return nil, err
		}
		w.zw = zw
		out = zw
	}

	w.w = lineio.NewWriter(out)
	if err := object.WriteTitle(w.w, title); err != nil {
		return nil, fmt.Errorf("writing title: %w", err)
	}
	return w, nil
}

// Path returns the path given to Create, or "" for NewWriter.
func (w *Writer) Path() string {
	return w.path
}

// Written returns the number of uncompressed bytes written so far, including
// buffered bytes.
func (w *Writer) Written() int64 {
	return w.w.Written()
}

// Flush writes buffered data to the underlying stream. A compressed stream is
// flushed to a point where everything written so far can be decompressed.
func (w *Writer) Flush() error {
	if w.closed {
		return ErrClosed
	}
	if err := w.w.Flush(); err != nil {
		return err
	}
	if f, ok := w.zw.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Close flushes the stream, finishes compression and closes the file owned
// by the Writer. Streams passed to NewWriter are left open. Close is
// idempotent.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	errs := []error{w.w.Flush()}
	if w.zw != nil {
		errs = append(errs, w.zw.Close())
	}
	if w.file != nil {
		errs = append(errs, w.file.Close())
	}
	return errors.Join(errs...)
}
