package octtext

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/robert-malhotra/go-octtext/internal/filter"
	"github.com/robert-malhotra/go-octtext/internal/lineio"
	"github.com/robert-malhotra/go-octtext/internal/object"
)

// Reader reads the objects of an Octave text stream in order.
//
// The header of the next object is always parsed ahead of its body, so its
// name and descriptor can be inspected before choosing how to read it. A
// read that does not match the next object returns false and leaves the
// Reader where it was. Once the stream is exhausted or malformed the Reader
// is invalid: NextShape returns Invalid and every read returns false.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	path   string
	file   *os.File      // owned input, nil for NewReader
	zr     io.ReadCloser // decompressor, nil for plain text
	cur    *object.Cursor
	last   error
	closed bool
	log    *slog.Logger
}

// Open opens an Octave text file for reading. Compressed files are
// decompressed transparently. A file whose content is malformed still opens;
// the returned Reader is invalid and Err reports the cause.
func Open(path string, opts ...Option) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}

	r, err := newReader(f, applyOptions(opts))
	if err != nil {
		f.Close()
		return nil, err
	}
	r.path = path
	r.file = f
	return r, nil
}

// NewReader reads an Octave text stream from src. The Reader does not close
// src.
func NewReader(src io.Reader, opts ...Option) (*Reader, error) {
	return newReader(src, applyOptions(opts))
}

func newReader(src io.Reader, o *options) (*Reader, error) {
	r := &Reader{log: o.logger}

	br := bufio.NewReader(src)
	var in io.Reader = br
	prefix, _ := br.Peek(filter.MagicLen)
	if f := filter.Detect(prefix); f != nil {
		zr, err := f.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("opening %s stream: %w", f.Kind(), err)
		}
		r.log.Debug("decompressing input", "compression", f.Kind())
		r.zr = zr
		in = zr
	}

	r.cur = object.NewCursor(lineio.NewReader(in))
	r.logPosition()
	return r, nil
}

// Close releases the file and decompressor owned by the Reader. Streams
// passed to NewReader are left open. Close is idempotent.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	var errs []error
	if r.zr != nil {
		errs = append(errs, r.zr.Close())
	}
	if r.file != nil {
		errs = append(errs, r.file.Close())
	}
	return errors.Join(errs...)
}

// Path returns the path given to Open, or "" for NewReader.
func (r *Reader) Path() string {
	return r.path
}

// Title returns the text of the title line, or InvalidName once the Reader
// is invalid.
func (r *Reader) Title() string {
	if r.closed {
		return InvalidName
	}
	return r.cur.Title()
}

// Valid reports whether another object is available.
func (r *Reader) Valid() bool {
	return !r.closed && r.cur.Valid()
}

// NextShape returns the shape of the next object, or Invalid.
func (r *Reader) NextShape() Shape {
	return r.NextDescriptor().Shape
}

// NextName returns the name of the next object, or InvalidName.
func (r *Reader) NextName() string {
	if !r.Valid() {
		return InvalidName
	}
	return r.cur.Header().Name
}

// NextDescriptor returns the descriptor of the next object. The zero
// Descriptor, whose shape is Invalid, is returned when no object is
// available.
func (r *Reader) NextDescriptor() Descriptor {
	if !r.Valid() {
		return Descriptor{}
	}
	d := r.cur.Header().Descriptor
	d.Dims = slices.Clone(d.Dims)
	return d
}

// Count returns the number of object headers parsed so far, including the
// pending one.
func (r *Reader) Count() int {
	return r.cur.Count()
}

// Err explains the last failure. While the Reader is valid it returns the
// reason the last read failed, or nil after a successful read or skip. Once
// the Reader is invalid it returns ErrEndOfStream for a clean end of stream,
// or the parse or I/O error that stopped it.
func (r *Reader) Err() error {
	if r.closed {
		return ErrClosed
	}
	if !r.cur.Valid() {
		return r.cur.Err()
	}
	return r.last
}

// Skip discards the next object without decoding it. It reports whether an
// object was skipped, which is true whenever the Reader was valid. A
// truncated body leaves the Reader invalid.
func (r *Reader) Skip() bool {
	if !r.Valid() {
		return false
	}
	name := r.cur.Header().Name
	r.cur.Skip()
	r.last = nil
	r.log.Debug("skipped object", "name", name)
	r.logPosition()
	return true
}

func (r *Reader) logPosition() {
	if !r.cur.Valid() {
		r.log.Debug("reader invalid", "objects", r.cur.Count(), "err", r.cur.Err())
		return
	}
	h := r.cur.Header()
	r.log.Debug("next object",
		"name", h.Name,
		"shape", h.Descriptor.Shape,
		"kind", h.Descriptor.Kind,
		"complex", h.Descriptor.Complex,
		"line", h.Line)
}
