package object

import (
	"errors"
	"io"

	"github.com/robert-malhotra/go-octtext/internal/lineio"
	"github.com/robert-malhotra/go-octtext/internal/message"
)

// Cursor is the look-ahead state of a reader: the title and the header of the
// next object, parsed before its body is consumed.
//
// A Cursor is either valid, positioned on an object header, or invalid. The
// invalid state is terminal and is reached at the end of the stream or at the
// first malformed header.
type Cursor struct {
	r      *lineio.Reader
	title  string
	header Header
	body   *Body
	valid  bool
	count  int
	err    error
}

// NewCursor reads the title and the first object header from r.
func NewCursor(r *lineio.Reader) *Cursor {
	c := &Cursor{r: r}
	title, err := ReadTitle(r)
	if err != nil {
		c.fail(err)
		return c
	}
	c.title = title
	c.advance()
	return c
}

// Valid reports whether the cursor is positioned on an object.
func (c *Cursor) Valid() bool {
	return c.valid
}

// Title returns the stream title, or message.InvalidName once the cursor is
// invalid.
func (c *Cursor) Title() string {
	if !c.valid {
		return message.InvalidName
	}
	return c.title
}

// Header returns the header of the next object. The zero Header with name
// message.InvalidName and shape message.Invalid is returned when the cursor
// is invalid.
func (c *Cursor) Header() Header {
	if !c.valid {
		return Header{Name: message.InvalidName}
	}
	return c.header
}

// Count returns the number of object headers parsed so far.
func (c *Cursor) Count() int {
	return c.count
}

// Err returns the reason the cursor became invalid: ErrEndOfStream for a
// clean end, otherwise the parse or I/O error.
func (c *Cursor) Err() error {
	return c.err
}

// Body loads the raw body of the current object. The body is read from the
// stream once and kept until the cursor advances, so a failed conversion does
// not move the cursor.
func (c *Cursor) Body() (*Body, error) {
	if !c.valid {
		return nil, c.err
	}
	if c.body != nil {
		return c.body, nil
	}
	b, err := ReadBody(c.r, c.header.Descriptor)
	if err != nil {
		c.fail(err)
		return nil, err
	}
	c.body = b
	return b, nil
}

// Advance moves past the current object, whose body must already be loaded,
// and parses the next header.
func (c *Cursor) Advance() {
	if !c.valid || c.body == nil {
		return
	}
	c.advance()
}

// Skip discards the current object without converting its body and parses the
// next header. It reports whether an object was discarded, which is true
// whenever the cursor was valid. A truncated body leaves the cursor invalid.
func (c *Cursor) Skip() bool {
	if !c.valid {
		return false
	}
	if _, err := c.Body(); err == nil {
		c.advance()
	}
	return true
}

func (c *Cursor) advance() {
	c.body = nil
	h, err := Read(c.r)
	if err != nil {
		c.fail(err)
		return
	}
	c.header = h
	c.valid = true
	c.count++
}

func (c *Cursor) fail(err error) {
	c.valid = false
	c.body = nil
	c.header = Header{}
	if errors.Is(err, io.EOF) {
		err = ErrEndOfStream
	}
	c.err = err
}
