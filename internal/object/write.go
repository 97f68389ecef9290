package object

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/robert-malhotra/go-octtext/internal/lineio"
	"github.com/robert-malhotra/go-octtext/internal/message"
)

// DimsForm selects how matrix dimensions are written.
type DimsForm uint8

const (
	// DimsLegacy writes "# rows:" and "# columns:" lines.
	DimsLegacy DimsForm = iota
	// DimsNDims writes "# ndims: 2" followed by the size list.
	DimsNDims
)

// WriteTitle writes the title record. The title must fit on one line.
func WriteTitle(w *lineio.Writer, title string) error {
	if strings.ContainsAny(title, "\r\n") {
		return fmt.Errorf("%w: title contains a line break", message.ErrStructure)
	}
	return w.WriteLine(string(message.Marker), " ", title)
}

// WriteHeader writes the header of one object. The body must follow.
func WriteHeader(w *lineio.Writer, name string, d message.Descriptor, form DimsForm) error {
	if err := d.Validate(); err != nil {
		return err
	}
	w.WriteLine(message.FormatTagLine(message.TagName, name))
	w.WriteLine(message.FormatTagLine(message.TagType, d.Datatype().String()))

	switch d.Shape {
	case message.Scalar:
		return w.Err()
	case message.String:
		w.WriteLine(message.FormatTagLine(message.TagElements, itoa(d.Elements)))
		if d.Elements > 0 {
			w.WriteLine(message.FormatTagLine(message.TagLength, itoa(d.Dims[0])))
		}
		return w.Err()
	}

	if form == DimsNDims {
		return writeNDims(w, d.Rows(), d.Cols())
	}
	return writeLegacyDims(w, d.Rows(), d.Cols())
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
