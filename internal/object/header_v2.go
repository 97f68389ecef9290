package object

import (
	"fmt"
	"strings"

	"github.com/robert-malhotra/go-octtext/internal/lineio"
	"github.com/robert-malhotra/go-octtext/internal/message"
)

/*
N-Dimensional Layout:

	# ndims: <k>
	 <d1> <d2> ... <dk>

The size list is an unmarked line of k counts. Only k == 2 is supported.
*/

func readNDims(r *lineio.Reader, ndimsValue string) (rows, cols int, err error) {
	k, err := message.ParseCount(ndimsValue, message.TagNdims)
	if err != nil {
		return 0, 0, &ParseError{Line: r.Line(), Err: err}
	}
	if k != 2 {
		return 0, 0, &ParseError{Line: r.Line(), Err: fmt.Errorf("%w: %d dimensions", message.ErrStructure, k)}
	}

	line, err := nextHeaderLine(r)
	if err != nil {
		return 0, 0, err
	}
	sizes := strings.Fields(line)
	if len(sizes) != k {
		return 0, 0, &ParseError{Line: r.Line(), Err: fmt.Errorf("%w: size list %q", message.ErrStructure, line)}
	}
	if rows, err = message.ParseCount(sizes[0], "rows"); err != nil {
		return 0, 0, &ParseError{Line: r.Line(), Err: err}
	}
	if cols, err = message.ParseCount(sizes[1], "columns"); err != nil {
		return 0, 0, &ParseError{Line: r.Line(), Err: err}
	}
	return rows, cols, nil
}

func writeNDims(w *lineio.Writer, rows, cols int) error {
	w.WriteLine(message.FormatTagLine(message.TagNdims, "2"))
	return w.WriteLine(" ", itoa(rows), " ", itoa(cols))
}
