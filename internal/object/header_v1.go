package object

import (
	"github.com/robert-malhotra/go-octtext/internal/lineio"
	"github.com/robert-malhotra/go-octtext/internal/message"
)

/*
Legacy Dimension Layout:

	# rows: <R>
	# columns: <C>

Written by all Octave versions for two dimensional matrices.
*/

func readLegacyDims(r *lineio.Reader, rowsValue string) (rows, cols int, err error) {
	rows, err = message.ParseCount(rowsValue, message.TagRows)
	if err != nil {
		return 0, 0, &ParseError{Line: r.Line(), Err: err}
	}

	line, err := nextHeaderLine(r)
	if err != nil {
		return 0, 0, err
	}
	cols, err = message.ExpectCount(line, message.TagColumns)
	if err != nil {
		return 0, 0, &ParseError{Line: r.Line(), Err: err}
	}
	return rows, cols, nil
}

func writeLegacyDims(w *lineio.Writer, rows, cols int) error {
	w.WriteLine(message.FormatTagLine(message.TagRows, itoa(rows)))
	return w.WriteLine(message.FormatTagLine(message.TagColumns, itoa(cols)))
}
