package filter

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

var gzipMagic = []byte{0x1f, 0x8b}

// GzipFilter implements gzip compression, as written by Octave's "save -zip".
type GzipFilter struct {
	level int
}

// NewGzip creates a gzip filter. Levels run from gzip.HuffmanOnly to
// gzip.BestCompression; zero selects gzip.DefaultCompression.
func NewGzip(level int) *GzipFilter {
	if level == 0 {
		level = gzip.DefaultCompression
	}
	return &GzipFilter{level: level}
}

func (f *GzipFilter) Kind() Kind {
	return Gzip
}

func (f *GzipFilter) Magic() []byte {
	return gzipMagic
}

func (f *GzipFilter) NewReader(r io.Reader) (io.ReadCloser, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("gzip reader: %w", err)
	}
	return zr, nil
}

func (f *GzipFilter) NewWriter(w io.Writer) (io.WriteCloser, error) {
	zw, err := gzip.NewWriterLevel(w, f.level)
	if err != nil {
		return nil, fmt.Errorf("gzip writer: %w", err)
	}
	return zw, nil
}
