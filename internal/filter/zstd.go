package filter

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// ZstdFilter implements Zstandard compression.
type ZstdFilter struct {
	level int
}

// NewZstd creates a zstd filter. The level uses the zstd command line scale
// (1 to 22); zero selects the encoder default.
func NewZstd(level int) *ZstdFilter {
	return &ZstdFilter{level: level}
}

func (f *ZstdFilter) Kind() Kind {
	return Zstd
}

func (f *ZstdFilter) Magic() []byte {
	return zstdMagic
}

func (f *ZstdFilter) NewReader(r io.Reader) (io.ReadCloser, error) {
	d, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("zstd reader: %w", err)
	}
	return d.IOReadCloser(), nil
}

func (f *ZstdFilter) NewWriter(w io.Writer) (io.WriteCloser, error) {
	var opts []zstd.EOption
	if f.level != 0 {
		opts = append(opts, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(f.level)))
	}
	// Single goroutine encoding.
	opts = append(opts, zstd.WithEncoderConcurrency(1))
	e, err := zstd.NewWriter(w, opts...)
	if err != nil {
		return nil, fmt.Errorf("zstd writer: %w", err)
	}
	return e, nil
}
