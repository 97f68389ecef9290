package filter

import (
	"bytes"
	"fmt"
	"io"
)

// Kind identifies a whole-stream compression format.
type Kind uint8

const (
	None Kind = iota
	Gzip
	Zstd
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("filter(%d)", uint8(k))
	}
}

// Filter wraps streams with one compression format.
type Filter interface {
	// Kind returns the compression format.
	Kind() Kind

	// Magic returns the bytes every compressed stream starts with.
	Magic() []byte

	// NewReader decompresses r.
	NewReader(r io.Reader) (io.ReadCloser, error)

	// NewWriter compresses into w. Closing the writer flushes the trailer but
	// does not close w.
	NewWriter(w io.Writer) (io.WriteCloser, error)
}

// Registry maps compression formats to filter constructors. The level is
// format specific; zero selects the format's default.
var Registry = map[Kind]func(level int) Filter{
	Gzip: func(level int) Filter { return NewGzip(level) },
	Zstd: func(level int) Filter { return NewZstd(level) },
}

// MagicLen is the number of bytes Detect needs to recognise every format.
const MagicLen = 4

// New creates the filter for kind.
func New(kind Kind, level int) (Filter, error) {
	constructor, ok := Registry[kind]
	if !ok {
		return nil, fmt.Errorf("unsupported compression: %s", kind)
	}
	return constructor(level), nil
}

// Detect returns the filter whose magic bytes start prefix, or nil when the
// stream is not compressed.
func Detect(prefix []byte) Filter {
	for _, kind := range []Kind{Gzip, Zstd} {
		f := Registry[kind](0)
		if bytes.HasPrefix(prefix, f.Magic()) {
			return f
		}
	}
	return nil
}
