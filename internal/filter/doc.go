// Package filter implements whole-stream compression for Octave text files.
//
// Octave can gzip its text output ("save -text -zip"). Readers detect a
// compressed stream by its leading magic bytes and decompress it transparently;
// writers compress on request.
//
// # Supported Filters
//
//   - gzip via [Gzip], magic 1f 8b. Written by Octave itself.
//   - Zstandard via [Zstd], magic 28 b5 2f fd.
//
// Both use github.com/klauspost/compress.
//
// # Usage
//
//	prefix, _ := br.Peek(filter.MagicLen)
//	if f := filter.Detect(prefix); f != nil {
//	    rc, err := f.NewReader(br)
//	    ...
//	}
//
// # Key Types
//
//   - [Filter]: compression format with reader and writer constructors
//   - [Kind]: compression format identifier
//   - [Registry]: filter constructors by kind
package filter
