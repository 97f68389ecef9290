// Package probe classifies data files by their first bytes.
package probe

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/robert-malhotra/go-octtext/internal/filter"
	"github.com/robert-malhotra/go-octtext/internal/superblock"
)

// Format is the detected file format.
type Format uint8

const (
	Unknown   Format = iota
	HDF5             // HDF5 container, signature 89 'H' 'D' 'F'
	Octave           // Octave text, first non-blank byte '#'
	Delimited        // header-less numbers, first non-blank byte a digit, sign or '.'
)

func (f Format) String() string {
	switch f {
	case HDF5:
		return "hdf5"
	case Octave:
		return "octave"
	case Delimited:
		return "delimited"
	default:
		return "unknown"
	}
}

// Result describes a probed stream.
type Result struct {
	Format Format

	// Compression is the whole-stream compression wrapped around Format.
	Compression filter.Kind

	// HDF5Version is the superblock version of an HDF5 file.
	HDF5Version uint8
}

// peekLen bounds the bytes inspected.
const peekLen = 512

// Detect classifies the stream behind br without consuming any of it.
func Detect(br *bufio.Reader) Format {
	return Probe(br).Format
}

// Probe classifies the stream behind br without consuming any of it. The
// start of a compressed stream is decompressed and classified in turn.
func Probe(br *bufio.Reader) Result {
	prefix, _ := br.Peek(peekLen)

	if f := filter.Detect(prefix); f != nil {
		res := Result{Compression: f.Kind()}
		inner, err := peekCompressed(f, br)
		if err == nil {
			r := classify(inner)
			res.Format, res.HDF5Version = r.Format, r.HDF5Version
		}
		return res
	}
	return classify(prefix)
}

// DetectFile opens path and probes its content. HDF5 files with a user block
// are recognised as well.
func DetectFile(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	if loc, err := superblock.Locate(f); err == nil {
		return Result{Format: HDF5, HDF5Version: loc.Version}, nil
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return Result{}, err
	}
	return Probe(bufio.NewReader(f)), nil
}

func classify(prefix []byte) Result {
	if superblock.Match(prefix) {
		v, _ := superblock.Version(prefix)
		return Result{Format: HDF5, HDF5Version: v}
	}

	rest := bytes.TrimLeft(prefix, " \t\r\n")
	if len(rest) == 0 {
		return Result{}
	}
	switch c := rest[0]; {
	case c == '#':
		return Result{Format: Octave}
	case c >= '0' && c <= '9', c == '-', c == '+', c == '.':
		return Result{Format: Delimited}
	}
	return Result{}
}

// peekCompressed decompresses the start of a compressed stream. br is not
// advanced.
func peekCompressed(f filter.Filter, br *bufio.Reader) ([]byte, error) {
	raw, _ := br.Peek(br.Size())
	zr, err := f.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	buf := make([]byte, peekLen)
	n, err := io.ReadFull(zr, buf)
	if n == 0 && err != nil {
		return nil, err
	}
	return buf[:n], nil
}
