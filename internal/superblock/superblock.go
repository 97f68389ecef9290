package superblock

import (
	"bytes"
	"errors"
	"io"
)

// HDF5 file signature: 0x89 H D F \r \n 0x1a \n
var Signature = []byte{0x89, 'H', 'D', 'F', '\r', '\n', 0x1a, '\n'}

// Possible superblock locations (searched in order). A user block shifts the
// superblock to the next power of two from 512.
var superblockOffsets = []int64{0, 512, 1024, 2048}

// ErrNotHDF5 is returned when no signature is found.
var ErrNotHDF5 = errors.New("not an HDF5 file: signature not found")

// Location describes where an HDF5 superblock was found.
type Location struct {
	// Offset is the file offset of the signature.
	Offset int64

	// Version is the superblock format version (0 to 3).
	Version uint8
}

// Match reports whether prefix starts with the HDF5 signature.
func Match(prefix []byte) bool {
	return bytes.HasPrefix(prefix, Signature)
}

// Version returns the superblock version stored after the signature in
// prefix.
func Version(prefix []byte) (uint8, bool) {
	if !Match(prefix) || len(prefix) <= len(Signature) {
		return 0, false
	}
	return prefix[len(Signature)], true
}

// Locate searches the standard offsets of r for the HDF5 signature.
func Locate(r io.ReaderAt) (Location, error) {
	buf := make([]byte, len(Signature)+1)

	for _, offset := range superblockOffsets {
		n, err := r.ReadAt(buf, offset)
		if err != nil && err != io.EOF {
			return Location{}, err
		}
		if v, ok := Version(buf[:n]); ok {
			return Location{Offset: offset, Version: v}, nil
		}
		if err == io.EOF {
			break
		}
	}

	return Location{}, ErrNotHDF5
}
