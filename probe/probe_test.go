package probe

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-octtext/internal/filter"
	"github.com/robert-malhotra/go-octtext/internal/superblock"
)

func TestDetect(t *testing.T) {
	hdf5 := append(append([]byte{}, superblock.Signature...), 2)

	tests := []struct {
		name  string
		input []byte
		want  Format
	}{
		{"octave", []byte("# Created by Octave\n"), Octave},
		{"octave after blanks", []byte("\n  # title\n"), Octave},
		{"csv", []byte("1.5,2,3\n"), Delimited},
		{"indented", []byte("   -4 5\n"), Delimited},
		{"plus sign", []byte("+1\n"), Delimited},
		{"leading point", []byte(".5\n"), Delimited},
		{"hdf5", hdf5, HDF5},
		{"text", []byte("hello\n"), Unknown},
		{"empty", nil, Unknown},
		{"blanks only", []byte("   \n"), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			br := bufio.NewReader(bytes.NewReader(tt.input))
			assert.Equal(t, tt.want, Detect(br))

			// Nothing is consumed.
			rest, err := io.ReadAll(br)
			require.NoError(t, err)
			assert.Equal(t, len(tt.input), len(rest))
		})
	}
}

func compress(t *testing.T, kind filter.Kind, data string) []byte {
	t.Helper()
	f, err := filter.New(kind, 0)
	require.NoError(t, err)
	var buf bytes.Buffer
	w, err := f.NewWriter(&buf)
	require.NoError(t, err)
	_, err = io.WriteString(w, data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestProbeCompressed(t *testing.T) {
	for _, kind := range []filter.Kind{filter.Gzip, filter.Zstd} {
		t.Run(kind.String(), func(t *testing.T) {
			data := compress(t, kind, "# Created by Octave\n# name: x\n")
			res := Probe(bufio.NewReader(bytes.NewReader(data)))
			assert.Equal(t, Octave, res.Format)
			assert.Equal(t, kind, res.Compression)

			data = compress(t, kind, "1,2,3\n")
			res = Probe(bufio.NewReader(bytes.NewReader(data)))
			assert.Equal(t, Delimited, res.Format)
		})
	}

	res := Probe(bufio.NewReader(bytes.NewReader([]byte{0x1f, 0x8b, 0xff})))
	assert.Equal(t, Unknown, res.Format)
	assert.Equal(t, filter.Gzip, res.Compression)
}

func TestDetectFile(t *testing.T) {
	dir := t.TempDir()

	oct := filepath.Join(dir, "vars.txt")
	require.NoError(t, os.WriteFile(oct, []byte("# title\n"), 0o644))
	res, err := DetectFile(oct)
	require.NoError(t, err)
	assert.Equal(t, Octave, res.Format)

	h5 := filepath.Join(dir, "vars.h5")
	data := make([]byte, 512)
	data = append(data, superblock.Signature...)
	data = append(data, 0)
	require.NoError(t, os.WriteFile(h5, data, 0o644))
	res, err = DetectFile(h5)
	require.NoError(t, err)
	assert.Equal(t, HDF5, res.Format)
	assert.Equal(t, uint8(0), res.HDF5Version)

	_, err = DetectFile(filepath.Join(dir, "absent"))
	assert.Error(t, err)
}

func TestFormatString(t *testing.T) {
	var names []string
	for _, f := range []Format{Unknown, HDF5, Octave, Delimited} {
		names = append(names, f.String())
	}
	assert.Equal(t, "unknown hdf5 octave delimited", strings.Join(names, " "))
}
