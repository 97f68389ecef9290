package filter

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	original := []byte("# Created by Octave\n# name: x\n# type: scalar\n1.5\n\n\n")

	for _, kind := range []Kind{Gzip, Zstd} {
		t.Run(kind.String(), func(t *testing.T) {
			f, err := New(kind, 0)
			require.NoError(t, err)
			assert.Equal(t, kind, f.Kind())

			var buf bytes.Buffer
			w, err := f.NewWriter(&buf)
			require.NoError(t, err)
			_, err = w.Write(original)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			assert.True(t, bytes.HasPrefix(buf.Bytes(), f.Magic()))
			assert.Equal(t, kind, Detect(buf.Bytes()).Kind())

			r, err := f.NewReader(&buf)
			require.NoError(t, err)
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.NoError(t, r.Close())
			assert.Equal(t, original, got)
		})
	}
}

func TestLevels(t *testing.T) {
	for _, level := range []int{1, 9} {
		var buf bytes.Buffer
		w, err := NewGzip(level).NewWriter(&buf)
		require.NoError(t, err)
		require.NoError(t, w.Close())
	}

	_, err := NewGzip(42).NewWriter(io.Discard)
	assert.Error(t, err)
}

func TestDetectPlain(t *testing.T) {
	assert.Nil(t, Detect([]byte("# title\n")))
	assert.Nil(t, Detect(nil))
	assert.Nil(t, Detect([]byte{0x1f}))
}

func TestNewUnsupported(t *testing.T) {
	_, err := New(None, 0)
	assert.Error(t, err)
	assert.Equal(t, "none", None.String())
}

func TestCorruptGzip(t *testing.T) {
	_, err := NewGzip(0).NewReader(bytes.NewReader([]byte{0x1f, 0x8b, 0x00}))
	assert.Error(t, err)
}

func TestRegistryTypes(t *testing.T) {
	var _ Filter = (*GzipFilter)(nil)
	var _ Filter = (*ZstdFilter)(nil)

	assert.IsType(t, &GzipFilter{}, Registry[Gzip](0))
	assert.IsType(t, &ZstdFilter{}, Registry[Zstd](3))
	assert.Equal(t, Gzip, NewGzip(0).Kind())
	assert.Equal(t, Zstd, NewZstd(0).Kind())
}
