package octtext

import (
	"bytes"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.txt")

	w, err := Create(path, "Test file")
	require.NoError(t, err)

	ok, err := w.Write("int_var", int32(-1))
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = w.Write("int_vect", []int32{0, 1, -2, 3, -4})
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = w.Write("int_mat", [][]int32{{0, 1, -2}, {3, -4, 5}})
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, w.Close())

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, "Test file", r.Title())
	assert.Equal(t, path, r.Path())

	assert.Equal(t, "int_var", r.NextName())
	assert.Equal(t, Scalar, r.NextShape())
	assert.Equal(t, Int32, r.NextDescriptor().Kind)
	v, ok := ReadScalar[int32](r)
	require.True(t, ok)
	assert.Equal(t, int32(-1), v)

	assert.Equal(t, "int_vect", r.NextName())
	assert.Equal(t, Vector, r.NextShape())
	vec, ok := ReadVector[int32](r)
	require.True(t, ok)
	assert.Equal(t, []int32{0, 1, -2, 3, -4}, vec)

	assert.Equal(t, "int_mat", r.NextName())
	assert.Equal(t, Matrix, r.NextShape())
	assert.Equal(t, []int{2, 3}, r.NextDescriptor().Dims)
	mat, ok := ReadMatrix[int32](r)
	require.True(t, ok)
	assert.Equal(t, [][]int32{{0, 1, -2}, {3, -4, 5}}, mat)

	assert.Equal(t, Invalid, r.NextShape())
	assert.Equal(t, InvalidName, r.NextName())
	assert.False(t, r.Valid())
	assert.ErrorIs(t, r.Err(), ErrEndOfStream)
}

func TestEndToEndText(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, "Test file")
	require.NoError(t, err)
	_, err = w.Write("int_var", int32(-1))
	require.NoError(t, err)
	_, err = w.Write("int_vect", []int32{0, 1, -2, 3, -4})
	require.NoError(t, err)
	_, err = w.Write("int_mat", [][]int32{{0, 1, -2}, {3, -4, 5}})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	want := `# Test file
# name: int_var
# type: int32 scalar
-1


# name: int_vect
# type: int32 matrix
# rows: 1
# columns: 5
 0 1 -2 3 -4


# name: int_mat
# type: int32 matrix
# rows: 2
# columns: 3
 0 1 -2
 3 -4 5


`
	assert.Equal(t, want, buf.String())
}

// roundTrip writes value under the name "x" and reopens the stream.
func roundTrip(t *testing.T, value any, opts ...Option) *Reader {
	t.Helper()
	var buf bytes.Buffer
	w, err := NewWriter(&buf, "round trip", opts...)
	require.NoError(t, err)
	ok, err := w.Write("x", value)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, w.Close())

	r, err := NewReader(&buf)
	require.NoError(t, err)
	require.True(t, r.Valid())
	return r
}

func checkScalar[T Real](t *testing.T, v T) {
	t.Helper()
	r := roundTrip(t, v)
	got, ok := ReadScalar[T](r)
	require.True(t, ok, "%v", r.Err())
	assert.Equal(t, v, got)
	assert.False(t, r.Valid())
}

func checkVector[T Real](t *testing.T, v []T) {
	t.Helper()
	r := roundTrip(t, v)
	got, ok := ReadVector[T](r)
	require.True(t, ok, "%v", r.Err())
	assert.Equal(t, v, got)
}

func checkMatrix[T Real](t *testing.T, m [][]T) {
	t.Helper()
	r := roundTrip(t, m)
	got, ok := ReadMatrix[T](r)
	require.True(t, ok, "%v", r.Err())
	assert.Equal(t, m, got)
}

func TestRoundTripKinds(t *testing.T) {
	t.Run("int8", func(t *testing.T) {
		checkScalar(t, int8(math.MinInt8))
		checkVector(t, []int8{0, 1, -2, 3, -4})
		checkMatrix(t, [][]int8{{65, 66, -128}, {127, 0, 10}})
	})
	t.Run("uint8", func(t *testing.T) {
		checkScalar(t, uint8(255))
		checkVector(t, []uint8{0, 1, 2, 3, 4})
		checkMatrix(t, [][]uint8{{32, 10, 13}, {0, 9, 255}})
	})
	t.Run("int16", func(t *testing.T) {
		checkScalar(t, int16(math.MinInt16))
		checkVector(t, []int16{0, 1, -2, 3, -4})
	})
	t.Run("uint16", func(t *testing.T) {
		checkScalar(t, uint16(math.MaxUint16))
		checkMatrix(t, [][]uint16{{1, 2}, {3, 4}})
	})
	t.Run("int32", func(t *testing.T) {
		checkScalar(t, int32(math.MaxInt32))
		checkVector(t, []int32{0, 1, -2, 3, -4})
	})
	t.Run("uint32", func(t *testing.T) {
		checkScalar(t, uint32(math.MaxUint32))
		checkVector(t, []uint32{0, 1, 2, 3, 4})
	})
	t.Run("int64", func(t *testing.T) {
		checkScalar(t, int64(math.MinInt64))
		checkMatrix(t, [][]int64{{math.MaxInt64, 0}, {-1, math.MinInt64}})
	})
	t.Run("uint64", func(t *testing.T) {
		checkScalar(t, uint64(math.MaxUint64))
		checkVector(t, []uint64{0, 1, 2, 3, math.MaxUint64})
	})
	t.Run("int", func(t *testing.T) {
		checkScalar(t, -42)
		checkVector(t, []int{0, 1, -2, 3, -4})
	})
	t.Run("float32", func(t *testing.T) {
		checkScalar(t, float32(-1.1))
		checkVector(t, []float32{1.1, -2.2, 3.3, -4.4, math.MaxFloat32})
		checkMatrix(t, [][]float32{{0.1, 1.1, -2.2}, {3.3, -4.4, 5.5}})
	})
	t.Run("float64", func(t *testing.T) {
		checkScalar(t, math.Pi)
		checkVector(t, []float64{1.1, -2.2, 3.3, -4.4, math.SmallestNonzeroFloat64})
		checkMatrix(t, [][]float64{{0.1, 1.1, -2.2}, {3.3, -4.4, 5.5}})
	})
}

func TestRoundTripSpecialFloats(t *testing.T) {
	r := roundTrip(t, []float64{math.NaN(), math.Inf(1), math.Inf(-1), 0})
	got, ok := ReadVector[float64](r)
	require.True(t, ok)
	require.Len(t, got, 4)
	assert.True(t, math.IsNaN(got[0]))
	assert.True(t, math.IsInf(got[1], 1))
	assert.True(t, math.IsInf(got[2], -1))
	assert.Equal(t, 0.0, got[3])

	r = roundTrip(t, [][]float32{{float32(math.NaN()), 1.1}, {-2.2, 3.3}})
	m, ok := ReadMatrix[float32](r)
	require.True(t, ok)
	assert.True(t, math.IsNaN(float64(m[0][0])))
	assert.Equal(t, float32(3.3), m[1][1])
}

func TestRoundTripComplex(t *testing.T) {
	t.Run("scalar", func(t *testing.T) {
		r := roundTrip(t, complex(1.5, -2.25))
		d := r.NextDescriptor()
		assert.True(t, d.Complex)
		assert.Equal(t, Double, d.Kind)
		got, ok := ReadComplexScalar[float64](r)
		require.True(t, ok)
		assert.Equal(t, Complex[float64]{Re: 1.5, Im: -2.25}, got)
	})

	t.Run("vector", func(t *testing.T) {
		v := []Complex[int32]{{Re: 0, Im: -1}, {Re: -1, Im: 2}, {Re: 2, Im: -3}, {Re: -3, Im: 4}, {Re: 4, Im: -5}}
		r := roundTrip(t, v)
		assert.Equal(t, Int32, r.NextDescriptor().Kind)
		got, ok := ReadComplexVector[int32](r)
		require.True(t, ok)
		assert.Equal(t, v, got)
	})

	t.Run("complex64 matrix", func(t *testing.T) {
		m := [][]complex64{{complex(0, -1.1), complex(-1.1, 2.2)}, {complex(2.2, -3.3), complex(-3.3, 4.4)}}
		r := roundTrip(t, m)
		assert.Equal(t, Single, r.NextDescriptor().Kind)
		got, ok := ReadComplexMatrix[float32](r)
		require.True(t, ok)
		require.Len(t, got, 2)
		for i := range m {
			for j := range m[i] {
				assert.Equal(t, real(m[i][j]), got[i][j].Re)
				assert.Equal(t, imag(m[i][j]), got[i][j].Im)
			}
		}
	})
}

func TestComplexToken(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, "t")
	require.NoError(t, err)
	_, err = w.Write("z", Complex[float64]{Re: 1.5, Im: -2.25})
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Contains(t, buf.String(), "\n(1.5,-2.25)\n")
}

func TestRoundTripStrings(t *testing.T) {
	r := roundTrip(t, "hello world")
	assert.Equal(t, String, r.NextShape())
	s, ok := r.ReadString()
	require.True(t, ok)
	assert.Equal(t, "hello world", s)

	list := []string{"first", "", "line\nbreak", "  padded  "}
	r = roundTrip(t, list)
	assert.Equal(t, 4, r.NextDescriptor().Elements)
	_, ok = r.ReadString()
	assert.False(t, ok)
	assert.ErrorIs(t, r.Err(), ErrKindMismatch)
	got, ok := r.ReadStrings()
	require.True(t, ok)
	assert.Equal(t, list, got)
}

func TestRoundTripNDims(t *testing.T) {
	m := [][]float64{{1, 2, 3}, {4, 5, 6}}
	r := roundTrip(t, m, WithDimsForm(DimsNDims))
	got, ok := ReadMatrix[float64](r)
	require.True(t, ok)
	assert.Equal(t, m, got)
}

func TestShapeControl(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, "shapes")
	require.NoError(t, err)
	_, err = w.Write("row", []float64{1, 2, 3})
	require.NoError(t, err)
	_, err = w.WriteColumn("col", []float64{1, 2, 3})
	require.NoError(t, err)
	_, err = w.Write("row1", []float64{7})
	require.NoError(t, err)
	_, err = w.WriteColumn("col1", []float64{7})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := NewReader(&buf)
	require.NoError(t, err)

	assert.Equal(t, Vector, r.NextShape())
	require.True(t, r.Skip())
	assert.Equal(t, CoVector, r.NextShape())
	assert.Equal(t, []int{3}, r.NextDescriptor().Dims)
	col, ok := ReadVector[float64](r)
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2, 3}, col)

	// A single element reads back as a Vector either way.
	assert.Equal(t, Vector, r.NextShape())
	require.True(t, r.Skip())
	assert.Equal(t, Vector, r.NextShape())
	one, ok := ReadVector[float64](r)
	require.True(t, ok)
	assert.Equal(t, []float64{7}, one)
}

func TestSkipAll(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, "skip")
	require.NoError(t, err)
	values := []any{1.5, "text", []int{1, 2}, [][]float32{{1, 2}, {3, 4}}, []string{"a", "b"}, complex64(1)}
	for i, v := range values {
		ok, err := w.Write(string(rune('a'+i)), v)
		require.NoError(t, err)
		require.True(t, ok)
	}
	require.NoError(t, w.Close())

	r, err := NewReader(&buf)
	require.NoError(t, err)
	for range values {
		assert.True(t, r.Skip())
	}
	assert.Equal(t, Invalid, r.NextShape())
	assert.False(t, r.Skip())
	assert.Equal(t, len(values), r.Count())
}

func TestEmptyContainerNoOp(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, "empty")
	require.NoError(t, err)
	require.NoError(t, w.Flush())
	before := buf.Len()
	written := w.Written()

	for _, v := range []any{[]float64{}, [0]int{}, [][]int32{}, [][]float64{{}, {}}, []string{}, []Complex[float64](nil)} {
		ok, err := w.Write("e", v)
		require.NoError(t, err)
		assert.False(t, ok, "%T", v)
		ok, err = w.WriteColumn("e", v)
		if err == nil {
			assert.False(t, ok, "%T", v)
		}
	}

	require.NoError(t, w.Flush())
	assert.Equal(t, before, buf.Len())
	assert.Equal(t, written, w.Written())
}

func TestMismatchSafety(t *testing.T) {
	r := roundTrip(t, [][]float64{{1, 2}, {3, 4}})

	_, ok := ReadScalar[float64](r)
	assert.False(t, ok)
	assert.ErrorIs(t, r.Err(), ErrKindMismatch)
	assert.Equal(t, "x", r.NextName())
	assert.Equal(t, Matrix, r.NextShape())

	_, ok = ReadComplexMatrix[float64](r)
	assert.False(t, ok)
	_, ok = ReadVector[float64](r)
	assert.False(t, ok)
	_, ok = r.ReadString()
	assert.False(t, ok)
	assert.Equal(t, "x", r.NextName())

	m, ok := ReadMatrix[float64](r)
	require.True(t, ok)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, m)
	assert.ErrorIs(t, r.Err(), ErrEndOfStream)
}

func TestElementFailureKeepsPosition(t *testing.T) {
	r := roundTrip(t, []float64{1.5, 300})

	_, ok := ReadVector[int32](r)
	assert.False(t, ok)
	assert.ErrorIs(t, r.Err(), ErrElement)

	_, ok = ReadVector[uint8](r)
	assert.False(t, ok)
	assert.Equal(t, "x", r.NextName())

	v, ok := ReadVector[float64](r)
	require.True(t, ok)
	assert.Equal(t, []float64{1.5, 300}, v)
}

func TestVectorAsMatrix(t *testing.T) {
	r := roundTrip(t, []int{1, 2, 3})
	m, ok := ReadMatrix[int](r)
	require.True(t, ok)
	assert.Equal(t, [][]int{{1, 2, 3}}, m)
}
