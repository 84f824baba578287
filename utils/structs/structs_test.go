package structs

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestStructs(t *testing.T) {
	t.Run("Vector/int64/Serialization&Equatable", func(t *testing.T) {
		testVector[int64](t)
	})

	t.Run("Vector/float64/Serialization&Equatable", func(t *testing.T) {
		testVector[float64](t)
	})

	t.Run("Matrix/int64/Serialization&Equatable", func(t *testing.T) {
		testMatrix[int64](t)
	})

	t.Run("Matrix/float64/Serialization&Equatable", func(t *testing.T) {
		testMatrix[float64](t)
	})

	t.Run("Matrix/Shape", func(t *testing.T) {
		m := NewMatrix[int64](3, 3)
		require.True(t, m.IsSquare())
		require.Equal(t, 3, m.Cols())

		m[1] = m[1][:2]
		require.False(t, m.IsSquare())
		require.Equal(t, -1, m.Cols())

		require.False(t, Matrix[int64]{}.IsSquare())
		require.Equal(t, 0, Matrix[int64]{}.Cols())
	})

	t.Run("Matrix/CopyNew", func(t *testing.T) {
		m := Matrix[int64]{{7, 0, 0}, {0, 5, 0}, {0, 0, 3}}
		mcpy := m.CopyNew()
		require.True(t, m.Equal(mcpy))
		(*mcpy)[0][0] = 8
		require.False(t, m.Equal(mcpy))
		require.Equal(t, int64(7), m[0][0])
	})
}

func testVector[T int64 | float64](t *testing.T) {
	v := Vector[T](make([]T, 64))
	for i := range v {
		v[i] = T(i) - 32
	}
	data, err := v.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, v.BinarySize(), len(data))
	vNew := Vector[T]{}
	require.NoError(t, vNew.UnmarshalBinary(data))
	require.True(t, cmp.Equal(v, vNew))
	require.True(t, v.Equal(&vNew))
}

func testMatrix[T int64 | float64](t *testing.T) {
	m := Matrix[T](make([][]T, 16))
	for i := range m {
		mi := make([]T, 16)
		for j := range mi {
			mi[j] = T(i*16+j) - 128
		}
		m[i] = mi
	}

	// io.Writer/io.Reader path, wrapped internally into bufio
	var data bytes.Buffer
	n, err := m.WriteTo(&data)
	require.NoError(t, err)
	require.Equal(t, int64(m.BinarySize()), n)

	mNew := Matrix[T]{}
	n, err = mNew.ReadFrom(&data)
	require.NoError(t, err)
	require.Equal(t, int64(m.BinarySize()), n)
	require.True(t, cmp.Equal(m, mNew))
	require.True(t, m.Equal(&mNew))

	p, err := m.MarshalBinary()
	require.NoError(t, err)
	mNew = Matrix[T]{}
	require.NoError(t, mNew.UnmarshalBinary(p))
	require.True(t, m.Equal(&mNew))
}
