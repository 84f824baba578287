package buffer

import (
	"bufio"
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {

	t.Run("Uint64/LittleEndian", func(t *testing.T) {
		b := NewBufferSize(8)
		_, err := WriteUint64(b, 0x1122334455667788)
		require.NoError(t, err)
		require.Equal(t, []byte{0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11}, b.Bytes())

		var c uint64
		n, err := ReadUint64(b, &c)
		require.NoError(t, err)
		require.Equal(t, int64(8), n)
		require.Equal(t, uint64(0x1122334455667788), c)
	})

	t.Run("Uint64/Overflow", func(t *testing.T) {
		b := NewBufferSize(4)
		_, err := WriteUint64(b, 1)
		require.Error(t, err)
	})

	t.Run("AsUint64/Float64", func(t *testing.T) {
		b := NewBufferSize(16)
		_, err := WriteAsUint64(b, -2.5)
		require.NoError(t, err)
		_, err = WriteAsUint64(b, int64(-7))
		require.NoError(t, err)

		var f float64
		var i int64
		_, err = ReadAsUint64(b, &f)
		require.NoError(t, err)
		_, err = ReadAsUint64(b, &i)
		require.NoError(t, err)
		require.Equal(t, -2.5, f)
		require.Equal(t, int64(-7), i)
	})

	t.Run("Uint64Slice/Bufio", func(t *testing.T) {

		// larger than the minimum bufio buffer so that the slice functions flush and recurse
		want := make([]float64, 1024)
		for i := range want {
			want[i] = math.Sqrt(float64(i)) - 16
		}

		var data bytes.Buffer
		w := bufio.NewWriterSize(&data, 16)
		n, err := WriteAsUint64Slice(w, want)
		require.NoError(t, err)
		require.NoError(t, w.Flush())
		require.Equal(t, int64(len(want)<<3), n)

		have := make([]float64, len(want))
		n, err = ReadAsUint64Slice(bufio.NewReaderSize(&data, 16), have)
		require.NoError(t, err)
		require.Equal(t, int64(len(want)<<3), n)
		require.Equal(t, want, have)
	})

	t.Run("Bytes", func(t *testing.T) {
		want := []byte("lattice")
		b := NewBufferSize(len(want) + 4)
		_, err := WriteUint32(b, uint32(len(want)))
		require.NoError(t, err)
		_, err = Write(b, want)
		require.NoError(t, err)

		var size uint32
		_, err = ReadUint32(b, &size)
		require.NoError(t, err)
		have := make([]byte, size)
		_, err = Read(b, have)
		require.NoError(t, err)
		require.Equal(t, want, have)

		_, err = Read(b, make([]byte, 1))
		require.Error(t, err)
	})
}
