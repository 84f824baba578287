package buffer

import (
	"encoding"
	"io"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type binarySerializer interface {
	io.WriterTo
	io.ReaderFrom
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	BinarySize() int
}

// RequireSerializerCorrect tests that:
//   - input and output implement [encoding.BinaryMarshaler], [encoding.BinaryUnmarshaler], [io.WriterTo] and [io.ReaderFrom]
//   - input.WriteTo writes exactly input.BinarySize() bytes
//   - output.ReadFrom reads back exactly the bytes written by input.WriteTo
//   - input.MarshalBinary returns a slice of input.BinarySize() bytes
//   - output.UnmarshalBinary decodes the slice returned by input.MarshalBinary
//   - input and output are equal after each decoding, according to [cmp.Equal]
func RequireSerializerCorrect(t *testing.T, input binarySerializer) {

	buf := NewBufferSize(input.BinarySize())

	// Check io.Writer
	bytesWritten, err := input.WriteTo(buf)
	require.NoError(t, err)
	require.Equal(t, input.BinarySize(), int(bytesWritten))

	// Check io.Reader
	output, ok := reflect.New(reflect.TypeOf(input).Elem()).Interface().(binarySerializer)
	require.True(t, ok)

	bytesRead, err := output.ReadFrom(buf)
	require.NoError(t, err)
	require.Equal(t, bytesWritten, bytesRead)
	require.True(t, cmp.Equal(input, output))

	// Check encoding.BinaryMarshaler
	data, err := input.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, input.BinarySize(), len(data))

	// Check encoding.BinaryUnmarshaler
	output, ok = reflect.New(reflect.TypeOf(input).Elem()).Interface().(binarySerializer)
	require.True(t, ok)
	require.NoError(t, output.UnmarshalBinary(data))
	require.True(t, cmp.Equal(input, output))
}
