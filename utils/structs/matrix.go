package structs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tuneinsight/ggh/utils/buffer"
)

// Matrix is a struct wrapping a double slice of components of type T.
// Rows may have different lengths, although all matrices of this module
// are rectangular.
type Matrix[T Scalar] [][]T

// NewMatrix allocates a new zero Matrix with the given number of rows and columns.
func NewMatrix[T Scalar](rows, cols int) Matrix[T] {
	m := make([][]T, rows)
	for i := range m {
		m[i] = make([]T, cols)
	}
	return m
}

// Rows returns the number of rows of the matrix.
func (m Matrix[T]) Rows() int {
	return len(m)
}

// Cols returns the number of columns of the matrix, or -1 if the matrix is not rectangular.
func (m Matrix[T]) Cols() int {

	if len(m) == 0 {
		return 0
	}

	cols := len(m[0])
	for i := range m {
		if len(m[i]) != cols {
			return -1
		}
	}

	return cols
}

// IsSquare returns true if the matrix is non-empty and has as many rows as columns.
func (m Matrix[T]) IsSquare() bool {
	return len(m) != 0 && m.Cols() == len(m)
}

// CopyNew returns a deep copy of the object.
func (m Matrix[T]) CopyNew() *Matrix[T] {
	mcpy := Matrix[T](make([][]T, len(m)))
	for i := range m {
		mcpy[i] = *Vector[T](m[i]).CopyNew()
	}
	return &mcpy
}

// BinarySize returns the serialized size of the object in bytes.
func (m Matrix[T]) BinarySize() (size int) {
	size += 8
	for i := range m {
		size += Vector[T](m[i]).BinarySize()
	}
	return
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface (see ggh/utils/buffer/writer.go),
// it will be wrapped into a bufio.Writer.
func (m Matrix[T]) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteAsUint64[int](w, len(m)); err != nil {
			return inc, fmt.Errorf("buffer.WriteAsUint64[int]: %w", err)
		}

		n += inc

		for i := range m {
			if inc, err = Vector[T](m[i]).WriteTo(w); err != nil {
				return n + inc, fmt.Errorf("structs.Vector[%T].WriteTo: %w", *new(T), err)
			}
			n += inc
		}

		return n, w.Flush()

	default:
		return m.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Writer. It implements the
// io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface (see ggh/utils/buffer/reader.go),
// it will be wrapped into a bufio.Reader.
func (m *Matrix[T]) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var inc int64

		var size int

		if inc, err = buffer.ReadAsUint64[int](r, &size); err != nil {
			return inc, fmt.Errorf("buffer.ReadAsUint64[int]: %w", err)
		}

		n += inc

		if size < 0 {
			return n, fmt.Errorf("cannot ReadFrom: invalid matrix size %d", size)
		}

		if cap(*m) < size {
			*m = make([][]T, size)
		}

		*m = (*m)[:size]

		for i := range *m {
			vi := Vector[T]((*m)[i])
			if inc, err = vi.ReadFrom(r); err != nil {
				return n + inc, fmt.Errorf("structs.Vector[%T].ReadFrom: %w", *new(T), err)
			}
			(*m)[i] = vi
			n += inc
		}

		return n, nil

	default:
		return m.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (m Matrix[T]) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(m.BinarySize())
	_, err = m.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (m *Matrix[T]) UnmarshalBinary(p []byte) (err error) {
	_, err = m.ReadFrom(buffer.NewBuffer(p))
	return
}

// Equal performs a deep equal.
func (m Matrix[T]) Equal(other *Matrix[T]) bool {

	if other == nil || len(m) != len(*other) {
		return false
	}

	for i := range m {
		vi := Vector[T]((*other)[i])
		if !Vector[T](m[i]).Equal(&vi) {
			return false
		}
	}

	return true
}
