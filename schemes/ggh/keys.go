package ggh

import (
	"fmt"
	"io"
	"math"

	"github.com/zeebo/blake3"

	"github.com/tuneinsight/ggh/core/lattice"
	"github.com/tuneinsight/ggh/utils/buffer"
	"github.com/tuneinsight/ggh/utils/structs"
)

// PRNGKeySize is the size in bytes of the keys returned by [PrivateKey.PRNGKey].
const PRNGKeySize = 32

// PrivateKey is a type for GGH private keys: a well reduced basis whose rows generate the lattice.
type PrivateKey struct {
	Basis structs.Matrix[int64]
}

// PublicKey is a type for GGH public keys: a poorly reduced basis of the same lattice as the private key.
type PublicKey struct {
	Basis structs.Matrix[float64]
}

// NewPrivateKey returns a new [PrivateKey] storing a copy of basis.
// It returns an error wrapping [ErrDimensionMismatch] if basis is not square
// and an error wrapping [ErrMatrixNotInvertible] if basis is singular.
func NewPrivateKey(basis structs.Matrix[int64]) (sk *PrivateKey, err error) {

	det, err := lattice.Det(basis)
	if err != nil {
		return nil, fmt.Errorf("cannot NewPrivateKey: %w", err)
	}

	if det.Sign() == 0 {
		return nil, fmt.Errorf("cannot NewPrivateKey: %w: determinant is zero", ErrMatrixNotInvertible)
	}

	return &PrivateKey{Basis: *basis.CopyNew()}, nil
}

// NewPublicKey returns a new [PublicKey] storing a copy of basis.
// It returns an error wrapping [ErrDimensionMismatch] if basis is not square
// and an error if a coefficient is not finite.
func NewPublicKey(basis structs.Matrix[float64]) (pk *PublicKey, err error) {

	if err = lattice.IsSquare(basis); err != nil {
		return nil, fmt.Errorf("cannot NewPublicKey: %w", err)
	}

	for i := range basis {
		for j := range basis[i] {
			if math.IsNaN(basis[i][j]) || math.IsInf(basis[i][j], 0) {
				return nil, fmt.Errorf("cannot NewPublicKey: coefficient [%d][%d] is not finite", i, j)
			}
		}
	}

	return &PublicKey{Basis: *basis.CopyNew()}, nil
}

// Dim returns the dimension of the lattice.
func (sk PrivateKey) Dim() int {
	return len(sk.Basis)
}

// Equal performs a deep equal.
func (sk PrivateKey) Equal(other *PrivateKey) bool {
	return sk.Basis.Equal(&other.Basis)
}

// CopyNew creates a deep copy of the receiver secret key and returns it.
func (sk PrivateKey) CopyNew() *PrivateKey {
	return &PrivateKey{Basis: *sk.Basis.CopyNew()}
}

// PRNGKey returns a key derived from the private basis, that can be used to
// seed a [sampling.KeyedPRNG] so that public key derivations from this private
// key are reproducible.
func (sk PrivateKey) PRNGKey() (key []byte, err error) {

	data, err := sk.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("cannot PRNGKey: %w", err)
	}

	hasher := blake3.New()
	if _, err = hasher.Write(data); err != nil {
		return nil, fmt.Errorf("cannot PRNGKey: %w", err)
	}

	return hasher.Sum(nil)[:PRNGKeySize], nil
}

// BinarySize returns the serialized size of the object in bytes.
func (sk PrivateKey) BinarySize() int {
	return sk.Basis.BinarySize()
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
func (sk PrivateKey) WriteTo(w io.Writer) (n int64, err error) {
	return sk.Basis.WriteTo(w)
}

// ReadFrom reads on the object from an io.Writer. It implements the
// io.ReaderFrom interface.
func (sk *PrivateKey) ReadFrom(r io.Reader) (n int64, err error) {
	return sk.Basis.ReadFrom(r)
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (sk PrivateKey) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(sk.BinarySize())
	_, err = sk.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (sk *PrivateKey) UnmarshalBinary(p []byte) (err error) {
	_, err = sk.ReadFrom(buffer.NewBuffer(p))
	return
}

// Dim returns the dimension of the lattice.
func (pk PublicKey) Dim() int {
	return len(pk.Basis)
}

// Equal performs a deep equal.
func (pk PublicKey) Equal(other *PublicKey) bool {
	return pk.Basis.Equal(&other.Basis)
}

// CopyNew creates a deep copy of the receiver public key and returns it.
func (pk PublicKey) CopyNew() *PublicKey {
	return &PublicKey{Basis: *pk.Basis.CopyNew()}
}

// BinarySize returns the serialized size of the object in bytes.
func (pk PublicKey) BinarySize() int {
	return pk.Basis.BinarySize()
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
func (pk PublicKey) WriteTo(w io.Writer) (n int64, err error) {
	return pk.Basis.WriteTo(w)
}

// ReadFrom reads on the object from an io.Writer. It implements the
// io.ReaderFrom interface.
func (pk *PublicKey) ReadFrom(r io.Reader) (n int64, err error) {
	return pk.Basis.ReadFrom(r)
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (pk PublicKey) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(pk.BinarySize())
	_, err = pk.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (pk *PublicKey) UnmarshalBinary(p []byte) (err error) {
	_, err = pk.ReadFrom(buffer.NewBuffer(p))
	return
}
