package ggh

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/ggh/core/lattice"
	"github.com/tuneinsight/ggh/utils/structs"
)

// Encryptor is a structure that holds the public key and the error
// vector required to encrypt messages. It is read-only after its
// creation and can be used concurrently.
type Encryptor struct {
	params Parameters
	pk     *PublicKey
	q      [][]*big.Rat
	e      []*big.Rat
}

// NewEncryptor creates a new [Encryptor] from the public key pk.
// It returns an error wrapping [ErrDimensionMismatch] if the error vector
// of the parameters does not match the dimension of pk.
func NewEncryptor(params Parameters, pk *PublicKey) (enc *Encryptor, err error) {

	if pk == nil {
		panic(fmt.Errorf("cannot NewEncryptor: pk is nil"))
	}

	if err = lattice.IsSquare(pk.Basis); err != nil {
		return nil, fmt.Errorf("cannot NewEncryptor: %w", err)
	}

	e, err := params.ErrorVector(pk.Dim())
	if err != nil {
		return nil, fmt.Errorf("cannot NewEncryptor: %w", err)
	}

	enc = &Encryptor{params: params, pk: pk}

	if enc.q, err = lattice.NewRatMatrix(pk.Basis); err != nil {
		return nil, fmt.Errorf("cannot NewEncryptor: %w", err)
	}

	if enc.e, err = lattice.NewRatVector(e); err != nil {
		return nil, fmt.Errorf("cannot NewEncryptor: %w", err)
	}

	return
}

// GetParameters returns the underlying [Parameters].
func (enc Encryptor) GetParameters() *Parameters {
	return &enc.params
}

// Dim returns the dimension of the messages accepted by the encryptor.
func (enc Encryptor) Dim() int {
	return len(enc.q)
}

// EncryptNew encrypts the message m and returns the result on a newly allocated vector.
// The ciphertext is the lattice point m * Q, for Q the public basis, perturbed by the error vector.
// It returns an error wrapping [ErrDimensionMismatch] if len(m) differs from the dimension of the public key.
func (enc Encryptor) EncryptNew(m []int64) (ct structs.Vector[float64], err error) {
	ct = make(structs.Vector[float64], enc.Dim())
	return ct, enc.Encrypt(m, ct)
}

// Encrypt encrypts the message m and writes the result on ct.
// It returns an error wrapping [ErrDimensionMismatch] if len(m) or len(ct)
// differs from the dimension of the public key.
func (enc Encryptor) Encrypt(m []int64, ct structs.Vector[float64]) (err error) {

	if len(m) != enc.Dim() {
		return fmt.Errorf("cannot Encrypt: %w: message has length %d but public key has dimension %d", ErrDimensionMismatch, len(m), enc.Dim())
	}

	if len(ct) != enc.Dim() {
		return fmt.Errorf("cannot Encrypt: %w: ciphertext has length %d but public key has dimension %d", ErrDimensionMismatch, len(ct), enc.Dim())
	}

	mRat, err := lattice.NewRatVector(m)
	if err != nil {
		return fmt.Errorf("cannot Encrypt: %w", err)
	}

	c, err := lattice.MulVecMat(mRat, enc.q)
	if err != nil {
		return fmt.Errorf("cannot Encrypt: %w", err)
	}

	for i := range c {
		c[i].Add(c[i], enc.e[i])
	}

	copy(ct, lattice.RatToFloat64Vector(c))

	return
}
