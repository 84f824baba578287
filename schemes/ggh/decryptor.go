package ggh

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/ggh/core/lattice"
	"github.com/tuneinsight/ggh/utils/bignum"
	"github.com/tuneinsight/ggh/utils/structs"
)

// Decryptor is a structure used to decrypt ciphertexts by Babai round-off.
// It stores exact factorizations of the private and public bases.
// It is read-only after its creation and can be used concurrently.
type Decryptor struct {
	params Parameters
	sk     *PrivateKey
	p      [][]*big.Rat
	solveP *lattice.Solver
	solveQ *lattice.Solver
}

// NewDecryptor instantiates a new [Decryptor] from the private key sk and the public key pk.
// It returns an error wrapping [ErrDimensionMismatch] if the keys are not square or have
// different dimensions, and an error wrapping [ErrMatrixNotInvertible] if one of the bases
// has a determinant whose absolute value is not larger than params.Tolerance().
func NewDecryptor(params Parameters, sk *PrivateKey, pk *PublicKey) (dec *Decryptor, err error) {

	if sk == nil || pk == nil {
		panic(fmt.Errorf("cannot NewDecryptor: sk and pk cannot be nil"))
	}

	if sk.Dim() != pk.Dim() {
		return nil, fmt.Errorf("cannot NewDecryptor: %w: private key has dimension %d but public key has dimension %d", ErrDimensionMismatch, sk.Dim(), pk.Dim())
	}

	dec = &Decryptor{params: params, sk: sk}

	if dec.p, err = lattice.NewRatMatrix(sk.Basis); err != nil {
		return nil, fmt.Errorf("cannot NewDecryptor: private key: %w", err)
	}

	if dec.solveP, err = newSolver(dec.p, params.Tolerance()); err != nil {
		return nil, fmt.Errorf("cannot NewDecryptor: private key: %w", err)
	}

	q, err := lattice.NewRatMatrix(pk.Basis)
	if err != nil {
		return nil, fmt.Errorf("cannot NewDecryptor: public key: %w", err)
	}

	if dec.solveQ, err = newSolver(q, params.Tolerance()); err != nil {
		return nil, fmt.Errorf("cannot NewDecryptor: public key: %w", err)
	}

	return
}

// newSolver factorizes a and rejects it if |det(a)| <= tolerance.
func newSolver(a [][]*big.Rat, tolerance float64) (s *lattice.Solver, err error) {

	if s, err = lattice.NewSolver(a); err != nil {
		return nil, err
	}

	det := s.Det()
	if det.Abs(det).Cmp(new(big.Rat).SetFloat64(tolerance)) <= 0 {
		return nil, fmt.Errorf("%w: |det| = %s is below the tolerance %v", ErrMatrixNotInvertible, det.FloatString(16), tolerance)
	}

	return
}

// GetParameters returns the underlying [Parameters].
func (dec Decryptor) GetParameters() *Parameters {
	return &dec.params
}

// Dim returns the dimension of the ciphertexts accepted by the decryptor.
func (dec Decryptor) Dim() int {
	return dec.solveP.Dim()
}

// DecodeCoordinates returns the coordinates, in the private basis, of the lattice point
// closest to ct according to Babai round-off: the exact solution u of u * P = ct,
// rounded coefficient-wise to the nearest integer with ties rounded to the even neighbour.
func (dec Decryptor) DecodeCoordinates(ct structs.Vector[float64]) (u []*big.Int, err error) {

	if len(ct) != dec.Dim() {
		return nil, fmt.Errorf("cannot DecodeCoordinates: %w: ciphertext has length %d but keys have dimension %d", ErrDimensionMismatch, len(ct), dec.Dim())
	}

	c, err := lattice.NewRatVector(ct)
	if err != nil {
		return nil, fmt.Errorf("cannot DecodeCoordinates: %w", err)
	}

	x, err := dec.solveP.SolveLeft(c)
	if err != nil {
		return nil, fmt.Errorf("cannot DecodeCoordinates: %w", err)
	}

	u = make([]*big.Int, len(x))
	for i := range x {
		u[i] = bignum.RoundRat(x[i])
	}

	return
}

// DecryptNew decrypts ct and returns the result on a newly allocated vector.
// If the error added at encryption is too large compared to the private basis,
// the result is a valid vector that does not match the encrypted message.
func (dec Decryptor) DecryptNew(ct structs.Vector[float64]) (pt structs.Vector[float64], err error) {
	pt = make(structs.Vector[float64], dec.Dim())
	return pt, dec.Decrypt(ct, pt)
}

// Decrypt decrypts ct and writes the result on pt.
// The lattice point closest to ct, given by [Decryptor.DecodeCoordinates], is expressed
// in the public basis by solving x * Q = u * P exactly.
func (dec Decryptor) Decrypt(ct, pt structs.Vector[float64]) (err error) {

	if len(pt) != dec.Dim() {
		return fmt.Errorf("cannot Decrypt: %w: plaintext has length %d but keys have dimension %d", ErrDimensionMismatch, len(pt), dec.Dim())
	}

	u, err := dec.DecodeCoordinates(ct)
	if err != nil {
		return fmt.Errorf("cannot Decrypt: %w", err)
	}

	v, err := lattice.MulVecMat(lattice.IntToRatVector(u), dec.p)
	if err != nil {
		return fmt.Errorf("cannot Decrypt: %w", err)
	}

	x, err := dec.solveQ.SolveLeft(v)
	if err != nil {
		return fmt.Errorf("cannot Decrypt: %w", err)
	}

	copy(pt, lattice.RatToFloat64Vector(x))

	return
}
