package ggh

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/ggh/core/lattice"
	"github.com/tuneinsight/ggh/utils/sampling"
	"github.com/tuneinsight/ggh/utils/structs"
)

// KeyGenerator is a structure that stores the elements required to create new keys.
// A KeyGenerator owns its source of randomness and is not safe for concurrent use;
// concurrent derivations must use distinct key generators (see [KeyGenerator.WithPRNG]).
type KeyGenerator struct {
	params Parameters
	prng   sampling.PRNG
}

// NewKeyGenerator creates a new [KeyGenerator], reading its randomness
// from a cryptographically secure source.
func NewKeyGenerator(params Parameters) *KeyGenerator {

	prng, err := sampling.NewPRNG()
	if err != nil {
		panic(err)
	}

	return &KeyGenerator{
		params: params,
		prng:   prng,
	}
}

// WithPRNG returns this key generator with prng as its source of randomness.
// Using a [sampling.KeyedPRNG] makes the generated keys reproducible.
// The returned key generator isn't safe to use concurrently with the original key generator.
func (kgen KeyGenerator) WithPRNG(prng sampling.PRNG) *KeyGenerator {
	kgen.prng = prng
	return &kgen
}

// GetParameters returns the underlying [Parameters].
func (kgen KeyGenerator) GetParameters() *Parameters {
	return &kgen.params
}

// GenPrivateKeyNew generates a new well reduced private basis of dimension n.
// The basis is k * I + R, with R sampled uniformly in [-L, L]^{n x n}, L = params.PrivateBound(),
// and k = n*L + 2*params.ErrorBound() + 1. The basis is strictly diagonally dominant, which
// ensures that it is invertible and that the error vector of the parameters always decodes.
func (kgen KeyGenerator) GenPrivateKeyNew(n int) (sk *PrivateKey, err error) {

	if n <= 0 {
		return nil, fmt.Errorf("cannot GenPrivateKeyNew: %w: dimension must be positive but is %d", ErrDimensionMismatch, n)
	}

	L := kgen.params.PrivateBound()

	sampler, err := sampling.NewUniformSampler(kgen.prng, -L, L+1)
	if err != nil {
		return nil, fmt.Errorf("cannot GenPrivateKeyNew: %w", err)
	}

	k := int64(n)*L + 2*kgen.params.ErrorBound() + 1

	basis := structs.NewMatrix[int64](n, n)
	for i := range basis {
		if err = sampler.Read(basis[i]); err != nil {
			return nil, fmt.Errorf("cannot GenPrivateKeyNew: %w", err)
		}
		basis[i][i] += k
	}

	return NewPrivateKey(basis)
}

// GenTransformNew samples a new unimodular matrix M of dimension n and determinant +1, product of
// params.Factors() random factors whose coefficients are sampled uniformly in [-B, B), B = params.SampleBound().
// Candidate factors are kept only if their determinant, computed exactly, is exactly +1: factors
// of determinant -1 are rejected.
// It returns an error wrapping [ErrKeyDerivationTimeout] if more than params.MaxAttempts() candidates
// are sampled.
func (kgen KeyGenerator) GenTransformNew(n int) (M [][]*big.Int, err error) {

	if n <= 0 {
		return nil, fmt.Errorf("cannot GenTransformNew: %w: dimension must be positive but is %d", ErrDimensionMismatch, n)
	}

	B := kgen.params.SampleBound()

	sampler, err := sampling.NewUniformSampler(kgen.prng, -B, B)
	if err != nil {
		return nil, fmt.Errorf("cannot GenTransformNew: %w", err)
	}

	one := big.NewInt(1)

	M = lattice.NewIdentity(n)
	A := structs.NewMatrix[int64](n, n)

	var accepted int
	for attempts := 0; accepted < kgen.params.Factors(); attempts++ {

		if attempts == kgen.params.MaxAttempts() {
			return nil, fmt.Errorf("cannot GenTransformNew: %w: %d/%d factors found after %d attempts", ErrKeyDerivationTimeout, accepted, kgen.params.Factors(), attempts)
		}

		for i := range A {
			if err = sampler.Read(A[i]); err != nil {
				return nil, fmt.Errorf("cannot GenTransformNew: %w", err)
			}
		}

		Abig := lattice.NewBigMatrix(A)

		if lattice.DetInt(Abig).Cmp(one) != 0 {
			continue
		}

		if M, err = lattice.MulInt(M, Abig); err != nil {
			return nil, fmt.Errorf("cannot GenTransformNew: %w", err)
		}

		accepted++
	}

	return
}

// GenPublicKeyNew derives a new public key from sk, as M * sk.Basis, for M
// a new unimodular transform sampled with [KeyGenerator.GenTransformNew].
func (kgen KeyGenerator) GenPublicKeyNew(sk *PrivateKey) (pk *PublicKey, err error) {

	M, err := kgen.GenTransformNew(sk.Dim())
	if err != nil {
		return nil, fmt.Errorf("cannot GenPublicKeyNew: %w", err)
	}

	if pk, err = ApplyTransform(M, sk); err != nil {
		return nil, fmt.Errorf("cannot GenPublicKeyNew: %w", err)
	}

	return
}

// GenKeyPairNew generates a new private key of dimension n and its public key.
func (kgen KeyGenerator) GenKeyPairNew(n int) (sk *PrivateKey, pk *PublicKey, err error) {

	if sk, err = kgen.GenPrivateKeyNew(n); err != nil {
		return nil, nil, fmt.Errorf("cannot GenKeyPairNew: %w", err)
	}

	if pk, err = kgen.GenPublicKeyNew(sk); err != nil {
		return nil, nil, fmt.Errorf("cannot GenKeyPairNew: %w", err)
	}

	return
}

// ApplyTransform returns the public key M * sk.Basis.
// The product is computed exactly. It returns an error wrapping [ErrPrecisionOverflow]
// if a coefficient of the product cannot be represented exactly by a float64.
func ApplyTransform(M [][]*big.Int, sk *PrivateKey) (pk *PublicKey, err error) {

	if len(M) != sk.Dim() {
		return nil, fmt.Errorf("cannot ApplyTransform: %w: transform has dimension %d but private key has dimension %d", ErrDimensionMismatch, len(M), sk.Dim())
	}

	Q, err := lattice.MulInt(M, lattice.NewBigMatrix(sk.Basis))
	if err != nil {
		return nil, fmt.Errorf("cannot ApplyTransform: %w", err)
	}

	basis, err := lattice.IntToFloat64Matrix(Q)
	if err != nil {
		return nil, fmt.Errorf("cannot ApplyTransform: %w: %w", ErrPrecisionOverflow, err)
	}

	return &PublicKey{Basis: basis}, nil
}

// IsPublicKeyOf returns true if the rows of pk.Basis generate the same lattice as the rows of sk.Basis.
func IsPublicKeyOf(pk *PublicKey, sk *PrivateKey) (ok bool, err error) {

	Q, err := lattice.NewRatMatrix(pk.Basis)
	if err != nil {
		return false, fmt.Errorf("cannot IsPublicKeyOf: %w", err)
	}

	P, err := lattice.NewRatMatrix(sk.Basis)
	if err != nil {
		return false, fmt.Errorf("cannot IsPublicKeyOf: %w", err)
	}

	if ok, _, err = lattice.SameLattice(Q, P); err != nil {
		return false, fmt.Errorf("cannot IsPublicKeyOf: %w", err)
	}

	return
}
