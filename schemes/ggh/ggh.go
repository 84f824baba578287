// Package ggh implements a simplified variant of the Goldreich-Goldwasser-Halevi
// public-key cryptosystem over integer lattices.
//
// A [PrivateKey] is a well reduced basis P of a lattice. The [PublicKey] is the basis
// Q = M * P of the same lattice, for M a random unimodular matrix of determinant +1.
// A message m is encrypted as the lattice point m * Q perturbed by a small error
// vector e, and decrypted by Babai round-off: the ciphertext is expressed in the
// private basis, rounded to the closest lattice point, and expressed back in the
// public basis. Decryption is exact as long as e is small compared to P.
//
// Bases are stored row-wise and all linear algebra is carried out exactly over the
// rationals. The scheme is an educational construction: its key generation is not
// hardened against lattice reduction attacks and it must not be used to protect data.
package ggh

import (
	"fmt"

	"github.com/tuneinsight/ggh/utils/sampling"
	"github.com/tuneinsight/ggh/utils/structs"
)

// DerivePublicKey derives a public key from the private key sk, reading the randomness from prng.
// If prng is nil, a cryptographically secure source is used.
func DerivePublicKey(params Parameters, sk *PrivateKey, prng sampling.PRNG) (pk *PublicKey, err error) {

	kgen := NewKeyGenerator(params)

	if prng != nil {
		kgen = kgen.WithPRNG(prng)
	}

	if pk, err = kgen.GenPublicKeyNew(sk); err != nil {
		return nil, fmt.Errorf("cannot DerivePublicKey: %w", err)
	}

	return
}

// Encrypt encrypts the message m with the public key pk.
func Encrypt(params Parameters, m []int64, pk *PublicKey) (ct structs.Vector[float64], err error) {

	enc, err := NewEncryptor(params, pk)
	if err != nil {
		return nil, fmt.Errorf("cannot Encrypt: %w", err)
	}

	if ct, err = enc.EncryptNew(m); err != nil {
		return nil, fmt.Errorf("cannot Encrypt: %w", err)
	}

	return
}

// Decrypt decrypts the ciphertext ct with the private key sk and its public key pk.
func Decrypt(params Parameters, ct structs.Vector[float64], sk *PrivateKey, pk *PublicKey) (pt structs.Vector[float64], err error) {

	dec, err := NewDecryptor(params, sk, pk)
	if err != nil {
		return nil, fmt.Errorf("cannot Decrypt: %w", err)
	}

	if pt, err = dec.DecryptNew(ct); err != nil {
		return nil, fmt.Errorf("cannot Decrypt: %w", err)
	}

	return
}
