package ggh

import (
	"errors"

	"github.com/tuneinsight/ggh/core/lattice"
)

var (
	// ErrDimensionMismatch is returned when the dimensions of the operands of an operation disagree.
	ErrDimensionMismatch = lattice.ErrDimensionMismatch

	// ErrMatrixNotInvertible is returned when a basis that must be inverted has a zero,
	// or numerically negligible, determinant.
	ErrMatrixNotInvertible = lattice.ErrSingularMatrix

	// ErrKeyDerivationTimeout is returned when the public key derivation could not find
	// enough unimodular factors within the attempt budget of the parameters.
	ErrKeyDerivationTimeout = errors.New("key derivation timeout")

	// ErrPrecisionOverflow is returned when a derived public basis has coefficients that
	// cannot be represented exactly by a float64.
	ErrPrecisionOverflow = errors.New("public basis exceeds float64 precision")
)
