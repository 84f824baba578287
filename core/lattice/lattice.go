// Package lattice implements the exact integer and rational linear algebra
// used by lattice-based schemes: determinants, products, left-solvers and
// basis quality measures over bases stored row-wise.
//
// Integer arithmetic is carried out with [math/big] so that results such as
// unimodularity tests never suffer from floating-point rounding.
package lattice

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/tuneinsight/ggh/utils/structs"
)

var (
	// ErrDimensionMismatch is returned when the dimensions of two operands disagree.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrSingularMatrix is returned when a matrix that must be inverted has a zero determinant.
	ErrSingularMatrix = errors.New("matrix is not invertible")
)

// Number is the set of scalar types a basis or a vector can be stored with.
type Number interface {
	int64 | float64
}

// NewIdentity returns the n x n identity matrix.
func NewIdentity(n int) (m [][]*big.Int) {
	m = NewIntMatrix(n, n)
	for i := range m {
		m[i][i].SetInt64(1)
	}
	return
}

// NewIntMatrix allocates a new zero rows x cols matrix of *big.Int.
func NewIntMatrix(rows, cols int) (m [][]*big.Int) {
	m = make([][]*big.Int, rows)
	for i := range m {
		m[i] = make([]*big.Int, cols)
		for j := range m[i] {
			m[i][j] = new(big.Int)
		}
	}
	return
}

// NewBigMatrix returns a copy of a on *big.Int.
func NewBigMatrix(a structs.Matrix[int64]) (m [][]*big.Int) {
	m = make([][]*big.Int, len(a))
	for i := range a {
		m[i] = make([]*big.Int, len(a[i]))
		for j := range a[i] {
			m[i][j] = big.NewInt(a[i][j])
		}
	}
	return
}

// NewRat returns x as a *big.Rat. The conversion is exact.
// It returns an error if x is not a finite number.
func NewRat[T Number](x T) (r *big.Rat, err error) {
	switch x := any(x).(type) {
	case int64:
		return new(big.Rat).SetInt64(x), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("cannot NewRat: %v is not a finite number", x)
		}
		return new(big.Rat).SetFloat64(x), nil
	default:
		panic(fmt.Errorf("cannot NewRat: invalid type %T", x))
	}
}

// NewRatVector returns an exact copy of v on *big.Rat.
func NewRatVector[T Number](v []T) (r []*big.Rat, err error) {
	r = make([]*big.Rat, len(v))
	for i := range v {
		if r[i], err = NewRat(v[i]); err != nil {
			return nil, fmt.Errorf("cannot NewRatVector: coefficient %d: %w", i, err)
		}
	}
	return
}

// NewRatMatrix returns an exact copy of a on *big.Rat.
func NewRatMatrix[T Number](a structs.Matrix[T]) (r [][]*big.Rat, err error) {
	r = make([][]*big.Rat, len(a))
	for i := range a {
		if r[i], err = NewRatVector(a[i]); err != nil {
			return nil, fmt.Errorf("cannot NewRatMatrix: row %d: %w", i, err)
		}
	}
	return
}

// IntToRatVector returns a copy of v on *big.Rat.
func IntToRatVector(v []*big.Int) (r []*big.Rat) {
	r = make([]*big.Rat, len(v))
	for i := range v {
		r[i] = new(big.Rat).SetInt(v[i])
	}
	return
}

// IntToRatMatrix returns a copy of a on *big.Rat.
func IntToRatMatrix(a [][]*big.Int) (r [][]*big.Rat) {
	r = make([][]*big.Rat, len(a))
	for i := range a {
		r[i] = IntToRatVector(a[i])
	}
	return
}

// RatToFloat64Vector returns the nearest float64 values of v.
func RatToFloat64Vector(v []*big.Rat) (f structs.Vector[float64]) {
	f = make([]float64, len(v))
	for i := range v {
		f[i], _ = v[i].Float64()
	}
	return
}

// IntToFloat64Matrix returns a copy of a on float64. It returns an error if a
// coefficient has a magnitude larger than 2^53, that is, if it cannot be
// represented exactly by a float64.
func IntToFloat64Matrix(a [][]*big.Int) (f structs.Matrix[float64], err error) {

	bound := new(big.Int).Lsh(big.NewInt(1), 53)

	f = structs.NewMatrix[float64](len(a), 0)
	for i := range a {
		f[i] = make([]float64, len(a[i]))
		for j := range a[i] {
			if a[i][j].CmpAbs(bound) > 0 {
				return nil, fmt.Errorf("cannot IntToFloat64Matrix: coefficient [%d][%d] has %d bits", i, j, a[i][j].BitLen())
			}
			f[i][j], _ = new(big.Float).SetInt(a[i][j]).Float64()
		}
	}

	return
}

// IsSquare returns an error wrapping [ErrDimensionMismatch] if a is not a
// non-empty square matrix.
func IsSquare[T any](a [][]T) error {

	if len(a) == 0 {
		return fmt.Errorf("%w: matrix is empty", ErrDimensionMismatch)
	}

	for i := range a {
		if len(a[i]) != len(a) {
			return fmt.Errorf("%w: row %d has %d columns but the matrix has %d rows", ErrDimensionMismatch, i, len(a[i]), len(a))
		}
	}

	return nil
}

// MulInt returns a * b.
func MulInt(a, b [][]*big.Int) (c [][]*big.Int, err error) {

	if len(a) == 0 || len(b) == 0 {
		return nil, fmt.Errorf("cannot MulInt: %w: empty operand", ErrDimensionMismatch)
	}

	inner := len(b)
	cols := len(b[0])

	for i := range a {
		if len(a[i]) != inner {
			return nil, fmt.Errorf("cannot MulInt: %w: row %d of a has %d columns but b has %d rows", ErrDimensionMismatch, i, len(a[i]), inner)
		}
	}

	c = NewIntMatrix(len(a), cols)
	tmp := new(big.Int)

	for i := range a {
		for j := 0; j < cols; j++ {
			for k := 0; k < inner; k++ {
				c[i][j].Add(c[i][j], tmp.Mul(a[i][k], b[k][j]))
			}
		}
	}

	return
}

// MulVecMat returns the row vector v * a.
func MulVecMat(v []*big.Rat, a [][]*big.Rat) (r []*big.Rat, err error) {

	if len(v) != len(a) {
		return nil, fmt.Errorf("cannot MulVecMat: %w: vector has length %d but matrix has %d rows", ErrDimensionMismatch, len(v), len(a))
	}

	if len(a) == 0 {
		return []*big.Rat{}, nil
	}

	cols := len(a[0])
	r = make([]*big.Rat, cols)
	tmp := new(big.Rat)

	for j := range r {
		r[j] = new(big.Rat)
		for i := range v {
			if len(a[i]) != cols {
				return nil, fmt.Errorf("cannot MulVecMat: %w: matrix is not rectangular", ErrDimensionMismatch)
			}
			r[j].Add(r[j], tmp.Mul(v[i], a[i][j]))
		}
	}

	return
}
