package lattice

import (
	"fmt"
	"math/big"
)

// Solver stores an exact LU decomposition of a square rational matrix A and
// solves left systems x * A = b without ever computing the inverse of A.
type Solver struct {
	lu   [][]*big.Rat // LU factors of the row-permuted transpose of A
	perm []int
	det  *big.Rat
}

// NewSolver factorizes a. The input is not modified.
// It returns an error wrapping [ErrSingularMatrix] if det(a) = 0 and an
// error wrapping [ErrDimensionMismatch] if a is not square.
func NewSolver(a [][]*big.Rat) (s *Solver, err error) {

	if err = IsSquare(a); err != nil {
		return nil, fmt.Errorf("cannot NewSolver: %w", err)
	}

	n := len(a)

	// x * A = b  <=>  A^T * x^T = b^T
	lu := make([][]*big.Rat, n)
	for i := range lu {
		lu[i] = make([]*big.Rat, n)
		for j := range lu[i] {
			lu[i][j] = new(big.Rat).Set(a[j][i])
		}
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	det := big.NewRat(1, 1)
	f := new(big.Rat)
	tmp := new(big.Rat)

	for k := 0; k < n; k++ {

		p := k
		for p < n && lu[p][k].Sign() == 0 {
			p++
		}

		if p == n {
			return nil, fmt.Errorf("cannot NewSolver: %w", ErrSingularMatrix)
		}

		if p != k {
			lu[k], lu[p] = lu[p], lu[k]
			perm[k], perm[p] = perm[p], perm[k]
			det.Neg(det)
		}

		det.Mul(det, lu[k][k])

		for i := k + 1; i < n; i++ {

			if lu[i][k].Sign() == 0 {
				continue
			}

			f.Quo(lu[i][k], lu[k][k])

			for j := k + 1; j < n; j++ {
				lu[i][j].Sub(lu[i][j], tmp.Mul(f, lu[k][j]))
			}

			lu[i][k].Set(f)
		}
	}

	return &Solver{lu: lu, perm: perm, det: det}, nil
}

// Dim returns the dimension of the factorized matrix.
func (s Solver) Dim() int {
	return len(s.lu)
}

// Det returns a copy of the determinant of the factorized matrix.
func (s Solver) Det() *big.Rat {
	return new(big.Rat).Set(s.det)
}

// SolveLeft returns the unique x such that x * A = b.
func (s Solver) SolveLeft(b []*big.Rat) (x []*big.Rat, err error) {

	n := len(s.lu)

	if len(b) != n {
		return nil, fmt.Errorf("cannot SolveLeft: %w: vector has length %d but matrix has dimension %d", ErrDimensionMismatch, len(b), n)
	}

	x = make([]*big.Rat, n)
	for i := range x {
		x[i] = new(big.Rat).Set(b[s.perm[i]])
	}

	tmp := new(big.Rat)

	// L has an implicit unit diagonal
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			x[i].Sub(x[i], tmp.Mul(s.lu[i][j], x[j]))
		}
	}

	for i := n - 1; i >= 0; i-- {
		for j := i + 1; j < n; j++ {
			x[i].Sub(x[i], tmp.Mul(s.lu[i][j], x[j]))
		}
		x[i].Quo(x[i], s.lu[i][i])
	}

	return
}

// SameLattice returns true if the rows of a and b generate the same lattice,
// that is, if a = T * b for an integer matrix T of determinant +1 or -1.
// It also returns T.
func SameLattice(a, b [][]*big.Rat) (same bool, T [][]*big.Rat, err error) {

	if len(a) != len(b) {
		return false, nil, fmt.Errorf("cannot SameLattice: %w: %d rows against %d", ErrDimensionMismatch, len(a), len(b))
	}

	var s *Solver
	if s, err = NewSolver(b); err != nil {
		return false, nil, fmt.Errorf("cannot SameLattice: %w", err)
	}

	T = make([][]*big.Rat, len(a))
	for i := range a {
		if T[i], err = s.SolveLeft(a[i]); err != nil {
			return false, nil, fmt.Errorf("cannot SameLattice: %w", err)
		}
	}

	for i := range T {
		for j := range T[i] {
			if !T[i][j].IsInt() {
				return false, T, nil
			}
		}
	}

	var st *Solver
	if st, err = NewSolver(T); err != nil {
		return false, T, nil
	}

	det := st.Det()

	return det.IsInt() && new(big.Int).Abs(det.Num()).Cmp(big.NewInt(1)) == 0, T, nil
}
