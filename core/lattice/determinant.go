package lattice

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/ggh/utils/structs"
)

// Det returns the exact determinant of the square integer matrix a.
// It uses the fraction-free Bareiss elimination, so all intermediate
// values are integers and are bounded by minors of a.
func Det(a structs.Matrix[int64]) (det *big.Int, err error) {

	if err = IsSquare(a); err != nil {
		return nil, fmt.Errorf("cannot Det: %w", err)
	}

	return DetInt(NewBigMatrix(a)), nil
}

// DetInt returns the exact determinant of the square matrix a.
// The input is not modified. The caller must ensure that a is square.
func DetInt(a [][]*big.Int) (det *big.Int) {

	n := len(a)

	m := make([][]*big.Int, n)
	for i := range a {
		m[i] = make([]*big.Int, n)
		for j := range a[i] {
			m[i][j] = new(big.Int).Set(a[i][j])
		}
	}

	sign := 1
	prev := big.NewInt(1)
	tmp := new(big.Int)

	for k := 0; k < n-1; k++ {

		if m[k][k].Sign() == 0 {

			p := k + 1
			for p < n && m[p][k].Sign() == 0 {
				p++
			}

			if p == n {
				return new(big.Int)
			}

			m[k], m[p] = m[p], m[k]
			sign = -sign
		}

		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				// m[i][j] = (m[i][j] * m[k][k] - m[i][k] * m[k][j]) / prev, the division is exact
				m[i][j].Mul(m[i][j], m[k][k])
				m[i][j].Sub(m[i][j], tmp.Mul(m[i][k], m[k][j]))
				m[i][j].Quo(m[i][j], prev)
			}
		}

		prev = m[k][k]
	}

	det = new(big.Int).Set(m[n-1][n-1])

	if sign < 0 {
		det.Neg(det)
	}

	return
}

// IsUnimodular returns true if a is a square integer matrix of determinant +1 or -1.
func IsUnimodular(a [][]*big.Int) bool {

	if IsSquare(a) != nil {
		return false
	}

	return DetInt(a).CmpAbs(big.NewInt(1)) == 0
}
