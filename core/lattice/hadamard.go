package lattice

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/ggh/utils/bignum"
	"github.com/tuneinsight/ggh/utils/structs"
)

// HadamardPrecision is the precision in bits of the big.Float arithmetic used by [HadamardRatio].
const HadamardPrecision = 256

// HadamardRatio returns the Hadamard ratio (|det(B)| / prod_i ||b_i||)^(1/n) of the basis B
// whose rows are the vectors b_i. The ratio lies in (0, 1] and equals 1 exactly for
// orthogonal bases: the closer to 1, the more reduced the basis.
func HadamardRatio[T Number](basis structs.Matrix[T]) (ratio float64, err error) {

	var b [][]*big.Rat
	if b, err = NewRatMatrix(basis); err != nil {
		return 0, fmt.Errorf("cannot HadamardRatio: %w", err)
	}

	var s *Solver
	if s, err = NewSolver(b); err != nil {
		return 0, fmt.Errorf("cannot HadamardRatio: %w", err)
	}

	prec := uint(HadamardPrecision)

	det := bignum.NewFloat(s.Det(), prec)
	det.Abs(det)

	norms := bignum.NewFloat(1, prec)
	sq := new(big.Rat)
	tmp := new(big.Rat)
	for i := range b {
		sq.SetInt64(0)
		for j := range b[i] {
			sq.Add(sq, tmp.Mul(b[i][j], b[i][j]))
		}
		norms.Mul(norms, new(big.Float).SetPrec(prec).Sqrt(bignum.NewFloat(sq, prec)))
	}

	ratio, _ = bignum.Root(det.Quo(det, norms), len(b)).Float64()

	return
}
