package lattice

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/ggh/utils/sampling"
	"github.com/tuneinsight/ggh/utils/structs"
)

func TestLattice(t *testing.T) {
	testDet(t)
	testSolver(t)
	testSameLattice(t)
	testHadamardRatio(t)
	testConversions(t)
}

func randomMatrix(t *testing.T, s *sampling.UniformSampler, n int) structs.Matrix[int64] {
	m := structs.NewMatrix[int64](n, n)
	for i := range m {
		require.NoError(t, s.Read(m[i]))
	}
	return m
}

func testDet(t *testing.T) {

	t.Run("Det/Small", func(t *testing.T) {
		for _, tc := range []struct {
			m    structs.Matrix[int64]
			want int64
		}{
			{structs.Matrix[int64]{{7, 0, 0}, {0, 5, 0}, {0, 0, 3}}, 105},
			{structs.Matrix[int64]{{2, 1}, {1, 1}}, 1},
			{structs.Matrix[int64]{{1, 2}, {2, 4}}, 0},
			{structs.Matrix[int64]{{0, 1}, {1, 0}}, -1},
			{structs.Matrix[int64]{{0, 2, 1}, {1, 0, 3}, {2, 1, 0}}, 13},
			{structs.Matrix[int64]{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}}, -1},
			{structs.Matrix[int64]{{-4}}, -4},
		} {
			det, err := Det(tc.m)
			require.NoError(t, err)
			require.Equal(t, tc.want, det.Int64(), "%v", tc.m)
		}
	})

	t.Run("Det/NotSquare", func(t *testing.T) {
		_, err := Det(structs.Matrix[int64]{{1, 2}})
		require.ErrorIs(t, err, ErrDimensionMismatch)
		_, err = Det(structs.Matrix[int64]{})
		require.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("Det/Random/MatchesSolver", func(t *testing.T) {
		prng, _ := sampling.NewKeyedPRNG([]byte{'d', 'e', 't'})
		s, err := sampling.NewUniformSampler(prng, -5, 5)
		require.NoError(t, err)

		for n := 1; n < 7; n++ {
			for k := 0; k < 16; k++ {
				m := randomMatrix(t, s, n)

				det, err := Det(m)
				require.NoError(t, err)

				r, err := NewRatMatrix(m)
				require.NoError(t, err)

				solver, err := NewSolver(r)
				if det.Sign() == 0 {
					require.ErrorIs(t, err, ErrSingularMatrix)
					continue
				}

				require.NoError(t, err)
				require.Equal(t, 0, solver.Det().Cmp(new(big.Rat).SetInt(det)))
				require.Equal(t, det.CmpAbs(big.NewInt(1)) == 0, IsUnimodular(NewBigMatrix(m)))
			}
		}
	})

	t.Run("Det/Product", func(t *testing.T) {
		a := NewBigMatrix(structs.Matrix[int64]{{2, 1, 0}, {1, 1, 0}, {0, 0, 1}})
		b := NewBigMatrix(structs.Matrix[int64]{{1, 0, 0}, {3, 1, 0}, {-2, 4, 1}})
		c, err := MulInt(a, b)
		require.NoError(t, err)
		require.Equal(t, int64(1), DetInt(c).Int64())
		require.True(t, IsUnimodular(c))
		require.False(t, IsUnimodular(NewBigMatrix(structs.Matrix[int64]{{7, 0}, {0, 5}})))

		_, err = MulInt(a, NewIntMatrix(2, 3))
		require.ErrorIs(t, err, ErrDimensionMismatch)
	})
}

func testSolver(t *testing.T) {

	t.Run("Solver/Diagonal", func(t *testing.T) {
		a, err := NewRatMatrix(structs.Matrix[int64]{{7, 0, 0}, {0, 5, 0}, {0, 0, 3}})
		require.NoError(t, err)
		s, err := NewSolver(a)
		require.NoError(t, err)
		require.Equal(t, 3, s.Dim())

		b, err := NewRatVector([]int64{21, -10, 3})
		require.NoError(t, err)
		x, err := s.SolveLeft(b)
		require.NoError(t, err)
		require.Equal(t, []float64{3, -2, 1}, []float64(RatToFloat64Vector(x)))

		_, err = s.SolveLeft(b[:2])
		require.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("Solver/Random", func(t *testing.T) {
		prng, _ := sampling.NewKeyedPRNG([]byte{'s', 'o', 'l', 'v', 'e'})
		s, err := sampling.NewUniformSampler(prng, -9, 10)
		require.NoError(t, err)

		for n := 1; n < 8; n++ {
			m := randomMatrix(t, s, n)
			for i := range m {
				m[i][i] += 100 // strictly diagonally dominant, hence invertible
			}

			a, err := NewRatMatrix(m)
			require.NoError(t, err)
			solver, err := NewSolver(a)
			require.NoError(t, err)

			want := make([]int64, n)
			require.NoError(t, s.Read(want))
			x, err := NewRatVector(want)
			require.NoError(t, err)

			b, err := MulVecMat(x, a)
			require.NoError(t, err)

			have, err := solver.SolveLeft(b)
			require.NoError(t, err)

			for i := range have {
				require.Zero(t, have[i].Cmp(x[i]))
			}
		}
	})

	t.Run("Solver/Singular", func(t *testing.T) {
		a, err := NewRatMatrix(structs.Matrix[float64]{{1, 2, 3}, {2, 4, 6}, {0, 1, 1}})
		require.NoError(t, err)
		_, err = NewSolver(a)
		require.ErrorIs(t, err, ErrSingularMatrix)
	})
}

func testSameLattice(t *testing.T) {

	p, err := NewRatMatrix(structs.Matrix[int64]{{7, 0, 0}, {0, 5, 0}, {0, 0, 3}})
	require.NoError(t, err)

	t.Run("SameLattice/Unimodular", func(t *testing.T) {
		m := NewBigMatrix(structs.Matrix[int64]{{2, 1, 0}, {1, 1, 0}, {4, -3, 1}})
		q, err := MulInt(m, NewBigMatrix(structs.Matrix[int64]{{7, 0, 0}, {0, 5, 0}, {0, 0, 3}}))
		require.NoError(t, err)

		same, T, err := SameLattice(IntToRatMatrix(q), p)
		require.NoError(t, err)
		require.True(t, same)
		for i := range T {
			for j := range T[i] {
				require.Zero(t, T[i][j].Cmp(new(big.Rat).SetInt(m[i][j])))
			}
		}
	})

	t.Run("SameLattice/Sublattice", func(t *testing.T) {
		q, err := NewRatMatrix(structs.Matrix[int64]{{14, 0, 0}, {0, 5, 0}, {0, 0, 3}})
		require.NoError(t, err)
		same, _, err := SameLattice(q, p)
		require.NoError(t, err)
		require.False(t, same)
	})

	t.Run("SameLattice/NonIntegral", func(t *testing.T) {
		q, err := NewRatMatrix(structs.Matrix[int64]{{1, 0, 0}, {0, 5, 0}, {0, 0, 3}})
		require.NoError(t, err)
		same, _, err := SameLattice(q, p)
		require.NoError(t, err)
		require.False(t, same)
	})
}

func testHadamardRatio(t *testing.T) {

	t.Run("HadamardRatio/Orthogonal", func(t *testing.T) {
		ratio, err := HadamardRatio(structs.Matrix[int64]{{7, 0, 0}, {0, 5, 0}, {0, 0, 3}})
		require.NoError(t, err)
		require.InDelta(t, 1, ratio, 1e-12)
	})

	t.Run("HadamardRatio/Skewed", func(t *testing.T) {
		ratio, err := HadamardRatio(structs.Matrix[float64]{{1, 0}, {100, 1}})
		require.NoError(t, err)
		require.InDelta(t, math.Sqrt(1/math.Sqrt(10001)), ratio, 1e-12)
	})

	t.Run("HadamardRatio/Singular", func(t *testing.T) {
		_, err := HadamardRatio(structs.Matrix[int64]{{1, 1}, {1, 1}})
		require.ErrorIs(t, err, ErrSingularMatrix)
	})
}

func testConversions(t *testing.T) {

	t.Run("NewRat/NonFinite", func(t *testing.T) {
		_, err := NewRatVector([]float64{1, math.NaN()})
		require.Error(t, err)
		_, err = NewRatMatrix(structs.Matrix[float64]{{math.Inf(1)}})
		require.Error(t, err)
	})

	t.Run("IntToFloat64Matrix", func(t *testing.T) {
		m := NewIdentity(2)
		m[0][1].Lsh(big.NewInt(1), 53)
		f, err := IntToFloat64Matrix(m)
		require.NoError(t, err)
		require.Equal(t, structs.Matrix[float64]{{1, 1 << 53}, {0, 1}}, f)

		m[0][1].Add(m[0][1], big.NewInt(1))
		_, err = IntToFloat64Matrix(m)
		require.Error(t, err)
	})
}
