package ggh

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// PrecisionStats is a struct storing statistics about the distance between
// decrypted vectors and the messages they are expected to match.
type PrecisionStats struct {
	MINErr float64
	MAXErr float64
	AVGErr float64
	MEDErr float64
	STDErr float64

	// Exact is the number of coefficients that were recovered exactly.
	Exact int
	Count int
}

func (prec PrecisionStats) String() string {
	return fmt.Sprintf(`
┌─────────┬──────────┐
│   |Err| │ VALUE    │
├─────────┼──────────┤
│MIN      │ %8.2e │
│MAX      │ %8.2e │
│AVG      │ %8.2e │
│MED      │ %8.2e │
│STD      │ %8.2e │
├─────────┼──────────┤
│EXACT    │ %4d/%-4d│
└─────────┴──────────┘
`,
		prec.MINErr,
		prec.MAXErr,
		prec.AVGErr,
		prec.MEDErr,
		prec.STDErr,
		prec.Exact, prec.Count)
}

// GetPrecisionStats generates a [PrecisionStats] struct from the reference messages want
// and the decrypted vectors have, by comparing them coefficient-wise.
func GetPrecisionStats(want [][]int64, have [][]float64) (prec PrecisionStats, err error) {

	if len(want) != len(have) {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w: %d messages but %d decrypted vectors", ErrDimensionMismatch, len(want), len(have))
	}

	var diff stats.Float64Data
	for i := range want {

		if len(want[i]) != len(have[i]) {
			return prec, fmt.Errorf("cannot GetPrecisionStats: %w: message %d has length %d but decrypted vector has length %d", ErrDimensionMismatch, i, len(want[i]), len(have[i]))
		}

		for j := range want[i] {
			d := math.Abs(have[i][j] - float64(want[i][j]))
			if d == 0 {
				prec.Exact++
			}
			diff = append(diff, d)
		}
	}

	prec.Count = len(diff)

	if prec.Count == 0 {
		return prec, fmt.Errorf("cannot GetPrecisionStats: no coefficients to compare")
	}

	if prec.MINErr, err = stats.Min(diff); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.MAXErr, err = stats.Max(diff); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.AVGErr, err = stats.Mean(diff); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.MEDErr, err = stats.Median(diff); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.STDErr, err = stats.StandardDeviation(diff); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	return
}
