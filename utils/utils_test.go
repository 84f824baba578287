package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinMax(t *testing.T) {
	require.Equal(t, 3, Min(3, 5))
	require.Equal(t, -5.0, Min(3.0, -5.0))
	require.Equal(t, 5, Max(3, 5))
	require.Equal(t, int64(7), Max(int64(7), int64(-9)))
}

func TestAbs(t *testing.T) {
	require.Equal(t, int64(4), Abs(int64(-4)))
	require.Equal(t, 2.5, Abs(2.5))
	require.Equal(t, int64(9), MaxAbsSlice([]int64{1, -9, 3}))
	require.Equal(t, int64(0), MaxAbsSlice([]int64{}))
}

func TestAlternatingSigns(t *testing.T) {
	require.Equal(t, []int64{1, -1, 1}, AlternatingSigns(int64(1), 3))
	require.Equal(t, []int64{2, -2, 2, -2}, AlternatingSigns(int64(2), 4))
	require.Empty(t, AlternatingSigns(int64(1), 0))
}
