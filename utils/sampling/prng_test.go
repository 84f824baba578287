package sampling_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/ggh/utils/sampling"
)

func Test_PRNG(t *testing.T) {

	t.Run("PRNG", func(t *testing.T) {

		key := []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb,
			0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

		Ha, _ := sampling.NewKeyedPRNG(key)
		Hb, _ := sampling.NewKeyedPRNG(key)

		sum0 := make([]byte, 512)
		sum1 := make([]byte, 512)

		for i := 0; i < 128; i++ {
			Hb.Read(sum1)
		}

		Hb.Reset()

		Ha.Read(sum0)
		Hb.Read(sum1)

		require.Equal(t, sum0, sum1)
		require.Equal(t, key, Ha.Key())

		Hc, err := sampling.NewKeyedPRNG(Ha.Key())
		require.NoError(t, err)
		Hc.Read(sum1)
		require.Equal(t, sum0, sum1)
	})

	t.Run("ThreadSafePRNG", func(t *testing.T) {
		prng, err := sampling.NewPRNG()
		require.NoError(t, err)
		sum := make([]byte, 64)
		n, err := prng.Read(sum)
		require.NoError(t, err)
		require.Equal(t, 64, n)
	})
}

func Test_UniformSampler(t *testing.T) {

	prng, err := sampling.NewKeyedPRNG([]byte{'g', 'g', 'h'})
	require.NoError(t, err)

	t.Run("Interval", func(t *testing.T) {
		for _, bound := range [][2]int64{{-5, 5}, {-4, 5}, {0, 1}, {-1 << 40, 1 << 40}, {3, 4}} {
			s, err := sampling.NewUniformSampler(prng, bound[0], bound[1])
			require.NoError(t, err)
			values, err := s.ReadNew(1024)
			require.NoError(t, err)
			for _, v := range values {
				require.GreaterOrEqual(t, v, bound[0])
				require.Less(t, v, bound[1])
			}
		}
	})

	t.Run("Coverage", func(t *testing.T) {
		s, err := sampling.NewUniformSampler(prng, -5, 5)
		require.NoError(t, err)
		values, err := s.ReadNew(4096)
		require.NoError(t, err)
		seen := map[int64]bool{}
		for _, v := range values {
			seen[v] = true
		}
		require.Len(t, seen, 10)
	})

	t.Run("Deterministic", func(t *testing.T) {
		pa, _ := sampling.NewKeyedPRNG([]byte{1})
		pb, _ := sampling.NewKeyedPRNG([]byte{1})
		sa, _ := sampling.NewUniformSampler(pa, -5, 5)
		va, err := sa.ReadNew(64)
		require.NoError(t, err)
		vb, err := sa.WithPRNG(pb).ReadNew(64)
		require.NoError(t, err)
		require.Equal(t, va, vb)
	})

	t.Run("EmptyInterval", func(t *testing.T) {
		_, err := sampling.NewUniformSampler(prng, 5, 5)
		require.Error(t, err)
		_, err = sampling.NewUniformSampler(nil, 0, 5)
		require.Error(t, err)
	})
}
