// Package sampling implements secure sampling of bytes and integers.
package sampling

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"
)

// UniformSampler samples integers uniformly at random in the interval [min, max)
// from the bytes of a [PRNG]. Sampling is done by rejection on the smallest
// power of two covering the interval, so the output is exactly uniform.
// The sampler is not safe for concurrent use.
type UniformSampler struct {
	prng PRNG
	min  int64
	span uint64
	mask uint64
	buff [8]byte
}

// NewUniformSampler creates a new [UniformSampler] over [min, max).
// It returns an error if the interval is empty.
func NewUniformSampler(prng PRNG, min, max int64) (*UniformSampler, error) {

	if prng == nil {
		return nil, fmt.Errorf("cannot NewUniformSampler: prng is nil")
	}

	if max <= min {
		return nil, fmt.Errorf("cannot NewUniformSampler: empty interval [%d, %d)", min, max)
	}

	span := uint64(max) - uint64(min)

	var mask uint64 = math.MaxUint64
	if span&(span-1) == 0 {
		mask = span - 1
	} else {
		mask >>= bits.LeadingZeros64(span)
	}

	return &UniformSampler{
		prng: prng,
		min:  min,
		span: span,
		mask: mask,
	}, nil
}

// WithPRNG returns a shallow copy of the sampler reading from prng.
func (s UniformSampler) WithPRNG(prng PRNG) *UniformSampler {
	s.prng = prng
	return &s
}

// Int64 returns the next sample.
func (s *UniformSampler) Int64() (x int64, err error) {

	for {
		if _, err = s.prng.Read(s.buff[:]); err != nil {
			return 0, fmt.Errorf("cannot Int64: %w", err)
		}

		if v := binary.LittleEndian.Uint64(s.buff[:]) & s.mask; v < s.span {
			return s.min + int64(v), nil
		}
	}
}

// Read fills out with samples.
func (s *UniformSampler) Read(out []int64) (err error) {
	for i := range out {
		if out[i], err = s.Int64(); err != nil {
			return
		}
	}
	return
}

// ReadNew returns a new slice of n samples.
func (s *UniformSampler) ReadNew(n int) (out []int64, err error) {
	out = make([]int64, n)
	return out, s.Read(out)
}
