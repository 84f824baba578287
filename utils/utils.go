// Package utils implements various helper functions.
package utils

import (
	"golang.org/x/exp/constraints"
)

// Number is the set of signed numeric types.
type Number interface {
	constraints.Signed | constraints.Float
}

// Min returns the minimum value of the two inputs.
func Min[V constraints.Ordered](a, b V) (r V) {
	if a <= b {
		return a
	}
	return b
}

// Max returns the maximum value of the two inputs.
func Max[V constraints.Ordered](a, b V) (r V) {
	if a >= b {
		return a
	}
	return b
}

// Abs returns |x|.
func Abs[V Number](x V) V {
	if x < 0 {
		return -x
	}
	return x
}

// MaxAbsSlice returns the largest absolute value of the slice, or zero if the slice is empty.
func MaxAbsSlice[V Number](slice []V) (max V) {
	for i := range slice {
		max = Max(max, Abs(slice[i]))
	}
	return
}

// AlternatingSigns returns the slice {+x, -x, +x, ...} of length n.
func AlternatingSigns[V Number](x V, n int) (s []V) {
	s = make([]V, n)
	for i := range s {
		if i&1 == 0 {
			s[i] = x
		} else {
			s[i] = -x
		}
	}
	return
}
