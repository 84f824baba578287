package bignum

import (
	"fmt"
	"math/big"
)

// NewInt allocates a new *big.Int.
// Accepted types are: string, uint, uint64, int64, int, *big.Float or *big.Int.
func NewInt(x interface{}) (y *big.Int) {

	y = new(big.Int)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case string:
		y.SetString(x, 0)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case int64:
		y.SetInt64(x)
	case int:
		y.SetInt64(int64(x))
	case *big.Float:
		x.Int(y)
	case *big.Int:
		y.Set(x)
	default:
		panic(fmt.Sprintf("cannot Newint: accepted types are string, uint, uint64, int, int64, *big.Float, *big.Int, but is %T", x))
	}

	return
}

// DivRoundEven sets the target i to round(a/b), with ties rounded to the even neighbour.
func DivRoundEven(a, b, i *big.Int) {

	_a := new(big.Int).Set(a)
	_b := new(big.Int).Set(b)

	if _b.Sign() < 0 {
		_a.Neg(_a)
		_b.Neg(_b)
	}

	// Euclidean division with a positive divisor: a = q*b + r with 0 <= r < b
	q, r := new(big.Int).DivMod(_a, _b, new(big.Int))

	switch new(big.Int).Lsh(r, 1).Cmp(_b) {
	case 1:
		q.Add(q, NewInt(1))
	case 0:
		if q.Bit(0) == 1 {
			q.Add(q, NewInt(1))
		}
	}

	i.Set(q)
}

// RoundRat returns the integer nearest to x, with ties rounded to the even neighbour.
func RoundRat(x *big.Rat) (r *big.Int) {
	r = new(big.Int)
	DivRoundEven(x.Num(), x.Denom(), r)
	return
}
