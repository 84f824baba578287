// Package structs implements helpers to generalize vectors and matrices of scalars, as well as their serialization.
package structs

// Scalar is the set of component types supported by [Vector] and [Matrix].
// All of them are stored on 8 bytes when serialized.
type Scalar interface {
	~int | ~int64 | ~uint | ~uint64 | ~float64
}

type CopyNewer[V any] interface {
	CopyNew() *V
}

type BinarySizer interface {
	BinarySize() int
}

type Equatable[T any] interface {
	Equal(*T) bool
}
