package seq

import (
	"golang.org/x/exp/constraints"
)

// Min returns the smallest element of an ordered sequence.
// On ties the earliest encountered element wins,
// because the reduction keeps the running result as the left operand.
// It returns ErrEmptySequence when the source has no element.
func Min[V constraints.Ordered](s Seq[V]) (V, error) {
	return s.Fold(func(a, b V) V {
		if a <= b {
			return a
		}
		return b
	})
}

// Max returns the largest element of an ordered sequence.
// On ties the earliest encountered element wins.
// It returns ErrEmptySequence when the source has no element.
func Max[V constraints.Ordered](s Seq[V]) (V, error) {
	return s.Fold(func(a, b V) V {
		if b <= a {
			return a
		}
		return b
	})
}

// MinBy returns the element whose key value is the smallest.
// On equal keys the earliest encountered element wins.
func MinBy[V any, K constraints.Ordered](s Seq[V], key func(V) K) (V, error) {
	return s.Fold(func(a, b V) V {
		if key(a) <= key(b) {
			return a
		}
		return b
	})
}

// MaxBy returns the element whose key value is the largest.
// On equal keys the earliest encountered element wins.
func MaxBy[V any, K constraints.Ordered](s Seq[V], key func(V) K) (V, error) {
	return s.Fold(func(a, b V) V {
		if key(b) <= key(a) {
			return a
		}
		return b
	})
}
