package seq

import (
	"golang.org/x/exp/constraints"
)

// Fold reduces the sequence with a binary function and no seed,
// applying it left-to-right with the running result as the first argument.
// It returns ErrEmptySequence when the source has no element.
func (s Seq[V]) Fold(f func(V, V) V) (_ V, rErr error) {
	iter := s.Iterate()
	defer func() {
		cErr := iter.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()
	if !iter.Next() {
		var zero V
		if err := iter.Err(); err != nil {
			return zero, err
		}
		return zero, ErrEmptySequence
	}
	acc := iter.Value()
	for iter.Next() {
		acc = f(acc, iter.Value())
	}
	return acc, iter.Err()
}

// FoldLeft reduces the sequence left-to-right starting from the given seed.
// An empty source returns the seed unchanged.
func FoldLeft[V, R any](s Seq[V], seed R, f func(R, V) R) (_ R, rErr error) {
	iter := s.Iterate()
	defer func() {
		cErr := iter.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()
	acc := seed
	for iter.Next() {
		acc = f(acc, iter.Value())
	}
	return acc, iter.Err()
}

// FoldRight reduces the sequence right-to-left starting from the given seed.
// The reducer receives the element first and the running result second,
// mirroring FoldLeft's argument order.
// The full source is materialized before folding.
func FoldRight[V, R any](s Seq[V], seed R, f func(V, R) R) (R, error) {
	vs, err := collect(s.Iterate())
	if err != nil {
		return seed, err
	}
	acc := seed
	for i := len(vs) - 1; 0 <= i; i-- {
		acc = f(vs[i], acc)
	}
	return acc, nil
}

// Number is the constraint of the summable element types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds up the elements of a numeric sequence.
// An empty source sums to zero.
func Sum[V Number](s Seq[V]) (V, error) {
	var zero V
	return FoldLeft(s, zero, func(acc, v V) V { return acc + v })
}

// SumBy adds up a numeric value mapped from each element.
func SumBy[V any, N Number](s Seq[V], f func(V) N) (N, error) {
	var zero N
	return FoldLeft(s, zero, func(acc N, v V) N { return acc + f(v) })
}
