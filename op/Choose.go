package op

import (
	"golang.org/x/exp/constraints"
)

type consterr string

func (err consterr) Error() string { return string(err) }

// ErrInvalidArgument is returned by CompareAndChoose when the comparator or the key is missing.
const ErrInvalidArgument consterr = `InvalidArgument`

// LessOrEqual is the "not greater than" comparator over ordered values.
func LessOrEqual[K constraints.Ordered](a, b K) bool {
	return a <= b
}

// GreaterOrEqual is the "not less than" comparator over ordered values.
func GreaterOrEqual[K constraints.Ordered](a, b K) bool {
	return a >= b
}

// ChooseLeast is the native selection of the smaller of two ordered values.
// On equal values the first argument wins,
// so a left-to-right reduction keeps the earliest encountered element.
func ChooseLeast[T constraints.Ordered](a, b T) T {
	if a <= b {
		return a
	}
	return b
}

// ChooseGreatest is the native selection of the larger of two ordered values.
// On equal values the first argument wins.
func ChooseGreatest[T constraints.Ordered](a, b T) T {
	if b <= a {
		return a
	}
	return b
}

// CompareAndChoose builds a binary reducer that keeps its first argument
// when the comparator accepts the two extracted keys, and its second argument otherwise.
// Folded left-to-right with the running result as the left operand,
// ties retain the earliest encountered element.
//
// Both the comparator and the key are required;
// without a key, use the native ChooseLeast or ChooseGreatest selection instead.
// A missing argument is reported with ErrInvalidArgument.
func CompareAndChoose[T any, K constraints.Ordered](compare func(K, K) bool, key func(T) K) (func(T, T) T, error) {
	if compare == nil || key == nil {
		return nil, ErrInvalidArgument
	}
	return func(a, b T) T {
		if compare(key(a), key(b)) {
			return a
		}
		return b
	}, nil
}
