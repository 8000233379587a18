package seq

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Sort orders the sequence by the given less function.
// The sort is stable and materializes the full source when a terminal enumerates it.
// Sorting a genuinely infinite source does not terminate.
func (s Seq[V]) Sort(less func(a, b V) bool) Seq[V] {
	return FromSource[V](sourceFunc[V]{
		iterate: func() Iterator[V] {
			vs, err := collect(s.Iterate())
			if err != nil {
				return Error[V](err)
			}
			sort.SliceStable(vs, func(a, b int) bool { return less(vs[a], vs[b]) })
			return sliceSource[V](vs).Iterate()
		},
		repeatable: s.Repeatable(),
	})
}

// SortBy orders the sequence by a sort key extracted from each element.
// With reverse set, the order is descending.
// Equal-key elements retain their encounter order either way.
func SortBy[V any, K constraints.Ordered](s Seq[V], key func(V) K, reverse bool) Seq[V] {
	less := func(a, b V) bool { return key(a) < key(b) }
	if reverse {
		less = func(a, b V) bool { return key(b) < key(a) }
	}
	return s.Sort(less)
}

// Reverse yields the elements in reverse order.
// It materializes the full source when a terminal enumerates it.
func (s Seq[V]) Reverse() Seq[V] {
	return FromSource[V](sourceFunc[V]{
		iterate: func() Iterator[V] {
			vs, err := collect(s.Iterate())
			if err != nil {
				return Error[V](err)
			}
			for a, b := 0, len(vs)-1; a < b; a, b = a+1, b-1 {
				vs[a], vs[b] = vs[b], vs[a]
			}
			return sliceSource[V](vs).Iterate()
		},
		repeatable: s.Repeatable(),
	})
}
