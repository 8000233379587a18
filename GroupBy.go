package seq

// Group is a run of consecutive elements sharing the same key.
type Group[K comparable, V any] struct {
	Key    K
	Values Seq[V]
}

// GroupBy groups consecutive runs of elements whose key function yields an equal value.
// This is run-grouping, not a global grouping:
// a key value that reappears after a different key starts a new group.
// Each run is buffered before its group is yielded.
func GroupBy[V any, K comparable](s Seq[V], key func(V) K) Seq[Group[K, V]] {
	return derive[V, Group[K, V]](s, func(iter Iterator[V]) Iterator[Group[K, V]] {
		return &groupIter[V, K]{src: iter, key: key}
	})
}

// GroupByMap behaves like GroupBy, additionally mapping each group's elements
// through the given function.
func GroupByMap[V any, K comparable, U any](s Seq[V], key func(V) K, transform func(V) U) Seq[Group[K, U]] {
	return Map(GroupBy(s, key), func(g Group[K, V]) Group[K, U] {
		return Group[K, U]{Key: g.Key, Values: Map(g.Values, transform)}
	})
}

type groupIter[V any, K comparable] struct {
	src Iterator[V]
	key func(V) K

	pending    V
	hasPending bool
	value      Group[K, V]
}

func (i *groupIter[V, K]) Close() error {
	return i.src.Close()
}

func (i *groupIter[V, K]) Err() error {
	return i.src.Err()
}

func (i *groupIter[V, K]) Next() bool {
	if !i.hasPending {
		if !i.src.Next() {
			return false
		}
		i.pending = i.src.Value()
		i.hasPending = true
	}
	key := i.key(i.pending)
	run := []V{i.pending}
	i.hasPending = false
	for i.src.Next() {
		v := i.src.Value()
		if i.key(v) != key {
			i.pending = v
			i.hasPending = true
			break
		}
		run = append(run, v)
	}
	i.value = Group[K, V]{Key: key, Values: FromSlice(run)}
	return true
}

func (i *groupIter[V, K]) Value() Group[K, V] {
	return i.value
}
