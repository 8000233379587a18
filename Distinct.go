package seq

// Distinct deduplicates the sequence by equality, preserving first occurrence order.
// The set of seen elements grows with the number of distinct elements,
// so the memory use is unbounded on an unbounded source.
func Distinct[V comparable](s Seq[V]) Seq[V] {
	return derive[V, V](s, func(iter Iterator[V]) Iterator[V] {
		return &distinctIter[V]{src: iter, seen: make(map[V]struct{})}
	})
}

type distinctIter[V comparable] struct {
	src  Iterator[V]
	seen map[V]struct{}

	value V
}

func (i *distinctIter[V]) Close() error {
	return i.src.Close()
}

func (i *distinctIter[V]) Err() error {
	return i.src.Err()
}

func (i *distinctIter[V]) Next() bool {
	for i.src.Next() {
		v := i.src.Value()
		if _, ok := i.seen[v]; ok {
			continue
		}
		i.seen[v] = struct{}{}
		i.value = v
		return true
	}
	return false
}

func (i *distinctIter[V]) Value() V {
	return i.value
}
