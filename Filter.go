package seq

// Filter keeps the elements that satisfy the predicate, preserving their order.
func (s Seq[V]) Filter(p func(V) bool) Seq[V] {
	return derive[V, V](s, func(iter Iterator[V]) Iterator[V] {
		return &filterIter[V]{src: iter, match: p}
	})
}

// FilterNot drops the elements that satisfy the predicate, preserving the order of the rest.
func (s Seq[V]) FilterNot(p func(V) bool) Seq[V] {
	return s.Filter(func(v V) bool { return !p(v) })
}

type filterIter[V any] struct {
	src   Iterator[V]
	match func(V) bool

	value V
}

func (i *filterIter[V]) Close() error {
	return i.src.Close()
}

func (i *filterIter[V]) Err() error {
	return i.src.Err()
}

func (i *filterIter[V]) Next() bool {
	for i.src.Next() {
		v := i.src.Value()
		if i.match(v) {
			i.value = v
			return true
		}
	}
	return false
}

func (i *filterIter[V]) Value() V {
	return i.value
}

// FilterPair keeps the pairs whose unpacked members satisfy the predicate.
func FilterPair[A, B any](s Seq[Pair[A, B]], p func(A, B) bool) Seq[Pair[A, B]] {
	return s.Filter(func(pr Pair[A, B]) bool { return p(pr.A, pr.B) })
}

// FilterPairNot drops the pairs whose unpacked members satisfy the predicate.
func FilterPairNot[A, B any](s Seq[Pair[A, B]], p func(A, B) bool) Seq[Pair[A, B]] {
	return s.Filter(func(pr Pair[A, B]) bool { return !p(pr.A, pr.B) })
}
