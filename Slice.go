package seq

// FromSlice returns a repeatable sequence over the elements of the given slice.
// Every terminal operation enumerates the slice from its first element again.
func FromSlice[V any](vs []V) Seq[V] {
	return FromSource[V](sliceSource[V](vs))
}

// Of returns a repeatable sequence of the given items.
func Of[V any](vs ...V) Seq[V] {
	return FromSlice(vs)
}

type sliceSource[V any] []V

func (s sliceSource[V]) Iterate() Iterator[V] {
	return &sliceIter[V]{slice: s}
}

func (s sliceSource[V]) Repeatable() bool {
	return true
}

type sliceIter[V any] struct {
	slice []V

	closed bool
	index  int
	value  V
}

func (i *sliceIter[V]) Close() error {
	i.closed = true
	return nil
}

func (i *sliceIter[V]) Err() error {
	return nil
}

func (i *sliceIter[V]) Next() bool {
	if i.closed {
		return false
	}
	if len(i.slice) <= i.index {
		return false
	}
	i.value = i.slice[i.index]
	i.index++
	return true
}

func (i *sliceIter[V]) Value() V {
	return i.value
}
