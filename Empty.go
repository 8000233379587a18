package seq

// Empty returns a sequence without any element in it.
// It is used to represent a nil result with the Null object pattern.
func Empty[V any]() Seq[V] {
	return FromSource[V](emptySource[V]{})
}

type emptySource[V any] struct{}

func (emptySource[V]) Iterate() Iterator[V] {
	return &emptyIter[V]{}
}

func (emptySource[V]) Repeatable() bool {
	return true
}

type emptyIter[V any] struct{}

func (i *emptyIter[V]) Close() error {
	return nil
}

func (i *emptyIter[V]) Next() bool {
	return false
}

func (i *emptyIter[V]) Err() error {
	return nil
}

func (i *emptyIter[V]) Value() V {
	var v V
	return v
}
