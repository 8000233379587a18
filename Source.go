package seq

// Source represents the origin of a sequence.
// It produces a forward, possibly infinite, possibly single-pass enumeration of V values.
//
// Whether a Source can be enumerated more than once is a capability of the Source itself,
// expressed with the Repeatable flag.
// A repeatable Source hands out a fresh Iterator on every Iterate call.
// A single-pass Source hands out the same Iterator on every Iterate call,
// so once that Iterator is exhausted, any further enumeration observes an empty sequence.
// Re-iterating an exhausted single-pass Source is not an error.
type Source[V any] interface {
	// Iterate begins an enumeration of the Source's elements.
	Iterate() Iterator[V]
	// Repeatable reports whether Iterate yields a full enumeration more than once.
	Repeatable() bool
}

// FromSource wraps a Source into a Seq.
func FromSource[V any](src Source[V]) Seq[V] {
	return Seq[V]{src: src}
}

// FromIterator wraps an already created Iterator into a single-pass Seq.
// The returned Seq can be consumed once;
// after a terminal operation exhausted or closed the iterator,
// further terminal operations observe an empty sequence.
func FromIterator[V any](iter Iterator[V]) Seq[V] {
	return FromSource[V](&iteratorSource[V]{iter: iter})
}

type iteratorSource[V any] struct {
	iter Iterator[V]
}

func (s *iteratorSource[V]) Iterate() Iterator[V] {
	return s.iter
}

func (s *iteratorSource[V]) Repeatable() bool {
	return false
}

// sourceFunc is the common glue for derived sources.
type sourceFunc[V any] struct {
	iterate    func() Iterator[V]
	repeatable bool
}

func (s sourceFunc[V]) Iterate() Iterator[V] {
	return s.iterate()
}

func (s sourceFunc[V]) Repeatable() bool {
	return s.repeatable
}

// derive creates a Seq whose enumeration wraps the upstream source's enumeration.
// The wrapping is deferred until a terminal operation calls Iterate,
// so constructing the derived Seq never consumes the upstream.
func derive[V, U any](src Source[V], wrap func(Iterator[V]) Iterator[U]) Seq[U] {
	return FromSource[U](sourceFunc[U]{
		iterate:    func() Iterator[U] { return wrap(src.Iterate()) },
		repeatable: src.Repeatable(),
	})
}
