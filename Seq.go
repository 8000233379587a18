package seq

// Seq is an immutable handle over a single iteration Source.
// Transformations return a new Seq composed lazily on top of the receiver,
// terminal operations enumerate the Source and return a concrete value.
//
// Building any chain of transformations evaluates nothing;
// only a terminal operation pulls elements, one at a time,
// from the composed chain down to the root Source.
//
// A Seq is consumable at most as many times as its Source permits.
// Wrapping a single-pass Source does not grant extra repeatability;
// Persist is the only operation that promotes a sequence into a repeatable one.
//
// The zero value of Seq is an empty, repeatable sequence.
type Seq[V any] struct {
	src Source[V]
}

// Iterate begins an enumeration of the sequence.
// Most users should prefer the terminal operations over working with the Iterator directly.
func (s Seq[V]) Iterate() Iterator[V] {
	if s.src == nil {
		return &emptyIter[V]{}
	}
	return s.src.Iterate()
}

// Repeatable reports whether the sequence can be fully enumerated more than once.
func (s Seq[V]) Repeatable() bool {
	if s.src == nil {
		return true
	}
	return s.src.Repeatable()
}

// matches reports whether all the given predicates accept the value.
// Terminal operations use it to implement their optional predicate arguments.
func matches[V any](ps []func(V) bool, v V) bool {
	for _, p := range ps {
		if !p(v) {
			return false
		}
	}
	return true
}
