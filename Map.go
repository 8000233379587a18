package seq

// Map allows you to do additional transformation on the values.
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
func Map[A, B any](s Seq[A], transform func(A) B) Seq[B] {
	return derive[A, B](s, func(iter Iterator[A]) Iterator[B] {
		return &mapIter[A, B]{src: iter, transform: transform}
	})
}

type mapIter[A, B any] struct {
	src       Iterator[A]
	transform func(A) B

	value B
}

func (i *mapIter[A, B]) Close() error {
	return i.src.Close()
}

func (i *mapIter[A, B]) Err() error {
	return i.src.Err()
}

func (i *mapIter[A, B]) Next() bool {
	if !i.src.Next() {
		return false
	}
	i.value = i.transform(i.src.Value())
	return true
}

func (i *mapIter[A, B]) Value() B {
	return i.value
}

// MapMany maps each element to a sub-sequence
// and concatenates the sub-sequences into one flat sequence, in element order.
func MapMany[A, B any](s Seq[A], transform func(A) Seq[B]) Seq[B] {
	return derive[A, B](s, func(iter Iterator[A]) Iterator[B] {
		return &flattenIter[A, B]{src: iter, transform: transform}
	})
}

type flattenIter[A, B any] struct {
	src       Iterator[A]
	transform func(A) Seq[B]

	current Iterator[B]
	value   B
	err     error
}

func (i *flattenIter[A, B]) Close() error {
	var rErr error
	if i.current != nil {
		rErr = i.current.Close()
		i.current = nil
	}
	if err := i.src.Close(); err != nil && rErr == nil {
		rErr = err
	}
	return rErr
}

func (i *flattenIter[A, B]) Err() error {
	if i.err != nil {
		return i.err
	}
	return i.src.Err()
}

func (i *flattenIter[A, B]) Next() bool {
	if i.err != nil {
		return false
	}
	for {
		if i.current != nil {
			if i.current.Next() {
				i.value = i.current.Value()
				return true
			}
			if err := i.current.Err(); err != nil {
				i.err = err
				return false
			}
			if err := i.current.Close(); err != nil {
				i.err = err
				return false
			}
			i.current = nil
		}
		if !i.src.Next() {
			return false
		}
		i.current = i.transform(i.src.Value()).Iterate()
	}
}

func (i *flattenIter[A, B]) Value() B {
	return i.value
}

// Flatten concatenates a sequence of sequences into one flat sequence, in element order.
func Flatten[V any](s Seq[Seq[V]]) Seq[V] {
	return MapMany(s, func(sub Seq[V]) Seq[V] { return sub })
}

// MapToPair maps each element through two projections into a pair of their results.
func MapToPair[V, A, B any](s Seq[V], first func(V) A, second func(V) B) Seq[Pair[A, B]] {
	return Map(s, func(v V) Pair[A, B] {
		return Pair[A, B]{A: first(v), B: second(v)}
	})
}

// MapPair maps a sequence of pairs through a function receiving the pair members unpacked.
func MapPair[A, B, C any](s Seq[Pair[A, B]], transform func(A, B) C) Seq[C] {
	return Map(s, func(p Pair[A, B]) C { return transform(p.A, p.B) })
}

// MapPairMany maps a sequence of pairs through a sub-sequence producing function
// receiving the pair members unpacked, and flattens the results.
func MapPairMany[A, B, C any](s Seq[Pair[A, B]], transform func(A, B) Seq[C]) Seq[C] {
	return MapMany(s, func(p Pair[A, B]) Seq[C] { return transform(p.A, p.B) })
}
