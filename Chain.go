package seq

// Chain returns a sequence of the items of the given sub-sequences, in order.
// The chained sequence is repeatable only when every sub-sequence is repeatable.
func Chain[V any](seqs ...Seq[V]) Seq[V] {
	sources := make([]Source[V], 0, len(seqs))
	repeatable := true
	for _, s := range seqs {
		repeatable = repeatable && s.Repeatable()
		sources = append(sources, s)
	}
	return FromSource[V](sourceFunc[V]{
		iterate:    func() Iterator[V] { return &chainIter[V]{sources: sources} },
		repeatable: repeatable,
	})
}

// Concat appends the other sequence after the receiver.
func (s Seq[V]) Concat(other Seq[V]) Seq[V] {
	return Chain(s, other)
}

// Prepend returns a sequence that yields the given item before the receiver's elements.
func (s Seq[V]) Prepend(v V) Seq[V] {
	return Chain(Of(v), s)
}

// Append returns a sequence that yields the given item after the receiver's elements.
func (s Seq[V]) Append(v V) Seq[V] {
	return Chain(s, Of(v))
}

type chainIter[V any] struct {
	sources []Source[V]

	index   int
	current Iterator[V]
	value   V
	err     error
	closed  bool
}

func (i *chainIter[V]) Close() error {
	i.closed = true
	if i.current == nil {
		return nil
	}
	current := i.current
	i.current = nil
	return current.Close()
}

func (i *chainIter[V]) Err() error {
	return i.err
}

func (i *chainIter[V]) Next() bool {
	if i.closed || i.err != nil {
		return false
	}
	for {
		if i.current == nil {
			if len(i.sources) <= i.index {
				return false
			}
			i.current = i.sources[i.index].Iterate()
			i.index++
		}
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
}

func (i *chainIter[V]) Value() V {
	return i.value
}

// Cycle repeats the receiver's logically finite sequence without end.
// The first pass enumerates the underlying source and remembers its elements,
// later passes replay the remembered elements.
// Cycling a genuinely infinite source never reaches the replay phase.
func (s Seq[V]) Cycle() Seq[V] {
	return derive[V, V](s, func(iter Iterator[V]) Iterator[V] {
		return &cycleIter[V]{src: iter}
	})
}

type cycleIter[V any] struct {
	src Iterator[V]

	buffer    []V
	index     int
	firstDone bool
	value     V
	err       error
	closed    bool
}

func (i *cycleIter[V]) Close() error {
	i.closed = true
	if i.firstDone {
		return nil
	}
	return i.src.Close()
}

func (i *cycleIter[V]) Err() error {
	return i.err
}

func (i *cycleIter[V]) Next() bool {
	if i.closed || i.err != nil {
		return false
	}
	if !i.firstDone {
		if i.src.Next() {
			i.value = i.src.Value()
			i.buffer = append(i.buffer, i.value)
			return true
		}
		if err := i.src.Err(); err != nil {
			i.err = err
			return false
		}
		if err := i.src.Close(); err != nil {
			i.err = err
			return false
		}
		i.firstDone = true
	}
	if len(i.buffer) == 0 {
		return false
	}
	i.value = i.buffer[i.index]
	i.index = (i.index + 1) % len(i.buffer)
	return true
}

func (i *cycleIter[V]) Value() V {
	return i.value
}
