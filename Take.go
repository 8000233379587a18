package seq

// Take limits the sequence to its first n elements.
func (s Seq[V]) Take(n int) Seq[V] {
	return derive[V, V](s, func(iter Iterator[V]) Iterator[V] {
		return &limitIter[V]{src: iter, limit: n}
	})
}

type limitIter[V any] struct {
	src   Iterator[V]
	limit int
	index int
}

func (i *limitIter[V]) Close() error {
	return i.src.Close()
}

func (i *limitIter[V]) Err() error {
	return i.src.Err()
}

func (i *limitIter[V]) Next() bool {
	if i.limit <= i.index {
		return false
	}
	if !i.src.Next() {
		return false
	}
	i.index++
	return true
}

func (i *limitIter[V]) Value() V {
	return i.src.Value()
}

// Drop skips the first n elements of the sequence.
func (s Seq[V]) Drop(n int) Seq[V] {
	return derive[V, V](s, func(iter Iterator[V]) Iterator[V] {
		return &offsetIter[V]{src: iter, offset: n}
	})
}

type offsetIter[V any] struct {
	src     Iterator[V]
	offset  int
	skipped bool
}

func (i *offsetIter[V]) Close() error {
	return i.src.Close()
}

func (i *offsetIter[V]) Err() error {
	return i.src.Err()
}

func (i *offsetIter[V]) Next() bool {
	if !i.skipped {
		i.skipped = true
		for n := 0; n < i.offset; n++ {
			if !i.src.Next() {
				return false
			}
		}
	}
	return i.src.Next()
}

func (i *offsetIter[V]) Value() V {
	return i.src.Value()
}

// TakeWhile yields elements while the predicate holds,
// then stops at the first failing element without pulling any further.
func (s Seq[V]) TakeWhile(p func(V) bool) Seq[V] {
	return derive[V, V](s, func(iter Iterator[V]) Iterator[V] {
		return &takeWhileIter[V]{src: iter, pred: p}
	})
}

type takeWhileIter[V any] struct {
	src  Iterator[V]
	pred func(V) bool

	done  bool
	value V
}

func (i *takeWhileIter[V]) Close() error {
	return i.src.Close()
}

func (i *takeWhileIter[V]) Err() error {
	return i.src.Err()
}

func (i *takeWhileIter[V]) Next() bool {
	if i.done {
		return false
	}
	if !i.src.Next() {
		i.done = true
		return false
	}
	v := i.src.Value()
	if !i.pred(v) {
		i.done = true
		return false
	}
	i.value = v
	return true
}

func (i *takeWhileIter[V]) Value() V {
	return i.value
}

// DropWhile skips elements while the predicate holds, then yields the rest.
func (s Seq[V]) DropWhile(p func(V) bool) Seq[V] {
	return derive[V, V](s, func(iter Iterator[V]) Iterator[V] {
		return &dropWhileIter[V]{src: iter, pred: p, dropping: true}
	})
}

type dropWhileIter[V any] struct {
	src  Iterator[V]
	pred func(V) bool

	dropping bool
	value    V
}

func (i *dropWhileIter[V]) Close() error {
	return i.src.Close()
}

func (i *dropWhileIter[V]) Err() error {
	return i.src.Err()
}

func (i *dropWhileIter[V]) Next() bool {
	if i.dropping {
		i.dropping = false
		for i.src.Next() {
			v := i.src.Value()
			if !i.pred(v) {
				i.value = v
				return true
			}
		}
		return false
	}
	if !i.src.Next() {
		return false
	}
	i.value = i.src.Value()
	return true
}

func (i *dropWhileIter[V]) Value() V {
	return i.value
}

// Slice applies half-open slice semantics over the lazy sequence.
// The element at position start is the first yielded,
// stop is exclusive, and step selects every step-th element from there.
// A negative stop means the slice is unbounded.
// Start must be non-negative and step must be positive.
func (s Seq[V]) Slice(start, stop, step int) Seq[V] {
	if start < 0 {
		panic(`seq: Slice start must be non-negative`)
	}
	if step < 1 {
		panic(`seq: Slice step must be positive`)
	}
	return derive[V, V](s, func(iter Iterator[V]) Iterator[V] {
		return &sliceRangeIter[V]{src: iter, upcoming: start, stop: stop, step: step, bounded: 0 <= stop}
	})
}

type sliceRangeIter[V any] struct {
	src      Iterator[V]
	upcoming int
	stop     int
	step     int
	bounded  bool

	position int
	done     bool
	value    V
}

func (i *sliceRangeIter[V]) Close() error {
	return i.src.Close()
}

func (i *sliceRangeIter[V]) Err() error {
	return i.src.Err()
}

func (i *sliceRangeIter[V]) Next() bool {
	if i.done {
		return false
	}
	for {
		if i.bounded && i.stop <= i.upcoming {
			i.done = true
			return false
		}
		if !i.src.Next() {
			i.done = true
			return false
		}
		index := i.position
		i.position++
		if index == i.upcoming {
			i.value = i.src.Value()
			i.upcoming += i.step
			return true
		}
	}
}

func (i *sliceRangeIter[V]) Value() V {
	return i.value
}
