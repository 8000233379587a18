package seq

// Range returns a repeatable sequence of consecutive integers
// from start towards stop, moving by step.
// The stop value is exclusive.
// A negative step counts downwards.
func Range(start, stop, step int) Seq[int] {
	if step == 0 {
		panic(`seq: Range step must not be zero`)
	}
	return FromSource[int](rangeSource{start: start, stop: stop, step: step})
}

type rangeSource struct {
	start, stop, step int
}

func (s rangeSource) Iterate() Iterator[int] {
	return &rangeIter{next: s.start, stop: s.stop, step: s.step, bounded: true}
}

func (s rangeSource) Repeatable() bool {
	return true
}

// CountFrom returns an unbounded repeatable sequence of integers
// starting at start and moving by step.
func CountFrom(start, step int) Seq[int] {
	return FromSource[int](countSource{start: start, step: step})
}

type countSource struct {
	start, step int
}

func (s countSource) Iterate() Iterator[int] {
	return &rangeIter{next: s.start, step: s.step}
}

func (s countSource) Repeatable() bool {
	return true
}

type rangeIter struct {
	next, stop, step int
	bounded          bool

	closed bool
	value  int
}

func (i *rangeIter) Close() error {
	i.closed = true
	return nil
}

func (i *rangeIter) Err() error {
	return nil
}

func (i *rangeIter) Next() bool {
	if i.closed {
		return false
	}
	if i.bounded {
		if 0 < i.step && i.stop <= i.next {
			return false
		}
		if i.step < 0 && i.next <= i.stop {
			return false
		}
	}
	i.value = i.next
	i.next += i.step
	return true
}

func (i *rangeIter) Value() int {
	return i.value
}

// Repeat returns a repeatable sequence that yields the given item count times.
// A non-positive count yields an empty sequence.
func Repeat[V any](v V, count int) Seq[V] {
	return FromSource[V](repeatSource[V]{value: v, count: count, bounded: true})
}

// RepeatForever returns a repeatable sequence that yields the given item without end.
func RepeatForever[V any](v V) Seq[V] {
	return FromSource[V](repeatSource[V]{value: v})
}

type repeatSource[V any] struct {
	value   V
	count   int
	bounded bool
}

func (s repeatSource[V]) Iterate() Iterator[V] {
	return &repeatIter[V]{value: s.value, remaining: s.count, bounded: s.bounded}
}

func (s repeatSource[V]) Repeatable() bool {
	return true
}

type repeatIter[V any] struct {
	value     V
	remaining int
	bounded   bool
	closed    bool
}

func (i *repeatIter[V]) Close() error {
	i.closed = true
	return nil
}

func (i *repeatIter[V]) Err() error {
	return nil
}

func (i *repeatIter[V]) Next() bool {
	if i.closed {
		return false
	}
	if !i.bounded {
		return true
	}
	if i.remaining <= 0 {
		return false
	}
	i.remaining--
	return true
}

func (i *repeatIter[V]) Value() V {
	return i.value
}
