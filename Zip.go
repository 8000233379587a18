package seq

// Zip pairs the elements of the two sequences positionally,
// stopping as soon as either of them is exhausted.
func Zip[A, B any](lhs Seq[A], rhs Seq[B]) Seq[Pair[A, B]] {
	return FromSource[Pair[A, B]](sourceFunc[Pair[A, B]]{
		iterate: func() Iterator[Pair[A, B]] {
			return &zipIter[A, B]{lhs: lhs.Iterate(), rhs: rhs.Iterate()}
		},
		repeatable: lhs.Repeatable() && rhs.Repeatable(),
	})
}

// ZipWith pairs the elements of the two sequences positionally
// and combines each pair with the given function.
func ZipWith[A, B, C any](lhs Seq[A], rhs Seq[B], combine func(A, B) C) Seq[C] {
	return MapPair(Zip(lhs, rhs), combine)
}

type zipIter[A, B any] struct {
	lhs Iterator[A]
	rhs Iterator[B]

	value Pair[A, B]
}

func (i *zipIter[A, B]) Close() error {
	rErr := i.lhs.Close()
	if err := i.rhs.Close(); err != nil && rErr == nil {
		rErr = err
	}
	return rErr
}

func (i *zipIter[A, B]) Err() error {
	if err := i.lhs.Err(); err != nil {
		return err
	}
	return i.rhs.Err()
}

func (i *zipIter[A, B]) Next() bool {
	if !i.lhs.Next() {
		return false
	}
	if !i.rhs.Next() {
		return false
	}
	i.value = Pair[A, B]{A: i.lhs.Value(), B: i.rhs.Value()}
	return true
}

func (i *zipIter[A, B]) Value() Pair[A, B] {
	return i.value
}

// Unzip transposes a sequence of pairs column-wise:
// the first sequence yields every pair's first member,
// the second yields every pair's second member.
// The two returned sequences share a single enumeration of the input,
// buffering whatever the slower side has not consumed yet,
// therefore both of them are single-pass regardless of the input's capability.
func Unzip[A, B any](s Seq[Pair[A, B]]) (Seq[A], Seq[B]) {
	state := &unzipState[A, B]{src: s}
	return FromIterator[A](&unzipLeftIter[A, B]{state: state}),
		FromIterator[B](&unzipRightIter[A, B]{state: state})
}

type unzipState[A, B any] struct {
	src  Source[Pair[A, B]]
	iter Iterator[Pair[A, B]]

	as     []A
	bs     []B
	done   bool
	closed bool
	err    error
}

// pull advances the shared enumeration by one pair, feeding both buffers.
func (st *unzipState[A, B]) pull() bool {
	if st.done || st.err != nil {
		return false
	}
	if st.iter == nil {
		st.iter = st.src.Iterate()
	}
	if !st.iter.Next() {
		st.done = true
		st.err = st.iter.Err()
		if cErr := st.iter.Close(); cErr != nil && st.err == nil {
			st.err = cErr
		}
		return false
	}
	p := st.iter.Value()
	st.as = append(st.as, p.A)
	st.bs = append(st.bs, p.B)
	return true
}

func (st *unzipState[A, B]) close() error {
	if st.closed {
		return nil
	}
	st.closed = true
	if st.iter == nil || st.done {
		return nil
	}
	return st.iter.Close()
}

type unzipLeftIter[A, B any] struct {
	state *unzipState[A, B]
	value A
}

func (i *unzipLeftIter[A, B]) Close() error {
	return i.state.close()
}

func (i *unzipLeftIter[A, B]) Err() error {
	return i.state.err
}

func (i *unzipLeftIter[A, B]) Next() bool {
	for len(i.state.as) == 0 {
		if !i.state.pull() {
			return false
		}
	}
	i.value = i.state.as[0]
	i.state.as = i.state.as[1:]
	return true
}

func (i *unzipLeftIter[A, B]) Value() A {
	return i.value
}

type unzipRightIter[A, B any] struct {
	state *unzipState[A, B]
	value B
}

func (i *unzipRightIter[A, B]) Close() error {
	return i.state.close()
}

func (i *unzipRightIter[A, B]) Err() error {
	return i.state.err
}

func (i *unzipRightIter[A, B]) Next() bool {
	for len(i.state.bs) == 0 {
		if !i.state.pull() {
			return false
		}
	}
	i.value = i.state.bs[0]
	i.state.bs = i.state.bs[1:]
	return true
}

func (i *unzipRightIter[A, B]) Value() B {
	return i.value
}
