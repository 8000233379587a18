package seq

// Pair is an ordered group of two values.
// It stands in for the dynamic tuples of the pairwise operations:
// Zip, Enumerate, GroupBy and the *Pair transformation family all speak Pair.
type Pair[A, B any] struct {
	A A
	B B
}

// PairOf returns a Pair of the two given values.
func PairOf[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{A: a, B: b}
}

// Enumerate pairs each element with an increasing index, beginning at start.
func Enumerate[V any](s Seq[V], start int) Seq[Pair[int, V]] {
	return derive[V, Pair[int, V]](s, func(iter Iterator[V]) Iterator[Pair[int, V]] {
		return &enumerateIter[V]{src: iter, index: start}
	})
}

type enumerateIter[V any] struct {
	src   Iterator[V]
	index int

	value Pair[int, V]
}

func (i *enumerateIter[V]) Close() error {
	return i.src.Close()
}

func (i *enumerateIter[V]) Err() error {
	return i.src.Err()
}

func (i *enumerateIter[V]) Next() bool {
	if !i.src.Next() {
		return false
	}
	i.value = Pair[int, V]{A: i.index, B: i.src.Value()}
	i.index++
	return true
}

func (i *enumerateIter[V]) Value() Pair[int, V] {
	return i.value
}
