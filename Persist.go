package seq

// Persist materializes the source into a cached, repeatable sequence.
// It is the only supported promotion from a single-pass sequence to a repeatable one.
// Persist consumes the receiver's source;
// every terminal on the returned Seq replays the cached elements from the first one.
func (s Seq[V]) Persist() (Seq[V], error) {
	vs, err := collect(s.Iterate())
	if err != nil {
		return Empty[V](), err
	}
	return FromSlice(vs), nil
}
