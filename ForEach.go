package seq

import "errors"

// ForEach consumes the sequence for the side effects of the given block.
// Returning Break from the block stops the enumeration early without reporting a failure,
// any other non-nil error stops it and surfaces to the caller.
func (s Seq[V]) ForEach(block func(V) error) (rErr error) {
	iter := s.Iterate()
	defer func() {
		cErr := iter.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()
	for iter.Next() {
		if err := block(iter.Value()); err != nil {
			if errors.Is(err, Break) {
				break
			}
			return err
		}
	}
	return iter.Err()
}

// ForEachPair consumes a sequence of pairs for the side effects of the given block,
// receiving the pair members unpacked.
func ForEachPair[A, B any](s Seq[Pair[A, B]], block func(A, B) error) error {
	return s.ForEach(func(p Pair[A, B]) error { return block(p.A, p.B) })
}
