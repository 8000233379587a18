package seq

import "errors"

// Last returns the last element, optionally filtered by the given predicates.
// Finding the last element requires consuming the full source,
// even though only one result is returned;
// on an unbounded source Last does not terminate.
// When nothing matches, it returns ErrEmptySequence.
func (s Seq[V]) Last(ps ...func(V) bool) (_ V, rErr error) {
	iter := s.Iterate()
	defer func() {
		cErr := iter.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()
	var (
		last  V
		found bool
	)
	for iter.Next() {
		v := iter.Value()
		if matches(ps, v) {
			last = v
			found = true
		}
	}
	if err := iter.Err(); err != nil {
		var zero V
		return zero, err
	}
	if !found {
		var zero V
		return zero, ErrEmptySequence
	}
	return last, nil
}

// LastOrDefault returns the last element, optionally filtered by the given predicates,
// or the default value when nothing matches.
// It fully consumes the source the same way Last does.
func (s Seq[V]) LastOrDefault(def V, ps ...func(V) bool) (V, error) {
	v, err := s.Last(ps...)
	if errors.Is(err, ErrEmptySequence) {
		return def, nil
	}
	if err != nil {
		return def, err
	}
	return v, nil
}
