package seq

import "errors"

// First returns the first element, optionally filtered by the given predicates,
// pulling no further element once a match is found.
// When nothing matches, it returns ErrEmptySequence.
func (s Seq[V]) First(ps ...func(V) bool) (_ V, rErr error) {
	iter := s.Iterate()
	defer func() {
		cErr := iter.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()
	for iter.Next() {
		v := iter.Value()
		if matches(ps, v) {
			return v, nil
		}
	}
	var zero V
	if err := iter.Err(); err != nil {
		return zero, err
	}
	return zero, ErrEmptySequence
}

// FirstOrDefault returns the first element, optionally filtered by the given predicates,
// or the default value when nothing matches.
func (s Seq[V]) FirstOrDefault(def V, ps ...func(V) bool) (V, error) {
	v, err := s.First(ps...)
	if errors.Is(err, ErrEmptySequence) {
		return def, nil
	}
	if err != nil {
		return def, err
	}
	return v, nil
}

// FirstNotZero returns the first element that differs from the zero value of V,
// or the zero value when there is none.
func FirstNotZero[V comparable](s Seq[V]) (V, error) {
	var zero V
	return s.FirstOrDefault(zero, func(v V) bool { return v != zero })
}
