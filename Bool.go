package seq

// All reports whether every element satisfies the predicate.
// It stops pulling elements at the first failure,
// so it can finish on an unbounded source that contains one.
// An empty source reports true.
func (s Seq[V]) All(p func(V) bool) (_ bool, rErr error) {
	iter := s.Iterate()
	defer func() {
		cErr := iter.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()
	for iter.Next() {
		if !p(iter.Value()) {
			return false, nil
		}
	}
	return true, iter.Err()
}

// Any reports whether at least one element satisfies the predicate.
// It stops pulling elements at the first match,
// so it can finish on an unbounded source that contains one.
// An empty source reports false.
func (s Seq[V]) Any(p func(V) bool) (_ bool, rErr error) {
	iter := s.Iterate()
	defer func() {
		cErr := iter.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()
	for iter.Next() {
		if p(iter.Value()) {
			return true, nil
		}
	}
	return false, iter.Err()
}
