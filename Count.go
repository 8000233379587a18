package seq

// Count will iterate over and count the total iterations number,
// optionally counting only the elements accepted by the given predicates.
//
// Good when all you want is to count all the elements in a sequence,
// but don't want to do anything else.
func (s Seq[V]) Count(ps ...func(V) bool) (_ int, rErr error) {
	iter := s.Iterate()
	defer func() {
		cErr := iter.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()
	var total int
	for iter.Next() {
		if matches(ps, iter.Value()) {
			total++
		}
	}
	return total, iter.Err()
}
