package seq

// ToSlice consumes the sequence into a slice, preserving element order.
func (s Seq[V]) ToSlice() ([]V, error) {
	return collect(s.Iterate())
}

// collect drains an iterator into a slice and releases it.
func collect[V any](iter Iterator[V]) (vs []V, rErr error) {
	defer func() {
		cErr := iter.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()
	for iter.Next() {
		vs = append(vs, iter.Value())
	}
	return vs, iter.Err()
}

// ToSet consumes the sequence into a set.
func ToSet[V comparable](s Seq[V]) (map[V]struct{}, error) {
	set := make(map[V]struct{})
	err := s.ForEach(func(v V) error {
		set[v] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// ToMap consumes a sequence of key/value pairs into a map.
// A later pair with an already present key silently overwrites the earlier value.
func ToMap[K comparable, V any](s Seq[Pair[K, V]]) (map[K]V, error) {
	m := make(map[K]V)
	err := ForEachPair(s, func(k K, v V) error {
		m[k] = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ToMapBy consumes a sequence of keys into a map,
// computing each key's value with the given function.
// A duplicated key silently overwrites the earlier entry.
func ToMapBy[K comparable, V any](s Seq[K], value func(K) V) (map[K]V, error) {
	m := make(map[K]V)
	err := s.ForEach(func(k K) error {
		m[k] = value(k)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ToCollection builds an arbitrary container from the element sequence
// with the supplied constructor.
// The constructor receives the enumeration and is responsible for releasing it.
func ToCollection[V, C any](s Seq[V], ctor func(Iterator[V]) C) C {
	return ctor(s.Iterate())
}
