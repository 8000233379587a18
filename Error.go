package seq

// Error returns an Iterator that reports the given error on Err and yields no values.
// It is useful to represent a failed attempt to begin an enumeration,
// for example when materialization or opening a resource backed source fails.
func Error[V any](err error) *ErrorIter[V] {
	return &ErrorIter[V]{error: err}
}

type ErrorIter[V any] struct {
	error error
}

func (i *ErrorIter[V]) Close() error {
	return nil
}

func (i *ErrorIter[V]) Err() error {
	return i.error
}

func (i *ErrorIter[V]) Next() bool {
	return false
}

func (i *ErrorIter[V]) Value() V {
	var v V
	return v
}
