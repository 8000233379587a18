package seq

// NewStub wraps an iterator so that individual methods of it can be stubbed out in tests.
// A stub field left nil falls back to the wrapped iterator's behavior.
func NewStub[V any](iter Iterator[V]) *Stub[V] {
	return &Stub[V]{Iterator: iter}
}

type Stub[V any] struct {
	Iterator[V]

	StubClose func() error
	StubErr   func() error
	StubNext  func() bool
	StubValue func() V
}

func (m *Stub[V]) Close() error {
	if m.StubClose != nil {
		return m.StubClose()
	}
	return m.Iterator.Close()
}

func (m *Stub[V]) Err() error {
	if m.StubErr != nil {
		return m.StubErr()
	}
	return m.Iterator.Err()
}

func (m *Stub[V]) Next() bool {
	if m.StubNext != nil {
		return m.StubNext()
	}
	return m.Iterator.Next()
}

func (m *Stub[V]) Value() V {
	if m.StubValue != nil {
		return m.StubValue()
	}
	return m.Iterator.Value()
}
