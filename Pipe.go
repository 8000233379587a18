package seq

// Pipe returns a sender and a single-pass sequence fed by it.
// This can be used with resources that stream their values from a different goroutine.
// The sender must be closed once no more value is expected,
// otherwise the receiver side blocks waiting for the next value.
func Pipe[V any]() (*PipeIn[V], Seq[V]) {
	valueChan := make(chan V)
	doneChan := make(chan struct{}, 1)
	errChan := make(chan error, 1)
	in := &PipeIn[V]{ValueChan: valueChan, DoneChan: doneChan, ErrChan: errChan}
	out := &pipeOut[V]{ValueChan: valueChan, DoneChan: doneChan, ErrChan: errChan}
	return in, FromIterator[V](out)
}

// PipeIn provides access to feed the receiver side of a pipe with values.
type PipeIn[V any] struct {
	ValueChan chan<- V
	DoneChan  <-chan struct{}
	ErrChan   chan<- error
}

// Value sends a value to the receiver side.
// It reports false when the receiver already stopped listening.
func (in *PipeIn[V]) Value(v V) (ok bool) {
	select {
	case in.ValueChan <- v:
		return true
	case <-in.DoneChan:
		return false
	}
}

// Error sends an error to the receiver side, making it accessible through the terminal operations.
func (in *PipeIn[V]) Error(err error) {
	if err == nil {
		return
	}
	defer func() { recover() }()
	in.ErrChan <- err
}

// Close the feed, which eventually notifies the receiver that no more value is expected.
func (in *PipeIn[V]) Close() error {
	defer func() { recover() }()
	close(in.ValueChan)
	close(in.ErrChan)
	return nil
}

// pipeOut implements the iterator protocol while it is still being able to receive values.
type pipeOut[V any] struct {
	ValueChan <-chan V
	DoneChan  chan<- struct{}
	ErrChan   <-chan error

	value   V
	lastErr error
}

// Close sends a signal back that no more value should be sent, because the receiver stops listening.
func (out *pipeOut[V]) Close() error {
	defer func() { recover() }()
	out.DoneChan <- struct{}{}
	close(out.DoneChan)
	return nil
}

func (out *pipeOut[V]) Next() bool {
	v, ok := <-out.ValueChan
	if !ok {
		return false
	}
	out.value = v
	return true
}

// Err returns the error object that the sender side wants to present to the receiver.
// The receive must not block:
// a consumer that stops early asks for the error while the sender may still be parked in Value.
func (out *pipeOut[V]) Err() error {
	select {
	case err, ok := <-out.ErrChan:
		if ok {
			out.lastErr = err
		}
	default:
	}
	return out.lastErr
}

func (out *pipeOut[V]) Value() V {
	return out.value
}
