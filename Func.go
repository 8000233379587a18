package seq

// Func enables you to create an iterator with a lambda expression.
// The next function returns the upcoming value, whether the value is valid,
// and the error that interrupted the enumeration, if any.
// In case the enumeration holds a resource that needs releasing, use the OnClose callback option.
func Func[V any](next func() (v V, ok bool, err error), opts ...CallbackOption) Iterator[V] {
	var iter Iterator[V]
	iter = &funcIter[V]{next: next}
	iter = WithCallback(iter, opts...)
	return iter
}

type funcIter[V any] struct {
	next func() (v V, ok bool, err error)

	value V
	err   error
}

func (i *funcIter[V]) Close() error {
	return nil
}

func (i *funcIter[V]) Err() error {
	return i.err
}

func (i *funcIter[V]) Next() bool {
	if i.err != nil {
		return false
	}
	value, ok, err := i.next()
	if err != nil {
		i.err = err
		return false
	}
	if !ok {
		return false
	}
	i.value = value
	return true
}

func (i *funcIter[V]) Value() V {
	return i.value
}

// WithCallback allows hooking into the lifecycle events of an iterator.
func WithCallback[V any](iter Iterator[V], opts ...CallbackOption) Iterator[V] {
	if len(opts) == 0 {
		return iter
	}
	var c callbackConfig
	for _, opt := range opts {
		opt.configure(&c)
	}
	return &callbackIter[V]{Iterator: iter, config: c}
}

type CallbackOption interface {
	configure(c *callbackConfig)
}

type callbackConfig struct {
	onClose []func() error
}

// OnClose registers a callback that runs when the iterator gets closed.
func OnClose(fn func() error) CallbackOption {
	return onCloseCallback(fn)
}

type onCloseCallback func() error

func (fn onCloseCallback) configure(c *callbackConfig) {
	c.onClose = append(c.onClose, fn)
}

type callbackIter[V any] struct {
	Iterator[V]
	config callbackConfig
	closed bool
}

func (i *callbackIter[V]) Close() error {
	if i.closed {
		return nil
	}
	i.closed = true
	rErr := i.Iterator.Close()
	for _, fn := range i.config.onClose {
		if err := fn(); err != nil && rErr == nil {
			rErr = err
		}
	}
	return rErr
}
