package seq

type consterr string

func (err consterr) Error() string { return string(err) }

// ErrEmptySequence is returned by terminal operations that require at least one element
// and have no default to fall back to.
const ErrEmptySequence consterr = `EmptySequence`

// Break is a sentinel error that stops a ForEach enumeration early without reporting a failure.
const Break consterr = `seq:break`
