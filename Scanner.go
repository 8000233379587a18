package seq

import (
	"bufio"
	"io"
)

// Scan returns a single-pass sequence over the tokens of a reader, split line by line.
// When the reader also implements io.Closer, the terminal operations release it.
func Scan[T string | []byte](r io.Reader) Seq[T] {
	return FromIterator[T](&scanIter[T]{
		scanner: bufio.NewScanner(r),
		reader:  r,
	})
}

// Lines returns a single-pass sequence over the lines of a reader.
func Lines(r io.Reader) Seq[string] {
	return Scan[string](r)
}

type scanIter[T string | []byte] struct {
	scanner *bufio.Scanner
	reader  io.Reader

	value T
}

func (i *scanIter[T]) Close() error {
	rc, ok := i.reader.(io.ReadCloser)
	if !ok {
		return nil
	}
	return rc.Close()
}

func (i *scanIter[T]) Err() error {
	return i.scanner.Err()
}

func (i *scanIter[T]) Next() bool {
	if i.scanner.Err() != nil {
		return false
	}
	if !i.scanner.Scan() {
		return false
	}
	var v T
	var iface interface{} = v
	switch iface.(type) {
	case string:
		i.value = T(i.scanner.Text())
	case []byte:
		// Scanner.Bytes exposes its internal buffer, the token has to be copied out.
		i.value = T(append([]byte(nil), i.scanner.Bytes()...))
	}
	return true
}

func (i *scanIter[T]) Value() T {
	return i.value
}
