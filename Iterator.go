package seq

import (
	"io"
)

// Iterator define a separate object that encapsulates accessing and traversing a sequence.
// Clients use an iterator to access and traverse a sequence without knowing its representation (data structures).
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
// https://en.wikipedia.org/wiki/Iterator_pattern
//
// An Iterator enumerates its elements exactly once.
// After the enumeration finished or the iterator got closed,
// Next returns false without an error, and stays that way.
type Iterator[V any] interface {
	// Closer is required to make it able to cancel iterators where resources are being used behind the scene
	// for all other cases where the underling io is handled on a higher level, it should simply return nil
	io.Closer
	// Err return the error cause.
	Err() error
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false and ensure Err() will return the error cause.
	Next() bool
	// Value returns the current value in the iterator.
	// The action should be repeatable without side effects.
	Value() V
}
