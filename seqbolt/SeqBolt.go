// Package seqbolt exposes the contents of a bolt bucket as a lazy sequence.
package seqbolt

import (
	"github.com/boltdb/bolt"

	"github.com/adamluzsi/seq"
)

// Pairs returns a repeatable sequence over the key/value pairs of the named bucket,
// in the bucket's byte-sorted key order.
// Each enumeration runs inside its own read-only transaction,
// which is released when the terminal operation finishes.
// A missing bucket enumerates as an empty sequence.
func Pairs(db *bolt.DB, bucket []byte) seq.Seq[seq.Pair[[]byte, []byte]] {
	return seq.FromSource[seq.Pair[[]byte, []byte]](pairSource{db: db, bucket: bucket})
}

// Keys returns a repeatable sequence over the keys of the named bucket.
func Keys(db *bolt.DB, bucket []byte) seq.Seq[[]byte] {
	return seq.Map(Pairs(db, bucket), func(p seq.Pair[[]byte, []byte]) []byte { return p.A })
}

type pairSource struct {
	db     *bolt.DB
	bucket []byte
}

func (s pairSource) Repeatable() bool {
	return true
}

func (s pairSource) Iterate() seq.Iterator[seq.Pair[[]byte, []byte]] {
	tx, err := s.db.Begin(false)
	if err != nil {
		return seq.Error[seq.Pair[[]byte, []byte]](err)
	}
	b := tx.Bucket(s.bucket)
	if b == nil {
		_ = tx.Rollback()
		return seq.Empty[seq.Pair[[]byte, []byte]]().Iterate()
	}
	return &pairIter{tx: tx, cursor: b.Cursor()}
}

type pairIter struct {
	tx     *bolt.Tx
	cursor *bolt.Cursor

	started bool
	closed  bool
	key     []byte
	val     []byte
}

// Close releases the read transaction.
// The yielded byte slices are only valid until Close.
func (i *pairIter) Close() error {
	if i.closed {
		return nil
	}
	i.closed = true
	return i.tx.Rollback()
}

func (i *pairIter) Err() error {
	return nil
}

func (i *pairIter) Next() bool {
	if i.closed {
		return false
	}
	if !i.started {
		i.started = true
		i.key, i.val = i.cursor.First()
	} else {
		i.key, i.val = i.cursor.Next()
	}
	return i.key != nil
}

func (i *pairIter) Value() seq.Pair[[]byte, []byte] {
	return seq.Pair[[]byte, []byte]{A: i.key, B: i.val}
}
