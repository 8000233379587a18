package seq

import (
	"io"
)

// FromSQLRows allows you to use the sequence operations over an sql.Rows structure.
// It allows you to do dynamic filtering, pipeline/middleware patterns on your sql results,
// and makes testing easier against the same Iterator interface.
func FromSQLRows[T any](rows SQLRows, mapper SQLRowMapper[T]) Seq[T] {
	return FromIterator[T](&sqlRowsIter[T]{rows: rows, mapper: mapper})
}

// SQLRows is the subset of the database/sql Rows behavior the sequence needs.
type SQLRows interface {
	io.Closer
	Err() error
	Next() bool
	Scan(dest ...interface{}) error
}

// SQLRowMapper maps the current row of the result set into a value.
type SQLRowMapper[T any] interface {
	Map(s SQLRowScanner) (T, error)
}

// SQLRowMapperFunc is a function that implements SQLRowMapper.
type SQLRowMapperFunc[T any] func(SQLRowScanner) (T, error)

func (fn SQLRowMapperFunc[T]) Map(s SQLRowScanner) (T, error) {
	return fn(s)
}

// SQLRowScanner scans the columns of the current row into the given destinations.
type SQLRowScanner interface {
	Scan(dest ...interface{}) error
}

type sqlRowsIter[T any] struct {
	rows   SQLRows
	mapper SQLRowMapper[T]

	value T
	err   error
}

func (i *sqlRowsIter[T]) Close() error {
	return i.rows.Close()
}

func (i *sqlRowsIter[T]) Err() error {
	if i.err != nil {
		return i.err
	}
	return i.rows.Err()
}

func (i *sqlRowsIter[T]) Next() bool {
	if i.err != nil {
		return false
	}
	if !i.rows.Next() {
		return false
	}
	v, err := i.mapper.Map(i.rows)
	if err != nil {
		i.err = err
		return false
	}
	i.value = v
	return true
}

func (i *sqlRowsIter[T]) Value() T {
	return i.value
}
