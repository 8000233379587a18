package seq_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/seq"
)

func TestFromSQLRows(t *testing.T) {
	type testType struct {
		Text string
	}

	mapper := seq.SQLRowMapperFunc[testType](func(s seq.SQLRowScanner) (testType, error) {
		var v testType
		return v, s.Scan(&v.Text)
	})

	t.Run(`each row is mapped into a value`, func(t *testing.T) {
		rows := &stubRows{Rows: []string{`a`, `b`, `c`}}

		vs, err := seq.FromSQLRows[testType](rows, mapper).ToSlice()
		require.NoError(t, err)
		require.Equal(t, []testType{{Text: `a`}, {Text: `b`}, {Text: `c`}}, vs)
		require.True(t, rows.IsClosed, `the terminal must release the result set`)
	})

	t.Run(`a mapper error stops the enumeration and surfaces`, func(t *testing.T) {
		expectedErr := errors.New(`scan failure`)
		rows := &stubRows{Rows: []string{`a`, `b`}}
		failing := seq.SQLRowMapperFunc[testType](func(s seq.SQLRowScanner) (testType, error) {
			return testType{}, expectedErr
		})

		_, err := seq.FromSQLRows[testType](rows, failing).ToSlice()
		require.ErrorIs(t, err, expectedErr)
	})

	t.Run(`the result set error surfaces through the terminal`, func(t *testing.T) {
		expectedErr := errors.New(`connection lost`)
		rows := &stubRows{Rows: []string{`a`}, RowsErr: expectedErr}

		_, err := seq.FromSQLRows[testType](rows, mapper).ToSlice()
		require.ErrorIs(t, err, expectedErr)
	})

	t.Run(`the rows sequence composes with the transformations`, func(t *testing.T) {
		rows := &stubRows{Rows: []string{`a`, `b`, `c`, `d`}}

		total, err := seq.FromSQLRows[testType](rows, mapper).
			Filter(func(v testType) bool { return v.Text != `b` }).
			Count()
		require.NoError(t, err)
		require.Equal(t, 3, total)
	})
}

// stubRows walks a fixed list of single column rows.
type stubRows struct {
	Rows    []string
	RowsErr error

	index    int
	IsClosed bool
}

func (r *stubRows) Close() error {
	r.IsClosed = true
	return nil
}

func (r *stubRows) Err() error {
	return r.RowsErr
}

func (r *stubRows) Next() bool {
	if len(r.Rows) <= r.index {
		return false
	}
	r.index++
	return true
}

func (r *stubRows) Scan(dest ...interface{}) error {
	if len(dest) != 1 {
		return fmt.Errorf(`unexpected column count: %d`, len(dest))
	}
	ptr, ok := dest[0].(*string)
	if !ok {
		return fmt.Errorf(`unexpected scan destination type: %T`, dest[0])
	}
	*ptr = r.Rows[r.index-1]
	return nil
}
