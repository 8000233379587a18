package seq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/seq"
)

func TestSeq_transformationsAreLazy(t *testing.T) {
	var pulls int
	src := countingSource([]int{1, 2, 3, 4, 5}, &pulls)

	composed := seq.Map(
		src.Filter(func(n int) bool { return n%2 == 1 }).Take(2),
		func(n int) int { return n * 10 })

	require.Equal(t, 0, pulls, `building the chain must not evaluate the source`)

	vs, err := composed.ToSlice()
	require.NoError(t, err)
	require.Equal(t, []int{10, 30}, vs)
	require.NotZero(t, pulls)
}

func TestSeq_zeroValueIsEmpty(t *testing.T) {
	var s seq.Seq[string]
	require.True(t, s.Repeatable())

	total, err := s.Count()
	require.NoError(t, err)
	require.Equal(t, 0, total)

	_, err = s.First()
	require.ErrorIs(t, err, seq.ErrEmptySequence)
}

func TestSeq_singlePassSourceYieldsEmptyOnReiteration(t *testing.T) {
	var pulls int
	src := countingSource([]int{1, 2, 3}, &pulls)
	require.False(t, src.Repeatable())

	vs, err := src.ToSlice()
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, vs)

	vs, err = src.ToSlice()
	require.NoError(t, err, `re-iterating an exhausted source is not an error`)
	require.Empty(t, vs)
}

func TestSeq_repeatableSourceRestartsOnEachTerminal(t *testing.T) {
	src := seq.FromSlice([]int{1, 2, 3})
	require.True(t, src.Repeatable())

	first, err := src.First()
	require.NoError(t, err)
	require.Equal(t, 1, first)

	vs, err := src.ToSlice()
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, vs)
}

func TestSeq_derivedSequenceInheritsRepeatability(t *testing.T) {
	repeatable := seq.FromSlice([]int{1, 2, 3}).Filter(func(int) bool { return true })
	require.True(t, repeatable.Repeatable())

	var pulls int
	singlePass := countingSource([]int{1, 2, 3}, &pulls).Filter(func(int) bool { return true })
	require.False(t, singlePass.Repeatable())
}

func TestFromIterator_closedByTerminal(t *testing.T) {
	var closed bool
	iter := seq.Func[int](func() (int, bool, error) {
		return 0, false, nil
	}, seq.OnClose(func() error {
		closed = true
		return nil
	}))

	_, err := seq.FromIterator(iter).ToSlice()
	require.NoError(t, err)
	require.True(t, closed)
}
