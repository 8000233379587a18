package seq_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/seq"
)

func TestGroupBy(t *testing.T) {
	collectGroups := func(t *testing.T, s seq.Seq[seq.Group[int, int]]) (keys []int, runs [][]int) {
		t.Helper()
		groups, err := s.ToSlice()
		require.NoError(t, err)
		for _, g := range groups {
			vs, err := g.Values.ToSlice()
			require.NoError(t, err)
			keys = append(keys, g.Key)
			runs = append(runs, vs)
		}
		return keys, runs
	}

	t.Run(`consecutive equal keys form a run`, func(t *testing.T) {
		keys, runs := collectGroups(t, seq.GroupBy(
			seq.Of(1, 1, 2, 2, 2, 3),
			func(n int) int { return n },
		))
		require.Equal(t, []int{1, 2, 3}, keys)
		require.Equal(t, [][]int{{1, 1}, {2, 2, 2}, {3}}, runs)
	})

	t.Run(`a key reappearing after a different key starts a new group`, func(t *testing.T) {
		keys, runs := collectGroups(t, seq.GroupBy(
			seq.Of(1, 1, 2, 1),
			func(n int) int { return n },
		))
		require.Equal(t, []int{1, 2, 1}, keys)
		require.Equal(t, [][]int{{1, 1}, {2}, {1}}, runs)
	})

	t.Run(`an empty sequence yields no groups`, func(t *testing.T) {
		groups, err := seq.GroupBy(seq.Empty[int](), func(n int) int { return n }).ToSlice()
		require.NoError(t, err)
		require.Empty(t, groups)
	})

	t.Run(`the key function decides run boundaries`, func(t *testing.T) {
		groups, err := seq.GroupBy(
			seq.Of(`ant`, `apple`, `bear`, `cat`, `crab`),
			func(s string) string { return s[:1] },
		).ToSlice()
		require.NoError(t, err)
		require.Len(t, groups, 3)
		require.Equal(t, `a`, groups[0].Key)
		require.Equal(t, `b`, groups[1].Key)
		require.Equal(t, `c`, groups[2].Key)
	})
}

func TestGroupByMap(t *testing.T) {
	groups, err := seq.GroupByMap(
		seq.Of(`aa`, `ab`, `ba`),
		func(s string) string { return s[:1] },
		strings.ToUpper,
	).ToSlice()
	require.NoError(t, err)
	require.Len(t, groups, 2)

	vs, err := groups[0].Values.ToSlice()
	require.NoError(t, err)
	require.Equal(t, []string{`AA`, `AB`}, vs)

	vs, err = groups[1].Values.ToSlice()
	require.NoError(t, err)
	require.Equal(t, []string{`BA`}, vs)
}
