package seq_test

import (
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/seq"
)

func TestSeq_Sort(t *testing.T) {
	t.Run(`orders by the less function`, func(t *testing.T) {
		vs, err := seq.Of(3, 1, 2).Sort(func(a, b int) bool { return a < b }).ToSlice()
		require.NoError(t, err)
		require.Equal(t, []int{1, 2, 3}, vs)
	})

	t.Run(`sorting is a lazy transformation`, func(t *testing.T) {
		var pulls int
		sorted := countingSource([]int{2, 1}, &pulls).Sort(func(a, b int) bool { return a < b })
		require.Equal(t, 0, pulls, `nothing may be pulled before a terminal runs`)

		vs, err := sorted.ToSlice()
		require.NoError(t, err)
		require.Equal(t, []int{1, 2}, vs)
		require.NotZero(t, pulls)
	})

	t.Run(`arbitrary values sort by the supplied ordering`, func(t *testing.T) {
		var names []string
		for i := 0; i < 5; i++ {
			names = append(names, randomdata.SillyName())
		}

		vs, err := seq.FromSlice(names).Sort(func(a, b string) bool { return a < b }).ToSlice()
		require.NoError(t, err)
		require.Len(t, vs, len(names))
		for i := 1; i < len(vs); i++ {
			require.LessOrEqual(t, vs[i-1], vs[i])
		}
	})
}

func TestSortBy(t *testing.T) {
	type user struct {
		Name string
		Age  int
	}
	users := seq.Of(
		user{Name: `b`, Age: 30},
		user{Name: `a`, Age: 20},
		user{Name: `c`, Age: 30},
	)

	t.Run(`ascending by key`, func(t *testing.T) {
		vs, err := seq.SortBy(users, func(u user) int { return u.Age }, false).ToSlice()
		require.NoError(t, err)
		require.Equal(t, `a`, vs[0].Name)
		require.Equal(t, `b`, vs[1].Name, `equal keys retain their encounter order`)
		require.Equal(t, `c`, vs[2].Name)
	})

	t.Run(`descending with reverse`, func(t *testing.T) {
		vs, err := seq.SortBy(users, func(u user) int { return u.Age }, true).ToSlice()
		require.NoError(t, err)
		require.Equal(t, `b`, vs[0].Name, `equal keys retain their encounter order even reversed`)
		require.Equal(t, `c`, vs[1].Name)
		require.Equal(t, `a`, vs[2].Name)
	})
}

func TestSeq_Reverse(t *testing.T) {
	vs, err := seq.Of(1, 2, 3).Reverse().ToSlice()
	require.NoError(t, err)
	require.Equal(t, []int{3, 2, 1}, vs)

	t.Run(`reversing twice restores the order`, func(t *testing.T) {
		vs, err := seq.Of(1, 2, 3).Reverse().Reverse().ToSlice()
		require.NoError(t, err)
		require.Equal(t, []int{1, 2, 3}, vs)
	})
}
