package op_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/seq"
	"github.com/adamluzsi/seq/op"
)

func ExampleEquals() {
	total, err := seq.Of(`a`, `b`, `a`).Count(op.Equals(`a`))
	if err != nil {
		panic(err)
	}
	fmt.Println(total)
	// Output: 2
}

func TestIdentity(t *testing.T) {
	require.Equal(t, 42, op.Identity(42))
	require.Equal(t, `v`, op.Identity(`v`))
}

func TestValue(t *testing.T) {
	constant := op.Value[string](42)
	require.Equal(t, 42, constant(`anything`))
	require.Equal(t, 42, constant(``))
}

func TestIsZero(t *testing.T) {
	require.True(t, op.IsZero(0))
	require.True(t, op.IsZero(``))
	require.False(t, op.IsZero(1))
	require.False(t, op.IsZero(` `))

	require.False(t, op.IsNotZero(0))
	require.True(t, op.IsNotZero(1))

	t.Run(`as a sequence predicate`, func(t *testing.T) {
		vs, err := seq.Of(``, `a`, ``, `b`).Filter(op.IsNotZero[string]).ToSlice()
		require.NoError(t, err)
		require.Equal(t, []string{`a`, `b`}, vs)
	})
}

func TestNot(t *testing.T) {
	odd := func(n int) bool { return n%2 == 1 }
	even := op.Not(odd)
	require.True(t, even(2))
	require.False(t, even(3))
}

func TestSwap(t *testing.T) {
	concat := func(a, b string) string { return a + b }
	require.Equal(t, `ba`, op.Swap(concat)(`a`, `b`))
}

func TestCompose(t *testing.T) {
	length := func(s string) int { return len(s) }
	double := func(n int) int { return n * 2 }

	require.Equal(t, 6, op.Compose(double, length)(`abc`))
	require.Equal(t, 6, op.AndThen(length, double)(`abc`))

	t.Run(`as a sequence transformation`, func(t *testing.T) {
		vs, err := seq.Map(seq.Of(`a`, `b`), op.AndThen(strings.ToUpper, func(s string) string {
			return s + `!`
		})).ToSlice()
		require.NoError(t, err)
		require.Equal(t, []string{`A!`, `B!`}, vs)
	})
}

func TestItem(t *testing.T) {
	ages := map[string]int{`a`: 1, `b`: 2}
	require.Equal(t, 2, op.Item[string, int](`b`)(ages))
	require.Equal(t, 1, op.ItemOf(ages)(`a`))
	require.Zero(t, op.ItemOf(ages)(`missing`))

	t.Run(`mapping keys through ItemOf looks up their values`, func(t *testing.T) {
		vs, err := seq.Map(seq.Of(`b`, `a`), op.ItemOf(ages)).ToSlice()
		require.NoError(t, err)
		require.Equal(t, []int{2, 1}, vs)
	})
}

func TestIndex(t *testing.T) {
	vs := []string{`x`, `y`, `z`}
	require.Equal(t, `y`, op.Index[string](1)(vs))
	require.Equal(t, `z`, op.IndexOf(vs)(2))
}

func TestContains(t *testing.T) {
	require.True(t, op.Contains(2)([]int{1, 2, 3}))
	require.False(t, op.Contains(9)([]int{1, 2, 3}))

	inVowels := op.ContainedIn([]string{`a`, `e`, `i`, `o`, `u`})
	require.True(t, inVowels(`e`))
	require.False(t, inVowels(`x`))
}

func TestEquals(t *testing.T) {
	require.True(t, op.Equals(1)(1))
	require.False(t, op.Equals(1)(2))
	require.True(t, op.NotEquals(1)(2))
	require.False(t, op.NotEquals(1)(1))
}

func TestIsInstance(t *testing.T) {
	isString := op.IsInstance[string]()
	require.True(t, isString(`v`))
	require.False(t, isString(42))
	require.False(t, isString(nil))
}

func TestLhsRhs(t *testing.T) {
	require.Equal(t, 1, op.Lhs(1, 2))
	require.Equal(t, 2, op.Rhs(1, 2))
}
