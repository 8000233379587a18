package seq_test

import (
	"github.com/adamluzsi/seq"
)

// countingSource returns a single-pass sequence over the given values,
// incrementing the counter on every pull so tests can observe evaluation.
func countingSource(vs []int, pulls *int) seq.Seq[int] {
	var index int
	return seq.FromIterator(seq.Func[int](func() (int, bool, error) {
		*pulls++
		if len(vs) <= index {
			return 0, false, nil
		}
		v := vs[index]
		index++
		return v, true, nil
	}))
}
