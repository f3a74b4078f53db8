package linkq_test

import (
	"strings"
	"testing"

	"deedles.dev/linkq"
	"deedles.dev/linkq/eq"
	"github.com/stretchr/testify/require"
)

type isSix struct{}

func (isSix) match(v int) bool { return v == 6 }

func TestTransformIf(t *testing.T) {
	q := linkq.FromSlice(eq.Comparable[int]{}, []int{2, 50, 47, 4, 6, 8, 9, 75})
	linkq.TransformIf(q, isSix{}.match, func(v int) int { return v + 10 })
	require.Equal(t, []int{2, 50, 47, 4, 16, 8, 9, 75}, q.Values())
	require.Equal(t, 8, q.Len())
}

func TestTransformIfNever(t *testing.T) {
	in := []int{30, 47, 4, 6, 8, 9, 61}
	q := linkq.FromSlice(eq.Comparable[int]{}, in)

	calls := 0
	linkq.TransformIf(q, func(int) bool { return false }, func(v int) int {
		calls++
		return v
	})
	require.Equal(t, in, q.Values())
	require.Zero(t, calls)
}

func TestTransformIfAlways(t *testing.T) {
	q := linkq.FromSlice(eq.Comparable[string]{}, []string{"tizio", "caio", "sempronio"})

	type pred func(string) bool
	linkq.TransformIf(q, pred(func(string) bool { return true }), strings.ToUpper)
	require.Equal(t, []string{"TIZIO", "CAIO", "SEMPRONIO"}, q.Values())
}

func TestTransformIfStateful(t *testing.T) {
	q := linkq.FromSlice(eq.Comparable[int]{}, []int{1, 1, 1, 1})

	var seen int
	linkq.TransformIf(q,
		func(int) bool {
			seen++
			return seen%2 == 0
		},
		func(v int) int { return v + seen },
	)
	require.Equal(t, []int{1, 3, 1, 5}, q.Values())
}

func TestTransformIfEmpty(t *testing.T) {
	var q intQueue
	linkq.TransformIf(&q, func(int) bool { return true }, func(v int) int { return v })
	require.Zero(t, q.Len())
}
