package list_test

import (
	"slices"
	"testing"

	"deedles.dev/linkq/internal/list"
	"github.com/stretchr/testify/require"
)

func TestSingle(t *testing.T) {
	var ls list.Single[int]
	require.Nil(t, ls.Head())
	require.Nil(t, ls.Tail())
	require.False(t, ls.Pop())

	for i := range 5 {
		ls.Enqueue(i)
	}
	require.Equal(t, 5, ls.Len())
	require.Equal(t, []int{0, 1, 2, 3, 4}, slices.Collect(ls.All()))
	require.Equal(t, 0, ls.Head().Val)
	require.Equal(t, 4, ls.Tail().Val)
	require.Nil(t, ls.Tail().Next())

	require.True(t, ls.Pop())
	require.True(t, ls.Pop())
	require.Equal(t, []int{2, 3, 4}, slices.Collect(ls.All()))
	require.Equal(t, 3, ls.Len())
}

func TestSinglePopLast(t *testing.T) {
	var ls list.Single[string]
	ls.Enqueue("only")
	require.True(t, ls.Pop())
	require.Nil(t, ls.Head())
	require.Nil(t, ls.Tail())
	require.Zero(t, ls.Len())

	ls.Enqueue("again")
	require.Same(t, ls.Head(), ls.Tail())
	require.Equal(t, []string{"again"}, slices.Collect(ls.All()))
}

func TestSingleChain(t *testing.T) {
	var ls list.Single[int]
	for i := range 10 {
		ls.Enqueue(i)
	}

	steps := 0
	for n := ls.Head(); n != ls.Tail(); n = n.Next() {
		steps++
	}
	require.Equal(t, ls.Len()-1, steps)
}

func TestSingleClear(t *testing.T) {
	var ls list.Single[int]
	for i := range 1_000_000 {
		ls.Enqueue(i)
	}
	head := ls.Head()

	ls.Clear()
	require.Zero(t, ls.Len())
	require.Nil(t, ls.Head())
	require.Nil(t, ls.Tail())
	require.Nil(t, head.Next())
}

func TestSingleSwap(t *testing.T) {
	var a, b list.Single[int]
	a.Enqueue(1)
	a.Enqueue(2)
	b.Enqueue(3)

	a.Swap(&b)
	require.Equal(t, []int{3}, slices.Collect(a.All()))
	require.Equal(t, []int{1, 2}, slices.Collect(b.All()))
	require.Equal(t, 1, a.Len())
	require.Equal(t, 2, b.Len())
}

func TestSingleNodes(t *testing.T) {
	var ls list.Single[int]
	ls.Enqueue(1)
	ls.Enqueue(2)
	ls.Enqueue(3)

	for n := range ls.Nodes() {
		n.Val *= 10
	}
	require.Equal(t, []int{10, 20, 30}, slices.Collect(ls.All()))

	var seen []int
	for v := range ls.All() {
		seen = append(seen, v)
		if v == 20 {
			break
		}
	}
	require.Equal(t, []int{10, 20}, seen)
}
