package linkq

import (
	"iter"
	"slices"
)

// All returns an iterator over the values of the queue from head to
// tail.
func (q *Queue[T, E]) All() iter.Seq[T] {
	return q.ls.All()
}

// Pointers returns an iterator over pointers to the values of the
// queue from head to tail. Values can be modified in place through
// the yielded pointers.
func (q *Queue[T, E]) Pointers() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := range q.ls.Nodes() {
			if !yield(&n.Val) {
				return
			}
		}
	}
}

// Values returns the values of the queue from head to tail in a new
// slice.
func (q *Queue[T, E]) Values() []T {
	return slices.AppendSeq(make([]T, 0, q.Len()), q.All())
}
