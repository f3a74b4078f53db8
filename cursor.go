package linkq

import "deedles.dev/linkq/internal/list"

// Cursor is implemented by [Iterator] and [ConstIterator]. It allows
// a cursor of either kind to be compared against the other.
type Cursor[T any] interface {
	// Done returns true if the cursor is positioned past the tail.
	Done() bool

	node() *list.SingleNode[T]
}

func sameNode[T any](n *list.SingleNode[T], c Cursor[T]) bool {
	if c == nil {
		return n == nil
	}
	return n == c.node()
}

// An Iterator is a forward cursor over the values of a [Queue] that
// allows those values to be modified in place. The zero value is an
// end cursor.
//
// Accessing the value of an end cursor or advancing it panics with
// [ErrEndDeref] or [ErrEndAdvance].
type Iterator[T any] struct {
	n *list.SingleNode[T]
}

// Begin returns an Iterator positioned at the head of the queue.
func (q *Queue[T, E]) Begin() Iterator[T] {
	return Iterator[T]{n: q.ls.Head()}
}

// End returns an Iterator positioned one past the tail of the queue.
func (q *Queue[T, E]) End() Iterator[T] {
	return Iterator[T]{}
}

func (it Iterator[T]) node() *list.SingleNode[T] {
	return it.n
}

func (it Iterator[T]) Done() bool {
	return it.n == nil
}

// Value returns the value at the cursor's position.
func (it Iterator[T]) Value() T {
	return *it.Ptr()
}

// Ptr returns a pointer to the value at the cursor's position. The
// pointer stays valid for as long as the value remains in the queue.
func (it Iterator[T]) Ptr() *T {
	if it.n == nil {
		panic(ErrEndDeref)
	}
	return &it.n.Val
}

// Set replaces the value at the cursor's position with v.
func (it Iterator[T]) Set(v T) {
	*it.Ptr() = v
}

// Next advances the cursor and returns its new position.
func (it *Iterator[T]) Next() Iterator[T] {
	if it.n == nil {
		panic(ErrEndAdvance)
	}
	it.n = it.n.Next()
	return *it
}

// PostNext advances the cursor and returns its previous position.
func (it *Iterator[T]) PostNext() Iterator[T] {
	prev := *it
	it.Next()
	return prev
}

// Equal returns true if it and c are positioned at the same value.
// All end cursors are equal to each other.
func (it Iterator[T]) Equal(c Cursor[T]) bool {
	return sameNode(it.n, c)
}

// Const returns a ConstIterator at the same position as it.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{n: it.n}
}

// A ConstIterator is a forward cursor over the values of a [Queue]
// that only allows those values to be read. It follows the same
// rules as [Iterator]. An Iterator can be turned into a
// ConstIterator, but not the other way around.
type ConstIterator[T any] struct {
	n *list.SingleNode[T]
}

// CBegin returns a ConstIterator positioned at the head of the queue.
func (q *Queue[T, E]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{n: q.ls.Head()}
}

// CEnd returns a ConstIterator positioned one past the tail of the
// queue.
func (q *Queue[T, E]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

func (it ConstIterator[T]) node() *list.SingleNode[T] {
	return it.n
}

func (it ConstIterator[T]) Done() bool {
	return it.n == nil
}

// Value returns the value at the cursor's position.
func (it ConstIterator[T]) Value() T {
	if it.n == nil {
		panic(ErrEndDeref)
	}
	return it.n.Val
}

// Next advances the cursor and returns its new position.
func (it *ConstIterator[T]) Next() ConstIterator[T] {
	if it.n == nil {
		panic(ErrEndAdvance)
	}
	it.n = it.n.Next()
	return *it
}

// PostNext advances the cursor and returns its previous position.
func (it *ConstIterator[T]) PostNext() ConstIterator[T] {
	prev := *it
	it.Next()
	return prev
}

// Equal returns true if it and c are positioned at the same value.
func (it ConstIterator[T]) Equal(c Cursor[T]) bool {
	return sameNode(it.n, c)
}
