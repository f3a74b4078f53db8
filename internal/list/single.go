package list

import "iter"

// Single is a singly-linked list that also contains a reference to
// the last node for quick inserts at the tail and removals at the
// head. The zero value is an empty list.
//
// A Single owns its nodes. Nodes are never shared between lists, so
// copying a list's contents requires building a new chain.
type Single[T any] struct {
	head, tail *SingleNode[T]
	len        int
}

// Enqueue adds v as a new node at the tail of the list and returns
// that node. The node is fully built before any existing link is
// touched.
func (ls *Single[T]) Enqueue(v T) *SingleNode[T] {
	n := &SingleNode[T]{Val: v}
	if ls.tail == nil {
		ls.head = n
	} else {
		ls.tail.next = n
	}
	ls.tail = n
	ls.len++

	return n
}

// Head returns the first node of the list, or nil if it is empty.
func (ls *Single[T]) Head() *SingleNode[T] {
	return ls.head
}

// Tail returns the last node of the list, or nil if it is empty.
func (ls *Single[T]) Tail() *SingleNode[T] {
	return ls.tail
}

// Len returns the number of nodes in the list.
func (ls *Single[T]) Len() int {
	return ls.len
}

// Pop removes the current head node from the list. It returns false
// if the list was already empty.
func (ls *Single[T]) Pop() bool {
	if ls.head == nil {
		return false
	}

	n := ls.head
	ls.head = n.next
	n.next = nil
	if ls.head == nil {
		ls.tail = nil
	}
	ls.len--

	return true
}

// Clear removes every node from the list, head to tail. Each node is
// unlinked as it is passed so that no chain stays reachable through a
// stray node reference.
func (ls *Single[T]) Clear() {
	cur := ls.head
	for cur != nil {
		next := cur.next
		cur.next = nil
		cur = next
	}

	ls.head = nil
	ls.tail = nil
	ls.len = 0
}

// Swap exchanges the contents of two lists.
func (ls *Single[T]) Swap(other *Single[T]) {
	*ls, *other = *other, *ls
}

// All returns an iterator over the elements of the list.
func (ls *Single[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := ls.head
		for cur != nil {
			if !yield(cur.Val) {
				return
			}
			cur = cur.next
		}
	}
}

// Nodes returns an iterator over the nodes of the list.
func (ls *Single[T]) Nodes() iter.Seq[*SingleNode[T]] {
	return func(yield func(*SingleNode[T]) bool) {
		cur := ls.head
		for cur != nil {
			if !yield(cur) {
				return
			}
			cur = cur.next
		}
	}
}

// SingleNode is a node of a [Single].
type SingleNode[T any] struct {
	Val  T
	next *SingleNode[T]
}

// Next returns the node following n, or nil if n is the tail.
func (n *SingleNode[T]) Next() *SingleNode[T] {
	return n.next
}
