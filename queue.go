package linkq

import (
	"iter"
	"slices"

	"deedles.dev/linkq/internal/list"
	"deedles.dev/linkq/internal/logging"
	"go.uber.org/zap"
)

// A Queue holds values in FIFO order. Values are added at the tail
// and removed from the head. E decides equality for Find.
//
// If the zero value of E is a usable comparator, such as
// eq.Comparable, a zero value Queue is empty and ready to use.
//
// A Queue owns its nodes and must not be copied after first use. Use
// Clone or Assign to copy the contents of one Queue into another.
type Queue[T any, E Equaler[T]] struct {
	_ noCopy

	ls  list.Single[T]
	eql E
	log *zap.Logger
}

// New returns an empty queue that compares values with eql.
func New[T any, E Equaler[T]](eql E, opts ...Option) *Queue[T, E] {
	o := buildOptions(opts)
	return &Queue[T, E]{eql: eql, log: o.log}
}

// From returns a queue containing the values yielded by seq in the
// order that they were yielded.
func From[T any, E Equaler[T]](eql E, seq iter.Seq[T], opts ...Option) *Queue[T, E] {
	q := New[T](eql, opts...)
	for v := range seq {
		q.Enqueue(v)
	}
	return q
}

// FromSlice returns a queue containing the elements of s in order.
func FromSlice[T any, E Equaler[T]](eql E, s []T, opts ...Option) *Queue[T, E] {
	return From(eql, slices.Values(s), opts...)
}

// FromConvert returns a queue containing the values yielded by seq
// after passing each through conv. If conv fails for any value, the
// values queued so far are discarded and the error is returned
// wrapped in the package's error class.
func FromConvert[S, T any, E Equaler[T]](eql E, seq iter.Seq[S], conv func(S) (T, error), opts ...Option) (*Queue[T, E], error) {
	q := New[T](eql, opts...)
	for s := range seq {
		v, err := conv(s)
		if err != nil {
			q.logger().Warn("conversion failed during construction",
				logging.Int("converted", q.ls.Len()),
				logging.Error(err),
			)
			q.Clear()
			return nil, Error.Wrap(err)
		}
		q.Enqueue(v)
	}
	return q, nil
}

func (q *Queue[T, E]) logger() *zap.Logger {
	return logging.OrNop(q.log)
}

func (q *Queue[T, E]) empty(op string) error {
	q.logger().Warn("operation on empty queue",
		logging.String("op", op),
		logging.Int("len", q.ls.Len()),
	)
	return ErrEmpty
}

// Len returns the number of values in the queue.
func (q *Queue[T, E]) Len() int {
	return q.ls.Len()
}

// Empty returns true if the queue holds no values.
func (q *Queue[T, E]) Empty() bool {
	return q.ls.Len() == 0
}

// Enqueue adds v at the tail of the queue.
func (q *Queue[T, E]) Enqueue(v T) {
	q.ls.Enqueue(v)
}

// Dequeue removes the value at the head of the queue. If the queue is
// empty, it reports ErrEmpty and leaves the queue as it is.
func (q *Queue[T, E]) Dequeue() error {
	if !q.ls.Pop() {
		return q.empty("dequeue")
	}
	return nil
}

// Pop removes the value at the head of the queue and returns it. It
// returns ErrEmpty if the queue is empty.
func (q *Queue[T, E]) Pop() (v T, err error) {
	head := q.ls.Head()
	if head == nil {
		return v, q.empty("pop")
	}

	v = head.Val
	q.ls.Pop()
	return v, nil
}

// Find returns true if any value in the queue is equal to v according
// to the queue's comparator.
func (q *Queue[T, E]) Find(v T) bool {
	for n := range q.ls.Nodes() {
		if q.eql.Equal(n.Val, v) {
			return true
		}
	}
	return false
}

// First returns the value at the head of the queue, or ErrEmpty.
func (q *Queue[T, E]) First() (v T, err error) {
	head := q.ls.Head()
	if head == nil {
		return v, q.empty("first")
	}
	return head.Val, nil
}

// Last returns the value at the tail of the queue, or ErrEmpty.
func (q *Queue[T, E]) Last() (v T, err error) {
	tail := q.ls.Tail()
	if tail == nil {
		return v, q.empty("last")
	}
	return tail.Val, nil
}

// SetFirst replaces the value at the head of the queue with v. If the
// queue is empty, it reports ErrEmpty and nothing is changed.
func (q *Queue[T, E]) SetFirst(v T) error {
	head := q.ls.Head()
	if head == nil {
		return q.empty("set first")
	}
	head.Val = v
	return nil
}

// SetLast replaces the value at the tail of the queue with v. If the
// queue is empty, it reports ErrEmpty and nothing is changed.
func (q *Queue[T, E]) SetLast(v T) error {
	tail := q.ls.Tail()
	if tail == nil {
		return q.empty("set last")
	}
	tail.Val = v
	return nil
}

// Clear removes every value from the queue.
func (q *Queue[T, E]) Clear() {
	q.ls.Clear()
}

// Clone returns a new queue holding the same values in the same
// order. The two queues share no nodes, so changes to one are never
// seen by the other. Values themselves are copied by assignment.
func (q *Queue[T, E]) Clone() *Queue[T, E] {
	c := Queue[T, E]{eql: q.eql, log: q.log}
	for v := range q.ls.All() {
		c.ls.Enqueue(v)
	}
	return &c
}

// CloneFunc is like Clone but copies each value with cp. If cp fails,
// the partial copy is discarded and the error is returned.
func (q *Queue[T, E]) CloneFunc(cp func(T) (T, error)) (*Queue[T, E], error) {
	c := Queue[T, E]{eql: q.eql, log: q.log}
	for v := range q.ls.All() {
		cv, err := cp(v)
		if err != nil {
			c.Clear()
			return nil, Error.Wrap(err)
		}
		c.ls.Enqueue(cv)
	}
	return &c, nil
}

// Swap exchanges the contents of q and other. Comparators and loggers
// stay with their queues.
func (q *Queue[T, E]) Swap(other *Queue[T, E]) {
	q.ls.Swap(&other.ls)
}

// Assign replaces the contents of q with a copy of the contents of
// other. Assigning a queue to itself does nothing.
func (q *Queue[T, E]) Assign(other *Queue[T, E]) {
	if q == other {
		return
	}

	tmp := other.Clone()
	q.Swap(tmp)
}

// AssignFunc is like Assign but copies each value with cp. The copy is
// completed before q is touched, so if cp fails, q is left exactly as
// it was and the error is returned.
func (q *Queue[T, E]) AssignFunc(other *Queue[T, E], cp func(T) (T, error)) error {
	if q == other {
		return nil
	}

	tmp, err := other.CloneFunc(cp)
	if err != nil {
		return err
	}
	q.Swap(tmp)
	return nil
}
