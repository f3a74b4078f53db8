package linkq

import "github.com/zeebo/errs"

// Error is the class of every error returned by this package.
var Error = errs.Class("linkq")

var (
	// ErrEmpty is returned by operations that need at least one
	// element when called on an empty queue. The queue is left
	// unchanged.
	ErrEmpty = Error.New("queue is empty")

	// ErrEndDeref is the panic value used when the value of a cursor
	// positioned at the end is accessed.
	ErrEndDeref = Error.New("dereference of end cursor")

	// ErrEndAdvance is the panic value used when a cursor positioned
	// at the end is advanced.
	ErrEndAdvance = Error.New("advance past end cursor")
)
