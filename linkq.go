// Package linkq provides a generic FIFO queue backed by a singly
// linked chain of nodes, along with forward cursors over it.
//
// A Queue is not safe for concurrent use. Callers that share one
// between goroutines must provide their own exclusion.
package linkq

// Equaler is implemented by comparators that decide whether two
// values of type T are equal. The eq package provides common ones.
type Equaler[T any] interface {
	Equal(a, b T) bool
}

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
