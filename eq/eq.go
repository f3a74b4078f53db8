// Package eq provides comparators for use with linkq queues.
package eq

// Comparable compares values with ==. Its zero value is ready to use.
type Comparable[T comparable] struct{}

func (Comparable[T]) Equal(a, b T) bool {
	return a == b
}

// Func adapts an ordinary function into a comparator.
type Func[T any] func(a, b T) bool

func (f Func[T]) Equal(a, b T) bool {
	return f(a, b)
}

// By compares values by a key extracted from each of them. Two values
// are equal if their keys are equal.
type By[T any, K comparable] func(T) K

func (f By[T, K]) Equal(a, b T) bool {
	return f(a) == f(b)
}
