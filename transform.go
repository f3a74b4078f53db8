package linkq

// TransformIf replaces every value v in q for which pred(v) is true
// with op(v). The length and order of the queue are not changed.
func TransformIf[T any, E Equaler[T], P ~func(T) bool, F ~func(T) T](q *Queue[T, E], pred P, op F) {
	for it, end := q.Begin(), q.End(); !it.Equal(end); it.Next() {
		if v := it.Value(); pred(v) {
			it.Set(op(v))
		}
	}
}
