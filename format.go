package linkq

import (
	"fmt"
	"io"
	"strings"
)

// WriteTo writes the values of the queue from head to tail to w, each
// formatted as if by fmt.Fprint and followed by a single space.
func (q *Queue[T, E]) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for it, end := q.CBegin(), q.CEnd(); !it.Equal(end); it.Next() {
		n, err := fmt.Fprint(w, it.Value())
		total += int64(n)
		if err != nil {
			return total, err
		}

		n, err = io.WriteString(w, " ")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the same text that WriteTo would write.
func (q *Queue[T, E]) String() string {
	var sb strings.Builder
	q.WriteTo(&sb)
	return sb.String()
}
