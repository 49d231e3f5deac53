package linq

import "iter"

// Enumerable is an immutable (begin, end) cursor pair.
// Each call to Begin starts a fresh, independent traversal.
type Enumerable[T any, C Cursor[T, C]] struct {
	begin C
	end   C
}

// NewEnumerable builds a sequence from any cursor pair of the same kind.
func NewEnumerable[T any, C Cursor[T, C]](begin, end C) Enumerable[T, C] {
	return Enumerable[T, C]{begin: begin, end: end}
}

// FromRange is an alias of NewEnumerable for callers that already hold a cursor pair.
func FromRange[T any, C Cursor[T, C]](begin, end C) Enumerable[T, C] {
	return NewEnumerable[T](begin, end)
}

// Begin returns a copy of the start cursor.
func (e Enumerable[T, C]) Begin() C {
	return e.begin.Clone()
}

// End returns a copy of the end sentinel.
func (e Enumerable[T, C]) End() C {
	return e.end.Clone()
}

// Empty reports whether the sequence yields no elements.
func (e Enumerable[T, C]) Empty() bool {
	return e.begin.Equal(e.end)
}

// All returns an iter.Seq that traverses the sequence from the start.
func (e Enumerable[T, C]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c, end := e.Begin(), e.end; !c.Equal(end); c.Next() {
			if !yield(c.Value()) {
				return
			}
		}
	}
}
