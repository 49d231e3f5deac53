package linq

// SliceCursor is a position inside a slice. The end sentinel sits at len(s).
type SliceCursor[T any] struct {
	s []T
	i int
}

// From returns the root sequence over s. The slice is referenced, not copied.
func From[T any](s []T) Enumerable[T, *SliceCursor[T]] {
	return NewEnumerable[T](&SliceCursor[T]{s: s}, &SliceCursor[T]{s: s, i: len(s)})
}

func (c *SliceCursor[T]) Next() {
	if c.i >= len(c.s) {
		exhausted("slice: next")
	}
	c.i++
}

func (c *SliceCursor[T]) Value() T {
	if c.i >= len(c.s) {
		exhausted("slice: value")
	}
	return c.s[c.i]
}

func (c *SliceCursor[T]) Equal(other *SliceCursor[T]) bool {
	return c.i == other.i
}

func (c *SliceCursor[T]) Clone() *SliceCursor[T] {
	return &SliceCursor[T]{s: c.s, i: c.i}
}

// Index returns the offset of the cursor in the underlying slice.
func (c *SliceCursor[T]) Index() int {
	return c.i
}
