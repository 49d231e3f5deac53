package linq

// SelectCursor applies a transform to each element read from the wrapped cursor.
// The transform runs once per Value call; results are not cached.
type SelectCursor[T, R any, C Cursor[T, C]] struct {
	it        C
	transform func(T) R
}

// Select returns a sequence of transform applied to each element of e.
func Select[T, R any, C Cursor[T, C]](e Enumerable[T, C], transform func(T) R) Enumerable[R, *SelectCursor[T, R, C]] {
	return NewEnumerable[R](
		&SelectCursor[T, R, C]{it: e.Begin(), transform: transform},
		&SelectCursor[T, R, C]{it: e.End(), transform: transform},
	)
}

func (c *SelectCursor[T, R, C]) Next() {
	c.it.Next()
}

func (c *SelectCursor[T, R, C]) Value() R {
	return c.transform(c.it.Value())
}

// Equal compares positions only; the transform is assumed shared within a chain.
func (c *SelectCursor[T, R, C]) Equal(other *SelectCursor[T, R, C]) bool {
	return c.it.Equal(other.it)
}

func (c *SelectCursor[T, R, C]) Clone() *SelectCursor[T, R, C] {
	return &SelectCursor[T, R, C]{it: c.it.Clone(), transform: c.transform}
}
