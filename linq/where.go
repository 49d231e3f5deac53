package linq

// WhereCursor only ever rests on an element matching its predicate or on the end sentinel.
type WhereCursor[T any, C Cursor[T, C]] struct {
	it        C
	end       C
	predicate func(T) bool
}

// Where returns the elements of e for which predicate holds, in their original order.
func Where[T any, C Cursor[T, C]](e Enumerable[T, C], predicate func(T) bool) Enumerable[T, *WhereCursor[T, C]] {
	return NewEnumerable[T](
		newWhereCursor(e.Begin(), e.End(), predicate),
		newWhereCursor(e.End(), e.End(), predicate),
	)
}

func newWhereCursor[T any, C Cursor[T, C]](it, end C, predicate func(T) bool) *WhereCursor[T, C] {
	c := &WhereCursor[T, C]{it: it, end: end, predicate: predicate}
	c.seek()
	return c
}

func (c *WhereCursor[T, C]) seek() {
	for !c.it.Equal(c.end) && !c.predicate(c.it.Value()) {
		c.it.Next()
	}
}

// Next is a no-op once the cursor reached the end.
func (c *WhereCursor[T, C]) Next() {
	if c.it.Equal(c.end) {
		return
	}
	c.it.Next()
	c.seek()
}

func (c *WhereCursor[T, C]) Value() T {
	if c.it.Equal(c.end) {
		exhausted("where: value")
	}
	return c.it.Value()
}

func (c *WhereCursor[T, C]) Equal(other *WhereCursor[T, C]) bool {
	return c.it.Equal(other.it)
}

func (c *WhereCursor[T, C]) Clone() *WhereCursor[T, C] {
	return &WhereCursor[T, C]{it: c.it.Clone(), end: c.end.Clone(), predicate: c.predicate}
}
