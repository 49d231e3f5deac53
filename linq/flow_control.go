package linq

// TakeCursor yields at most limit elements of the wrapped cursor.
type TakeCursor[T any, C Cursor[T, C]] struct {
	it    C
	end   C
	limit int
	count int
}

// Take returns at most the first n elements of e. A non-positive n yields an empty sequence.
func Take[T any, C Cursor[T, C]](e Enumerable[T, C], n int) Enumerable[T, *TakeCursor[T, C]] {
	return NewEnumerable[T](
		newTakeCursor[T](e.Begin(), e.End(), n),
		newTakeCursor[T](e.End(), e.End(), n),
	)
}

func newTakeCursor[T any, C Cursor[T, C]](it, end C, limit int) *TakeCursor[T, C] {
	c := &TakeCursor[T, C]{it: it, end: end, limit: max(limit, 0)}
	if c.count == c.limit {
		c.it = end.Clone()
	}
	return c
}

// Next jumps straight to the end sentinel once limit elements were yielded,
// leaving the rest of the wrapped sequence untouched.
func (c *TakeCursor[T, C]) Next() {
	if c.it.Equal(c.end) {
		exhausted("take: next")
	}
	c.count++
	if c.count == c.limit {
		c.it = c.end.Clone()
		return
	}
	c.it.Next()
}

func (c *TakeCursor[T, C]) Value() T {
	if c.it.Equal(c.end) {
		exhausted("take: value")
	}
	return c.it.Value()
}

func (c *TakeCursor[T, C]) Equal(other *TakeCursor[T, C]) bool {
	return c.it.Equal(other.it)
}

func (c *TakeCursor[T, C]) Clone() *TakeCursor[T, C] {
	return &TakeCursor[T, C]{it: c.it.Clone(), end: c.end.Clone(), limit: c.limit, count: c.count}
}

// TakeWhileCursor yields the wrapped elements until predicate first fails.
type TakeWhileCursor[T any, C Cursor[T, C]] struct {
	it        C
	end       C
	predicate func(T) bool
}

// TakeWhile returns the longest prefix of e whose elements all satisfy predicate.
// The first failing element and everything after it are never yielded.
func TakeWhile[T any, C Cursor[T, C]](e Enumerable[T, C], predicate func(T) bool) Enumerable[T, *TakeWhileCursor[T, C]] {
	return NewEnumerable[T](
		newTakeWhileCursor(e.Begin(), e.End(), predicate),
		newTakeWhileCursor(e.End(), e.End(), predicate),
	)
}

func newTakeWhileCursor[T any, C Cursor[T, C]](it, end C, predicate func(T) bool) *TakeWhileCursor[T, C] {
	c := &TakeWhileCursor[T, C]{it: it, end: end, predicate: predicate}
	c.check()
	return c
}

func (c *TakeWhileCursor[T, C]) check() {
	if !c.it.Equal(c.end) && !c.predicate(c.it.Value()) {
		c.it = c.end.Clone()
	}
}

func (c *TakeWhileCursor[T, C]) Next() {
	if c.it.Equal(c.end) {
		exhausted("take_while: next")
	}
	c.it.Next()
	c.check()
}

func (c *TakeWhileCursor[T, C]) Value() T {
	if c.it.Equal(c.end) {
		exhausted("take_while: value")
	}
	return c.it.Value()
}

func (c *TakeWhileCursor[T, C]) Equal(other *TakeWhileCursor[T, C]) bool {
	return c.it.Equal(other.it)
}

func (c *TakeWhileCursor[T, C]) Clone() *TakeWhileCursor[T, C] {
	return &TakeWhileCursor[T, C]{it: c.it.Clone(), end: c.end.Clone(), predicate: c.predicate}
}

// SkipCursor passes through the wrapped cursor after stepping over a fixed number of elements.
type SkipCursor[T any, C Cursor[T, C]] struct {
	it  C
	end C
}

// Skip returns e without its first n elements. Skipping more elements than e holds
// yields an empty sequence; a non-positive n is a no-op.
func Skip[T any, C Cursor[T, C]](e Enumerable[T, C], n int) Enumerable[T, *SkipCursor[T, C]] {
	return NewEnumerable[T](
		newSkipCursor[T](e.Begin(), e.End(), n),
		newSkipCursor[T](e.End(), e.End(), n),
	)
}

func newSkipCursor[T any, C Cursor[T, C]](it, end C, n int) *SkipCursor[T, C] {
	for ; n > 0 && !it.Equal(end); n-- {
		it.Next()
	}
	return &SkipCursor[T, C]{it: it, end: end}
}

func (c *SkipCursor[T, C]) Next() {
	if c.it.Equal(c.end) {
		exhausted("skip: next")
	}
	c.it.Next()
}

func (c *SkipCursor[T, C]) Value() T {
	if c.it.Equal(c.end) {
		exhausted("skip: value")
	}
	return c.it.Value()
}

func (c *SkipCursor[T, C]) Equal(other *SkipCursor[T, C]) bool {
	return c.it.Equal(other.it)
}

func (c *SkipCursor[T, C]) Clone() *SkipCursor[T, C] {
	return &SkipCursor[T, C]{it: c.it.Clone(), end: c.end.Clone()}
}
