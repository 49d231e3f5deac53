package linq

import "iter"

type erased[T any] interface {
	Next()
	Value() T
	equal(other erased[T]) bool
	clone() erased[T]
}

type boxed[T any, C Cursor[T, C]] struct {
	c C
}

func (b *boxed[T, C]) Next() {
	b.c.Next()
}

func (b *boxed[T, C]) Value() T {
	return b.c.Value()
}

func (b *boxed[T, C]) equal(other erased[T]) bool {
	o, ok := other.(*boxed[T, C])
	return ok && b.c.Equal(o.c)
}

func (b *boxed[T, C]) clone() erased[T] {
	return &boxed[T, C]{c: b.c.Clone()}
}

// ErasedCursor hides the concrete cursor kind behind dynamic dispatch.
// Cursors of different underlying kinds never compare equal.
type ErasedCursor[T any] struct {
	c erased[T]
}

func (c *ErasedCursor[T]) Next() {
	c.c.Next()
}

func (c *ErasedCursor[T]) Value() T {
	return c.c.Value()
}

func (c *ErasedCursor[T]) Equal(other *ErasedCursor[T]) bool {
	return c.c.equal(other.c)
}

func (c *ErasedCursor[T]) Clone() *ErasedCursor[T] {
	return &ErasedCursor[T]{c: c.c.clone()}
}

// Erase boxes e so that chains of any depth share one cursor type.
func Erase[T any, C Cursor[T, C]](e Enumerable[T, C]) Enumerable[T, *ErasedCursor[T]] {
	return NewEnumerable[T](
		&ErasedCursor[T]{c: &boxed[T, C]{c: e.Begin()}},
		&ErasedCursor[T]{c: &boxed[T, C]{c: e.End()}},
	)
}

// Query is a fluent chain whose shape may be decided at runtime.
// Every step wraps the previous one in an erased cursor.
type Query[T any] struct {
	seq Enumerable[T, *ErasedCursor[T]]
}

// NewQuery erases e into the root of a Query.
func NewQuery[T any, C Cursor[T, C]](e Enumerable[T, C]) Query[T] {
	return Query[T]{seq: Erase(e)}
}

// QueryFrom starts a Query over s.
func QueryFrom[T any](s []T) Query[T] {
	return NewQuery(From(s))
}

// Where appends a filter step.
func (q Query[T]) Where(predicate func(T) bool) Query[T] {
	return NewQuery(Where(q.seq, predicate))
}

// Take appends a step yielding at most n elements.
func (q Query[T]) Take(n int) Query[T] {
	return NewQuery(Take(q.seq, n))
}

// TakeWhile appends a step stopping at the first element failing predicate.
func (q Query[T]) TakeWhile(predicate func(T) bool) Query[T] {
	return NewQuery(TakeWhile(q.seq, predicate))
}

// Skip appends a step dropping the first n elements.
func (q Query[T]) Skip(n int) Query[T] {
	return NewQuery(Skip(q.seq, n))
}

// Map is the projection step of a Query. It is a function because methods cannot
// introduce the result type parameter.
func Map[T, R any](q Query[T], transform func(T) R) Query[R] {
	return NewQuery(Select(q.seq, transform))
}

// Enumerable exposes the erased chain so sinks such as ToSlice and Len apply to it.
func (q Query[T]) Enumerable() Enumerable[T, *ErasedCursor[T]] {
	return q.seq
}

func (q Query[T]) Begin() *ErasedCursor[T] {
	return q.seq.Begin()
}

func (q Query[T]) End() *ErasedCursor[T] {
	return q.seq.End()
}

// All returns an iter.Seq over the query's elements.
func (q Query[T]) All() iter.Seq[T] {
	return q.seq.All()
}

func (q Query[T]) ToSlice() []T {
	return ToSlice(q.seq)
}
