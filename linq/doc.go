/*
Package linq provides lazy, composable query chains over cursor pairs.

A chain starts from a source ([From], [Range], [Count], or any user cursor pair passed to
[NewEnumerable]) and is extended with adapters:

  - **Projection**: [Select]
  - **Filtering**: [Where]
  - **Bounding**: [Take], [TakeWhile], [Skip]

No adapter traverses eagerly. Work happens only when a consumer advances and reads the
outermost cursor, which in turn drives every cursor it wraps.

	seq := linq.Take(linq.Select(linq.From([]int{1, 2, 3, 4}), square), 3)
	for c, end := seq.Begin(), seq.End(); !c.Equal(end); c.Next() {
		fmt.Println(c.Value())
	}

# Cursors

Every cursor kind C implements [Cursor][T, C]. Adapters are nested generic types, so a chain
of K adapters is K nested values and the element type is fixed at compile time. When the
shape of a chain is only known at runtime, [Erase] boxes any Enumerable into a [Query].

# Misuse

Reading or advancing a cursor that already equals its end sentinel panics with an error
wrapping [ErrCursorExhausted].
*/
package linq
