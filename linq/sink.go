package linq

// ToSlice drains e into a new slice.
func ToSlice[T any, C Cursor[T, C]](e Enumerable[T, C]) []T {
	var out []T
	for c, end := e.Begin(), e.End(); !c.Equal(end); c.Next() {
		out = append(out, c.Value())
	}
	return out
}

// Len counts the elements of e by traversing it.
func Len[T any, C Cursor[T, C]](e Enumerable[T, C]) int {
	n := 0
	for c, end := e.Begin(), e.End(); !c.Equal(end); c.Next() {
		n++
	}
	return n
}

func First[T any, C Cursor[T, C]](e Enumerable[T, C]) (T, bool) {
	c, end := e.Begin(), e.End()
	if c.Equal(end) {
		var zero T
		return zero, false
	}
	return c.Value(), true
}

func Last[T any, C Cursor[T, C]](e Enumerable[T, C]) (T, bool) {
	var last T
	found := false
	for c, end := e.Begin(), e.End(); !c.Equal(end); c.Next() {
		last = c.Value()
		found = true
	}
	return last, found
}

// AnyMatch stops at the first element satisfying predicate.
func AnyMatch[T any, C Cursor[T, C]](e Enumerable[T, C], predicate func(T) bool) bool {
	for c, end := e.Begin(), e.End(); !c.Equal(end); c.Next() {
		if predicate(c.Value()) {
			return true
		}
	}
	return false
}

// AllMatch stops at the first element failing predicate.
func AllMatch[T any, C Cursor[T, C]](e Enumerable[T, C], predicate func(T) bool) bool {
	for c, end := e.Begin(), e.End(); !c.Equal(end); c.Next() {
		if !predicate(c.Value()) {
			return false
		}
	}
	return true
}

func ForEach[T any, C Cursor[T, C]](e Enumerable[T, C], action func(T)) {
	for c, end := e.Begin(), e.End(); !c.Equal(end); c.Next() {
		action(c.Value())
	}
}

// Aggregate folds e from the initial value, left to right.
func Aggregate[T, R any, C Cursor[T, C]](e Enumerable[T, C], initial R, reducer func(R, T) R) R {
	acc := initial
	for c, end := e.Begin(), e.End(); !c.Equal(end); c.Next() {
		acc = reducer(acc, c.Value())
	}
	return acc
}
