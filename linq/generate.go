package linq

import "math"

// RangeCursor walks an arithmetic progression without backing storage.
// A negative n marks an unbounded progression whose end is never reached.
type RangeCursor struct {
	start, step int
	idx, n      int
}

// Range yields start, start+step, ... while the value stays before stop.
// A zero step yields an empty sequence. The element count is computed on the
// unsigned distance, so ranges spanning most of int stay exact; counts above
// math.MaxInt are capped.
func Range(start, stop, step int) Enumerable[int, *RangeCursor] {
	var n uint
	switch {
	case step > 0 && start < stop:
		n = (uint(stop)-uint(start)-1)/uint(step) + 1
	case step < 0 && start > stop:
		n = (uint(start)-uint(stop)-1)/uint(-step) + 1
	}
	count := int(min(n, uint(math.MaxInt)))
	return NewEnumerable[int](
		&RangeCursor{start: start, step: step, n: count},
		&RangeCursor{start: start, step: step, idx: count, n: count},
	)
}

// Count yields start, start+1, ... without end.
// Bound it with Take or TakeWhile before draining it.
func Count(start int) Enumerable[int, *RangeCursor] {
	return NewEnumerable[int](
		&RangeCursor{start: start, step: 1, n: -1},
		&RangeCursor{start: start, step: 1, idx: -1, n: -1},
	)
}

func (c *RangeCursor) done() bool {
	return c.n >= 0 && c.idx >= c.n
}

func (c *RangeCursor) Next() {
	if c.done() {
		exhausted("range: next")
	}
	c.idx++
}

func (c *RangeCursor) Value() int {
	if c.done() {
		exhausted("range: value")
	}
	return c.start + c.idx*c.step
}

func (c *RangeCursor) Equal(other *RangeCursor) bool {
	return c.idx == other.idx
}

func (c *RangeCursor) Clone() *RangeCursor {
	cp := *c
	return &cp
}
