package linq

import "github.com/pkg/errors"

// ErrCursorExhausted is the panic value (wrapped) raised when a cursor is read or advanced
// after it reached its end sentinel.
var ErrCursorExhausted = errors.New("linq: cursor read or advanced past its end")

// Cursor is a traversal position over a sequence of T.
// C is the concrete cursor kind itself, so Equal and Clone stay statically typed.
type Cursor[T, C any] interface {
	// Next moves the cursor to the next logical position.
	Next()

	// Value returns the element at the current position.
	Value() T

	// Equal reports whether both cursors point at the same position.
	// Comparing against the end sentinel is the only termination test.
	Equal(other C) bool

	// Clone returns an independent copy that can be advanced separately.
	Clone() C
}

func exhausted(op string) {
	panic(errors.Wrap(ErrCursorExhausted, op))
}
