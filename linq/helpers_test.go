package linq_test

import (
	"github.com/pkg/errors"
)

// recoverErr runs f and returns the error it panicked with, if any.
func recoverErr(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			var ok bool
			if err, ok = r.(error); !ok {
				err = errors.Errorf("non-error panic: %v", r)
			}
		}
	}()
	f()
	return nil
}

func oneToNine() []int {
	return []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
}

func isOdd(x int) bool { return x%2 == 1 }
