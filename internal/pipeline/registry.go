package pipeline

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrUnknownFunction = errors.New("unknown function")
	ErrZeroArgument    = errors.New("argument must not be zero")
)

type (
	predicateFactory func(arg int) (func(int) bool, error)
	transformFactory func(arg int) (func(int) int, error)
)

func fixedPredicate(p func(int) bool) predicateFactory {
	return func(int) (func(int) bool, error) { return p, nil }
}

func fixedTransform(f func(int) int) transformFactory {
	return func(int) (func(int) int, error) { return f, nil }
}

var predicates = map[string]predicateFactory{
	"odd":      fixedPredicate(func(x int) bool { return x%2 != 0 }),
	"even":     fixedPredicate(func(x int) bool { return x%2 == 0 }),
	"positive": fixedPredicate(func(x int) bool { return x > 0 }),
	"negative": fixedPredicate(func(x int) bool { return x < 0 }),
	"lt":       func(arg int) (func(int) bool, error) { return func(x int) bool { return x < arg }, nil },
	"le":       func(arg int) (func(int) bool, error) { return func(x int) bool { return x <= arg }, nil },
	"gt":       func(arg int) (func(int) bool, error) { return func(x int) bool { return x > arg }, nil },
	"ge":       func(arg int) (func(int) bool, error) { return func(x int) bool { return x >= arg }, nil },
	"eq":       func(arg int) (func(int) bool, error) { return func(x int) bool { return x == arg }, nil },
	"ne":       func(arg int) (func(int) bool, error) { return func(x int) bool { return x != arg }, nil },
	"divisible": func(arg int) (func(int) bool, error) {
		if arg == 0 {
			return nil, ErrZeroArgument
		}
		return func(x int) bool { return x%arg == 0 }, nil
	},
}

var transforms = map[string]transformFactory{
	"identity": fixedTransform(func(x int) int { return x }),
	"square":   fixedTransform(func(x int) int { return x * x }),
	"double":   fixedTransform(func(x int) int { return 2 * x }),
	"negate":   fixedTransform(func(x int) int { return -x }),
	"abs": fixedTransform(func(x int) int {
		if x < 0 {
			return -x
		}
		return x
	}),
	"add": func(arg int) (func(int) int, error) { return func(x int) int { return x + arg }, nil },
	"mul": func(arg int) (func(int) int, error) { return func(x int) int { return x * arg }, nil },
	"mod": func(arg int) (func(int) int, error) {
		if arg == 0 {
			return nil, ErrZeroArgument
		}
		return func(x int) int { return x % arg }, nil
	},
}

// Predicate resolves a registered predicate by name.
func Predicate(name string, arg int) (func(int) bool, error) {
	factory, ok := predicates[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownFunction, "predicate %q", name)
	}
	p, err := factory(arg)
	return p, errors.Wrapf(err, "predicate %q", name)
}

// Transform resolves a registered transform by name.
func Transform(name string, arg int) (func(int) int, error) {
	factory, ok := transforms[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownFunction, "transform %q", name)
	}
	f, err := factory(arg)
	return f, errors.Wrapf(err, "transform %q", name)
}

// Describe renders a step for logs and table captions.
func Describe(s Step) string {
	switch s.Op {
	case OpTake, OpSkip:
		return fmt.Sprintf("%s(%d)", s.Op, s.N)
	default:
		return fmt.Sprintf("%s(%s %d)", s.Op, s.Fn, s.Arg)
	}
}
