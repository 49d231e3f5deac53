package linq_test

import (
	"fmt"

	"lazyseq/linq"
)

func ExampleWhere() {
	odd := linq.Where(linq.From([]int{2, 3, 4, 5, 6, 7, 8, 9, 15, 20}), func(x int) bool {
		return x%2 == 1
	})

	for c, end := odd.Begin(), odd.End(); !c.Equal(end); c.Next() {
		fmt.Println(c.Value())
	}

	// Output:
	// 3
	// 5
	// 7
	// 9
	// 15
}

func ExampleSkip() {
	seq := linq.TakeWhile(linq.Skip(linq.Range(1, 10, 1), 4), func(x int) bool {
		return x < 8
	})

	fmt.Println(linq.ToSlice(seq))

	// Output:
	// [5 6 7]
}

func ExampleQuery() {
	q := linq.QueryFrom([]int{1, 2, 3, 4, 5, 6, 7, 8, 9})
	squares := linq.Map(q, func(x int) int { return x * x }).Take(3)

	for v := range squares.All() {
		fmt.Println(v)
	}

	// Output:
	// 1
	// 4
	// 9
}
