package linq_test

import (
	"slices"
	"testing"

	"lazyseq/linq"
)

func square(x int) int { return x * x }

// BenchmarkChain compares a statically typed chain, the erased Query and a hand-written loop.
func BenchmarkChain(b *testing.B) {
	size := 100_000
	input := make([]int, size)
	for i := range size {
		input[i] = i
	}
	limit := size / 4

	b.Run("Static", func(b *testing.B) {
		b.ReportAllocs()
		for range b.N {
			seq := linq.Take(linq.Select(linq.Where(linq.From(input), isOdd), square), limit)
			_ = linq.Aggregate(seq, 0, func(acc, x int) int { return acc + x })
		}
	})

	b.Run("Query", func(b *testing.B) {
		b.ReportAllocs()
		for range b.N {
			q := linq.Map(linq.QueryFrom(input).Where(isOdd), square).Take(limit)
			_ = linq.Aggregate(q.Enumerable(), 0, func(acc, x int) int { return acc + x })
		}
	})

	b.Run("RangeOverFunc", func(b *testing.B) {
		b.ReportAllocs()
		for range b.N {
			seq := linq.Take(linq.Select(linq.Where(linq.From(input), isOdd), square), limit)
			sum := 0
			for v := range seq.All() {
				sum += v
			}
			_ = sum
		}
	})

	b.Run("Manual", func(b *testing.B) {
		b.ReportAllocs()
		for range b.N {
			sum, n := 0, 0
			for _, v := range input {
				if n == limit {
					break
				}
				if isOdd(v) {
					sum += square(v)
					n++
				}
			}
			_ = sum
		}
	})
}

func BenchmarkToSlice(b *testing.B) {
	input := slices.Collect(linq.Range(0, 10_000, 1).All())
	b.ReportAllocs()
	for range b.N {
		_ = linq.ToSlice(linq.Skip(linq.From(input), 100))
	}
}
