package internal

import (
	"iter"
	"slices"
)

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// Permutations yields every ordering of items, using the iterative form of
// Heap's algorithm. Each yielded slice is a fresh copy owned by the consumer.
func Permutations[T any](items []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		perm := slices.Clone(items)
		if !yield(slices.Clone(perm)) {
			return
		}

		// counter[n] is the loop index of the n-th level of the
		// recursive formulation.
		counter := make([]int, len(perm))
		for n := 1; n < len(perm); {
			if counter[n] < n {
				if n%2 == 0 {
					perm[0], perm[n] = perm[n], perm[0]
				} else {
					perm[counter[n]], perm[n] = perm[n], perm[counter[n]]
				}
				if !yield(slices.Clone(perm)) {
					return
				}
				counter[n]++
				n = 1
			} else {
				counter[n] = 0
				n++
			}
		}
	}
}
