package internal

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeqConcat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeqConcat(slices.Values([]int{1, 2}), slices.Values([]int{}), slices.Values([]int{3}))
	assert.Equal([]int{1, 2, 3}, slices.Collect(seq))

	var first []int
	for v := range seq {
		first = append(first, v)
		break
	}
	assert.Equal([]int{1}, first)
}

func TestPermutations(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		items []int
		count int
	}){
		{"empty", []int{}, 1},
		{"one", []int{7}, 1},
		{"two", []int{1, 2}, 2},
		{"three", []int{1, 2, 3}, 6},
		{"five", []int{0, 1, 2, 3, 4}, 120},
	}

	for _, entry := range table {
		seen := map[string]bool{}
		for perm := range Permutations(entry.items) {
			assert.ElementsMatch(entry.items, perm, entry.name)
			key := ""
			for _, v := range perm {
				key += string(rune('a' + v))
			}
			assert.False(seen[key], entry.name)
			seen[key] = true
		}
		assert.Equal(entry.count, len(seen), entry.name)
	}
}

func TestPermutationsOwned(t *testing.T) {
	assert := assert.New(t)

	items := []int{1, 2, 3}
	var all [][]int
	for perm := range Permutations(items) {
		all = append(all, perm)
	}

	assert.Equal([]int{1, 2, 3}, items)
	assert.Equal([]int{1, 2, 3}, all[0])
	assert.Len(all, 6)
}
