package cpu

import (
	"maps"
	"slices"
)

const (
	MEMORY_DENSE_LIMIT = 1 << 20 // Stores below this address grow the dense words.
)

// Memory is the machine's word store. Addresses past the end of the
// stored words read as zero, and stores past the end zero-extend the
// store before writing. Words stored at or past MEMORY_DENSE_LIMIT, and
// beyond the loaded program, are kept sparsely.
type Memory struct {
	data   []int64
	sparse map[int64]int64
}

// NewMemory creates a memory holding a copy of the program.
func NewMemory(program []int64) (mem *Memory) {
	mem = &Memory{
		data: slices.Clone(program),
	}

	return
}

// Len returns the number of words densely backed by storage.
func (mem *Memory) Len() int {
	return len(mem.data)
}

// Load returns the word at addr.
func (mem *Memory) Load(addr int64) (value int64, err error) {
	if addr < 0 {
		err = ErrAddressNegative
		return
	}

	if addr < int64(len(mem.data)) {
		value = mem.data[addr]
		return
	}

	value = mem.sparse[addr]

	return
}

// Store sets the word at addr, growing the store as needed.
func (mem *Memory) Store(addr int64, value int64) (err error) {
	if addr < 0 {
		err = ErrAddressNegative
		return
	}

	switch {
	case addr < int64(len(mem.data)):
	case addr < MEMORY_DENSE_LIMIT:
		grow := int(addr) + 1 - len(mem.data)
		mem.data = append(mem.data, make([]int64, grow)...)
	default:
		if mem.sparse == nil {
			mem.sparse = make(map[int64]int64)
		}
		mem.sparse[addr] = value
		return
	}

	mem.data[addr] = value

	return
}

// Cells returns a copy of the densely stored words.
func (mem *Memory) Cells() []int64 {
	return slices.Clone(mem.data)
}

// Clone returns an independent copy of the memory.
func (mem *Memory) Clone() (clone *Memory) {
	clone = NewMemory(mem.data)
	if mem.sparse != nil {
		clone.sparse = maps.Clone(mem.sparse)
	}

	return
}
