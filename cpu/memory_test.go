package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	assert := assert.New(t)

	program := []int64{10, 20, 30}
	mem := NewMemory(program)
	assert.Equal(3, mem.Len())

	value, err := mem.Load(1)
	assert.NoError(err)
	assert.Equal(int64(20), value)

	// Past the end reads as zero without growing.
	value, err = mem.Load(500)
	assert.NoError(err)
	assert.Equal(int64(0), value)
	assert.Equal(3, mem.Len())

	// Past the end stores zero-extend.
	err = mem.Store(6, -9)
	assert.NoError(err)
	assert.Equal([]int64{10, 20, 30, 0, 0, 0, -9}, mem.Cells())

	err = mem.Store(0, 11)
	assert.NoError(err)
	assert.Equal([]int64{10, 20, 30}, program)

	_, err = mem.Load(-1)
	assert.ErrorIs(err, ErrAddressNegative)
	err = mem.Store(-1, 0)
	assert.ErrorIs(err, ErrAddressNegative)
}

func TestMemoryClone(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory([]int64{1, 2})
	clone := mem.Clone()
	assert.NoError(clone.Store(0, 5))
	assert.NoError(clone.Store(4, 5))

	assert.Equal([]int64{1, 2}, mem.Cells())
	assert.Equal([]int64{5, 2, 0, 0, 5}, clone.Cells())

	cells := mem.Cells()
	cells[0] = 99
	value, _ := mem.Load(0)
	assert.Equal(int64(1), value)
}

func TestMemoryEmpty(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(nil)
	assert.Equal(0, mem.Len())
	value, err := mem.Load(0)
	assert.NoError(err)
	assert.Equal(int64(0), value)
	assert.NoError(mem.Store(0, 3))
	assert.Equal([]int64{3}, mem.Cells())
}

func TestMemorySparse(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory([]int64{1, 2})

	value, err := mem.Load(1 << 62)
	assert.NoError(err)
	assert.Equal(int64(0), value)

	assert.NoError(mem.Store(1<<40, 7))
	assert.NoError(mem.Store(MEMORY_DENSE_LIMIT, 8))
	assert.Equal(2, mem.Len())

	value, err = mem.Load(1 << 40)
	assert.NoError(err)
	assert.Equal(int64(7), value)

	value, err = mem.Load(MEMORY_DENSE_LIMIT)
	assert.NoError(err)
	assert.Equal(int64(8), value)

	value, err = mem.Load(1<<40 + 1)
	assert.NoError(err)
	assert.Equal(int64(0), value)

	// Below the dense limit, stores still grow the dense words.
	assert.NoError(mem.Store(3, 9))
	assert.Equal([]int64{1, 2, 0, 9}, mem.Cells())

	clone := mem.Clone()
	assert.NoError(clone.Store(1<<40, 70))
	value, _ = mem.Load(1 << 40)
	assert.Equal(int64(7), value)
	value, _ = clone.Load(1 << 40)
	assert.Equal(int64(70), value)
}
