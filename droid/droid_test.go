package droid

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/intcode/cpu"
)

// fakeMaze is a Remote over a text maze. 'S' is the start, 'O' oxygen,
// '#' wall; north is up.
type fakeMaze struct {
	rows     []string
	row, col int
	moves    int
}

func newFakeMaze(text string) *fakeMaze {
	maze := &fakeMaze{rows: strings.Split(strings.Trim(text, "\n"), "\n")}
	for r, line := range maze.rows {
		if c := strings.IndexByte(line, 'S'); c >= 0 {
			maze.row, maze.col = r, c
		}
	}
	return maze
}

func (maze *fakeMaze) Move(dir Direction) (tile Tile, err error) {
	maze.moves++
	delta := dir.Delta()
	row, col := maze.row-delta.Y, maze.col+delta.X
	switch maze.rows[row][col] {
	case '#':
		return TILE_WALL, nil
	case 'O':
		tile = TILE_OXYGEN
	default:
		tile = TILE_FLOOR
	}
	maze.row, maze.col = row, col
	return
}

const testMaze = `
#######
#S..#.#
#.#.#.#
#.#...#
#O#####
#######
`

func TestExplore(t *testing.T) {
	assert := assert.New(t)

	remote := newFakeMaze(testMaze)
	maze, err := Explore(remote)
	assert.NoError(err)

	// The droid is returned to the start.
	assert.Equal(1, remote.row)
	assert.Equal(1, remote.col)

	open := 0
	for _, tile := range maze {
		if tile.Open() {
			open++
		}
	}
	assert.Equal(12, open)

	oxygen, ok := maze.Find(TILE_OXYGEN)
	assert.True(ok)
	assert.Equal(Point{0, -3}, oxygen)

	steps, ok := maze.Distance(Point{}, oxygen)
	assert.True(ok)
	assert.Equal(3, steps)

	assert.Equal(11, maze.Fill(oxygen))

	_, ok = maze.Distance(Point{}, Point{100, 100})
	assert.False(ok)
}

func TestMapString(t *testing.T) {
	assert := assert.New(t)

	maze, err := Explore(newFakeMaze(testMaze))
	assert.NoError(err)

	expect := strings.Join([]string{
		" ### # ",
		"#S..###",
		"#.#.#.#",
		"#.#...#",
		"#O#### ",
		" #     ",
		"",
	}, "\n")
	assert.Equal(expect, maze.String())
	assert.Equal("", Map{}.String())
}

func TestDirection(t *testing.T) {
	assert := assert.New(t)

	for _, dir := range Directions {
		assert.Equal(dir, dir.Reverse().Reverse())
		assert.Equal(Point{}, dir.Delta().Add(dir.Reverse().Delta()))
	}

	assert.Equal("north", NORTH.String())
	assert.Equal("oxygen", TILE_OXYGEN.String())
	assert.Equal("Direction(9)", Direction(9).String())
}

func TestMachineWalls(t *testing.T) {
	assert := assert.New(t)

	// Every command is answered with a wall.
	droid := NewMachine([]int64{3, 100, 104, 0, 1105, 1, 0})
	maze, err := Explore(droid)
	assert.NoError(err)

	assert.Len(maze, 5)
	assert.Equal(TILE_FLOOR, maze[Point{}])
	for _, dir := range Directions {
		assert.Equal(TILE_WALL, maze[dir.Delta()], dir.String())
	}

	value, err := droid.Cpu.Peek(100)
	assert.NoError(err)
	assert.Equal(int64(EAST), value)

	_, ok := maze.Find(TILE_OXYGEN)
	assert.False(ok)
}

func TestMachineCorridor(t *testing.T) {
	assert := assert.New(t)

	// Replies with successive entries of a table, using the relative
	// base as the table cursor. The replies describe a west-east corridor
	// with oxygen to the east of the start.
	program := []int64{
		109, 20, // 0: rb = 20
		3, 50, // 2: in [50]
		204, 0, // 4: out rel[0]
		109, 1, // 6: rb += 1
		1105, 1, 2, // 8: jmp 2
	}
	program = append(program, make([]int64, 20-len(program))...)
	program = append(program,
		0, 0, 1, // origin: north, south, west
		0, 0, 0, // west cell: north, south, west
		1,       // back east
		2,       // origin: east
		0, 0, 0, // east cell: north, south, east
		1, // back west
	)

	droid := NewMachine(program)
	maze, err := Explore(droid)
	assert.NoError(err)

	assert.Equal(TILE_OXYGEN, maze[Point{1, 0}])
	assert.Equal(TILE_FLOOR, maze[Point{-1, 0}])
	assert.Equal(int64(31), droid.Cpu.RelativeBase())
	steps, ok := maze.Distance(Point{-1, 0}, Point{1, 0})
	assert.True(ok)
	assert.Equal(2, steps)
}

func TestMachineProtocol(t *testing.T) {
	assert := assert.New(t)

	droid := NewMachine([]int64{99})
	_, err := droid.Move(NORTH)
	var protocol ErrProtocol
	if assert.True(errors.As(err, &protocol)) {
		assert.Equal(cpu.STATE_READ, protocol.Want)
		assert.Equal(cpu.STATE_HALT, protocol.Have)
	}

	droid = NewMachine([]int64{3, 10, 104, 7, 99})
	_, err = droid.Move(NORTH)
	assert.ErrorIs(err, ErrTileUnknown)
}
