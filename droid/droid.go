// Package droid explores an unknown maze with a remotely controlled repair
// droid, and answers distance questions about the explored map.
package droid

import (
	"log"
	"strings"

	"github.com/ezrec/intcode/cpu"
)

// Remote moves the droid one step, and returns the status reply for the
// cell it tried to enter. The droid does not move into walls.
type Remote interface {
	Move(dir Direction) (tile Tile, err error)
}

// Machine is a Remote backed by an intcode droid program.
type Machine struct {
	Verbose bool
	Cpu     *cpu.Cpu
}

var _ Remote = (*Machine)(nil)

// NewMachine creates a droid running program.
func NewMachine(program []int64) *Machine {
	return &Machine{Cpu: cpu.NewCpu(program)}
}

// expect runs the droid to its next suspension, and checks its state.
func (m *Machine) expect(want cpu.State) (err error) {
	err = m.Cpu.Run()
	if err != nil {
		return
	}

	if m.Cpu.State() != want {
		err = ErrProtocol{Want: want, Have: m.Cpu.State()}
	}

	return
}

// Move sends a movement command, and returns the droid's reply.
func (m *Machine) Move(dir Direction) (tile Tile, err error) {
	err = m.expect(cpu.STATE_READ)
	if err != nil {
		return
	}

	err = m.Cpu.Write(int64(dir))
	if err != nil {
		return
	}

	err = m.expect(cpu.STATE_WRITE)
	if err != nil {
		return
	}

	reply, err := m.Cpu.Read()
	if err != nil {
		return
	}

	tile = Tile(reply)
	if tile < TILE_WALL || tile > TILE_OXYGEN {
		err = ErrTileUnknown
		return
	}

	if m.Verbose {
		log.Printf("droid: %v -> %v", dir, tile)
	}

	return
}

// Map is the explored maze, keyed by location relative to the start.
type Map map[Point]Tile

// frame is one level of the depth-first walk.
type frame struct {
	at   Point
	next int       // Index into Directions of the next neighbor to try.
	back Direction // Move that returns to the parent cell.
}

// Explore walks every reachable cell with a depth-first search, moving
// the droid back along its path when a branch is exhausted. The droid
// ends at its starting cell.
func Explore(remote Remote) (maze Map, err error) {
	origin := Point{}
	maze = Map{origin: TILE_FLOOR}

	stack := []frame{{at: origin}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.next == len(Directions) {
			back := top.back
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				break
			}
			var tile Tile
			tile, err = remote.Move(back)
			if err != nil {
				return
			}
			if !tile.Open() {
				err = ErrBacktrack
				return
			}
			continue
		}

		dir := Directions[top.next]
		top.next++

		at := top.at.Add(dir.Delta())
		if _, known := maze[at]; known {
			continue
		}

		var tile Tile
		tile, err = remote.Move(dir)
		if err != nil {
			return
		}

		maze[at] = tile
		if tile.Open() {
			stack = append(stack, frame{at: at, back: dir.Reverse()})
		}
	}

	return
}

// Find returns the location of the first tile of the given kind.
func (maze Map) Find(tile Tile) (at Point, ok bool) {
	for pt, kind := range maze {
		if kind == tile {
			return pt, true
		}
	}

	return
}

// Distances returns the shortest walking distance from the start point
// to every reachable open cell.
func (maze Map) Distances(from Point) (dist map[Point]int) {
	dist = map[Point]int{}
	if !maze[from].Open() {
		return
	}

	dist[from] = 0
	queue := []Point{from}
	for len(queue) > 0 {
		at := queue[0]
		queue = queue[1:]
		for _, dir := range Directions {
			next := at.Add(dir.Delta())
			if _, seen := dist[next]; seen {
				continue
			}
			if !maze[next].Open() {
				continue
			}
			dist[next] = dist[at] + 1
			queue = append(queue, next)
		}
	}

	return
}

// Distance returns the shortest walking distance between two cells.
func (maze Map) Distance(from, to Point) (steps int, ok bool) {
	steps, ok = maze.Distances(from)[to]
	return
}

// Fill returns the number of steps needed for oxygen spreading from a
// cell to reach every reachable open cell.
func (maze Map) Fill(from Point) (steps int) {
	for _, dist := range maze.Distances(from) {
		steps = max(steps, dist)
	}

	return
}

// String renders the map, north up. The start is 'S', oxygen 'O', walls
// '#', floor '.', and unexplored cells ' '.
func (maze Map) String() string {
	if len(maze) == 0 {
		return ""
	}

	lo, hi := Point{}, Point{}
	for pt := range maze {
		lo = Point{min(lo.X, pt.X), min(lo.Y, pt.Y)}
		hi = Point{max(hi.X, pt.X), max(hi.Y, pt.Y)}
	}

	var text strings.Builder
	for y := hi.Y; y >= lo.Y; y-- {
		for x := lo.X; x <= hi.X; x++ {
			pt := Point{x, y}
			tile, known := maze[pt]
			switch {
			case pt.X == 0 && pt.Y == 0:
				text.WriteByte('S')
			case !known:
				text.WriteByte(' ')
			case tile == TILE_WALL:
				text.WriteByte('#')
			case tile == TILE_OXYGEN:
				text.WriteByte('O')
			default:
				text.WriteByte('.')
			}
		}
		text.WriteByte('\n')
	}

	return text.String()
}
