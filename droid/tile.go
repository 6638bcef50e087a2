package droid

// Direction is a movement command understood by the droid.
type Direction int

//go:generate go tool stringer -linecomment -type=Direction,Tile
const (
	NORTH = Direction(1) // north
	SOUTH = Direction(2) // south
	WEST  = Direction(3) // west
	EAST  = Direction(4) // east
)

// Directions in exploration order.
var Directions = [4]Direction{NORTH, SOUTH, WEST, EAST}

// Reverse returns the opposite direction.
func (dir Direction) Reverse() Direction {
	switch dir {
	case NORTH:
		return SOUTH
	case SOUTH:
		return NORTH
	case WEST:
		return EAST
	case EAST:
		return WEST
	}
	return dir
}

// Delta returns the unit step of the direction.
func (dir Direction) Delta() Point {
	switch dir {
	case NORTH:
		return Point{0, 1}
	case SOUTH:
		return Point{0, -1}
	case WEST:
		return Point{-1, 0}
	case EAST:
		return Point{1, 0}
	}
	return Point{}
}

// Tile is the droid's status reply, which classifies the cell it tried
// to enter.
type Tile int

const (
	TILE_WALL   = Tile(0) // wall
	TILE_FLOOR  = Tile(1) // floor
	TILE_OXYGEN = Tile(2) // oxygen
)

// Open returns true if the droid can stand on the tile.
func (tile Tile) Open() bool {
	return tile == TILE_FLOOR || tile == TILE_OXYGEN
}

// Point is a grid location relative to the droid's starting cell.
type Point struct {
	X, Y int
}

// Add returns the sum of two points.
func (pt Point) Add(other Point) Point {
	return Point{pt.X + other.X, pt.Y + other.Y}
}
