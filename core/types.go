// Package core contains the fundamental types shared by the grid packages.
package core

// Point represents a cell coordinate. Origin (0,0) is top-left, X grows
// rightward and Y grows downward.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Direction represents a compass direction between neighbouring cells.
type Direction int

const (
	North Direction = iota
	East
	South
	West
	SouthEast
	NorthEast
	NorthWest
	SouthWest
)

// Cardinal lists the four directions used for 4-directional adjacency.
var Cardinal = []Direction{North, East, South, West}

// Compass lists all eight directions, cardinals first.
var Compass = []Direction{North, East, South, West, SouthEast, NorthEast, NorthWest, SouthWest}

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	case SouthEast:
		return "SouthEast"
	case NorthEast:
		return "NorthEast"
	case NorthWest:
		return "NorthWest"
	case SouthWest:
		return "SouthWest"
	default:
		return "Unknown"
	}
}

// Offset returns the unit step for the direction.
func (d Direction) Offset() Point {
	switch d {
	case North:
		return Point{0, -1}
	case East:
		return Point{1, 0}
	case South:
		return Point{0, 1}
	case West:
		return Point{-1, 0}
	case SouthEast:
		return Point{1, 1}
	case NorthEast:
		return Point{1, -1}
	case NorthWest:
		return Point{-1, -1}
	case SouthWest:
		return Point{-1, 1}
	default:
		return Point{}
	}
}
