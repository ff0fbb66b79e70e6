package geom

// Direction is one of the four compass directions.
//
// Grid convention: X is the row index growing downward and Y is the column
// index growing rightward, so North decreases X and East increases Y.
// Solvers that use a different axis convention define their own deltas.
type Direction int

const (
	North Direction = iota
	South
	West
	East
)

// Directions lists all four directions in declaration order.
var Directions = [4]Direction{North, South, West, East}

// Step returns the unit delta for d under the grid convention above.
func (d Direction) Step() Point {
	switch d {
	case North:
		return Point{X: -1, Y: 0}
	case South:
		return Point{X: 1, Y: 0}
	case West:
		return Point{X: 0, Y: -1}
	default:
		return Point{X: 0, Y: 1}
	}
}

// Clockwise returns the direction a quarter turn to the right.
func (d Direction) Clockwise() Direction {
	switch d {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	default:
		return North
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case West:
		return East
	default:
		return West
	}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "east"
	}
}
