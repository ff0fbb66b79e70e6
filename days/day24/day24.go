// Package day24 crosses a valley of cycling blizzards. Blizzard positions
// repeat with period lcm(height, width) of the interior, so the search
// runs over (position, time mod period) states by breadth-first search.
package day24

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/adventcode/advent2022/geom"
	"github.com/adventcode/advent2022/input"
)

var (
	// ErrBadValley indicates a scan without the expected wall frame or
	// with unknown cells.
	ErrBadValley = errors.New("day24: malformed valley")
	// ErrNoRoute indicates that no schedule reaches the goal.
	ErrNoRoute = errors.New("day24: no route through the blizzards")
)

// blizzard is one storm: its starting cell and per-minute step.
type blizzard struct {
	start geom.Point
	step  geom.Point
}

// Valley is the parsed basin: interior size, entry and exit cells, and
// the storms.
type Valley struct {
	rows, cols int // interior size, walls excluded
	Entry      geom.Point
	Exit       geom.Point
	blizzards  []blizzard
	period     int

	// open[t] holds the storm-free interior cells at time t mod period.
	open []map[geom.Point]bool
}

var arrows = map[byte]geom.Point{
	'^': {X: -1, Y: 0},
	'v': {X: 1, Y: 0},
	'<': {X: 0, Y: -1},
	'>': {X: 0, Y: 1},
}

// Parse reads the valley scan. Interior coordinates are 0-based; the
// entry sits one row above the interior and the exit one row below.
func Parse(text string) (*Valley, error) {
	lines := input.Lines(text)
	if len(lines) < 3 || len(lines[0]) < 3 {
		return nil, fmt.Errorf("%w: too small", ErrBadValley)
	}

	v := &Valley{rows: len(lines) - 2, cols: len(lines[0]) - 2}
	for x, line := range lines {
		if len(line) != v.cols+2 {
			return nil, fmt.Errorf("%w: ragged row %d", ErrBadValley, x)
		}
		for y := 0; y < len(line); y++ {
			c := line[y]
			onFrame := x == 0 || x == len(lines)-1 || y == 0 || y == len(line)-1
			switch {
			case onFrame && c == '#':
			case onFrame && c == '.' && x == 0:
				v.Entry = geom.Point{X: -1, Y: y - 1}
			case onFrame && c == '.' && x == len(lines)-1:
				v.Exit = geom.Point{X: v.rows, Y: y - 1}
			case !onFrame && c == '.':
			case !onFrame && arrows[c] != (geom.Point{}):
				v.blizzards = append(v.blizzards, blizzard{
					start: geom.Point{X: x - 1, Y: y - 1},
					step:  arrows[c],
				})
			default:
				return nil, fmt.Errorf("%w: cell %q at row %d", ErrBadValley, c, x)
			}
		}
	}

	v.period = lcm(v.rows, v.cols)
	v.buildOpenSets()

	return v, nil
}

// buildOpenSets precomputes the storm-free cells for every time in one
// period.
func (v *Valley) buildOpenSets() {
	v.open = make([]map[geom.Point]bool, v.period)
	for t := 0; t < v.period; t++ {
		open := make(map[geom.Point]bool, v.rows*v.cols)
		for x := 0; x < v.rows; x++ {
			for y := 0; y < v.cols; y++ {
				open[geom.Point{X: x, Y: y}] = true
			}
		}
		for _, b := range v.blizzards {
			p := geom.Point{
				X: mod(b.start.X+b.step.X*t, v.rows),
				Y: mod(b.start.Y+b.step.Y*t, v.cols),
			}
			delete(open, p)
		}
		v.open[t] = open
	}
}

// walkable reports whether p can be stood on at time t.
func (v *Valley) walkable(p geom.Point, t int) bool {
	if p == v.Entry || p == v.Exit {
		return true
	}
	if p.X < 0 || p.X >= v.rows || p.Y < 0 || p.Y >= v.cols {
		return false
	}

	return v.open[t%v.period][p]
}

// state is one BFS node: a position at a time within the storm period.
type state struct {
	pos   geom.Point
	phase int
}

// Trip returns the fewest minutes to walk from one gate to the other,
// leaving at the given start time.
func (v *Valley) Trip(from, to geom.Point, startTime int) (int, error) {
	seen := map[state]bool{{pos: from, phase: startTime % v.period}: true}
	frontier := []geom.Point{from}

	for t := startTime; len(frontier) > 0; t++ {
		var next []geom.Point
		phase := (t + 1) % v.period
		for _, p := range frontier {
			for _, q := range [5]geom.Point{
				p,
				{X: p.X - 1, Y: p.Y},
				{X: p.X + 1, Y: p.Y},
				{X: p.X, Y: p.Y - 1},
				{X: p.X, Y: p.Y + 1},
			} {
				if q == to {
					return t + 1 - startTime, nil
				}
				if !v.walkable(q, t+1) || seen[state{pos: q, phase: phase}] {
					continue
				}
				seen[state{pos: q, phase: phase}] = true
				next = append(next, q)
			}
		}
		frontier = next
	}

	return 0, fmt.Errorf("%w: %v to %v", ErrNoRoute, from, to)
}

// ThereAndBackAgain returns the crossing time there, and the total after
// going there, back for the snacks, and there again.
func (v *Valley) ThereAndBackAgain() (there, total int, err error) {
	there, err = v.Trip(v.Entry, v.Exit, 0)
	if err != nil {
		return 0, 0, err
	}
	back, err := v.Trip(v.Exit, v.Entry, there)
	if err != nil {
		return 0, 0, err
	}
	again, err := v.Trip(v.Entry, v.Exit, there+back)
	if err != nil {
		return 0, 0, err
	}

	return there, there + back + again, nil
}

func mod(a, m int) int {
	a %= m
	if a < 0 {
		a += m
	}

	return a
}

func lcm(a, b int) int {
	x, y := a, b
	for y != 0 {
		x, y = y, x%y
	}

	return a / x * b
}

// Solve answers both parts over the valley scan.
func Solve(text string) (string, string, error) {
	valley, err := Parse(text)
	if err != nil {
		return "", "", err
	}

	there, total, err := valley.ThereAndBackAgain()
	if err != nil {
		return "", "", err
	}

	return strconv.Itoa(there), strconv.Itoa(total), nil
}
