// Package day14 pours sand into a cave traced from rock paths. Grains fall
// straight down, then diagonally left, then diagonally right, until they
// settle, stream into the abyss, or plug the source.
package day14

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/adventcode/advent2022/geom"
	"github.com/adventcode/advent2022/input"
)

// ErrBadPath indicates a rock path outside the "x,y -> x,y" grammar or one
// with a diagonal segment.
var ErrBadPath = errors.New("day14: malformed rock path")

// source is where sand enters the cave: X is the column, Y the depth.
var source = geom.Point{X: 500, Y: 0}

// Cave holds the blocked cells (rock at first, settled sand later) and the
// depth of the lowest rock.
type Cave struct {
	blocked map[geom.Point]bool
	maxY    int
}

// Parse traces the rock paths into a cave.
func Parse(text string) (*Cave, error) {
	cave := &Cave{blocked: map[geom.Point]bool{}}

	for _, line := range input.Lines(text) {
		var path []geom.Point
		for _, field := range strings.Split(line, " -> ") {
			var p geom.Point
			if _, err := fmt.Sscanf(field, "%d,%d", &p.X, &p.Y); err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadPath, line)
			}
			path = append(path, p)
		}
		for i := 1; i < len(path); i++ {
			from, to := path[i-1], path[i]
			if from.X != to.X && from.Y != to.Y {
				return nil, fmt.Errorf("%w: diagonal segment in %q", ErrBadPath, line)
			}
			step := geom.Point{X: sign(to.X - from.X), Y: sign(to.Y - from.Y)}
			for p := from; ; p = p.Add(step) {
				cave.blocked[p] = true
				if p.Y > cave.maxY {
					cave.maxY = p.Y
				}
				if p == to {
					break
				}
			}
		}
	}

	return cave, nil
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}

	return 0
}

// drop traces one grain from the source. floor < 0 means a bottomless
// cave; the returned ok is false once the grain passes the lowest rock or
// the source itself is already plugged.
func drop(blocked map[geom.Point]bool, maxY, floor int) (geom.Point, bool) {
	if blocked[source] {
		return geom.Point{}, false
	}

	p := source
	for {
		if floor < 0 && p.Y > maxY {
			return geom.Point{}, false
		}
		moved := false
		for _, dx := range [3]int{0, -1, 1} {
			next := geom.Point{X: p.X + dx, Y: p.Y + 1}
			if !blocked[next] && (floor < 0 || next.Y < floor) {
				p, moved = next, true
				break
			}
		}
		if !moved {
			return p, true
		}
	}
}

// pour counts grains until they stop settling, on a copy of the cave.
func (c *Cave) pour(floor int) int {
	blocked := make(map[geom.Point]bool, len(c.blocked))
	for p := range c.blocked {
		blocked[p] = true
	}

	count := 0
	for {
		p, ok := drop(blocked, c.maxY, floor)
		if !ok {
			return count
		}
		blocked[p] = true
		count++
	}
}

// UnitsBeforeAbyss counts grains that settle before one falls forever.
func (c *Cave) UnitsBeforeAbyss() int {
	return c.pour(-1)
}

// UnitsToPlugSource counts grains on an infinite floor two below the
// lowest rock, up to and including the grain that plugs the source.
func (c *Cave) UnitsToPlugSource() int {
	return c.pour(c.maxY + 2)
}

// Solve answers both parts over the traced cave.
func Solve(text string) (string, string, error) {
	cave, err := Parse(text)
	if err != nil {
		return "", "", err
	}

	return strconv.Itoa(cave.UnitsBeforeAbyss()), strconv.Itoa(cave.UnitsToPlugSource()), nil
}
