// Package day23 spreads the elves out across the grove. Each round every
// crowded elf proposes a step in the first clear compass direction,
// rotating the direction order, and clashing proposals cancel.
package day23

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/adventcode/advent2022/geom"
	"github.com/adventcode/advent2022/input"
)

// ErrBadGrove indicates a scan with characters other than . and #.
var ErrBadGrove = errors.New("day23: malformed grove")

const part1Rounds = 10

// Parse reads the elf positions from the scan.
func Parse(text string) (map[geom.Point]bool, error) {
	elves := map[geom.Point]bool{}
	for x, line := range input.Lines(text) {
		for y := 0; y < len(line); y++ {
			switch line[y] {
			case '#':
				elves[geom.Point{X: x, Y: y}] = true
			case '.':
			default:
				return nil, fmt.Errorf("%w: cell %q", ErrBadGrove, line[y])
			}
		}
	}

	return elves, nil
}

// lookout lists the three cells an elf checks before proposing a step in
// each direction.
func lookout(p geom.Point, dir geom.Direction) [3]geom.Point {
	step := dir.Step()
	if step.X != 0 {
		return [3]geom.Point{
			{X: p.X + step.X, Y: p.Y - 1},
			{X: p.X + step.X, Y: p.Y},
			{X: p.X + step.X, Y: p.Y + 1},
		}
	}

	return [3]geom.Point{
		{X: p.X - 1, Y: p.Y + step.Y},
		{X: p.X, Y: p.Y + step.Y},
		{X: p.X + 1, Y: p.Y + step.Y},
	}
}

// crowded reports whether any of the eight neighbors is occupied.
func crowded(elves map[geom.Point]bool, p geom.Point) bool {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if elves[geom.Point{X: p.X + dx, Y: p.Y + dy}] {
				return true
			}
		}
	}

	return false
}

// round plays one diffusion round in place, with firstDir leading the
// rotated direction order, and reports whether anyone moved.
func round(elves map[geom.Point]bool, firstDir int) bool {
	proposals := map[geom.Point]geom.Point{} // target -> proposer
	conflicts := map[geom.Point]bool{}

	for p := range elves {
		if !crowded(elves, p) {
			continue
		}
		for i := 0; i < len(geom.Directions); i++ {
			dir := geom.Directions[(firstDir+i)%len(geom.Directions)]
			clear := true
			for _, q := range lookout(p, dir) {
				if elves[q] {
					clear = false
					break
				}
			}
			if !clear {
				continue
			}
			target := p.Add(dir.Step())
			if _, taken := proposals[target]; taken {
				conflicts[target] = true
			} else {
				proposals[target] = p
			}
			break
		}
	}

	moved := false
	for target, from := range proposals {
		if conflicts[target] {
			continue
		}
		delete(elves, from)
		elves[target] = true
		moved = true
	}

	return moved
}

// EmptyGround plays the given number of rounds and counts empty cells in
// the elves' bounding rectangle.
func EmptyGround(elves map[geom.Point]bool, rounds int) int {
	grove := clone(elves)
	for r := 0; r < rounds; r++ {
		if !round(grove, r%len(geom.Directions)) {
			break
		}
	}

	first := true
	var lo, hi geom.Point
	for p := range grove {
		if first {
			lo, hi, first = p, p, false
			continue
		}
		lo = geom.Point{X: min(lo.X, p.X), Y: min(lo.Y, p.Y)}
		hi = geom.Point{X: max(hi.X, p.X), Y: max(hi.Y, p.Y)}
	}
	if first {
		return 0
	}

	return (hi.X-lo.X+1)*(hi.Y-lo.Y+1) - len(grove)
}

// RoundsToSettle counts rounds until no elf needs to move, including the
// final still round.
func RoundsToSettle(elves map[geom.Point]bool) int {
	grove := clone(elves)
	r := 0
	for {
		moved := round(grove, r%len(geom.Directions))
		r++
		if !moved {
			return r
		}
	}
}

func clone(elves map[geom.Point]bool) map[geom.Point]bool {
	out := make(map[geom.Point]bool, len(elves))
	for p := range elves {
		out[p] = true
	}

	return out
}

// Solve answers both parts over the grove scan.
func Solve(text string) (string, string, error) {
	elves, err := Parse(text)
	if err != nil {
		return "", "", err
	}

	p1 := EmptyGround(elves, part1Rounds)
	p2 := RoundsToSettle(elves)

	return strconv.Itoa(p1), strconv.Itoa(p2), nil
}
