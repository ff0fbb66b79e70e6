// Package day08 surveys a square grid of tree heights for visibility from
// outside the grid and for the best scenic score.
package day08

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/adventcode/advent2022/geom"
	"github.com/adventcode/advent2022/input"
)

// ErrBadGrid indicates a ragged grid or a non-digit height.
var ErrBadGrid = errors.New("day08: malformed grid")

// Grid is a rectangular field of tree heights 0-9.
type Grid [][]int

// Parse reads the height grid, one digit row per line.
func Parse(text string) (Grid, error) {
	lines := input.Lines(text)

	grid := make(Grid, 0, len(lines))
	for _, line := range lines {
		if len(grid) > 0 && len(line) != len(grid[0]) {
			return nil, fmt.Errorf("%w: ragged row %q", ErrBadGrid, line)
		}
		row := make([]int, len(line))
		for i := 0; i < len(line); i++ {
			if line[i] < '0' || line[i] > '9' {
				return nil, fmt.Errorf("%w: height %q", ErrBadGrid, line[i])
			}
			row[i] = int(line[i] - '0')
		}
		grid = append(grid, row)
	}

	return grid, nil
}

// visibleFrom reports whether the tree at p clears everything along one
// direction to the edge.
func (g Grid) visibleFrom(p geom.Point, dir geom.Direction) bool {
	h := g[p.X][p.Y]
	for q := p.Add(dir.Step()); g.in(q); q = q.Add(dir.Step()) {
		if g[q.X][q.Y] >= h {
			return false
		}
	}

	return true
}

// viewingDistance counts trees seen from p along one direction, stopping
// at the first tree at least as tall.
func (g Grid) viewingDistance(p geom.Point, dir geom.Direction) int {
	h := g[p.X][p.Y]
	n := 0
	for q := p.Add(dir.Step()); g.in(q); q = q.Add(dir.Step()) {
		n++
		if g[q.X][q.Y] >= h {
			break
		}
	}

	return n
}

func (g Grid) in(p geom.Point) bool {
	return p.X >= 0 && p.X < len(g) && p.Y >= 0 && p.Y < len(g[0])
}

// CountVisible counts trees visible from outside the grid along at least
// one axis-aligned direction.
func (g Grid) CountVisible() int {
	n := 0
	for x := range g {
		for y := range g[x] {
			for _, dir := range geom.Directions {
				if g.visibleFrom(geom.Point{X: x, Y: y}, dir) {
					n++
					break
				}
			}
		}
	}

	return n
}

// BestScenicScore maximizes the product of the four viewing distances over
// all trees.
func (g Grid) BestScenicScore() int {
	best := 0
	for x := range g {
		for y := range g[x] {
			score := 1
			for _, dir := range geom.Directions {
				score *= g.viewingDistance(geom.Point{X: x, Y: y}, dir)
			}
			if score > best {
				best = score
			}
		}
	}

	return best
}

// Solve answers both parts over the height grid.
func Solve(text string) (string, string, error) {
	grid, err := Parse(text)
	if err != nil {
		return "", "", err
	}

	return strconv.Itoa(grid.CountVisible()), strconv.Itoa(grid.BestScenicScore()), nil
}
