// Package day12 finds the shortest hike up a heightmap where each step may
// climb at most one elevation level. A single breadth-first search from the
// summit answers both the marked start and the best low-elevation start.
package day12

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/adventcode/advent2022/geom"
	"github.com/adventcode/advent2022/input"
)

var (
	// ErrBadMap indicates a ragged map, an invalid cell, or missing S/E.
	ErrBadMap = errors.New("day12: malformed heightmap")
	// ErrUnreachable indicates that no route reaches the target.
	ErrUnreachable = errors.New("day12: no route")
)

// Heightmap is a rectangular elevation field with marked endpoints.
type Heightmap struct {
	cells      [][]byte
	Start, End geom.Point
}

// Parse reads the heightmap, normalizing S and E to their elevations.
func Parse(text string) (*Heightmap, error) {
	lines := input.Lines(text)

	hm := &Heightmap{Start: geom.Point{X: -1}, End: geom.Point{X: -1}}
	for x, line := range lines {
		if x > 0 && len(line) != len(hm.cells[0]) {
			return nil, fmt.Errorf("%w: ragged row %d", ErrBadMap, x)
		}
		row := make([]byte, len(line))
		for y := 0; y < len(line); y++ {
			switch c := line[y]; {
			case c == 'S':
				hm.Start = geom.Point{X: x, Y: y}
				row[y] = 'a'
			case c == 'E':
				hm.End = geom.Point{X: x, Y: y}
				row[y] = 'z'
			case c >= 'a' && c <= 'z':
				row[y] = c
			default:
				return nil, fmt.Errorf("%w: cell %q", ErrBadMap, c)
			}
		}
		hm.cells = append(hm.cells, row)
	}
	if hm.Start.X < 0 || hm.End.X < 0 {
		return nil, fmt.Errorf("%w: missing start or end marker", ErrBadMap)
	}

	return hm, nil
}

func (hm *Heightmap) in(p geom.Point) bool {
	return p.X >= 0 && p.X < len(hm.cells) && p.Y >= 0 && p.Y < len(hm.cells[0])
}

// distancesFromEnd walks the map backwards from the summit: a reverse step
// onto a neighbor is legal when the forward climb from that neighbor would
// be at most one level.
func (hm *Heightmap) distancesFromEnd() map[geom.Point]int {
	dist := map[geom.Point]int{hm.End: 0}
	queue := []geom.Point{hm.End}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, dir := range geom.Directions {
			next := cur.Add(dir.Step())
			if !hm.in(next) {
				continue
			}
			if _, seen := dist[next]; seen {
				continue
			}
			if int(hm.cells[cur.X][cur.Y])-int(hm.cells[next.X][next.Y]) > 1 {
				continue
			}
			dist[next] = dist[cur] + 1
			queue = append(queue, next)
		}
	}

	return dist
}

// ShortestFromStart returns the step count of the best route from S to E.
func (hm *Heightmap) ShortestFromStart() (int, error) {
	d, ok := hm.distancesFromEnd()[hm.Start]
	if !ok {
		return 0, fmt.Errorf("%w from marked start", ErrUnreachable)
	}

	return d, nil
}

// ShortestFromLowest returns the step count of the best route to E from
// any cell at elevation a.
func (hm *Heightmap) ShortestFromLowest() (int, error) {
	dist := hm.distancesFromEnd()

	best, found := 0, false
	for x, row := range hm.cells {
		for y, c := range row {
			if c != 'a' {
				continue
			}
			if d, ok := dist[geom.Point{X: x, Y: y}]; ok && (!found || d < best) {
				best, found = d, true
			}
		}
	}
	if !found {
		return 0, fmt.Errorf("%w from any lowest cell", ErrUnreachable)
	}

	return best, nil
}

// Solve answers both parts over the heightmap.
func Solve(text string) (string, string, error) {
	hm, err := Parse(text)
	if err != nil {
		return "", "", err
	}

	p1, err := hm.ShortestFromStart()
	if err != nil {
		return "", "", err
	}
	p2, err := hm.ShortestFromLowest()
	if err != nil {
		return "", "", err
	}

	return strconv.Itoa(p1), strconv.Itoa(p2), nil
}
