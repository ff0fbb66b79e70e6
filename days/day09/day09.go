// Package day09 simulates a rope of knots pulled around a grid, tracking
// how many positions the tail knot ever visits.
package day09

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/adventcode/advent2022/geom"
	"github.com/adventcode/advent2022/input"
)

// ErrBadMotion indicates a motion line outside the "D n" grammar.
var ErrBadMotion = errors.New("day09: malformed motion")

// Motion is one instruction for the head knot: a unit step repeated.
type Motion struct {
	Step  geom.Point
	Count int
}

// steps maps the motion letters onto grid deltas. Up decreases X to match
// the usual row-down orientation; only relative movement matters here.
var steps = map[byte]geom.Point{
	'U': {X: -1, Y: 0},
	'D': {X: 1, Y: 0},
	'L': {X: 0, Y: -1},
	'R': {X: 0, Y: 1},
}

// Parse reads the motion list, one "letter count" pair per line.
func Parse(text string) ([]Motion, error) {
	lines := input.Lines(text)

	motions := make([]Motion, 0, len(lines))
	for _, line := range lines {
		var letter string
		var count int
		if _, err := fmt.Sscanf(line, "%s %d", &letter, &count); err != nil || len(letter) != 1 {
			return nil, fmt.Errorf("%w: %q", ErrBadMotion, line)
		}
		step, ok := steps[letter[0]]
		if !ok || count < 0 {
			return nil, fmt.Errorf("%w: %q", ErrBadMotion, line)
		}
		motions = append(motions, Motion{Step: step, Count: count})
	}

	return motions, nil
}

// sign clamps an offset component to a unit step.
func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}

	return 0
}

// follow moves a trailing knot one step toward its leader if the two are
// no longer touching.
func follow(leader, knot geom.Point) geom.Point {
	if leader.Touching(knot) {
		return knot
	}
	d := leader.Sub(knot)

	return knot.Add(geom.Point{X: sign(d.X), Y: sign(d.Y)})
}

// TailVisits simulates a rope with the given number of knots and counts
// distinct positions visited by the last knot.
func TailVisits(motions []Motion, knots int) int {
	rope := make([]geom.Point, knots)
	visited := map[geom.Point]bool{rope[knots-1]: true}

	for _, m := range motions {
		for s := 0; s < m.Count; s++ {
			rope[0] = rope[0].Add(m.Step)
			for i := 1; i < knots; i++ {
				rope[i] = follow(rope[i-1], rope[i])
			}
			visited[rope[knots-1]] = true
		}
	}

	return len(visited)
}

// Solve answers both parts: a two-knot rope and a ten-knot rope.
func Solve(text string) (string, string, error) {
	motions, err := Parse(text)
	if err != nil {
		return "", "", err
	}

	return strconv.Itoa(TailVisits(motions, 2)), strconv.Itoa(TailVisits(motions, 10)), nil
}
