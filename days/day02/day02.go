// Package day02 scores rounds of rock paper scissors played from a
// strategy guide whose second column is ambiguous: either our shape or the
// required outcome.
package day02

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/adventcode/advent2022/input"
)

// ErrBadRound indicates a guide line outside the A-C / X-Z grammar.
var ErrBadRound = errors.New("day02: malformed round")

// Shape is one of the three throws, ordered so that (s+1)%3 beats s.
type Shape int

const (
	Rock Shape = iota
	Paper
	Scissors
)

// Beats reports whether s defeats other.
func (s Shape) Beats(other Shape) bool {
	return (other+1)%3 == s
}

// Round is one line of the guide, kept in its raw two-letter form because
// the meaning of the reply column depends on the part being solved.
type Round struct {
	Opponent Shape
	Reply    byte // 'X', 'Y' or 'Z'
}

// Parse reads the guide, one round per line.
func Parse(text string) ([]Round, error) {
	lines := input.Lines(text)

	rounds := make([]Round, 0, len(lines))
	for _, line := range lines {
		if len(line) != 3 || line[0] < 'A' || line[0] > 'C' ||
			line[1] != ' ' || line[2] < 'X' || line[2] > 'Z' {
			return nil, fmt.Errorf("%w: %q", ErrBadRound, line)
		}
		rounds = append(rounds, Round{
			Opponent: Shape(line[0] - 'A'),
			Reply:    line[2],
		})
	}

	return rounds, nil
}

// score rates one played round: 1-3 for the shape thrown, plus 6 for a win
// and 3 for a draw.
func score(opponent, mine Shape) int {
	s := int(mine) + 1
	switch {
	case mine.Beats(opponent):
		s += 6
	case mine == opponent:
		s += 3
	}

	return s
}

// ScoreAsShapes totals the guide with X, Y, Z read as our own throw.
func ScoreAsShapes(rounds []Round) int {
	total := 0
	for _, r := range rounds {
		total += score(r.Opponent, Shape(r.Reply-'X'))
	}

	return total
}

// ScoreAsOutcomes totals the guide with X, Y, Z read as lose, draw, win;
// the throw is derived from the opponent's.
func ScoreAsOutcomes(rounds []Round) int {
	total := 0
	for _, r := range rounds {
		var mine Shape
		switch r.Reply {
		case 'X':
			mine = (r.Opponent + 2) % 3
		case 'Y':
			mine = r.Opponent
		case 'Z':
			mine = (r.Opponent + 1) % 3
		}
		total += score(r.Opponent, mine)
	}

	return total
}

// Solve answers both readings of the strategy guide.
func Solve(text string) (string, string, error) {
	rounds, err := Parse(text)
	if err != nil {
		return "", "", err
	}

	return strconv.Itoa(ScoreAsShapes(rounds)), strconv.Itoa(ScoreAsOutcomes(rounds)), nil
}
