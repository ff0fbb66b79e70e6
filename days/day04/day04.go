// Package day04 compares the section ranges of paired cleanup crews,
// counting full containments and any overlap at all.
package day04

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/adventcode/advent2022/input"
)

// ErrBadPair indicates a line outside the "a-b,c-d" grammar.
var ErrBadPair = errors.New("day04: malformed pair")

// Span is an inclusive range of section numbers.
type Span struct {
	Lo, Hi int
}

// Contains reports whether s covers all of other.
func (s Span) Contains(other Span) bool {
	return s.Lo <= other.Lo && other.Hi <= s.Hi
}

// Overlaps reports whether s and other share at least one section.
func (s Span) Overlaps(other Span) bool {
	return s.Lo <= other.Hi && other.Lo <= s.Hi
}

// Pair is one line of the assignment list.
type Pair struct {
	A, B Span
}

// Parse reads the assignment list, one pair per line.
func Parse(text string) ([]Pair, error) {
	lines := input.Lines(text)

	pairs := make([]Pair, 0, len(lines))
	for _, line := range lines {
		var p Pair
		if _, err := fmt.Sscanf(line, "%d-%d,%d-%d",
			&p.A.Lo, &p.A.Hi, &p.B.Lo, &p.B.Hi); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadPair, line)
		}
		pairs = append(pairs, p)
	}

	return pairs, nil
}

// CountContained counts pairs where one span fully covers the other.
func CountContained(pairs []Pair) int {
	n := 0
	for _, p := range pairs {
		if p.A.Contains(p.B) || p.B.Contains(p.A) {
			n++
		}
	}

	return n
}

// CountOverlapping counts pairs with any shared section.
func CountOverlapping(pairs []Pair) int {
	n := 0
	for _, p := range pairs {
		if p.A.Overlaps(p.B) {
			n++
		}
	}

	return n
}

// Solve answers both parts over the assignment list.
func Solve(text string) (string, string, error) {
	pairs, err := Parse(text)
	if err != nil {
		return "", "", err
	}

	return strconv.Itoa(CountContained(pairs)), strconv.Itoa(CountOverlapping(pairs)), nil
}
