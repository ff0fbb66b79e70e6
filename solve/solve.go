// Package solve indexes the daily puzzle solvers behind a uniform
// interface: day number in, two answer strings out. Each day remains an
// independent program; this package only provides the lookup table used by
// the advent command and the answer-checking fixture test.
package solve

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownDay indicates a day with no registered solver.
var ErrUnknownDay = errors.New("solve: unknown day")

// Answers holds the printable results of both puzzle parts. Most are
// decimal integers; a few days produce letters or a rendered image.
type Answers struct {
	Part1 string
	Part2 string
}

// Func computes both answers for one day from the raw input text.
type Func func(input string) (Answers, error)

// wrap adapts the common per-day signature to a Func.
func wrap(f func(string) (string, string, error)) Func {
	return func(input string) (Answers, error) {
		p1, p2, err := f(input)
		if err != nil {
			return Answers{}, err
		}

		return Answers{Part1: p1, Part2: p2}, nil
	}
}

// Run computes the answers for the given day.
func Run(day int, input string) (Answers, error) {
	f, ok := registry[day]
	if !ok {
		return Answers{}, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}

	return f(input)
}

// Days returns the registered day numbers in ascending order.
func Days() []int {
	days := make([]int, 0, len(registry))
	for day := range registry {
		days = append(days, day)
	}
	sort.Ints(days)

	return days
}
