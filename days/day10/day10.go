// Package day10 emulates the handheld's one-register CPU and its CRT: six
// rows of forty pixels driven by a three-pixel-wide sprite.
package day10

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/adventcode/advent2022/input"
)

// ErrBadInstruction indicates a line that is neither noop nor addx.
var ErrBadInstruction = errors.New("day10: malformed instruction")

const (
	crtWidth  = 40
	crtHeight = 6
)

// Trace executes the program and returns the value of register X during
// each cycle, starting at cycle 1.
func Trace(text string) ([]int, error) {
	x := 1
	trace := []int{}

	for _, line := range input.Lines(text) {
		switch {
		case line == "noop":
			trace = append(trace, x)
		case strings.HasPrefix(line, "addx "):
			n, err := strconv.Atoi(line[len("addx "):])
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadInstruction, line)
			}
			trace = append(trace, x, x)
			x += n
		default:
			return nil, fmt.Errorf("%w: %q", ErrBadInstruction, line)
		}
	}

	return trace, nil
}

// SignalStrengths sums cycle*X at cycles 20, 60, 100, 140, 180 and 220.
func SignalStrengths(trace []int) int {
	total := 0
	for cycle := 20; cycle <= 220; cycle += 40 {
		if cycle <= len(trace) {
			total += cycle * trace[cycle-1]
		}
	}

	return total
}

// Render draws the CRT image: a pixel lights when the sprite, centered on
// X, overlaps the column being drawn that cycle.
func Render(trace []int) string {
	var b strings.Builder
	for row := 0; row < crtHeight; row++ {
		for col := 0; col < crtWidth; col++ {
			cycle := row*crtWidth + col
			lit := false
			if cycle < len(trace) {
				d := trace[cycle] - col
				lit = d >= -1 && d <= 1
			}
			if lit {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		if row < crtHeight-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// Solve answers both parts: the signal-strength sum and the rendered
// image. The second answer spans six lines and is meant to be read as
// capital letters.
func Solve(text string) (string, string, error) {
	trace, err := Trace(text)
	if err != nil {
		return "", "", err
	}

	return strconv.Itoa(SignalStrengths(trace)), Render(trace), nil
}
