// Package input provides the file and text helpers shared by every daily
// solver: reading a puzzle input file and splitting its contents into
// lines, blank-line separated blocks, or integers.
//
// Inputs are small, trusted, locally authored files; helpers therefore read
// whole files into memory and treat malformed content as a fatal error for
// the calling solver. There is no retry and no partial-result reporting.
package input

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrEmptyInput indicates that an input string held no usable content.
var ErrEmptyInput = errors.New("input: empty input")

// ReadFile returns the contents of the puzzle input file at path.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("input: read %s: %w", path, err)
	}

	return string(data), nil
}

// Lines splits s into lines, dropping a single trailing newline.
// Interior blank lines are preserved.
func Lines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}

	return strings.Split(s, "\n")
}

// Blocks splits s into blank-line separated paragraphs, each returned as a
// slice of lines.
func Blocks(s string) [][]string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}

	raw := strings.Split(s, "\n\n")
	blocks := make([][]string, 0, len(raw))
	for _, block := range raw {
		blocks = append(blocks, strings.Split(block, "\n"))
	}

	return blocks
}

// Ints parses s as one integer per line.
func Ints(s string) ([]int, error) {
	lines := Lines(s)
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	nums := make([]int, 0, len(lines))
	for _, line := range lines {
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, fmt.Errorf("input: parse %q: %w", line, err)
		}
		nums = append(nums, n)
	}

	return nums, nil
}
