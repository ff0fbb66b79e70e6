// Package day07 reconstructs directory sizes from a recorded terminal
// session of cd and ls commands.
package day07

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/adventcode/advent2022/input"
)

var (
	// ErrBadSession indicates a line outside the session grammar, or a
	// "cd .." with no directory to return to.
	ErrBadSession = errors.New("day07: malformed session")
	// ErrNoCandidate indicates that no single directory frees enough space.
	ErrNoCandidate = errors.New("day07: no directory large enough")
)

const (
	diskSize     = 70_000_000
	updateNeeds  = 30_000_000
	smallDirSize = 100_000
)

// DirSizes walks the session and returns the cumulative size of every
// directory, keyed by its absolute path ("/" for the root).
func DirSizes(text string) (map[string]int, error) {
	sizes := map[string]int{}
	var stack []string

	for _, line := range input.Lines(text) {
		switch {
		case line == "$ cd /":
			stack = []string{""}
		case line == "$ cd ..":
			if len(stack) <= 1 {
				return nil, fmt.Errorf("%w: cd above the root", ErrBadSession)
			}
			stack = stack[:len(stack)-1]
		case strings.HasPrefix(line, "$ cd "):
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: cd before cd /", ErrBadSession)
			}
			stack = append(stack, line[len("$ cd "):])
		case line == "$ ls", strings.HasPrefix(line, "dir "):
			// Listings and directory entries carry no size of their own.
		default:
			var size int
			var name string
			if _, err := fmt.Sscanf(line, "%d %s", &size, &name); err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadSession, line)
			}
			// A file counts toward every directory on the current path.
			for i := range stack {
				sizes[pathOf(stack[:i+1])] += size
			}
		}
	}

	return sizes, nil
}

// pathOf renders a stack prefix as an absolute path.
func pathOf(stack []string) string {
	if len(stack) == 1 {
		return "/"
	}

	return strings.Join(stack, "/")
}

// SumSmall totals directories of at most limit bytes.
func SumSmall(sizes map[string]int, limit int) int {
	total := 0
	for _, size := range sizes {
		if size <= limit {
			total += size
		}
	}

	return total
}

// SmallestFreeing finds the size of the smallest directory whose deletion
// leaves at least need bytes free on a disk of the given capacity.
func SmallestFreeing(sizes map[string]int, capacity, need int) (int, error) {
	shortfall := need - (capacity - sizes["/"])
	best := -1
	for _, size := range sizes {
		if size >= shortfall && (best < 0 || size < best) {
			best = size
		}
	}
	if best < 0 {
		return 0, ErrNoCandidate
	}

	return best, nil
}

// Solve answers both parts: the small-directory total and the directory to
// delete for the update.
func Solve(text string) (string, string, error) {
	sizes, err := DirSizes(text)
	if err != nil {
		return "", "", err
	}

	victim, err := SmallestFreeing(sizes, diskSize, updateNeeds)
	if err != nil {
		return "", "", err
	}

	return strconv.Itoa(SumSmall(sizes, smallDirSize)), strconv.Itoa(victim), nil
}
