// Package day20 decrypts the grove coordinates by mixing a circular list:
// every number moves by its own value, in original order, one or more
// rounds.
package day20

import (
	"errors"
	"strconv"

	"github.com/adventcode/advent2022/input"
)

// ErrNoZero indicates a file without the 0 the coordinates hang off.
var ErrNoZero = errors.New("day20: no zero in file")

const decryptionKey = 811_589_153

// Mix applies the given number of mixing rounds to the file, each value
// scaled by key first, and returns the resulting order.
func Mix(file []int, key, rounds int) []int {
	n := len(file)
	values := make([]int, n)
	for i, v := range file {
		values[i] = v * key
	}
	if n < 2 {
		return values
	}

	// ring holds original indices in their current circular order.
	ring := make([]int, n)
	for i := range ring {
		ring[i] = i
	}

	for round := 0; round < rounds; round++ {
		for i := 0; i < n; i++ {
			pos := 0
			for ring[pos] != i {
				pos++
			}
			ring = append(ring[:pos], ring[pos+1:]...)

			// Movement is circular over the n-1 remaining slots.
			next := (pos + values[i]) % (n - 1)
			if next < 0 {
				next += n - 1
			}
			ring = append(ring, 0)
			copy(ring[next+1:], ring[next:])
			ring[next] = i
		}
	}

	mixed := make([]int, n)
	for i, idx := range ring {
		mixed[i] = values[idx]
	}

	return mixed
}

// Coordinates sums the values 1000, 2000 and 3000 places after the zero.
func Coordinates(mixed []int) (int, error) {
	zero := -1
	for i, v := range mixed {
		if v == 0 {
			zero = i
			break
		}
	}
	if zero < 0 {
		return 0, ErrNoZero
	}

	n := len(mixed)
	sum := 0
	for _, offset := range [3]int{1000, 2000, 3000} {
		sum += mixed[(zero+offset)%n]
	}

	return sum, nil
}

// Solve answers both parts: one plain round, then ten keyed rounds.
func Solve(text string) (string, string, error) {
	file, err := input.Ints(text)
	if err != nil {
		return "", "", err
	}

	p1, err := Coordinates(Mix(file, 1, 1))
	if err != nil {
		return "", "", err
	}
	p2, err := Coordinates(Mix(file, decryptionKey, 10))
	if err != nil {
		return "", "", err
	}

	return strconv.Itoa(p1), strconv.Itoa(p2), nil
}
