// Package day01 counts the calories carried by each elf: blank-line
// separated blocks of integers, ranked by their sums.
package day01

import (
	"sort"
	"strconv"
	"strings"

	"github.com/adventcode/advent2022/input"
)

// Totals returns the calorie sum of every elf's inventory, in input order.
func Totals(text string) ([]int, error) {
	blocks := input.Blocks(text)

	totals := make([]int, 0, len(blocks))
	for _, block := range blocks {
		nums, err := input.Ints(strings.Join(block, "\n"))
		if err != nil {
			return nil, err
		}
		sum := 0
		for _, n := range nums {
			sum += n
		}
		totals = append(totals, sum)
	}

	return totals, nil
}

// TopSum returns the combined calories of the k best-stocked elves. Fewer
// than k elves simply sum them all.
func TopSum(totals []int, k int) int {
	sorted := append([]int(nil), totals...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	if k > len(sorted) {
		k = len(sorted)
	}
	sum := 0
	for _, n := range sorted[:k] {
		sum += n
	}

	return sum
}

// Solve answers both parts: the single largest total and the top three.
func Solve(text string) (string, string, error) {
	totals, err := Totals(text)
	if err != nil {
		return "", "", err
	}

	return strconv.Itoa(TopSum(totals, 1)), strconv.Itoa(TopSum(totals, 3)), nil
}
