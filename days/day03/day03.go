// Package day03 finds misplaced rucksack items: the letter shared by both
// compartments of a sack, and the badge letter shared by each group of
// three sacks.
package day03

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/adventcode/advent2022/input"
)

var (
	// ErrNoCommonItem indicates a sack or group without a shared letter.
	ErrNoCommonItem = errors.New("day03: no common item")
	// ErrBadGroup indicates a sack count not divisible by three.
	ErrBadGroup = errors.New("day03: sack count not a multiple of three")
)

// Priority rates an item: a-z score 1-26, A-Z score 27-52.
func Priority(item byte) int {
	if item >= 'a' && item <= 'z' {
		return int(item-'a') + 1
	}

	return int(item-'A') + 27
}

// itemSet builds the membership bitset of a string, one bit per priority.
func itemSet(s string) uint64 {
	var set uint64
	for i := 0; i < len(s); i++ {
		set |= 1 << Priority(s[i])
	}

	return set
}

// common extracts the single shared priority from an intersection bitset.
func common(set uint64) (int, error) {
	for p := 1; p <= 52; p++ {
		if set&(1<<p) != 0 {
			return p, nil
		}
	}

	return 0, ErrNoCommonItem
}

// CompartmentPriorities sums, over all sacks, the priority of the item
// present in both halves of the sack.
func CompartmentPriorities(sacks []string) (int, error) {
	total := 0
	for _, sack := range sacks {
		half := len(sack) / 2
		p, err := common(itemSet(sack[:half]) & itemSet(sack[half:]))
		if err != nil {
			return 0, fmt.Errorf("%w in %q", err, sack)
		}
		total += p
	}

	return total, nil
}

// BadgePriorities sums the priority of each three-sack group's badge, the
// one item all three carry.
func BadgePriorities(sacks []string) (int, error) {
	if len(sacks)%3 != 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadGroup, len(sacks))
	}

	total := 0
	for i := 0; i < len(sacks); i += 3 {
		p, err := common(itemSet(sacks[i]) & itemSet(sacks[i+1]) & itemSet(sacks[i+2]))
		if err != nil {
			return 0, fmt.Errorf("%w in group %d", err, i/3)
		}
		total += p
	}

	return total, nil
}

// Solve answers both parts over the rucksack list.
func Solve(text string) (string, string, error) {
	sacks := input.Lines(text)

	p1, err := CompartmentPriorities(sacks)
	if err != nil {
		return "", "", err
	}
	p2, err := BadgePriorities(sacks)
	if err != nil {
		return "", "", err
	}

	return strconv.Itoa(p1), strconv.Itoa(p2), nil
}
