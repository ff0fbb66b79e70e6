package day20_test

import (
	"testing"

	"github.com/adventcode/advent2022/days/day20"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = "1\n2\n-3\n3\n-2\n0\n4\n"

func TestMix_OneRound(t *testing.T) {
	mixed := day20.Mix([]int{1, 2, -3, 3, -2, 0, 4}, 1, 1)

	// The list is circular, so rotate to start at 1 before comparing.
	start := 0
	for mixed[start] != 1 {
		start++
	}
	rotated := append(mixed[start:], mixed[:start]...)
	assert.Equal(t, []int{1, 2, -3, 4, 0, 3, -2}, rotated)
}

func TestSolve(t *testing.T) {
	p1, p2, err := day20.Solve(example)
	require.NoError(t, err)
	assert.Equal(t, "3", p1)
	assert.Equal(t, "1623178306", p2)
}

func TestCoordinates_NoZero(t *testing.T) {
	_, err := day20.Coordinates([]int{1, 2, 3})
	assert.ErrorIs(t, err, day20.ErrNoZero)
}

func TestMix_SingleElement(t *testing.T) {
	assert.Equal(t, []int{5}, day20.Mix([]int{5}, 1, 3))
}
