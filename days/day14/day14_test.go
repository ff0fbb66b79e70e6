package day14_test

import (
	"testing"

	"github.com/adventcode/advent2022/days/day14"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `498,4 -> 498,6 -> 496,6
503,4 -> 502,4 -> 502,9 -> 494,9
`

func TestSolve(t *testing.T) {
	p1, p2, err := day14.Solve(example)
	require.NoError(t, err)
	assert.Equal(t, "24", p1)
	assert.Equal(t, "93", p2)
}

func TestParse_BadPath(t *testing.T) {
	_, err := day14.Parse("498;4 -> 498,6\n")
	assert.ErrorIs(t, err, day14.ErrBadPath)
}

func TestParse_DiagonalSegment(t *testing.T) {
	_, err := day14.Parse("0,0 -> 3,3\n")
	assert.ErrorIs(t, err, day14.ErrBadPath)
}

func TestUnitsBeforeAbyss_NoRock(t *testing.T) {
	cave, err := day14.Parse("")
	require.NoError(t, err)
	assert.Zero(t, cave.UnitsBeforeAbyss())
}
