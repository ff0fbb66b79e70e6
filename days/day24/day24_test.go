package day24_test

import (
	"testing"

	"github.com/adventcode/advent2022/days/day24"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `#.######
#>>.<^<#
#.<..<<#
#>v.v<>#
#<....>#
######.#
`

const simpleExample = `#.#####
#.....#
#>....#
#.....#
#...v.#
#.....#
#####.#
`

func TestSolve(t *testing.T) {
	p1, p2, err := day24.Solve(example)
	require.NoError(t, err)
	assert.Equal(t, "18", p1)
	assert.Equal(t, "54", p2)
}

func TestTrip_SimpleValley(t *testing.T) {
	valley, err := day24.Parse(simpleExample)
	require.NoError(t, err)

	minutes, err := valley.Trip(valley.Entry, valley.Exit, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, minutes)
}

func TestParse_BadCell(t *testing.T) {
	_, err := day24.Parse("#.###\n#.x.#\n###.#\n")
	assert.ErrorIs(t, err, day24.ErrBadValley)
}

func TestParse_Ragged(t *testing.T) {
	_, err := day24.Parse("#.###\n#.#\n###.#\n")
	assert.ErrorIs(t, err, day24.ErrBadValley)
}
