package day17_test

import (
	"testing"

	"github.com/adventcode/advent2022/days/day17"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = ">>><<><>><<<>><>>><<<>>><<<><<<>><>><<>>\n"

func TestTowerHeight_FirstRocks(t *testing.T) {
	cases := []struct {
		rocks, want int
	}{
		{1, 1},
		{2, 4},
		{3, 6},
		{4, 7},
		{10, 17},
		{2022, 3068},
	}
	for _, c := range cases {
		got, err := day17.TowerHeight(example, c.rocks)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "%d rocks", c.rocks)
	}
}

func TestTowerHeight_Trillion(t *testing.T) {
	got, err := day17.TowerHeight(example, 1_000_000_000_000)
	require.NoError(t, err)
	assert.Equal(t, 1514285714288, got)
}

func TestTowerHeight_BadJet(t *testing.T) {
	_, err := day17.TowerHeight("<>^\n", 10)
	assert.ErrorIs(t, err, day17.ErrBadJet)

	_, err = day17.TowerHeight("\n", 10)
	assert.ErrorIs(t, err, day17.ErrBadJet)
}

func TestSolve(t *testing.T) {
	p1, p2, err := day17.Solve(example)
	require.NoError(t, err)
	assert.Equal(t, "3068", p1)
	assert.Equal(t, "1514285714288", p2)
}
