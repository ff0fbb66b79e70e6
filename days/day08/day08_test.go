package day08_test

import (
	"testing"

	"github.com/adventcode/advent2022/days/day08"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `30373
25512
65332
33549
35390
`

func TestSolve(t *testing.T) {
	p1, p2, err := day08.Solve(example)
	require.NoError(t, err)
	assert.Equal(t, "21", p1)
	assert.Equal(t, "8", p2)
}

func TestParse_RaggedRow(t *testing.T) {
	_, err := day08.Parse("123\n12\n")
	assert.ErrorIs(t, err, day08.ErrBadGrid)
}

func TestParse_NonDigit(t *testing.T) {
	_, err := day08.Parse("12a\n")
	assert.ErrorIs(t, err, day08.ErrBadGrid)
}

func TestCountVisible_AllEdges(t *testing.T) {
	grid, err := day08.Parse("11\n11\n")
	require.NoError(t, err)
	assert.Equal(t, 4, grid.CountVisible())
}
