package day01_test

import (
	"testing"

	"github.com/adventcode/advent2022/days/day01"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
`

func TestTotals(t *testing.T) {
	totals, err := day01.Totals(example)
	require.NoError(t, err)
	assert.Equal(t, []int{6000, 4000, 11000, 24000, 10000}, totals)
}

func TestTotals_BadNumber(t *testing.T) {
	_, err := day01.Totals("1000\nbanana\n")
	assert.Error(t, err)
}

func TestSolve(t *testing.T) {
	p1, p2, err := day01.Solve(example)
	require.NoError(t, err)
	assert.Equal(t, "24000", p1)
	assert.Equal(t, "45000", p2)
}

func TestTopSum_FewerElvesThanK(t *testing.T) {
	assert.Equal(t, 7, day01.TopSum([]int{3, 4}, 3))
}
