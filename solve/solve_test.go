package solve_test

import (
	"testing"

	"github.com/adventcode/advent2022/days/day06"
	"github.com/adventcode/advent2022/solve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const calories = `1000
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

func TestRun(t *testing.T) {
	a, err := solve.Run(1, calories)
	require.NoError(t, err)
	assert.Equal(t, solve.Answers{Part1: "24000", Part2: "45000"}, a)
}

func TestRun_UnknownDay(t *testing.T) {
	for _, day := range []int{0, 25, -3} {
		_, err := solve.Run(day, "")
		assert.ErrorIs(t, err, solve.ErrUnknownDay, "day %d", day)
	}
}

func TestRun_SolverError(t *testing.T) {
	_, err := solve.Run(6, "aaaaaaaaaaaaaaaaaaaa\n")
	assert.ErrorIs(t, err, day06.ErrNoMarker)
}

func TestDays(t *testing.T) {
	days := solve.Days()
	require.Len(t, days, 24)
	for i, day := range days {
		assert.Equal(t, i+1, day)
	}
}
