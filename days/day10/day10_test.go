package day10_test

import (
	"os"
	"testing"

	"github.com/adventcode/advent2022/days/day10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wantImage = `##..##..##..##..##..##..##..##..##..##..
###...###...###...###...###...###...###.
####....####....####....####....####....
#####.....#####.....#####.....#####.....
######......######......######......####
#######.......#######.......#######.....`

func TestSolve(t *testing.T) {
	data, err := os.ReadFile("testdata/example.txt")
	require.NoError(t, err)

	p1, p2, err := day10.Solve(string(data))
	require.NoError(t, err)
	assert.Equal(t, "13140", p1)
	assert.Equal(t, wantImage, p2)
}

func TestTrace_SmallProgram(t *testing.T) {
	trace, err := day10.Trace("noop\naddx 3\naddx -5\n")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 4, 4}, trace)
}

func TestTrace_BadInstruction(t *testing.T) {
	_, err := day10.Trace("jmp 4\n")
	assert.ErrorIs(t, err, day10.ErrBadInstruction)

	_, err = day10.Trace("addx five\n")
	assert.ErrorIs(t, err, day10.ErrBadInstruction)
}
