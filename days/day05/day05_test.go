package day05_test

import (
	"testing"

	"github.com/adventcode/advent2022/days/day05"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `    [D]
[N] [C]
[Z] [M] [P]
 1   2   3

move 1 from 2 to 1
move 3 from 1 to 3
move 2 from 2 to 1
move 1 from 1 to 2
`

func TestParse(t *testing.T) {
	stacks, moves, err := day05.Parse(example)
	require.NoError(t, err)

	assert.Equal(t, day05.Stacks{
		[]byte("ZN"),
		[]byte("MCD"),
		[]byte("P"),
	}, stacks)
	assert.Len(t, moves, 4)
	assert.Equal(t, day05.Move{Count: 3, From: 1, To: 3}, moves[1])
}

func TestSolve(t *testing.T) {
	p1, p2, err := day05.Solve(example)
	require.NoError(t, err)
	assert.Equal(t, "CMZ", p1)
	assert.Equal(t, "MCD", p2)
}

func TestParse_BadMove(t *testing.T) {
	_, _, err := day05.Parse("[A]\n 1 \n\nmove one from 1 to 1\n")
	assert.ErrorIs(t, err, day05.ErrBadMove)
}

func TestParse_MoveOutOfRange(t *testing.T) {
	_, _, err := day05.Parse("[A]\n 1 \n\nmove 1 from 1 to 9\n")
	assert.ErrorIs(t, err, day05.ErrBadMove)
}

func TestRearrange_Underflow(t *testing.T) {
	stacks, moves, err := day05.Parse("[A]\n 1 \n\nmove 5 from 1 to 1\n")
	require.NoError(t, err)

	_, err = day05.RearrangeSingly(stacks, moves)
	assert.ErrorIs(t, err, day05.ErrBadMove)
}
