package day04_test

import (
	"testing"

	"github.com/adventcode/advent2022/days/day04"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `2-4,6-8
2-3,4-5
5-7,7-9
2-8,3-7
6-6,4-6
2-6,4-8
`

func TestSolve(t *testing.T) {
	p1, p2, err := day04.Solve(example)
	require.NoError(t, err)
	assert.Equal(t, "2", p1)
	assert.Equal(t, "4", p2)
}

func TestParse_BadPair(t *testing.T) {
	_, err := day04.Parse("2-4;6-8\n")
	assert.ErrorIs(t, err, day04.ErrBadPair)
}

func TestSpan(t *testing.T) {
	assert.True(t, day04.Span{2, 8}.Contains(day04.Span{3, 7}))
	assert.False(t, day04.Span{3, 7}.Contains(day04.Span{2, 8}))
	assert.True(t, day04.Span{5, 7}.Overlaps(day04.Span{7, 9}))
	assert.False(t, day04.Span{2, 3}.Overlaps(day04.Span{4, 5}))
}
