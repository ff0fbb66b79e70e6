package day06_test

import (
	"testing"

	"github.com/adventcode/advent2022/days/day06"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarker(t *testing.T) {
	cases := []struct {
		stream          string
		packet, message int
	}{
		{"mjqjpqmgbljsphdztnvjfqwrcgsmlb", 7, 19},
		{"bvwbjplbgvbhsrlpgdmjqwftvncz", 5, 23},
		{"nppdvjthqldpwncqszvftbrmjlhg", 6, 23},
		{"nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", 10, 29},
		{"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", 11, 26},
	}
	for _, c := range cases {
		got, err := day06.Marker(c.stream, 4)
		require.NoError(t, err)
		assert.Equal(t, c.packet, got, "packet marker of %q", c.stream)

		got, err = day06.Marker(c.stream, 14)
		require.NoError(t, err)
		assert.Equal(t, c.message, got, "message marker of %q", c.stream)
	}
}

func TestMarker_None(t *testing.T) {
	_, err := day06.Marker("aaaaaaa", 4)
	assert.ErrorIs(t, err, day06.ErrNoMarker)
}

func TestSolve(t *testing.T) {
	p1, p2, err := day06.Solve("mjqjpqmgbljsphdztnvjfqwrcgsmlb\n")
	require.NoError(t, err)
	assert.Equal(t, "7", p1)
	assert.Equal(t, "19", p2)
}
