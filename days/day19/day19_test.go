package day19_test

import (
	"testing"

	"github.com/adventcode/advent2022/days/day19"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore. Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore and 7 obsidian.
Blueprint 2: Each ore robot costs 2 ore. Each clay robot costs 3 ore. Each obsidian robot costs 3 ore and 8 clay. Each geode robot costs 3 ore and 12 obsidian.
`

func TestParse(t *testing.T) {
	blueprints, err := day19.Parse(example)
	require.NoError(t, err)
	require.Len(t, blueprints, 2)
	assert.Equal(t, 1, blueprints[0].ID)
	assert.Equal(t, 2, blueprints[1].ID)
}

func TestParse_BadBlueprint(t *testing.T) {
	_, err := day19.Parse("Blueprint 1: free robots for everyone\n")
	assert.ErrorIs(t, err, day19.ErrBadBlueprint)
}

func TestMaxGeodes_24Minutes(t *testing.T) {
	blueprints, err := day19.Parse(example)
	require.NoError(t, err)

	assert.Equal(t, 9, day19.MaxGeodes(blueprints[0], 24))
	assert.Equal(t, 12, day19.MaxGeodes(blueprints[1], 24))
}

func TestQualitySum(t *testing.T) {
	blueprints, err := day19.Parse(example)
	require.NoError(t, err)
	assert.Equal(t, 33, day19.QualitySum(blueprints))
}

func TestMaxGeodes_32Minutes(t *testing.T) {
	if testing.Short() {
		t.Skip("32 minute schedules take a while")
	}
	blueprints, err := day19.Parse(example)
	require.NoError(t, err)

	assert.Equal(t, 56, day19.MaxGeodes(blueprints[0], 32))
	assert.Equal(t, 62, day19.MaxGeodes(blueprints[1], 32))
}
