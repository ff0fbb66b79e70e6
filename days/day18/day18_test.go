package day18_test

import (
	"testing"

	"github.com/adventcode/advent2022/days/day18"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `2,2,2
1,2,2
3,2,2
2,1,2
2,3,2
2,2,1
2,2,3
2,2,4
2,2,6
1,2,5
3,2,5
2,1,5
2,3,5
`

func TestSolve(t *testing.T) {
	p1, p2, err := day18.Solve(example)
	require.NoError(t, err)
	assert.Equal(t, "64", p1)
	assert.Equal(t, "58", p2)
}

func TestSurfaceArea_TwoTouchingCubes(t *testing.T) {
	cubes, err := day18.Parse("1,1,1\n2,1,1\n")
	require.NoError(t, err)
	assert.Equal(t, 10, day18.SurfaceArea(cubes))
	assert.Equal(t, 10, day18.ExteriorArea(cubes))
}

func TestExteriorArea_SealedPocket(t *testing.T) {
	// A 3×3×3 shell with a hollow center: the pocket's 6 faces count for
	// the raw surface but not the exterior one.
	var lines string
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 3; z++ {
				if x == 1 && y == 1 && z == 1 {
					continue
				}
				lines += fmtCube(x, y, z)
			}
		}
	}
	cubes, err := day18.Parse(lines)
	require.NoError(t, err)

	assert.Equal(t, 60, day18.SurfaceArea(cubes))
	assert.Equal(t, 54, day18.ExteriorArea(cubes))
}

func fmtCube(x, y, z int) string {
	return string(rune('0'+x)) + "," + string(rune('0'+y)) + "," + string(rune('0'+z)) + "\n"
}

func TestParse_BadCube(t *testing.T) {
	_, err := day18.Parse("1,2\n")
	assert.ErrorIs(t, err, day18.ErrBadCube)
}
