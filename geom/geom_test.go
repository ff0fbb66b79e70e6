package geom_test

import (
	"testing"

	"github.com/adventcode/advent2022/geom"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestPoint_AddSub(t *testing.T) {
	p := geom.Point{X: 2, Y: -3}
	q := geom.Point{X: -1, Y: 5}

	assert.Equal(t, geom.Point{X: 1, Y: 2}, p.Add(q))
	assert.Equal(t, geom.Point{X: 3, Y: -8}, p.Sub(q))
}

func TestPoint_Touching(t *testing.T) {
	origin := geom.Point{}

	assert.True(t, origin.Touching(origin))
	assert.True(t, origin.Touching(geom.Point{X: 1, Y: 1}))
	assert.False(t, origin.Touching(geom.Point{X: 2, Y: 0}))
	assert.False(t, origin.Touching(geom.Point{X: 1, Y: -2}))
}

func TestDirection_StepAndOpposite(t *testing.T) {
	assert.Equal(t, geom.Point{X: -1, Y: 0}, geom.North.Step())
	assert.Equal(t, geom.Point{X: 0, Y: 1}, geom.East.Step())

	for _, d := range geom.Directions {
		back := d.Opposite()
		assert.Equal(t, d, back.Opposite(), "double opposite of %s", d)
		assert.Equal(t, geom.Point{}, d.Step().Add(back.Step()), "steps of %s cancel", d)
		assert.Equal(t, back, d.Clockwise().Clockwise(), "two right turns reverse %s", d)
	}
}

func TestPoint3_Neighbors(t *testing.T) {
	p := geom.Point3{X: 1, Y: 2, Z: 3}
	seen := map[geom.Point3]bool{}
	for _, n := range p.Neighbors() {
		assert.False(t, seen[n], "duplicate neighbor %v", n)
		seen[n] = true
	}
	assert.Len(t, seen, 6)
}

func TestManhattanProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(2022)

	properties := gopter.NewProperties(parameters)

	coord := gen.IntRange(-1_000_000, 1_000_000)
	point := gopter.CombineGens(coord, coord).Map(func(vs []interface{}) geom.Point {
		return geom.Point{X: vs[0].(int), Y: vs[1].(int)}
	})

	properties.Property("symmetric and zero on identity", prop.ForAll(
		func(p, q geom.Point) bool {
			return p.Manhattan(q) == q.Manhattan(p) && p.Manhattan(p) == 0
		},
		point, point,
	))

	properties.Property("triangle inequality", prop.ForAll(
		func(p, q, r geom.Point) bool {
			return p.Manhattan(r) <= p.Manhattan(q)+q.Manhattan(r)
		},
		point, point, point,
	))

	properties.Property("translation invariant", prop.ForAll(
		func(p, q, d geom.Point) bool {
			return p.Add(d).Manhattan(q.Add(d)) == p.Manhattan(q)
		},
		point, point, point,
	))

	properties.TestingRun(t)
}
