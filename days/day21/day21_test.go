package day21_test

import (
	"testing"

	"github.com/adventcode/advent2022/days/day21"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `root: pppw + sjmn
dbpl: 5
cczh: sllz + lgvd
zczc: 2
ptdq: humn - dvpt
dvpt: 3
lgvd: ljgn * ptdq
humn: 5
ljgn: 2
sjmn: drzm * dbpl
sllz: 4
pppw: cczh / lfqf
lfqf: 4
drzm: hmdt - zczc
hmdt: 32
`

func TestSolve(t *testing.T) {
	p1, p2, err := day21.Solve(example)
	require.NoError(t, err)
	assert.Equal(t, "152", p1)
	assert.Equal(t, "301", p2)
}

func TestParse_BadJob(t *testing.T) {
	_, err := day21.Parse("root pppw + sjmn\n")
	assert.ErrorIs(t, err, day21.ErrBadJob)

	_, err = day21.Parse("root: pppw % sjmn\n")
	assert.ErrorIs(t, err, day21.ErrBadJob)
}

func TestParse_UnknownMonkey(t *testing.T) {
	_, err := day21.Parse("root: aaaa + bbbb\naaaa: 1\n")
	assert.ErrorIs(t, err, day21.ErrUnknownMonkey)
}

func TestHumanShout_NotLinear(t *testing.T) {
	jobs, err := day21.Parse("root: a + b\na: humn * humn\nb: 4\nhumn: 1\n")
	require.NoError(t, err)

	_, err = day21.HumanShout(jobs)
	assert.ErrorIs(t, err, day21.ErrNotLinear)
}

func TestHumanShout_Cancels(t *testing.T) {
	jobs, err := day21.Parse("root: a + a\na: humn - humn\nhumn: 1\n")
	require.NoError(t, err)

	_, err = day21.HumanShout(jobs)
	assert.ErrorIs(t, err, day21.ErrNoSolution)
}
