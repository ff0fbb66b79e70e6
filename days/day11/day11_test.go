package day11_test

import (
	"testing"

	"github.com/adventcode/advent2022/days/day11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `Monkey 0:
  Starting items: 79, 98
  Operation: new = old * 19
  Test: divisible by 23
    If true: throw to monkey 2
    If false: throw to monkey 3

Monkey 1:
  Starting items: 54, 65, 75, 74
  Operation: new = old + 6
  Test: divisible by 19
    If true: throw to monkey 2
    If false: throw to monkey 0

Monkey 2:
  Starting items: 79, 60, 97
  Operation: new = old * old
  Test: divisible by 13
    If true: throw to monkey 1
    If false: throw to monkey 3

Monkey 3:
  Starting items: 74
  Operation: new = old + 3
  Test: divisible by 17
    If true: throw to monkey 0
    If false: throw to monkey 1
`

func TestParse(t *testing.T) {
	monkeys, err := day11.Parse(example)
	require.NoError(t, err)

	require.Len(t, monkeys, 4)
	assert.Equal(t, []int{79, 98}, monkeys[0].Items)
	assert.Equal(t, 23, monkeys[0].Divisor)
	assert.Equal(t, 2, monkeys[0].IfTrue)
	assert.Equal(t, 3, monkeys[0].IfFalse)
}

func TestParse_BadOperation(t *testing.T) {
	bad := `Monkey 0:
  Starting items: 1
  Operation: new = old / 2
  Test: divisible by 3
    If true: throw to monkey 0
    If false: throw to monkey 0
`
	_, err := day11.Parse(bad)
	assert.ErrorIs(t, err, day11.ErrBadMonkey)
}

func TestMonkeyBusiness(t *testing.T) {
	monkeys, err := day11.Parse(example)
	require.NoError(t, err)

	assert.Equal(t, 10605, day11.MonkeyBusiness(monkeys, 20, true))
	assert.Equal(t, 2713310158, day11.MonkeyBusiness(monkeys, 10_000, false))
}

func TestSolve(t *testing.T) {
	p1, p2, err := day11.Solve(example)
	require.NoError(t, err)
	assert.Equal(t, "10605", p1)
	assert.Equal(t, "2713310158", p2)
}
