// Package day11 plays keep-away with pack monkeys. Worry levels either
// decay by integer division or are folded modulo the product of all test
// divisors, which preserves every divisibility decision.
package day11

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/adventcode/advent2022/input"
)

// ErrBadMonkey indicates a monkey description outside the fixed layout.
var ErrBadMonkey = errors.New("day11: malformed monkey")

// opKind distinguishes the three operation shapes of the input.
type opKind int

const (
	opAdd opKind = iota
	opMul
	opSquare
)

// Monkey is one parsed monkey description.
type Monkey struct {
	Items   []int
	op      opKind
	operand int
	Divisor int
	IfTrue  int
	IfFalse int
}

// inspect applies the monkey's operation to a worry level.
func (m Monkey) inspect(worry int) int {
	switch m.op {
	case opAdd:
		return worry + m.operand
	case opMul:
		return worry * m.operand
	default:
		return worry * worry
	}
}

// Parse reads the blank-line separated monkey descriptions.
func Parse(text string) ([]Monkey, error) {
	blocks := input.Blocks(text)

	monkeys := make([]Monkey, 0, len(blocks))
	for i, block := range blocks {
		if len(block) != 6 {
			return nil, fmt.Errorf("%w: monkey %d has %d lines", ErrBadMonkey, i, len(block))
		}

		var m Monkey
		var err error
		rawItems := strings.TrimPrefix(strings.TrimSpace(block[1]), "Starting items:")
		for _, field := range strings.Fields(strings.ReplaceAll(rawItems, ",", " ")) {
			item, ierr := strconv.Atoi(field)
			if ierr != nil {
				return nil, fmt.Errorf("%w: monkey %d item %q", ErrBadMonkey, i, field)
			}
			m.Items = append(m.Items, item)
		}

		expr := strings.TrimPrefix(strings.TrimSpace(block[2]), "Operation: new = old ")
		switch {
		case expr == "* old":
			m.op = opSquare
		case strings.HasPrefix(expr, "* "):
			m.op = opMul
			m.operand, err = strconv.Atoi(expr[2:])
		case strings.HasPrefix(expr, "+ "):
			m.op = opAdd
			m.operand, err = strconv.Atoi(expr[2:])
		default:
			err = fmt.Errorf("unknown operation %q", expr)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: monkey %d: %v", ErrBadMonkey, i, err)
		}

		if _, err = fmt.Sscanf(strings.TrimSpace(block[3]),
			"Test: divisible by %d", &m.Divisor); err != nil {
			return nil, fmt.Errorf("%w: monkey %d test", ErrBadMonkey, i)
		}
		if _, err = fmt.Sscanf(strings.TrimSpace(block[4]),
			"If true: throw to monkey %d", &m.IfTrue); err != nil {
			return nil, fmt.Errorf("%w: monkey %d true branch", ErrBadMonkey, i)
		}
		if _, err = fmt.Sscanf(strings.TrimSpace(block[5]),
			"If false: throw to monkey %d", &m.IfFalse); err != nil {
			return nil, fmt.Errorf("%w: monkey %d false branch", ErrBadMonkey, i)
		}
		if m.IfTrue >= len(blocks) || m.IfFalse >= len(blocks) {
			return nil, fmt.Errorf("%w: monkey %d throws out of range", ErrBadMonkey, i)
		}

		monkeys = append(monkeys, m)
	}

	return monkeys, nil
}

// MonkeyBusiness simulates the given number of rounds and returns the
// product of the two highest inspection counts. With relief enabled each
// inspection divides the worry by three; without it worry is reduced
// modulo the product of all divisors.
func MonkeyBusiness(monkeys []Monkey, rounds int, relief bool) int {
	items := make([][]int, len(monkeys))
	for i, m := range monkeys {
		items[i] = append([]int(nil), m.Items...)
	}

	modulus := 1
	for _, m := range monkeys {
		modulus *= m.Divisor
	}

	inspections := make([]int, len(monkeys))
	for round := 0; round < rounds; round++ {
		for i, m := range monkeys {
			for _, worry := range items[i] {
				inspections[i]++
				worry = m.inspect(worry)
				if relief {
					worry /= 3
				} else {
					worry %= modulus
				}
				target := m.IfFalse
				if worry%m.Divisor == 0 {
					target = m.IfTrue
				}
				items[target] = append(items[target], worry)
			}
			items[i] = items[i][:0]
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(inspections)))

	return inspections[0] * inspections[1]
}

// Solve answers both parts: 20 relieved rounds and 10000 unrelieved ones.
func Solve(text string) (string, string, error) {
	monkeys, err := Parse(text)
	if err != nil {
		return "", "", err
	}

	p1 := MonkeyBusiness(monkeys, 20, true)
	p2 := MonkeyBusiness(monkeys, 10_000, false)

	return strconv.Itoa(p1), strconv.Itoa(p2), nil
}
