// Package day19 schedules robot construction from ore-collecting
// blueprints to maximize cracked geodes. A depth-first search over
// build-or-wait decisions is pruned by a quadratic optimistic bound and by
// never building more robots of a kind than any recipe can consume.
package day19

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/adventcode/advent2022/input"
)

// ErrBadBlueprint indicates a line outside the fixed blueprint grammar.
var ErrBadBlueprint = errors.New("day19: malformed blueprint")

// Resource kinds, used as indices throughout.
const (
	ore = iota
	clay
	obsidian
	geode
	numResources
)

const (
	part1Minutes    = 24
	part2Minutes    = 32
	part2Blueprints = 3
)

// Blueprint holds the four robot recipes: Costs[robot][resource].
type Blueprint struct {
	ID    int
	Costs [numResources][numResources]int
}

// Parse reads the blueprint list, one per line.
func Parse(text string) ([]Blueprint, error) {
	lines := input.Lines(text)

	blueprints := make([]Blueprint, 0, len(lines))
	for _, line := range lines {
		var b Blueprint
		var oreOre, clayOre, obsOre, obsClay, geoOre, geoObs int
		if _, err := fmt.Sscanf(line,
			"Blueprint %d: Each ore robot costs %d ore. "+
				"Each clay robot costs %d ore. "+
				"Each obsidian robot costs %d ore and %d clay. "+
				"Each geode robot costs %d ore and %d obsidian.",
			&b.ID, &oreOre, &clayOre, &obsOre, &obsClay, &geoOre, &geoObs); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadBlueprint, line)
		}
		b.Costs[ore][ore] = oreOre
		b.Costs[clay][ore] = clayOre
		b.Costs[obsidian][ore] = obsOre
		b.Costs[obsidian][clay] = obsClay
		b.Costs[geode][ore] = geoOre
		b.Costs[geode][obsidian] = geoObs
		blueprints = append(blueprints, b)
	}

	return blueprints, nil
}

// planner carries the per-blueprint search state: the blueprint, the
// per-resource robot caps, and the best geode count found so far.
type planner struct {
	costs [numResources][numResources]int
	caps  [numResources]int
	best  int
}

func newPlanner(b Blueprint) *planner {
	p := &planner{costs: b.Costs}
	for robot := 0; robot < numResources; robot++ {
		for res := 0; res < numResources; res++ {
			if b.Costs[robot][res] > p.caps[res] {
				p.caps[res] = b.Costs[robot][res]
			}
		}
	}
	p.caps[geode] = 1 << 30

	return p
}

// bound is the optimistic ceiling for a state: current geodes, the sure
// yield of existing robots, and one extra geode robot finished every
// remaining minute.
func (p *planner) bound(timeLeft int, mat, rob [numResources]int) int {
	return mat[geode] + rob[geode]*timeLeft + timeLeft*(timeLeft-1)/2
}

// run explores one minute: build an affordable, unbanned, uncapped robot,
// or wait while banning everything affordable now. Banning makes waiting
// meaningful, so no schedule is enumerated twice.
func (p *planner) run(timeLeft int, mat, rob [numResources]int, banned uint8) {
	if sure := mat[geode] + rob[geode]*timeLeft; sure > p.best {
		p.best = sure
	}
	if timeLeft == 0 || p.bound(timeLeft, mat, rob) <= p.best {
		return
	}

	var affordable uint8
	for robot := 0; robot < numResources; robot++ {
		canPay := true
		for res := 0; res < numResources; res++ {
			if mat[res] < p.costs[robot][res] {
				canPay = false
				break
			}
		}
		if !canPay {
			continue
		}
		affordable |= 1 << robot

		if banned&(1<<robot) != 0 || rob[robot] >= p.caps[robot] {
			continue
		}
		nextMat, nextRob := mat, rob
		for res := 0; res < numResources; res++ {
			nextMat[res] += rob[res] - p.costs[robot][res]
		}
		nextRob[robot]++
		p.run(timeLeft-1, nextMat, nextRob, 0)
	}

	for res := 0; res < numResources; res++ {
		mat[res] += rob[res]
	}
	p.run(timeLeft-1, mat, rob, banned|affordable)
}

// MaxGeodes returns the most geodes the blueprint can crack in the given
// number of minutes, starting with one ore robot and nothing else.
func MaxGeodes(b Blueprint, minutes int) int {
	p := newPlanner(b)

	var mat, rob [numResources]int
	rob[ore] = 1
	p.run(minutes, mat, rob, 0)

	return p.best
}

// QualitySum totals ID times geode yield over all blueprints at 24
// minutes.
func QualitySum(blueprints []Blueprint) int {
	sum := 0
	for _, b := range blueprints {
		sum += b.ID * MaxGeodes(b, part1Minutes)
	}

	return sum
}

// TopProduct multiplies the 32-minute yields of the first three
// blueprints, or all of them when fewer remain.
func TopProduct(blueprints []Blueprint) int {
	if len(blueprints) > part2Blueprints {
		blueprints = blueprints[:part2Blueprints]
	}

	product := 1
	for _, b := range blueprints {
		product *= MaxGeodes(b, part2Minutes)
	}

	return product
}

// Solve answers both parts over the blueprint list.
func Solve(text string) (string, string, error) {
	blueprints, err := Parse(text)
	if err != nil {
		return "", "", err
	}

	return strconv.Itoa(QualitySum(blueprints)), strconv.Itoa(TopProduct(blueprints)), nil
}
