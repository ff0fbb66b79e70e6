package solve

import (
	"github.com/adventcode/advent2022/days/day01"
	"github.com/adventcode/advent2022/days/day02"
	"github.com/adventcode/advent2022/days/day03"
	"github.com/adventcode/advent2022/days/day04"
	"github.com/adventcode/advent2022/days/day05"
	"github.com/adventcode/advent2022/days/day06"
	"github.com/adventcode/advent2022/days/day07"
	"github.com/adventcode/advent2022/days/day08"
	"github.com/adventcode/advent2022/days/day09"
	"github.com/adventcode/advent2022/days/day10"
	"github.com/adventcode/advent2022/days/day11"
	"github.com/adventcode/advent2022/days/day12"
	"github.com/adventcode/advent2022/days/day13"
	"github.com/adventcode/advent2022/days/day14"
	"github.com/adventcode/advent2022/days/day15"
	"github.com/adventcode/advent2022/days/day16"
	"github.com/adventcode/advent2022/days/day17"
	"github.com/adventcode/advent2022/days/day18"
	"github.com/adventcode/advent2022/days/day19"
	"github.com/adventcode/advent2022/days/day20"
	"github.com/adventcode/advent2022/days/day21"
	"github.com/adventcode/advent2022/days/day22"
	"github.com/adventcode/advent2022/days/day23"
	"github.com/adventcode/advent2022/days/day24"
)

// registry maps day numbers to solvers. The table is spelled out rather
// than populated by init side effects so the full set is visible in one
// place and dead days cannot register themselves silently.
var registry = map[int]Func{
	1:  wrap(day01.Solve),
	2:  wrap(day02.Solve),
	3:  wrap(day03.Solve),
	4:  wrap(day04.Solve),
	5:  wrap(day05.Solve),
	6:  wrap(day06.Solve),
	7:  wrap(day07.Solve),
	8:  wrap(day08.Solve),
	9:  wrap(day09.Solve),
	10: wrap(day10.Solve),
	11: wrap(day11.Solve),
	12: wrap(day12.Solve),
	13: wrap(day13.Solve),
	14: wrap(day14.Solve),
	15: wrap(day15.Solve),
	16: wrap(day16.Solve),
	17: wrap(day17.Solve),
	18: wrap(day18.Solve),
	19: wrap(day19.Solve),
	20: wrap(day20.Solve),
	21: wrap(day21.Solve),
	22: wrap(day22.Solve),
	23: wrap(day23.Solve),
	24: wrap(day24.Solve),
}
