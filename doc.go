// Package advent2022 is a collection of solvers for the 2022 puzzle
// calendar: twenty-four small, self-contained programs behind one command
// line.
//
// What lives where:
//
//	cmd/advent/ — the CLI: run one day, run them all, check recorded answers
//	days/       — one package per day, each exposing its domain functions
//	             plus a uniform Solve(input) adapter
//	geom/       — shared integer points and compass directions
//	input/      — file reading and line/block/integer splitting
//	pressure/   — the valve-network search behind day 16: parsing,
//	             all-pairs distances, and a branch-and-bound planner for
//	             one actor or two
//	solve/      — the day-number registry the CLI dispatches through
//
// Each day package parses its own input format and keeps its intermediate
// types exported, so the solvers double as small libraries: the monkey
// riddle evaluator, the cube-folding walker, or the blizzard-basin search
// can all be driven directly from tests or other code.
//
// Quick start:
//
//	go run ./cmd/advent run 16 --data-dir data
//	go run ./cmd/advent all --time
//	go run ./cmd/advent check --answers answers.yaml
package advent2022
