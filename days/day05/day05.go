// Package day05 rearranges stacks of crates with a giant cargo crane. The
// two crane models differ only in whether a multi-crate move preserves
// order.
package day05

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/adventcode/advent2022/input"
)

var (
	// ErrBadDrawing indicates an unusable stack drawing.
	ErrBadDrawing = errors.New("day05: malformed stack drawing")
	// ErrBadMove indicates a move line outside the fixed grammar or one
	// referencing a stack that does not exist.
	ErrBadMove = errors.New("day05: malformed move")
)

var moveRE = regexp.MustCompile(`^move (\d+) from (\d+) to (\d+)$`)

// Move transfers Count crates from stack From to stack To (1-based).
type Move struct {
	Count, From, To int
}

// Stacks holds the crates bottom-up, one slice per stack.
type Stacks [][]byte

// clone deep-copies the stacks so both crane models can run on one parse.
func (s Stacks) clone() Stacks {
	out := make(Stacks, len(s))
	for i, st := range s {
		out[i] = append([]byte(nil), st...)
	}

	return out
}

// Tops returns the letter on top of each stack, skipping empty stacks.
func (s Stacks) Tops() string {
	var b strings.Builder
	for _, st := range s {
		if len(st) > 0 {
			b.WriteByte(st[len(st)-1])
		}
	}

	return b.String()
}

// Parse splits the input into the initial stack drawing and the move list.
func Parse(text string) (Stacks, []Move, error) {
	blocks := input.Blocks(text)
	if len(blocks) != 2 {
		return nil, nil, fmt.Errorf("%w: want drawing and moves, got %d blocks",
			ErrBadDrawing, len(blocks))
	}

	drawing := blocks[0]
	if len(drawing) < 2 {
		return nil, nil, fmt.Errorf("%w: too short", ErrBadDrawing)
	}
	labels := strings.Fields(drawing[len(drawing)-1])
	stacks := make(Stacks, len(labels))

	// Crate letters sit at columns 1, 5, 9, ... in each drawing row; rows
	// are read top-down, so each letter is prepended.
	for _, row := range drawing[:len(drawing)-1] {
		for i := range stacks {
			col := 1 + 4*i
			if col < len(row) && row[col] != ' ' {
				stacks[i] = append([]byte{row[col]}, stacks[i]...)
			}
		}
	}

	var moves []Move
	for _, line := range blocks[1] {
		m := moveRE.FindStringSubmatch(line)
		if m == nil {
			return nil, nil, fmt.Errorf("%w: %q", ErrBadMove, line)
		}
		count, _ := strconv.Atoi(m[1])
		from, _ := strconv.Atoi(m[2])
		to, _ := strconv.Atoi(m[3])
		if from < 1 || from > len(stacks) || to < 1 || to > len(stacks) {
			return nil, nil, fmt.Errorf("%w: stack out of range in %q", ErrBadMove, line)
		}
		moves = append(moves, Move{Count: count, From: from, To: to})
	}

	return stacks, moves, nil
}

// apply runs the moves on a copy of the stacks. Under oneAtATime the crane
// lifts single crates, reversing each batch; otherwise the batch keeps its
// order.
func apply(stacks Stacks, moves []Move, oneAtATime bool) (Stacks, error) {
	s := stacks.clone()
	for _, m := range moves {
		from, to := m.From-1, m.To-1
		if m.Count > len(s[from]) {
			return nil, fmt.Errorf("%w: lifting %d crates off a stack of %d",
				ErrBadMove, m.Count, len(s[from]))
		}
		cut := len(s[from]) - m.Count
		batch := append([]byte(nil), s[from][cut:]...)
		s[from] = s[from][:cut]
		if oneAtATime {
			for i, j := 0, len(batch)-1; i < j; i, j = i+1, j-1 {
				batch[i], batch[j] = batch[j], batch[i]
			}
		}
		s[to] = append(s[to], batch...)
	}

	return s, nil
}

// RearrangeSingly runs the moves one crate at a time (CrateMover 9000).
func RearrangeSingly(stacks Stacks, moves []Move) (Stacks, error) {
	return apply(stacks, moves, true)
}

// RearrangeBatched runs the moves whole batches at a time (CrateMover 9001).
func RearrangeBatched(stacks Stacks, moves []Move) (Stacks, error) {
	return apply(stacks, moves, false)
}

// Solve answers both parts: the top crates under each crane model.
func Solve(text string) (string, string, error) {
	stacks, moves, err := Parse(text)
	if err != nil {
		return "", "", err
	}

	single, err := RearrangeSingly(stacks, moves)
	if err != nil {
		return "", "", err
	}
	batched, err := RearrangeBatched(stacks, moves)
	if err != nil {
		return "", "", err
	}

	return single.Tops(), batched.Tops(), nil
}
