// Package day22 walks the monkeys' strange map. Part one wraps across the
// board flatly; part two folds the board into a cube with fifty-cell
// faces, using the edge pairings of the only net that appears in real
// inputs.
package day22

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/adventcode/advent2022/geom"
	"github.com/adventcode/advent2022/input"
)

var (
	// ErrBadBoard indicates an unusable board or an empty top row.
	ErrBadBoard = errors.New("day22: malformed board")
	// ErrBadPath indicates path text outside the digits-and-turns grammar.
	ErrBadPath = errors.New("day22: malformed path")
	// ErrUnsupportedNet indicates a board that is not the 200×150 cube net
	// the folding rules cover.
	ErrUnsupportedNet = errors.New("day22: unsupported cube net")
)

// Facing encodes the walker's heading with the password values: right 0,
// down 1, left 2, up 3.
type Facing int

const (
	Right Facing = iota
	Down
	Left
	Up
)

// step returns the row/column delta of a heading; X is the row.
func (f Facing) step() geom.Point {
	switch f {
	case Right:
		return geom.Point{Y: 1}
	case Down:
		return geom.Point{X: 1}
	case Left:
		return geom.Point{Y: -1}
	default:
		return geom.Point{X: -1}
	}
}

// turn applies an L or R instruction.
func (f Facing) turn(dir byte) Facing {
	if dir == 'R' {
		return (f + 1) % 4
	}

	return (f + 3) % 4
}

const faceSize = 50

// Board holds the open and wall tiles keyed by position, plus the overall
// extent. Void cells are simply absent.
type Board struct {
	tiles      map[geom.Point]byte
	rows, cols int
	start      geom.Point
}

// Step is one path instruction: walk Count tiles, then turn (0 for the
// trailing instruction without a turn).
type Step struct {
	Count int
	Turn  byte
}

// Parse splits the input into the board and the instruction path.
func Parse(text string) (*Board, []Step, error) {
	blocks := input.Blocks(text)
	if len(blocks) != 2 || len(blocks[1]) != 1 {
		return nil, nil, fmt.Errorf("%w: want board and a single path line", ErrBadBoard)
	}

	board := &Board{tiles: map[geom.Point]byte{}, start: geom.Point{X: -1}}
	for x, line := range blocks[0] {
		for y := 0; y < len(line); y++ {
			switch line[y] {
			case ' ':
			case '.', '#':
				board.tiles[geom.Point{X: x, Y: y}] = line[y]
				if board.start.X < 0 && x == 0 && line[y] == '.' {
					board.start = geom.Point{X: 0, Y: y}
				}
			default:
				return nil, nil, fmt.Errorf("%w: cell %q", ErrBadBoard, line[y])
			}
			if y+1 > board.cols {
				board.cols = y + 1
			}
		}
		board.rows = x + 1
	}
	if board.start.X < 0 {
		return nil, nil, fmt.Errorf("%w: no open tile on the top row", ErrBadBoard)
	}

	path, err := parsePath(blocks[1][0])
	if err != nil {
		return nil, nil, err
	}

	return board, path, nil
}

func parsePath(s string) ([]Step, error) {
	var path []Step
	i := 0
	for i < len(s) {
		j := i
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j == i {
			return nil, fmt.Errorf("%w: expected count at %q", ErrBadPath, s[i:])
		}
		count, err := strconv.Atoi(s[i:j])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadPath, err)
		}
		step := Step{Count: count}
		if j < len(s) {
			if s[j] != 'L' && s[j] != 'R' {
				return nil, fmt.Errorf("%w: turn %q", ErrBadPath, s[j])
			}
			step.Turn = s[j]
			j++
		}
		path = append(path, step)
		i = j
	}
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrBadPath)
	}

	return path, nil
}

// wrapFunc maps a walker about to leave the board at pos heading f onto
// the tile and heading it re-enters with.
type wrapFunc func(pos geom.Point, f Facing) (geom.Point, Facing)

// walk runs the full path from the start tile, consulting wrap whenever a
// step leaves the board.
func (b *Board) walk(path []Step, wrap wrapFunc) (geom.Point, Facing) {
	pos, facing := b.start, Right
	for _, step := range path {
		for i := 0; i < step.Count; i++ {
			next, nextFacing := pos.Add(facing.step()), facing
			if _, ok := b.tiles[next]; !ok {
				next, nextFacing = wrap(pos, facing)
			}
			if b.tiles[next] == '#' {
				break
			}
			pos, facing = next, nextFacing
		}
		if step.Turn != 0 {
			facing = facing.turn(step.Turn)
		}
	}

	return pos, facing
}

// flatWrap re-enters from the opposite side of the same row or column.
func (b *Board) flatWrap(pos geom.Point, f Facing) (geom.Point, Facing) {
	back := f.turn('R').turn('R').step()
	for {
		prev := pos.Add(back)
		if _, ok := b.tiles[prev]; !ok {
			return pos, f
		}
		pos = prev
	}
}

// PasswordFlat walks the path with flat wrapping and scores the final
// position.
func PasswordFlat(b *Board, path []Step) int {
	pos, facing := b.walk(path, b.flatWrap)

	return password(pos, facing)
}

// PasswordCube walks the path on the folded cube and scores the final
// position. Only the 200×150 net of real inputs is supported.
func PasswordCube(b *Board, path []Step) (int, error) {
	if b.rows != 4*faceSize || b.cols != 3*faceSize {
		return 0, fmt.Errorf("%w: %d×%d board", ErrUnsupportedNet, b.rows, b.cols)
	}

	pos, facing := b.walk(path, CubeWrap)

	return password(pos, facing), nil
}

func password(pos geom.Point, f Facing) int {
	return 1000*(pos.X+1) + 4*(pos.Y+1) + int(f)
}

// CubeWrap folds the walker over a cube edge. The board is the four-tall,
// three-wide net
//
//	.AB
//	.C.
//	DE.
//	F..
//
// with fifty-cell faces; pos is the tile being left and f the outward
// heading.
func CubeWrap(pos geom.Point, f Facing) (geom.Point, Facing) {
	const s = faceSize
	x, y := pos.X, pos.Y

	switch {
	// A up -> F left edge.
	case f == Up && x == 0 && y < 2*s:
		return geom.Point{X: 3*s + (y - s), Y: 0}, Right
	// B up -> F bottom edge.
	case f == Up && x == 0:
		return geom.Point{X: 4*s - 1, Y: y - 2*s}, Up
	// D up -> C left edge.
	case f == Up && x == 2*s:
		return geom.Point{X: s + y, Y: s}, Right
	// A left -> D left edge, reversed.
	case f == Left && x < s:
		return geom.Point{X: 3*s - 1 - x, Y: 0}, Right
	// C left -> D top edge.
	case f == Left && x < 2*s:
		return geom.Point{X: 2 * s, Y: x - s}, Down
	// D left -> A left edge, reversed.
	case f == Left && x < 3*s:
		return geom.Point{X: 3*s - 1 - x, Y: s}, Right
	// F left -> A top edge.
	case f == Left:
		return geom.Point{X: 0, Y: s + (x - 3*s)}, Down
	// A right is interior; B right -> E right edge, reversed.
	case f == Right && x < s:
		return geom.Point{X: 3*s - 1 - x, Y: 2*s - 1}, Left
	// C right -> B bottom edge.
	case f == Right && x < 2*s:
		return geom.Point{X: s - 1, Y: 2*s + (x - s)}, Up
	// E right -> B right edge, reversed.
	case f == Right && x < 3*s:
		return geom.Point{X: 3*s - 1 - x, Y: 3*s - 1}, Left
	// F right -> E bottom edge.
	case f == Right:
		return geom.Point{X: 3*s - 1, Y: s + (x - 3*s)}, Up
	// B down -> C right edge.
	case f == Down && x == s-1 && y >= 2*s:
		return geom.Point{X: s + (y - 2*s), Y: 2*s - 1}, Left
	// E down -> F right edge.
	case f == Down && x == 3*s-1:
		return geom.Point{X: 3*s + (y - s), Y: s - 1}, Left
	// F down -> B top edge.
	default:
		return geom.Point{X: 0, Y: 2*s + y}, Down
	}
}

// Solve answers both parts; the cube answer requires the real input's net.
func Solve(text string) (string, string, error) {
	board, path, err := Parse(text)
	if err != nil {
		return "", "", err
	}

	flat := PasswordFlat(board, path)
	cube, err := PasswordCube(board, path)
	if err != nil {
		return "", "", err
	}

	return strconv.Itoa(flat), strconv.Itoa(cube), nil
}
