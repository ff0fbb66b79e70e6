// Package day17 drops the five repeating rock shapes down a seven-wide
// chamber, pushed by a looping jet pattern. Large drop counts are answered
// by detecting when the (shape, jet, surface) state repeats and skipping
// whole cycles at once.
package day17

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/adventcode/advent2022/geom"
)

// ErrBadJet indicates a jet pattern with characters other than < and >.
var ErrBadJet = errors.New("day17: malformed jet pattern")

const (
	chamberWidth = 7
	spawnX       = 2
	spawnGap     = 3

	rocksPart1 = 2022
	rocksPart2 = 1_000_000_000_000

	// profileRows is how much of the surface participates in the cycle
	// key. Deep enough that no rock settles below it in practice.
	profileRows = 30
)

// shapes lists the five rocks as offsets from their bottom-left corner,
// in drop order. Y grows upward.
var shapes = [5][]geom.Point{
	{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}},
	{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}},
	{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}},
	{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}},
	{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
}

// chamber is the falling-rock simulation state.
type chamber struct {
	rock   map[geom.Point]bool
	height int
	jets   string
	jetIdx int
}

// collides reports whether a shape anchored at pos hits a wall, the
// floor, or settled rock.
func (c *chamber) collides(shape []geom.Point, pos geom.Point) bool {
	for _, off := range shape {
		p := pos.Add(off)
		if p.X < 0 || p.X >= chamberWidth || p.Y < 1 || c.rock[p] {
			return true
		}
	}

	return false
}

// dropOne plays one rock to rest: alternate jet pushes and unit falls.
func (c *chamber) dropOne(shape []geom.Point) {
	pos := geom.Point{X: spawnX, Y: c.height + spawnGap + 1}
	for {
		dx := -1
		if c.jets[c.jetIdx] == '>' {
			dx = 1
		}
		c.jetIdx = (c.jetIdx + 1) % len(c.jets)
		if next := pos.Add(geom.Point{X: dx}); !c.collides(shape, next) {
			pos = next
		}

		next := pos.Add(geom.Point{Y: -1})
		if c.collides(shape, next) {
			break
		}
		pos = next
	}

	for _, off := range shape {
		p := pos.Add(off)
		c.rock[p] = true
		if p.Y > c.height {
			c.height = p.Y
		}
	}
}

// surface snapshots the top profileRows rows as a bitmap relative to the
// current height.
func (c *chamber) surface() [profileRows]uint8 {
	var prof [profileRows]uint8
	for row := 0; row < profileRows; row++ {
		y := c.height - row
		if y < 1 {
			prof[row] = 1<<chamberWidth - 1
			continue
		}
		for x := 0; x < chamberWidth; x++ {
			if c.rock[geom.Point{X: x, Y: y}] {
				prof[row] |= 1 << x
			}
		}
	}

	return prof
}

// cycleKey is the repeat-detection state after a rock settles.
type cycleKey struct {
	shape, jet int
	profile    [profileRows]uint8
}

// cycleMark remembers when a state was first seen.
type cycleMark struct {
	rocks  int
	height int
}

// TowerHeight simulates the given number of rocks and returns the final
// tower height. Once a state recurs, the height gained per cycle is
// multiplied out and only the remainder is simulated.
func TowerHeight(jets string, rocks int) (int, error) {
	jets = strings.TrimSpace(jets)
	if jets == "" {
		return 0, fmt.Errorf("%w: empty", ErrBadJet)
	}
	for i := 0; i < len(jets); i++ {
		if jets[i] != '<' && jets[i] != '>' {
			return 0, fmt.Errorf("%w: %q", ErrBadJet, jets[i])
		}
	}

	c := &chamber{rock: map[geom.Point]bool{}, jets: jets}
	seen := map[cycleKey]cycleMark{}
	skipped := 0

	for dropped := 0; dropped < rocks; dropped++ {
		c.dropOne(shapes[dropped%len(shapes)])

		if skipped > 0 {
			continue
		}
		key := cycleKey{shape: (dropped + 1) % len(shapes), jet: c.jetIdx, profile: c.surface()}
		if mark, ok := seen[key]; ok {
			cycleLen := dropped + 1 - mark.rocks
			cycles := (rocks - dropped - 1) / cycleLen
			skipped = cycles * (c.height - mark.height)
			dropped += cycles * cycleLen
		} else {
			seen[key] = cycleMark{rocks: dropped + 1, height: c.height}
		}
	}

	return c.height + skipped, nil
}

// Solve answers both drop counts for the jet pattern.
func Solve(text string) (string, string, error) {
	p1, err := TowerHeight(text, rocksPart1)
	if err != nil {
		return "", "", err
	}
	p2, err := TowerHeight(text, rocksPart2)
	if err != nil {
		return "", "", err
	}

	return strconv.Itoa(p1), strconv.Itoa(p2), nil
}
