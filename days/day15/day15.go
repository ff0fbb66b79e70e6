// Package day15 reasons about sensor exclusion zones: diamonds of
// Manhattan radius reaching each sensor's closest beacon. Row coverage is
// answered by interval merging, the lone uncovered position by walking
// each diamond's outer perimeter.
package day15

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/adventcode/advent2022/geom"
	"github.com/adventcode/advent2022/input"
)

var (
	// ErrBadReading indicates a sensor line outside the fixed grammar.
	ErrBadReading = errors.New("day15: malformed sensor reading")
	// ErrNoGap indicates that no position in the search square escapes
	// every sensor.
	ErrNoGap = errors.New("day15: no uncovered position")
)

const (
	targetRow  = 2_000_000
	searchSize = 4_000_000
	tuningMul  = 4_000_000
)

// Sensor pairs a sensor position with its closest beacon.
type Sensor struct {
	Pos    geom.Point
	Beacon geom.Point
}

// Radius is the Manhattan reach of the sensor's exclusion diamond.
func (s Sensor) Radius() int {
	return s.Pos.Manhattan(s.Beacon)
}

// Parse reads the sensor report, one reading per line.
func Parse(text string) ([]Sensor, error) {
	lines := input.Lines(text)

	sensors := make([]Sensor, 0, len(lines))
	for _, line := range lines {
		var s Sensor
		if _, err := fmt.Sscanf(line,
			"Sensor at x=%d, y=%d: closest beacon is at x=%d, y=%d",
			&s.Pos.X, &s.Pos.Y, &s.Beacon.X, &s.Beacon.Y); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadReading, line)
		}
		sensors = append(sensors, s)
	}

	return sensors, nil
}

// span is an inclusive x-interval of one row covered by a sensor.
type span struct {
	lo, hi int
}

// rowSpans collects and merges the x-intervals each sensor covers on the
// given row.
func rowSpans(sensors []Sensor, row int) []span {
	var spans []span
	for _, s := range sensors {
		slack := s.Radius() - abs(s.Pos.Y-row)
		if slack < 0 {
			continue
		}
		spans = append(spans, span{lo: s.Pos.X - slack, hi: s.Pos.X + slack})
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].lo < spans[j].lo })

	merged := spans[:0]
	for _, sp := range spans {
		if n := len(merged); n > 0 && sp.lo <= merged[n-1].hi+1 {
			if sp.hi > merged[n-1].hi {
				merged[n-1].hi = sp.hi
			}
			continue
		}
		merged = append(merged, sp)
	}

	return merged
}

// ExcludedInRow counts positions on the row where no unseen beacon can
// be, discounting beacons already reported on that row.
func ExcludedInRow(sensors []Sensor, row int) int {
	total := 0
	for _, sp := range rowSpans(sensors, row) {
		total += sp.hi - sp.lo + 1
	}

	beacons := map[int]bool{}
	for _, s := range sensors {
		if s.Beacon.Y == row {
			beacons[s.Beacon.X] = true
		}
	}

	return total - len(beacons)
}

// TuningFrequency locates the single position inside [0, size]² missed by
// every sensor and returns x*4000000 + y. Candidates are limited to the
// ring one step outside some diamond, since a unique gap must touch one.
func TuningFrequency(sensors []Sensor, size int) (int, error) {
	for _, s := range sensors {
		r := s.Radius() + 1
		for dx := -r; dx <= r; dx++ {
			dy := r - abs(dx)
			for _, p := range []geom.Point{
				{X: s.Pos.X + dx, Y: s.Pos.Y + dy},
				{X: s.Pos.X + dx, Y: s.Pos.Y - dy},
			} {
				if p.X < 0 || p.X > size || p.Y < 0 || p.Y > size {
					continue
				}
				if !covered(sensors, p) {
					return p.X*tuningMul + p.Y, nil
				}
			}
		}
	}

	return 0, ErrNoGap
}

func covered(sensors []Sensor, p geom.Point) bool {
	for _, s := range sensors {
		if s.Pos.Manhattan(p) <= s.Radius() {
			return true
		}
	}

	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

// Solve answers both parts at the full-size row and search square.
func Solve(text string) (string, string, error) {
	sensors, err := Parse(text)
	if err != nil {
		return "", "", err
	}

	freq, err := TuningFrequency(sensors, searchSize)
	if err != nil {
		return "", "", err
	}

	return strconv.Itoa(ExcludedInRow(sensors, targetRow)), strconv.Itoa(freq), nil
}
