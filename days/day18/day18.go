// Package day18 measures the surface of a lava droplet built from unit
// cubes: every exposed face first, then only the faces reachable by steam
// flooding around the droplet.
package day18

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/adventcode/advent2022/geom"
	"github.com/adventcode/advent2022/input"
)

// ErrBadCube indicates a line outside the "x,y,z" grammar.
var ErrBadCube = errors.New("day18: malformed cube")

// Parse reads the droplet cubes, one coordinate triple per line.
func Parse(text string) (map[geom.Point3]bool, error) {
	cubes := map[geom.Point3]bool{}
	for _, line := range input.Lines(text) {
		var p geom.Point3
		if _, err := fmt.Sscanf(line, "%d,%d,%d", &p.X, &p.Y, &p.Z); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadCube, line)
		}
		cubes[p] = true
	}

	return cubes, nil
}

// SurfaceArea counts cube faces not shared with another cube.
func SurfaceArea(cubes map[geom.Point3]bool) int {
	area := 0
	for p := range cubes {
		for _, n := range p.Neighbors() {
			if !cubes[n] {
				area++
			}
		}
	}

	return area
}

// ExteriorArea counts faces touched by steam expanding through a bounding
// box one cell larger than the droplet on every side. Interior pockets
// stay unreached.
func ExteriorArea(cubes map[geom.Point3]bool) int {
	if len(cubes) == 0 {
		return 0
	}

	var lo, hi geom.Point3
	first := true
	for p := range cubes {
		if first {
			lo, hi, first = p, p, false
			continue
		}
		lo = geom.Point3{X: min(lo.X, p.X), Y: min(lo.Y, p.Y), Z: min(lo.Z, p.Z)}
		hi = geom.Point3{X: max(hi.X, p.X), Y: max(hi.Y, p.Y), Z: max(hi.Z, p.Z)}
	}
	lo = lo.Add(geom.Point3{X: -1, Y: -1, Z: -1})
	hi = hi.Add(geom.Point3{X: 1, Y: 1, Z: 1})

	inBox := func(p geom.Point3) bool {
		return p.X >= lo.X && p.X <= hi.X &&
			p.Y >= lo.Y && p.Y <= hi.Y &&
			p.Z >= lo.Z && p.Z <= hi.Z
	}

	steam := map[geom.Point3]bool{lo: true}
	queue := []geom.Point3{lo}
	area := 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range cur.Neighbors() {
			if !inBox(n) || steam[n] {
				continue
			}
			if cubes[n] {
				area++
				continue
			}
			steam[n] = true
			queue = append(queue, n)
		}
	}

	return area
}

// Solve answers both parts over the droplet scan.
func Solve(text string) (string, string, error) {
	cubes, err := Parse(text)
	if err != nil {
		return "", "", err
	}

	return strconv.Itoa(SurfaceArea(cubes)), strconv.Itoa(ExteriorArea(cubes)), nil
}
