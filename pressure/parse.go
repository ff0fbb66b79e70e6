package pressure

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/adventcode/advent2022/input"
)

// lineRE matches the fixed valve grammar, e.g.
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	Valve HH has flow rate=22; tunnel leads to valve GG
var lineRE = regexp.MustCompile(
	`^Valve (\S+) has flow rate=(\d+); tunnels? leads? to valves? (.*)$`,
)

// Parse reads a valve network from the puzzle input text. Any line not
// matching the grammar is a fatal error wrapping ErrBadLine; a tunnel
// referencing an undefined valve wraps ErrUnknownValve.
func Parse(text string) (Network, error) {
	net := make(Network)

	for _, line := range input.Lines(text) {
		m := lineRE.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: %q", ErrBadLine, line)
		}

		rate, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadLine, line)
		}

		tunnels := strings.Split(m[3], ",")
		for i := range tunnels {
			tunnels[i] = strings.TrimSpace(tunnels[i])
		}

		net[m[1]] = Valve{Name: m[1], FlowRate: rate, Tunnels: tunnels}
	}

	// Every tunnel must point at a defined valve.
	for _, v := range net {
		for _, t := range v.Tunnels {
			if _, ok := net[t]; !ok {
				return nil, fmt.Errorf("%w: %q (tunnel from %q)", ErrUnknownValve, t, v.Name)
			}
		}
	}

	return net, nil
}
