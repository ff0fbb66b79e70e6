package pressure

import (
	"fmt"
	"math"
	"sort"
)

// unreached marks a pair with no known path. Kept far below math.MaxInt so
// that one relaxation step cannot overflow.
const unreached = math.MaxInt / 4

// DistanceTable holds all-pairs minimum hop counts between valves.
// It is computed once per network and read-only thereafter.
type DistanceTable struct {
	names []string       // sorted valve names
	index map[string]int // name → dense index
	dist  []int          // dist[i*n+j], n = len(names)
	n     int
}

// Distances computes the all-pairs shortest hop counts for the network by
// Floyd–Warshall relaxation over intermediate valves. Every tunnel is one
// hop. Returns ErrDisconnected if any ordered pair remains unreachable:
// the search assumes finite distances between all valves of interest and
// fails fast rather than producing a partial table.
func (net Network) Distances() (*DistanceTable, error) {
	n := len(net)
	t := &DistanceTable{
		names: make([]string, 0, n),
		index: make(map[string]int, n),
		dist:  make([]int, n*n),
		n:     n,
	}

	for name := range net {
		t.names = append(t.names, name)
	}
	sort.Strings(t.names)
	for i, name := range t.names {
		t.index[name] = i
	}

	for i := range t.dist {
		t.dist[i] = unreached
	}
	for name, v := range net {
		u := t.index[name]
		t.dist[u*n+u] = 0
		for _, nbr := range v.Tunnels {
			t.dist[u*n+t.index[nbr]] = 1
		}
	}

	// Triple relaxation: for each candidate intermediate w, improve every
	// (u, v) pair through it.
	for w := 0; w < n; w++ {
		for u := 0; u < n; u++ {
			uw := t.dist[u*n+w]
			if uw == unreached {
				continue
			}
			for v := 0; v < n; v++ {
				if d := uw + t.dist[w*n+v]; d < t.dist[u*n+v] {
					t.dist[u*n+v] = d
				}
			}
		}
	}

	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if t.dist[u*n+v] >= unreached {
				return nil, fmt.Errorf("%w: no path from %q to %q",
					ErrDisconnected, t.names[u], t.names[v])
			}
		}
	}

	return t, nil
}

// Between returns the minimum number of movement steps from valve a to
// valve b. Unknown names return ErrUnknownValve.
func (t *DistanceTable) Between(a, b string) (int, error) {
	i, ok := t.index[a]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownValve, a)
	}
	j, ok := t.index[b]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownValve, b)
	}

	return t.dist[i*t.n+j], nil
}

// Names returns the valve names covered by the table, sorted.
func (t *DistanceTable) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)

	return out
}

// at is the fast accessor used by the searcher; indices must be valid.
func (t *DistanceTable) at(i, j int) int { return t.dist[i*t.n+j] }
