package pressure

import "fmt"

// searcher holds all data for one top-level search invocation: dense rate
// and distance buffers over the valves of interest, and the best completed
// schedule found so far. The incumbent lives here, never in package state,
// so the pruning threshold of one search can never contaminate another.
type searcher struct {
	k     int   // number of openable valves (flow rate > 0)
	start int   // compact index of the starting position (== k)
	rate  []int // rate[v] for v < k
	d     []int // (k+1)×(k+1) hop distances, row-major
	best  int
}

// at is a fast accessor into the dense distance buffer.
func (e *searcher) at(i, j int) int { return e.d[i*(e.k+1)+j] }

// newSearcher validates the options and prefetches the compact buffers.
// Openable valves are indexed in sorted-name order, keeping exploration
// deterministic; the starting position takes the final index whether or
// not it is itself openable.
func newSearcher(net Network, o Options) (*searcher, error) {
	if o.Budget < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadBudget, o.Budget)
	}
	if _, ok := net[o.Start]; !ok {
		return nil, fmt.Errorf("%w: start %q", ErrUnknownValve, o.Start)
	}

	tbl, err := net.Distances()
	if err != nil {
		return nil, err
	}

	var openable []string
	for _, name := range tbl.names {
		if net[name].FlowRate > 0 {
			openable = append(openable, name)
		}
	}
	k := len(openable)
	if k > 64 {
		return nil, fmt.Errorf("%w: %d", ErrTooManyValves, k)
	}

	e := &searcher{
		k:     k,
		start: k,
		rate:  make([]int, k),
		d:     make([]int, (k+1)*(k+1)),
	}
	for v, name := range openable {
		e.rate[v] = net[name].FlowRate
	}

	at := func(names []string, i int) int {
		if i == k {
			return tbl.index[o.Start]
		}
		return tbl.index[names[i]]
	}
	for i := 0; i <= k; i++ {
		for j := 0; j <= k; j++ {
			e.d[i*(k+1)+j] = tbl.at(at(openable, i), at(openable, j))
		}
	}

	return e, nil
}

// bound returns an optimistic estimate of the additional pressure still
// obtainable from the given state: every unopened valve is credited as if
// it were reached by the direct shortest route from the current position
// and opened immediately. A real schedule visits valves one after another,
// so by the triangle inequality each valve is opened no earlier than this
// estimate assumes; the sum therefore never underestimates the true best
// completion, and pruning on it cannot discard an optimal branch.
func (e *searcher) bound(cur, timeLeft int, opened uint64) int {
	b := 0
	for v := 0; v < e.k; v++ {
		if opened&(1<<uint(v)) != 0 {
			continue
		}
		if left := timeLeft - e.at(cur, v) - 1; left > 0 {
			b += left * e.rate[v]
		}
	}

	return b
}

// run is the single-actor depth-first search. State is passed by value and
// copied on branch; the only mutation is the incumbent on e.
func (e *searcher) run(cur, timeLeft int, opened uint64, total int) {
	if total > e.best {
		e.best = total
	}
	if total+e.bound(cur, timeLeft, opened) <= e.best {
		return
	}

	for v := 0; v < e.k; v++ {
		if opened&(1<<uint(v)) != 0 {
			continue
		}
		left := timeLeft - e.at(cur, v) - 1
		if left <= 0 {
			continue
		}
		e.run(v, left, opened|1<<uint(v), total+left*e.rate[v])
	}
}

// pairBound is the two-actor analogue of bound: each unopened valve is
// credited with the better of the two actors' optimistic payoffs.
func (e *searcher) pairBound(aPos, aLeft, bPos, bLeft int, opened uint64) int {
	b := 0
	for v := 0; v < e.k; v++ {
		if opened&(1<<uint(v)) != 0 {
			continue
		}
		best := aLeft - e.at(aPos, v) - 1
		if alt := bLeft - e.at(bPos, v) - 1; alt > best {
			best = alt
		}
		if best > 0 {
			b += best * e.rate[v]
		}
	}

	return b
}

// runPair is the cooperative two-actor search. Each actor carries its own
// position and remaining time; the actor with more time remaining (the one
// whose transit finishes first) chooses the next target, which keeps the
// branching factor at the number of unopened valves instead of exploding
// with single-minute wait steps. The final branch retires the free actor
// so that schedules where the partner opens the remaining valves alone are
// still reachable.
func (e *searcher) runPair(aPos, aLeft, bPos, bLeft int, opened uint64, total int) {
	if total > e.best {
		e.best = total
	}
	if bLeft > aLeft {
		aPos, bPos = bPos, aPos
		aLeft, bLeft = bLeft, aLeft
	}
	if aLeft <= 0 {
		return
	}
	if total+e.pairBound(aPos, aLeft, bPos, bLeft, opened) <= e.best {
		return
	}

	for v := 0; v < e.k; v++ {
		if opened&(1<<uint(v)) != 0 {
			continue
		}
		left := aLeft - e.at(aPos, v) - 1
		if left <= 0 {
			continue
		}
		e.runPair(v, left, bPos, bLeft, opened|1<<uint(v), total+left*e.rate[v])
	}

	// Retire the free actor; the partner finishes alone.
	e.runPair(aPos, 0, bPos, bLeft, opened, total)
}

// MaxPressure returns the maximum total pressure a single actor can release
// within the time budget. The result is deterministic for a given network
// and options; a zero budget or a network with no positive-flow valves
// yields zero.
func MaxPressure(net Network, opts ...Option) (int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e, err := newSearcher(net, o)
	if err != nil {
		return 0, err
	}
	e.run(e.start, o.Budget, 0, 0)

	return e.best, nil
}

// MaxPressureWithPartner returns the maximum total pressure two cooperating
// actors can release, both starting at the same valve with independent
// copies of the (shorter) time budget.
func MaxPressureWithPartner(net Network, opts ...Option) (int, error) {
	o := DefaultOptions()
	o.Budget = PartnerBudget
	for _, opt := range opts {
		opt(&o)
	}

	e, err := newSearcher(net, o)
	if err != nil {
		return 0, err
	}
	e.runPair(e.start, o.Budget, e.start, o.Budget, 0, 0)

	return e.best, nil
}
