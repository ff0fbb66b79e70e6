// Package pressure solves the valve/pressure maximization puzzle: given a
// network of named valves, each with a flow rate and tunnels to neighboring
// valves, find the maximum total pressure releasable within a fixed time
// budget. Opening a valve costs the travel distance to it plus one minute,
// and yields (time remaining after opening) × (flow rate).
//
// The solver is split into three stages:
//
//  1. Parse — fixed line grammar into a Network (see parse.go).
//  2. Distances — all-pairs minimum hop counts by Floyd–Warshall,
//     O(V³) time / O(V²) space, failing fast on a disconnected network
//     (see distance.go).
//  3. Search — depth-first branch-and-bound over the valves of interest
//     (non-zero flow rate), pruning any branch whose admissible upper bound
//     cannot beat the best completed schedule found so far (see search.go).
//
// The search is exact: exploration order affects runtime only, never the
// returned maximum. A two-actor cooperative variant is provided for the
// second half of the puzzle.
package pressure

import "errors"

// Sentinel errors returned by the pressure solver.
var (
	// ErrBadLine indicates an input line that does not match the valve grammar.
	ErrBadLine = errors.New("pressure: malformed valve line")

	// ErrUnknownValve indicates a reference to a valve name that was never defined.
	ErrUnknownValve = errors.New("pressure: unknown valve")

	// ErrDisconnected indicates a valve pair with no connecting tunnel path.
	// The search requires a total distance table and refuses to run without one.
	ErrDisconnected = errors.New("pressure: valve network is disconnected")

	// ErrBadBudget indicates a negative time budget.
	ErrBadBudget = errors.New("pressure: time budget must be non-negative")

	// ErrTooManyValves indicates more openable valves than the searcher's
	// bitmask state can track.
	ErrTooManyValves = errors.New("pressure: too many valves of interest (max 64)")
)

// Valve is a single node in the network. Immutable after parse.
type Valve struct {
	// Name is the valve's short identifier, e.g. "AA".
	Name string
	// FlowRate is the pressure released per minute once the valve is open.
	FlowRate int
	// Tunnels lists the names of directly connected valves.
	Tunnels []string
}

// Network maps valve name to valve. Immutable after parse.
type Network map[string]Valve

const (
	// DefaultStart is the valve every schedule begins at.
	DefaultStart = "AA"
	// DefaultBudget is the single-actor time budget in minutes.
	DefaultBudget = 30
	// PartnerBudget is the per-actor time budget in the two-actor variant.
	PartnerBudget = 26
)

// Options configures a search.
//
// Start  – name of the starting valve (must exist in the network).
// Budget – total time budget in minutes (must be ≥ 0).
type Options struct {
	Start  string
	Budget int
}

// Option is a functional option for configuring a search.
type Option func(*Options)

// WithStart sets the starting valve name.
func WithStart(name string) Option {
	return func(o *Options) { o.Start = name }
}

// WithBudget sets the time budget in minutes.
func WithBudget(minutes int) Option {
	return func(o *Options) { o.Budget = minutes }
}

// DefaultOptions returns the standard single-actor configuration:
// start at "AA" with a 30 minute budget.
func DefaultOptions() Options {
	return Options{Start: DefaultStart, Budget: DefaultBudget}
}
