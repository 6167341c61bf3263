package release

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for optimizer execution.
var (
	// ErrNilNetwork is returned when a nil network or table is passed.
	ErrNilNetwork = errors.New("release: network is nil")

	// ErrUnsupportedAgents is returned for agent counts outside [1, MaxAgents].
	ErrUnsupportedAgents = errors.New("release: unsupported agent count")

	// ErrNegativeBudget is returned for a time budget below zero.
	ErrNegativeBudget = errors.New("release: negative time budget")

	// ErrStartNotFound is returned when the start valve is not in the network.
	ErrStartNotFound = errors.New("release: start valve not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("release: invalid option supplied")

	// ErrTimeLimit is returned when a positive time limit expires mid-search.
	ErrTimeLimit = errors.New("release: time limit exceeded")
)

const (
	// MaxAgents is the largest supported number of cooperating agents.
	MaxAgents = 2

	// DefaultBudget is the single-agent puzzle budget.
	DefaultBudget = 30

	// DefaultStart is the valve every agent starts from.
	DefaultStart = "AA"

	// deadlineMask spaces out clock and context checks (every 4096 nodes).
	deadlineMask = 4095
)

// Bound selects the pruning estimate used by the search.
type Bound int

const (
	// NoBound disables pruning (testing and benchmarking only).
	NoBound Bound = iota

	// FlowBound adds every closed valve's flow × (T − 1) to the current total.
	FlowBound

	// ReachBound credits each closed valve with its best reachable opening
	// time over all agents.
	ReachBound
)

var boundNames = [...]string{NoBound: "none", FlowBound: "flow", ReachBound: "reach"}

// String returns the configuration name of b.
func (b Bound) String() string {
	if b < 0 || int(b) >= len(boundNames) {
		return fmt.Sprintf("Bound(%d)", int(b))
	}

	return boundNames[b]
}

// ParseBound resolves a configuration name ("none", "flow", "reach").
func ParseBound(s string) (Bound, error) {
	for i, name := range boundNames {
		if strings.EqualFold(s, name) {
			return Bound(i), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown bound %q", ErrOptionViolation, s)
}

// Step is one valve opening of the winning plan.
type Step struct {
	// Valve is the opened valve's name.
	Valve string

	// Agent is the zero-based index of the agent that opened it.
	Agent int

	// Remaining is the number of ticks left when the valve started flowing.
	Remaining int

	// Released is FlowRate × Remaining.
	Released int
}

// Stats counts search events.
type Stats struct {
	Nodes        int64 // search calls
	Pruned       int64 // branches cut by the bound
	Leaves       int64 // terminal states reached
	Improvements int64 // incumbent updates
}

// Result is the outcome of Maximize.
type Result struct {
	// Total is the maximum pressure released (0 if nothing can be opened).
	Total int

	// Plan lists the openings of the best plan, latest budget first
	// (descending Remaining, then Agent, then Valve).
	Plan []Step

	// Stats describes the search effort.
	Stats Stats

	// Complete is false when the search was cut short by a time limit or
	// a cancelled context; Total is then the best value seen so far.
	Complete bool
}
