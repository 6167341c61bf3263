package release

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/valvenet/valve"
)

// record is the opened-valve record shared by the whole search.
//
// openedAt[v] is the remaining time at which v started flowing (0 = closed;
// openings always leave at least one tick, so 0 is never a real entry).
// by[v] is the agent that opened v. total and closedFlow are maintained
// incrementally for the bound; fold recomputes total from scratch.
type record struct {
	flow       []int
	openedAt   []int
	by         []int
	open       int
	total      int
	closedFlow int
}

func newRecord(flow []int) *record {
	r := &record{
		flow:     flow,
		openedAt: make([]int, len(flow)),
		by:       make([]int, len(flow)),
	}
	for _, f := range flow {
		r.closedFlow += f
	}

	return r
}

func (r *record) isOpen(v int) bool { return r.openedAt[v] != 0 }

// push marks v as opened by agent with the given remaining time.
func (r *record) push(v, remaining, agent int) {
	r.openedAt[v] = remaining
	r.by[v] = agent
	r.open++
	r.total += r.flow[v] * remaining
	r.closedFlow -= r.flow[v]
}

// pop undoes push(v, ...).
func (r *record) pop(v int) {
	r.total -= r.flow[v] * r.openedAt[v]
	r.closedFlow += r.flow[v]
	r.openedAt[v] = 0
	r.open--
}

// Len returns the number of opened valves.
func (r *record) Len() int { return r.open }

// fold computes Σ flow[v] × openedAt[v]. Closed valves contribute 0.
func fold(openedAt, flow []int) int {
	total := 0
	for v, t := range openedAt {
		total += flow[v] * t
	}

	return total
}

// Fold scores an arbitrary opening plan: opened maps a valve name to the
// remaining time at which it was opened. Unknown names yield
// valve.ErrValveNotFound, negative times ErrOptionViolation.
//
// Complexity: O(len(opened)).
func Fold(net *valve.Network, opened map[string]int) (int, error) {
	if net == nil {
		return 0, ErrNilNetwork
	}
	total := 0
	for name, remaining := range opened {
		i, err := net.Lookup(name)
		if err != nil {
			return 0, err
		}
		if remaining < 0 {
			return 0, fmt.Errorf("%w: %s opened with %d remaining", ErrOptionViolation, name, remaining)
		}
		total += net.FlowRate(i) * remaining
	}

	return total, nil
}

// Opened returns a plan's openings as the map accepted by Fold.
func Opened(plan []Step) map[string]int {
	out := make(map[string]int, len(plan))
	for _, s := range plan {
		out[s.Valve] = s.Remaining
	}

	return out
}

// snapshot converts the current record into plan steps.
func (r *record) snapshot(names []string) []Step {
	plan := make([]Step, 0, r.open)
	for v, t := range r.openedAt {
		if t == 0 {
			continue
		}
		plan = append(plan, Step{
			Valve:     names[v],
			Agent:     r.by[v],
			Remaining: t,
			Released:  r.flow[v] * t,
		})
	}
	sort.Slice(plan, func(i, j int) bool {
		a, b := plan[i], plan[j]
		if a.Remaining != b.Remaining {
			return a.Remaining > b.Remaining
		}
		if a.Agent != b.Agent {
			return a.Agent < b.Agent
		}

		return a.Valve < b.Valve
	})

	return plan
}
