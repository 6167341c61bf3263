package release

import "sort"

// idle is the target of the "stay put for the rest of the budget" action.
const idle = -1

// action is "travel to target and open it"; free is the remaining time
// at which the agent is done opening. The idle action has free == 0.
type action struct {
	target int
	free   int
}

// actions lists the moves of an agent standing at pos when remaining ticks
// are left: every closed valve with positive flow and dist+1 < remaining,
// best projected release first, then the idle action.
//
// The ordering only speeds up pruning; the search is exact for any order.
func (e *engine) actions(pos, remaining int) []action {
	out := make([]action, 0, len(e.targets)+1)
	row := e.dist[pos*e.m : (pos+1)*e.m]
	for _, v := range e.targets {
		if e.rec.isOpen(v) {
			continue
		}
		if d := row[v]; d+1 < remaining {
			out = append(out, action{target: v, free: remaining - d - 1})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		pi, pj := e.flow[out[i].target]*out[i].free, e.flow[out[j].target]*out[j].free
		if pi != pj {
			return pi > pj
		}

		return out[i].target < out[j].target
	})

	return append(out, action{target: idle, free: 0})
}
