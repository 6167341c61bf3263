package release

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/valvenet/distance"
)

// agent is the transient state of one mover: where it stands (or is
// heading) and the remaining time at which it can decide again.
type agent struct {
	pos  int
	free int
}

// engine holds all search data and policies. Nodes are compressed: index
// space 0..m-1 covers every flowing valve plus the start valve.
type engine struct {
	// Problem data.
	m       int
	names   []string // compressed index → valve name
	flow    []int    // compressed index → flow rate
	dist    []int    // dense m×m hop counts, dist[u*m+v]
	targets []int    // compressed indices with positive flow
	bound   Bound

	// Search state.
	agents []agent
	rec    *record

	// Incumbent.
	best int
	plan []Step

	// Budget policing.
	ctx         context.Context
	useDeadline bool
	deadline    time.Time
	steps       int
	stopped     bool
	stopErr     error

	stats Stats
	log   *slog.Logger
}

// newEngine compresses tbl around the flowing valves and the start valve.
func newEngine(tbl *distance.Table, start int, o Options) *engine {
	net := tbl.Network()
	nodes := net.Active()
	startAt := -1
	for k, i := range nodes {
		if i == start {
			startAt = k
		}
	}
	if startAt < 0 {
		startAt = len(nodes)
		nodes = append(nodes, start)
	}

	m := len(nodes)
	e := &engine{
		m:      m,
		names:  make([]string, m),
		flow:   make([]int, m),
		dist:   make([]int, 0, m*m),
		bound:  o.Bound,
		agents: make([]agent, o.Agents),
		ctx:    o.Ctx,
		log:    o.Logger,
	}
	for k, i := range nodes {
		e.names[k] = net.Name(i)
		e.flow[k] = net.FlowRate(i)
		if e.flow[k] > 0 {
			e.targets = append(e.targets, k)
		}
	}
	for _, row := range tbl.Sub(nodes) {
		e.dist = append(e.dist, row...)
	}
	for a := range e.agents {
		e.agents[a] = agent{pos: startAt, free: o.Budget}
	}
	e.rec = newRecord(e.flow)
	if o.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(o.TimeLimit)
	}

	return e
}

// run searches from the initial state and returns the result.
func (e *engine) run() (Result, error) {
	e.search(e.clock())

	res := Result{
		Total:    e.best,
		Plan:     e.plan,
		Stats:    e.stats,
		Complete: !e.stopped,
	}
	if res.Plan == nil {
		res.Plan = []Step{}
	}

	return res, e.stopErr
}

// clock is the shared virtual time: the latest moment any agent becomes free.
func (e *engine) clock() int {
	t := 0
	for _, a := range e.agents {
		if a.free > t {
			t = a.free
		}
	}

	return t
}

// interrupted performs a rare deadline/context test (every 4096 nodes).
func (e *engine) interrupted() bool {
	if e.stopped {
		return true
	}
	e.steps++
	if e.steps&deadlineMask != 0 {
		return false
	}
	if err := e.ctx.Err(); err != nil {
		e.stopped, e.stopErr = true, err
	} else if e.useDeadline && time.Now().After(e.deadline) {
		e.stopped, e.stopErr = true, ErrTimeLimit
	}

	return e.stopped
}

// search expands the state at remaining time t, where t == clock().
func (e *engine) search(t int) {
	e.stats.Nodes++
	if e.interrupted() {
		return
	}
	if t == 0 {
		e.leaf()
		return
	}
	if e.upperBound(t) <= e.best {
		e.stats.Pruned++
		return
	}

	// Agents that became free on this tick decide; the rest keep travelling.
	deciding := make([]int, 0, len(e.agents))
	for a := range e.agents {
		if e.agents[a].free == t {
			deciding = append(deciding, a)
		}
	}
	lists := make([][]action, len(deciding))
	origin := make([]int, len(deciding))
	for k, a := range deciding {
		origin[k] = e.agents[a].pos
		lists[k] = e.actions(origin[k], t)
	}
	e.assign(deciding, origin, lists, make([]int, len(deciding)), 0)
}

// assign picks an action for deciding[k] and recurses over the remaining
// deciding agents; once all have chosen, the clock advances.
//
// Collision rule: a valve claimed earlier in the same joint move is
// skipped. De-duplication: agents deciding from the same valve are
// interchangeable, so a later twin never picks an earlier list entry than
// its predecessor.
//
// Every push and agent update is undone before the next sibling runs.
func (e *engine) assign(deciding, origin []int, lists [][]action, chosen []int, k int) {
	if k == len(deciding) {
		e.search(e.clock())
		return
	}
	a := deciding[k]
	saved := e.agents[a]
	from := 0
	for j := 0; j < k; j++ {
		if origin[j] == origin[k] && chosen[j] > from {
			from = chosen[j]
		}
	}

	for c := from; c < len(lists[k]); c++ {
		act := lists[k][c]
		if act.target != idle && e.rec.isOpen(act.target) {
			continue
		}
		chosen[k] = c
		if act.target == idle {
			e.agents[a] = agent{pos: saved.pos, free: 0}
		} else {
			e.rec.push(act.target, act.free, a)
			e.agents[a] = agent{pos: act.target, free: act.free}
		}

		e.assign(deciding, origin, lists, chosen, k+1)

		if act.target != idle {
			e.rec.pop(act.target)
		}
		e.agents[a] = saved
		if e.stopped {
			return
		}
	}
}

// upperBound is an optimistic estimate of the best total reachable from
// the current state with t ticks left.
func (e *engine) upperBound(t int) int {
	switch e.bound {
	case FlowBound:
		// Every closed valve opens no later than t−1.
		return e.rec.total + e.rec.closedFlow*(t-1)
	case ReachBound:
		return e.rec.total + e.reachExtra()
	default:
		return math.MaxInt
	}
}

// reachExtra credits every closed valve with the latest opening time any
// agent could still achieve: an agent free at f standing at p reaches v no
// earlier than dist(p, v) ticks later, whatever it does in between.
func (e *engine) reachExtra() int {
	extra := 0
	for _, v := range e.targets {
		if e.rec.isOpen(v) {
			continue
		}
		best := 0
		for _, a := range e.agents {
			if r := a.free - e.dist[a.pos*e.m+v] - 1; r > best {
				best = r
			}
		}
		extra += e.flow[v] * best
	}

	return extra
}

// leaf folds the record at the end of the budget and keeps the best plan.
func (e *engine) leaf() {
	e.stats.Leaves++
	total := fold(e.rec.openedAt, e.flow)
	if total <= e.best {
		return
	}
	e.best = total
	e.plan = e.rec.snapshot(e.names)
	e.stats.Improvements++
	e.log.Debug("release: new incumbent",
		slog.Int("total", total),
		slog.Int("opened", e.rec.Len()),
		slog.Int64("nodes", e.stats.Nodes),
	)
}
