package release

import (
	"slices"

	"github.com/katalvlaran/valvenet/distance"
)

// ActionView is an exported projection of one generated action.
// The idle action has an empty Target.
type ActionView struct {
	Target string
	Free   int
}

// prepare mirrors MaximizeTable's option handling and builds an engine.
func prepare(tbl *distance.Table, opts []Option) (*engine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	start, ok := tbl.Network().Index(o.Start)
	if !ok {
		return nil, ErrStartNotFound
	}

	return newEngine(tbl, start, o), nil
}

// SearchResidue runs a full search and reports what the shared state looks
// like afterwards: the number of valves still marked open, and whether the
// record totals and every agent are back to their initial values.
func SearchResidue(tbl *distance.Table, opts ...Option) (Result, int, bool, error) {
	e, err := prepare(tbl, opts)
	if err != nil {
		return Result{}, 0, false, err
	}
	agents := slices.Clone(e.agents)
	closedFlow := e.rec.closedFlow

	res, err := e.run()
	restored := e.rec.total == 0 &&
		e.rec.closedFlow == closedFlow &&
		slices.Equal(agents, e.agents) &&
		slices.Equal(e.rec.openedAt, make([]int, len(e.rec.openedAt)))

	return res, e.rec.Len(), restored, err
}

// Actions lists the actions of an agent at the start valve with remaining
// ticks left, after marking the given valves as opened.
func Actions(tbl *distance.Table, remaining int, opened []string, opts ...Option) ([]ActionView, error) {
	e, err := prepare(tbl, opts)
	if err != nil {
		return nil, err
	}
	for _, name := range opened {
		v := slices.Index(e.names, name)
		if v < 0 {
			return nil, ErrStartNotFound
		}
		e.rec.push(v, 1, 0)
	}

	var out []ActionView
	for _, a := range e.actions(e.agents[0].pos, remaining) {
		if a.target == idle {
			out = append(out, ActionView{Free: a.free})
			continue
		}
		out = append(out, ActionView{Target: e.names[a.target], Free: a.free})
	}

	return out, nil
}

// FoldRaw exposes the pure accumulator for direct checks.
func FoldRaw(openedAt, flow []int) int { return fold(openedAt, flow) }
