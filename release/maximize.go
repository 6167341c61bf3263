package release

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/valvenet/distance"
	"github.com/katalvlaran/valvenet/valve"
)

// Maximize returns the maximum pressure net can release under opts.
//
// It builds the distance table and delegates to MaximizeTable.
// Errors:
//   - ErrNilNetwork for a nil network.
//   - ErrOptionViolation, ErrUnsupportedAgents, ErrNegativeBudget for bad options.
//   - ErrStartNotFound when the start valve is missing.
//   - distance.ErrUnreachable (wrapped) for disconnected networks.
//   - ErrTimeLimit or the context error when the search is cut short; the
//     Result then carries the best plan found so far with Complete == false.
func Maximize(net *valve.Network, opts ...Option) (Result, error) {
	if net == nil {
		return Result{}, ErrNilNetwork
	}
	tbl, err := distance.Build(net)
	if err != nil {
		return Result{}, fmt.Errorf("release: %w", err)
	}

	return MaximizeTable(tbl, opts...)
}

// MaximizeTable is Maximize over a prebuilt distance table, so callers
// solving several variants of one network pay for the table only once.
func MaximizeTable(tbl *distance.Table, opts ...Option) (Result, error) {
	if tbl == nil {
		return Result{}, ErrNilNetwork
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return Result{}, err
	}
	start, ok := tbl.Network().Index(o.Start)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrStartNotFound, o.Start)
	}
	if err := o.Ctx.Err(); err != nil {
		return Result{}, err
	}

	began := time.Now()
	e := newEngine(tbl, start, o)
	res, err := e.run()
	o.Logger.Info("release: search finished",
		slog.Int("agents", o.Agents),
		slog.Int("budget", o.Budget),
		slog.String("bound", o.Bound.String()),
		slog.Int("total", res.Total),
		slog.Bool("complete", res.Complete),
		slog.Int64("nodes", res.Stats.Nodes),
		slog.Int64("pruned", res.Stats.Pruned),
		slog.Duration("elapsed", time.Since(began)),
	)

	return res, err
}
