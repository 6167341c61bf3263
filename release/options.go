package release

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Option configures Maximize via functional arguments.
// An invalid Option is recorded and surfaced when Maximize is invoked.
type Option func(*Options)

// Options holds the parameters of one optimizer run.
type Options struct {
	// Agents is the number of cooperating agents (1..MaxAgents).
	Agents int

	// Budget is the total number of ticks.
	Budget int

	// Start is the valve every agent starts from.
	Start string

	// Bound selects the pruning estimate.
	Bound Bound

	// Ctx allows cancellation.
	Ctx context.Context

	// TimeLimit, if > 0, stops the search once exceeded. 0 means unlimited.
	TimeLimit time.Duration

	// Logger receives debug events on incumbent updates and a summary.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - 1 agent, DefaultBudget ticks, DefaultStart,
//   - FlowBound,
//   - context.Background(), no time limit,
//   - a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Agents: 1,
		Budget: DefaultBudget,
		Start:  DefaultStart,
		Bound:  FlowBound,
		Ctx:    context.Background(),
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithAgents sets the number of agents. Values outside [1, MaxAgents]
// yield ErrUnsupportedAgents.
func WithAgents(n int) Option {
	return func(o *Options) {
		if n < 1 || n > MaxAgents {
			o.err = fmt.Errorf("%w: %d (supported 1..%d)", ErrUnsupportedAgents, n, MaxAgents)
			return
		}
		o.Agents = n
	}
}

// WithBudget sets the time budget in ticks. Negative values yield ErrNegativeBudget.
func WithBudget(ticks int) Option {
	return func(o *Options) {
		if ticks < 0 {
			o.err = fmt.Errorf("%w: %d", ErrNegativeBudget, ticks)
			return
		}
		o.Budget = ticks
	}
}

// WithStart sets the start valve name.
func WithStart(name string) Option {
	return func(o *Options) {
		if name == "" {
			o.err = fmt.Errorf("%w: empty start valve", ErrOptionViolation)
			return
		}
		o.Start = name
	}
}

// WithBound selects the pruning estimate.
func WithBound(b Bound) Option {
	return func(o *Options) {
		if b < NoBound || b > ReachBound {
			o.err = fmt.Errorf("%w: unknown bound %d", ErrOptionViolation, int(b))
			return
		}
		o.Bound = b
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTimeLimit stops the search after d.
//
//	d > 0: soft limit, checked every 4096 search nodes
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: negative time limit %s", ErrOptionViolation, d)
			return
		}
		o.TimeLimit = d
	}
}

// WithLogger routes search events to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// validate re-checks fields so hand-written Options funcs cannot smuggle
// in unsupported values.
func (o *Options) validate() error {
	switch {
	case o.err != nil:
		return o.err
	case o.Agents < 1 || o.Agents > MaxAgents:
		return fmt.Errorf("%w: %d (supported 1..%d)", ErrUnsupportedAgents, o.Agents, MaxAgents)
	case o.Budget < 0:
		return fmt.Errorf("%w: %d", ErrNegativeBudget, o.Budget)
	case o.Bound < NoBound || o.Bound > ReachBound:
		return fmt.Errorf("%w: unknown bound %d", ErrOptionViolation, int(o.Bound))
	case o.TimeLimit < 0:
		return fmt.Errorf("%w: negative time limit %s", ErrOptionViolation, o.TimeLimit)
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}

	return nil
}
