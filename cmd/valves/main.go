// Command valves computes the most pressure a team of agents can release
// from a valve network within a time budget.
//
// Usage:
//
//	valves [flags] [-input FILE]
//
// The network is read from -input ("-" or unset: stdin). Settings come from
// an optional TOML or YAML file (-config); flags given on the command line
// override it.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/valvenet/config"
	"github.com/katalvlaran/valvenet/metrics"
	"github.com/katalvlaran/valvenet/parse"
	"github.com/katalvlaran/valvenet/release"
	"github.com/katalvlaran/valvenet/valve"
)

var version = "--- set from makefile ---"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "valves: %v\n", err)
		os.Exit(1)
	}
}

// overrides holds the command-line flags that may replace config values.
type overrides struct {
	configPath  string
	showVersion bool

	input       string
	start       string
	agents      int
	budget      int
	bound       string
	timeLimit   time.Duration
	plan        bool
	logLevel    string
	logFormat   string
	metricsFile string
}

func newFlagSet(o *overrides, stderr io.Writer) *flag.FlagSet {
	d := config.Default()
	fs := flag.NewFlagSet("valves", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&o.configPath, "config", "", "TOML or YAML run configuration")
	fs.BoolVar(&o.showVersion, "version", false, "show command version")
	fs.StringVar(&o.input, "input", "-", `valve network file ("-" for stdin)`)
	fs.StringVar(&o.start, "start", d.Start, "start valve")
	fs.IntVar(&o.agents, "agents", d.Agents, fmt.Sprintf("number of agents (1..%d)", release.MaxAgents))
	fs.IntVar(&o.budget, "budget", d.Budget, "time budget in ticks")
	fs.StringVar(&o.bound, "bound", d.Bound, "pruning bound: none, flow or reach")
	fs.DurationVar(&o.timeLimit, "time-limit", 0, "stop the search after this long (0: no limit)")
	fs.BoolVar(&o.plan, "plan", false, "print the winning openings")
	fs.StringVar(&o.logLevel, "log-level", d.Log.Level, "log level: debug, info, warn or error")
	fs.StringVar(&o.logFormat, "log-format", d.Log.Format, "log format: text or json")
	fs.StringVar(&o.metricsFile, "metrics-file", "", "write Prometheus metrics to this file")

	return fs
}

// apply copies every flag explicitly set on the command line into cfg.
func (o *overrides) apply(fs *flag.FlagSet, cfg *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = o.input
		case "start":
			cfg.Start = o.start
		case "agents":
			cfg.Agents = o.agents
		case "budget":
			cfg.Budget = o.budget
		case "bound":
			cfg.Bound = strings.ToLower(o.bound)
		case "time-limit":
			cfg.TimeLimit = o.timeLimit
		case "plan":
			cfg.Plan = o.plan
		case "log-level":
			cfg.Log.Level = o.logLevel
		case "log-format":
			cfg.Log.Format = o.logFormat
		case "metrics-file":
			cfg.Metrics.File = o.metricsFile
		}
	})
	if cfg.Input == "" {
		cfg.Input = "-"
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var o overrides
	fs := newFlagSet(&o, stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if o.showVersion {
		fmt.Fprintln(stdout, version)
		return nil
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	o.apply(fs, &cfg)
	if err := config.Validate(cfg); err != nil {
		return err
	}

	logger := newLogger(cfg.Log, stderr).With("run_id", uuid.NewString())

	// ----------------------------------------------------------------------------
	// Input

	net, err := readNetwork(cfg.Input, stdin)
	if err != nil {
		return err
	}
	logger.Info("network loaded",
		"input", cfg.Input,
		"valves", net.Len(),
		"flowing", len(net.Active()),
		"total_flow", net.TotalFlow(),
	)

	// ----------------------------------------------------------------------------
	// Search

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	opts = append(opts, release.WithContext(ctx), release.WithLogger(logger))

	began := time.Now()
	res, err := release.Maximize(net, opts...)
	elapsed := time.Since(began)

	interrupted := err != nil && !res.Complete &&
		(errors.Is(err, release.ErrTimeLimit) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded))
	if err != nil && !interrupted {
		return fmt.Errorf("maximize: %w", err)
	}
	if interrupted {
		logger.Warn("search interrupted, reporting best plan found", "error", err, "elapsed", elapsed)
	}

	// ----------------------------------------------------------------------------
	// Output

	printResult(stdout, res, cfg.Plan)

	if cfg.Metrics.File != "" {
		rec := metrics.NewRecorder()
		rec.Observe(cfg.Agents, res, elapsed)
		if werr := rec.WriteFile(cfg.Metrics.File); werr != nil {
			return fmt.Errorf("write metrics: %w", werr)
		}
		logger.Debug("metrics written", "file", cfg.Metrics.File)
	}

	// A time limit is a requested outcome; cancellation is not.
	if interrupted && !errors.Is(err, release.ErrTimeLimit) {
		return err
	}

	return nil
}

func readNetwork(input string, stdin io.Reader) (*valve.Network, error) {
	if input == "-" {
		return parse.Network(stdin)
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	net, err := parse.Network(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", input, err)
	}

	return net, nil
}

func newLogger(cfg config.Log, w io.Writer) *slog.Logger {
	var level slog.Level
	// Validate restricts the level to names slog understands.
	_ = level.UnmarshalText([]byte(cfg.Level))

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func printResult(w io.Writer, res release.Result, plan bool) {
	fmt.Fprintln(w, res.Total)
	if !plan {
		return
	}
	for _, s := range res.Plan {
		fmt.Fprintf(w, "agent %d opens %s with %d left: %d\n", s.Agent, s.Valve, s.Remaining, s.Released)
	}
}
