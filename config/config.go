// Package config loads the run configuration of the valves command from
// TOML or YAML files and validates it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/valvenet/release"
)

// ErrUnknownFormat is returned for config files that are neither TOML nor YAML.
var ErrUnknownFormat = errors.New("config: unknown file format")

// validate is a singleton validator instance
var validate = validator.New()

// Config describes one optimizer run.
type Config struct {
	// Input is the path of the valve network description ("-" for stdin).
	Input string `toml:"input" yaml:"input" validate:"required"`

	// Start is the valve every agent starts from.
	Start string `toml:"start" yaml:"start" validate:"required"`

	// Agents is the number of cooperating agents.
	Agents int `toml:"agents" yaml:"agents" validate:"min=1,max=2"`

	// Budget is the number of ticks available.
	Budget int `toml:"budget" yaml:"budget" validate:"min=0"`

	// Bound selects the pruning estimate: none, flow or reach.
	Bound string `toml:"bound" yaml:"bound" validate:"oneof=none flow reach"`

	// TimeLimit stops the search early; 0 disables it.
	TimeLimit time.Duration `toml:"time_limit" yaml:"time_limit" validate:"min=0"`

	// Plan prints the winning openings after the total.
	Plan bool `toml:"plan" yaml:"plan"`

	Log     Log     `toml:"log" yaml:"log"`
	Metrics Metrics `toml:"metrics" yaml:"metrics"`
}

// Log configures the slog handler.
type Log struct {
	Level  string `toml:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `toml:"format" yaml:"format" validate:"oneof=text json"`
}

// Metrics configures the Prometheus textfile dump.
type Metrics struct {
	// File, when set, receives the metrics in text exposition format.
	File string `toml:"file" yaml:"file"`
}

// Default returns the single-agent puzzle configuration (Input unset).
func Default() Config {
	return Config{
		Start:  release.DefaultStart,
		Agents: 1,
		Budget: release.DefaultBudget,
		Bound:  release.FlowBound.String(),
		Log:    Log{Level: "info", Format: "text"},
	}
}

// Load reads path on top of Default. The format follows the extension:
// .toml, or .yaml/.yml. An empty path returns Default unchanged.
// Load does not validate; callers merge overrides first and then call Validate.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config file %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config file %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	return cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// Options translates cfg into optimizer options.
func (c Config) Options() ([]release.Option, error) {
	bound, err := release.ParseBound(c.Bound)
	if err != nil {
		return nil, err
	}

	return []release.Option{
		release.WithAgents(c.Agents),
		release.WithBudget(c.Budget),
		release.WithStart(c.Start),
		release.WithBound(bound),
		release.WithTimeLimit(c.TimeLimit),
	}, nil
}

// formatValidationError flattens validator errors into one readable error.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s=%s (got %v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s", fe.Namespace(), fe.Tag()))
		}
	}

	return fmt.Errorf("config: %s", strings.Join(msgs, "; "))
}
