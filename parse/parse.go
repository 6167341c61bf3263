// Package parse reads valve network descriptions in the puzzle's text form:
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	Valve HH has flow rate=22; tunnel leads to valve GG
//
// One valve per line; blank lines are ignored.
package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/valvenet/valve"
)

// ErrSyntax is returned for a line that does not describe a valve.
var ErrSyntax = errors.New("parse: invalid valve line")

var lineRx = regexp.MustCompile(`^Valve (\S+) has flow rate=(\d+); tunnels? leads? to valves? (\S+(?:, \S+)*)$`)

// Line parses a single valve line.
func Line(line string) (valve.Record, error) {
	m := lineRx.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return valve.Record{}, fmt.Errorf("%w: %q", ErrSyntax, line)
	}
	flow, err := strconv.Atoi(m[2])
	if err != nil {
		return valve.Record{}, fmt.Errorf("%w: flow rate %q: %v", ErrSyntax, m[2], err)
	}

	return valve.Record{
		Name:     m[1],
		FlowRate: flow,
		Tunnels:  strings.Split(m[3], ", "),
	}, nil
}

// Records parses every valve line of r.
func Records(r io.Reader) ([]valve.Record, error) {
	var (
		out []valve.Record
		n   int
	)
	s := bufio.NewScanner(r)
	for s.Scan() {
		n++
		text := s.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		rec, err := Line(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		out = append(out, rec)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("parse: read: %w", err)
	}

	return out, nil
}

// Network parses r and builds a connectivity-checked network from it.
// Extra options are passed to valve.Build.
func Network(r io.Reader, opts ...valve.Option) (*valve.Network, error) {
	records, err := Records(r)
	if err != nil {
		return nil, err
	}

	return valve.Build(records, append([]valve.Option{valve.WithConnectivityCheck()}, opts...)...)
}
