// Package valvetest provides fixture networks for tests and benchmarks
// across valvenet packages.
package valvetest

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/valvenet/valve"
)

// ExampleInput is the canonical ten-valve puzzle text; six valves have flow.
const ExampleInput = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
`

// ExampleRecords returns the records described by ExampleInput.
func ExampleRecords() []valve.Record {
	return []valve.Record{
		{Name: "AA", FlowRate: 0, Tunnels: []string{"DD", "II", "BB"}},
		{Name: "BB", FlowRate: 13, Tunnels: []string{"CC", "AA"}},
		{Name: "CC", FlowRate: 2, Tunnels: []string{"DD", "BB"}},
		{Name: "DD", FlowRate: 20, Tunnels: []string{"CC", "AA", "EE"}},
		{Name: "EE", FlowRate: 3, Tunnels: []string{"FF", "DD"}},
		{Name: "FF", FlowRate: 0, Tunnels: []string{"EE", "GG"}},
		{Name: "GG", FlowRate: 0, Tunnels: []string{"FF", "HH"}},
		{Name: "HH", FlowRate: 22, Tunnels: []string{"GG"}},
		{Name: "II", FlowRate: 0, Tunnels: []string{"AA", "JJ"}},
		{Name: "JJ", FlowRate: 21, Tunnels: []string{"II"}},
	}
}

// Example builds the canonical network and fails tb on error.
func Example(tb testing.TB) *valve.Network {
	tb.Helper()

	return MustBuild(tb, ExampleRecords())
}

// MustBuild builds records with a connectivity check and fails tb on error.
func MustBuild(tb testing.TB, records []valve.Record) *valve.Network {
	tb.Helper()
	net, err := valve.Build(records, valve.WithConnectivityCheck())
	if err != nil {
		tb.Fatalf("valve.Build: %v", err)
	}

	return net
}

// Name returns the two-letter name for index i ("AA", "AB", ...).
// Index 0 maps to "AA", the default start valve.
func Name(i int) string {
	return string([]byte{byte('A' + i/26), byte('A' + i%26)})
}

// Random returns n connected records drawn from rng.
//
// A random spanning tree guarantees connectivity; extra adds that many
// additional random tunnels (self pairs are skipped). Each flow rate is
// drawn from [0, maxFlow], so maxFlow == 0 yields a zero-flow network.
func Random(rng *rand.Rand, n, extra, maxFlow int) []valve.Record {
	records := make([]valve.Record, n)
	for i := range records {
		records[i].Name = Name(i)
		if maxFlow > 0 {
			records[i].FlowRate = rng.Intn(maxFlow + 1)
		}
	}
	for i := 1; i < n; i++ {
		parent := rng.Intn(i)
		records[i].Tunnels = append(records[i].Tunnels, Name(parent))
	}
	for k := 0; k < extra && n > 1; k++ {
		a, b := rng.Intn(n), rng.Intn(n)
		if a == b {
			continue
		}
		records[a].Tunnels = append(records[a].Tunnels, Name(b))
	}

	return records
}

// Line returns n records joined in a line AA-AB-AC-..., each with the given flow.
func Line(n, flow int) []valve.Record {
	records := make([]valve.Record, n)
	for i := range records {
		records[i] = valve.Record{Name: Name(i), FlowRate: flow}
		if i > 0 {
			records[i].Tunnels = []string{Name(i - 1)}
		}
	}

	return records
}
