package valve

import (
	"fmt"
	"slices"
)

// Build assembles a Network from records.
//
// All valves are registered first, so tunnels may reference records that
// appear later. Every tunnel is stored in both directions and duplicates
// collapse into one. Records are checked in order and the first violation
// is returned, wrapped with the offending name.
//
// Complexity: O(V + E·log d) where d is the largest degree.
func Build(records []Record, opts ...Option) (*Network, error) {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	n := len(records)
	net := &Network{
		valves: make([]Valve, 0, n),
		index:  make(map[string]int, n),
		adj:    make([][]int, n),
	}

	// Stage 1: valves.
	for _, r := range records {
		if r.Name == "" {
			return nil, ErrEmptyName
		}
		if r.FlowRate < 0 {
			return nil, fmt.Errorf("%q has flow %d: %w", r.Name, r.FlowRate, ErrNegativeFlow)
		}
		if _, ok := net.index[r.Name]; ok {
			return nil, fmt.Errorf("%q: %w", r.Name, ErrDuplicateValve)
		}
		net.index[r.Name] = len(net.valves)
		net.valves = append(net.valves, Valve{Name: r.Name, FlowRate: r.FlowRate})
	}

	// Stage 2: tunnels, mirrored.
	for i, r := range records {
		for _, to := range r.Tunnels {
			j, ok := net.index[to]
			if !ok {
				return nil, fmt.Errorf("tunnel %s→%s: %w", r.Name, to, ErrValveNotFound)
			}
			if i == j {
				return nil, fmt.Errorf("tunnel %s→%s: %w", r.Name, to, ErrLoopNotAllowed)
			}
			net.adj[i] = append(net.adj[i], j)
			net.adj[j] = append(net.adj[j], i)
		}
	}
	for i := range net.adj {
		slices.Sort(net.adj[i])
		net.adj[i] = slices.Compact(net.adj[i])
	}

	if o.checkConnected && !net.Connected() {
		return nil, ErrDisconnected
	}

	return net, nil
}

// Len returns the number of valves.
func (n *Network) Len() int { return len(n.valves) }

// Valves returns a copy of all valves in index order.
func (n *Network) Valves() []Valve { return slices.Clone(n.valves) }

// Valve returns the valve at index i. It panics if i is out of range,
// like a slice access.
func (n *Network) Valve(i int) Valve { return n.valves[i] }

// Name returns the name of valve i.
func (n *Network) Name(i int) string { return n.valves[i].Name }

// FlowRate returns the flow rate of valve i.
func (n *Network) FlowRate(i int) int { return n.valves[i].FlowRate }

// Index resolves a valve name to its index.
func (n *Network) Index(name string) (int, bool) {
	i, ok := n.index[name]

	return i, ok
}

// Lookup resolves name or returns ErrValveNotFound.
func (n *Network) Lookup(name string) (int, error) {
	i, ok := n.index[name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrValveNotFound)
	}

	return i, nil
}

// Neighbors returns a copy of the sorted neighbor indices of valve i.
func (n *Network) Neighbors(i int) []int { return slices.Clone(n.adj[i]) }

// Degree returns the number of distinct tunnels leaving valve i.
func (n *Network) Degree(i int) int { return len(n.adj[i]) }

// HasTunnel reports whether a tunnel joins the two named valves.
func (n *Network) HasTunnel(a, b string) bool {
	i, ok := n.index[a]
	if !ok {
		return false
	}
	j, ok := n.index[b]
	if !ok {
		return false
	}
	_, found := slices.BinarySearch(n.adj[i], j)

	return found
}

// Tunnels lists every tunnel once per direction, ordered by source then target index.
func (n *Network) Tunnels() []Tunnel {
	var out []Tunnel
	for i, row := range n.adj {
		for _, j := range row {
			out = append(out, Tunnel{From: n.valves[i].Name, To: n.valves[j].Name})
		}
	}

	return out
}

// Active returns the indices of valves with a positive flow rate, ascending.
func (n *Network) Active() []int {
	out := make([]int, 0, len(n.valves))
	for i, v := range n.valves {
		if v.FlowRate > 0 {
			out = append(out, i)
		}
	}

	return out
}

// TotalFlow returns the sum of all flow rates.
func (n *Network) TotalFlow() int {
	total := 0
	for _, v := range n.valves {
		total += v.FlowRate
	}

	return total
}

// Connected reports whether every valve is reachable from valve 0.
// An empty network is considered connected.
//
// Complexity: O(V + E).
func (n *Network) Connected() bool {
	if len(n.valves) == 0 {
		return true
	}
	seen := make([]bool, len(n.valves))
	queue := make([]int, 0, len(n.valves))
	queue = append(queue, 0)
	seen[0] = true
	reached := 1
	for head := 0; head < len(queue); head++ {
		for _, j := range n.adj[queue[head]] {
			if seen[j] {
				continue
			}
			seen[j] = true
			reached++
			queue = append(queue, j)
		}
	}

	return reached == len(n.valves)
}
