// SPDX-License-Identifier: MIT

package distance

import "github.com/katalvlaran/valvenet/valve"

// Len returns the number of valves covered by the table.
func (t *Table) Len() int { return t.n }

// Network returns the network the table was built from.
func (t *Table) Network() *valve.Network { return t.net }

// Dist returns the hop count from valve i to valve j.
func (t *Table) Dist(i, j int) int { return t.dist[i*t.n+j] }

// NextHop returns the first valve to step to when travelling from i to j.
// NextHop(i, i) == i.
func (t *Table) NextHop(i, j int) int { return t.next[i*t.n+j] }

// DistByName resolves both names and returns their hop count.
func (t *Table) DistByName(from, to string) (int, error) {
	i, j, err := t.resolve(from, to)
	if err != nil {
		return 0, err
	}

	return t.Dist(i, j), nil
}

// NextHopByName returns the name of the first valve on a shortest path.
func (t *Table) NextHopByName(from, to string) (string, error) {
	i, j, err := t.resolve(from, to)
	if err != nil {
		return "", err
	}

	return t.net.Name(t.NextHop(i, j)), nil
}

// Path returns the valves visited from 'from' to 'to', both ends included,
// by following first hops. Path(x, x) is []string{x}.
func (t *Table) Path(from, to string) ([]string, error) {
	i, j, err := t.resolve(from, to)
	if err != nil {
		return nil, err
	}
	path := make([]string, 0, t.Dist(i, j)+1)
	path = append(path, t.net.Name(i))
	for cur := i; cur != j; {
		cur = t.NextHop(cur, j)
		path = append(path, t.net.Name(cur))
	}

	return path, nil
}

// Sub returns the dense distance matrix restricted to the given valve
// indices: out[a][b] == Dist(indices[a], indices[b]).
func (t *Table) Sub(indices []int) [][]int {
	out := make([][]int, len(indices))
	for a, i := range indices {
		out[a] = make([]int, len(indices))
		for b, j := range indices {
			out[a][b] = t.Dist(i, j)
		}
	}

	return out
}

func (t *Table) resolve(from, to string) (int, int, error) {
	i, err := t.net.Lookup(from)
	if err != nil {
		return 0, 0, err
	}
	j, err := t.net.Lookup(to)
	if err != nil {
		return 0, 0, err
	}

	return i, j, nil
}
