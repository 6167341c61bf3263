// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"

	"github.com/katalvlaran/valvenet/valve"
)

// Build computes the all-pairs hop-count table of net.
//
// Stages:
//  1. Seed: self pairs at 0, direct tunnels at 1 (first hop = target),
//     everything else Unreachable.
//  2. Relax: for every intermediate k, source i, target j, replace d[i,j]
//     when d[i,k] + d[k,j] is strictly shorter and inherit the first hop
//     of i→k.
//  3. Verify: any pair still Unreachable fails with ErrUnreachable.
//
// Complexity: O(V³) time, O(V²) memory.
func Build(net *valve.Network) (*Table, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	n := net.Len()
	t := &Table{
		n:    n,
		net:  net,
		dist: make([]int, n*n),
		next: make([]int, n*n),
	}
	t.seed()
	t.relax()
	if err := t.verify(); err != nil {
		return nil, err
	}

	return t, nil
}

// seed writes the initial 0 / 1 / Unreachable matrix.
func (t *Table) seed() {
	var i, j, base int
	for i = 0; i < t.n; i++ {
		base = i * t.n
		for j = 0; j < t.n; j++ {
			t.dist[base+j] = Unreachable
			t.next[base+j] = -1
		}
		t.dist[base+i] = 0
		t.next[base+i] = i
		for _, j = range t.net.Neighbors(i) {
			t.dist[base+j] = 1
			t.next[base+j] = j
		}
	}
}

// relax is the triple loop. Unreachable legs are skipped instead of
// added, so the sentinel never overflows.
func (t *Table) relax() {
	var (
		n            = t.n
		dist, next   = t.dist, t.next
		k, i, j      int
		baseK, baseI int
		ik, kj, cand int
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			baseI = i * n
			ik = dist[baseI+k]
			if ik == Unreachable {
				continue
			}
			for j = 0; j < n; j++ {
				kj = dist[baseK+j]
				if kj == Unreachable {
					continue
				}
				cand = ik + kj
				if cand < dist[baseI+j] {
					dist[baseI+j] = cand
					next[baseI+j] = next[baseI+k]
				}
			}
		}
	}
}

// verify reports the first unreachable pair in row-major order.
func (t *Table) verify() error {
	for i := 0; i < t.n; i++ {
		for j := 0; j < t.n; j++ {
			if t.dist[i*t.n+j] == Unreachable {
				return fmt.Errorf("%s→%s: %w", t.net.Name(i), t.net.Name(j), ErrUnreachable)
			}
		}
	}

	return nil
}
