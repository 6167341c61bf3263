// SPDX-License-Identifier: MIT

package distance_test

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/valvenet/distance"
	"github.com/katalvlaran/valvenet/valve"
	"github.com/katalvlaran/valvenet/valve/valvetest"
)

// randomTable builds the table of a random connected network.
func randomTable(seed int64, n, extra int) (*distance.Table, error) {
	rng := rand.New(rand.NewSource(seed))
	net, err := valve.Build(valvetest.Random(rng, n, extra, 10))
	if err != nil {
		return nil, err
	}

	return distance.Build(net)
}

// TestTableInvariants checks the metric properties every table must satisfy.
func TestTableInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("self distance is zero and pairs are symmetric", prop.ForAll(
		func(seed int64, n, extra int) bool {
			tbl, err := randomTable(seed, n, extra)
			if err != nil {
				return false
			}
			for i := 0; i < tbl.Len(); i++ {
				if tbl.Dist(i, i) != 0 || tbl.NextHop(i, i) != i {
					return false
				}
				for j := 0; j < tbl.Len(); j++ {
					if tbl.Dist(i, j) != tbl.Dist(j, i) {
						return false
					}
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(1, 20),
		gen.IntRange(0, 30),
	))

	properties.Property("triangle inequality holds", prop.ForAll(
		func(seed int64, n, extra int) bool {
			tbl, err := randomTable(seed, n, extra)
			if err != nil {
				return false
			}
			for a := 0; a < tbl.Len(); a++ {
				for b := 0; b < tbl.Len(); b++ {
					for c := 0; c < tbl.Len(); c++ {
						if tbl.Dist(a, c) > tbl.Dist(a, b)+tbl.Dist(b, c) {
							return false
						}
					}
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(1, 15),
		gen.IntRange(0, 20),
	))

	properties.Property("first hop is a neighbor one step closer", prop.ForAll(
		func(seed int64, n, extra int) bool {
			tbl, err := randomTable(seed, n, extra)
			if err != nil {
				return false
			}
			net := tbl.Network()
			for i := 0; i < tbl.Len(); i++ {
				for j := 0; j < tbl.Len(); j++ {
					if i == j {
						continue
					}
					h := tbl.NextHop(i, j)
					if !net.HasTunnel(net.Name(i), net.Name(h)) {
						return false
					}
					if tbl.Dist(h, j) != tbl.Dist(i, j)-1 {
						return false
					}
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(2, 20),
		gen.IntRange(0, 30),
	))

	properties.TestingRun(t)
}
