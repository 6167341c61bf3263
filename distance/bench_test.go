// SPDX-License-Identifier: MIT

package distance_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/valvenet/distance"
	"github.com/katalvlaran/valvenet/valve/valvetest"
)

// BenchmarkBuild_Puzzle60 measures the relaxation on a puzzle-sized network.
func BenchmarkBuild_Puzzle60(b *testing.B) {
	rng := rand.New(rand.NewSource(16))
	net := valvetest.MustBuild(b, valvetest.Random(rng, 60, 40, 25))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = distance.Build(net)
	}
}
