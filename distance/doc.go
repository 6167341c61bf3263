// SPDX-License-Identifier: MIT
// Package distance builds the all-pairs hop-count table of a valve network.
//
// What:
//   - Build runs a Floyd–Warshall relaxation over every valve pair and
//     records, next to each shortest distance, the first valve to step to.
//   - Table answers Dist/NextHop by index (hot path) or by name (API edge),
//     reconstructs full paths, and extracts compressed sub-matrices for the
//     release search.
//
// Contract:
//   - Every tunnel costs exactly one tick; self distance is 0.
//   - The network is expected to be connected. A pair left unreachable
//     after relaxation is reported as ErrUnreachable instead of leaking an
//     "infinite" distance into callers.
//
// Determinism:
//   - Loop order is fixed (k → i → j) and only strict improvements relax,
//     so among equal-length alternatives the lowest relaxation index wins.
//
// Complexity: O(V³) time, O(V²) memory. Puzzle networks stay under ~60 valves.
package distance
