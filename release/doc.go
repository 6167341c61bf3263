// Package release maximises the pressure released by agents opening valves
// within a fixed time budget.
//
// Model:
//   - Every agent starts at the same valve with the whole budget T.
//   - Moving through a tunnel costs one tick, opening a valve costs one tick.
//   - A valve opened with r ticks remaining releases FlowRate × r in total.
//   - A valve can be opened once; agents never share a valve.
//
// Maximize runs an exact depth-first branch-and-bound search:
//
//  1. Distances: all-pairs hop counts from package distance, compressed to
//     the start valve plus every valve with positive flow.
//  2. Actions: at each decision an agent may travel to any closed valve it
//     can still open with at least one tick to spare, or idle for the rest
//     of the budget. Candidates are ranked by FlowRate × remaining-after-open
//     so strong incumbents appear early.
//  3. Joint moves: agents share one virtual clock. Whenever several agents
//     become free on the same tick, the engine enumerates the cartesian
//     product of their actions, skipping combinations where two agents aim
//     at the same valve, and visiting interchangeable agents' choices only
//     once.
//  4. Bound: a branch is dropped when an optimistic estimate of its best
//     completion cannot beat the incumbent. FlowBound (default) assumes every
//     closed valve opens on the next tick; ReachBound uses each valve's best
//     reachable opening time; NoBound disables pruning.
//
// The opened-valve record is shared across the recursion and restored
// exactly when a branch unwinds, so a finished search leaves it empty.
//
// Complexity: exponential in the number of flowing valves in the worst case;
// pruning keeps puzzle-sized inputs (≈15 flowing valves, 2 agents) tractable.
//
// Supported agent counts are 1 and 2 (MaxAgents); the combinator itself is
// written for N agents but larger counts are rejected up front.
package release
