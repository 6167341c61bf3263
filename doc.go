// Package valvenet finds the most pressure a small team of agents can
// release from a network of valves joined by tunnels, within a time budget.
//
// What is in the box?
//
//	valve/     — the network model: valves, flow rates, symmetric tunnels
//	distance/  — all-pairs hop counts and first hops (Floyd–Warshall)
//	release/   — the branch-and-bound optimizer, its options and results
//	parse/     — reader for the "Valve AA has flow rate=0; ..." text form
//	config/    — TOML/YAML run configuration with validation
//	metrics/   — Prometheus collectors for search statistics
//	cmd/valves — command-line front end
//
// Model in one paragraph: every tick an agent either moves through one
// tunnel or opens the valve it stands on. An opened valve releases its flow
// rate on every remaining tick. Agents only ever travel along shortest
// paths between valves they will open, so the search works on the
// compressed graph of flowing valves and decides "which valve next" per
// agent, pruning with an optimistic upper bound.
//
// Quick ASCII example:
//
//	BB(10)───AA───CC(7)
//
// With a budget of 5 ticks one agent can only open BB in time (10×3 = 30);
// two agents starting at AA split up and release 10×3 + 7×3 = 51.
//
//	go run ./cmd/valves -agents 2 -budget 26 -plan < input.txt
package valvenet
