// Package valve defines the immutable valve network consumed by the
// distance and release packages.
//
// A Network is a small labelled graph: every Valve has a unique Name and a
// non-negative FlowRate, and Tunnels join valves in both directions. Many
// valves have a zero flow rate and act purely as waypoints.
//
// Networks are assembled once from parser-style records:
//
//	net, err := valve.Build([]valve.Record{
//		{Name: "AA", FlowRate: 0, Tunnels: []string{"BB"}},
//		{Name: "BB", FlowRate: 13, Tunnels: []string{"AA"}},
//	})
//
// Build mirrors every tunnel, so a record only has to list one direction.
// Valve indices follow record order and stay stable for the lifetime of
// the Network; downstream packages address valves by index in hot loops
// and by name at the API boundary.
//
// A built Network is never mutated, so it is safe for concurrent readers.
//
// Errors:
//
//	ErrEmptyName       - a record has an empty Name.
//	ErrNegativeFlow    - a record has a negative FlowRate.
//	ErrDuplicateValve  - two records share a Name.
//	ErrValveNotFound   - a tunnel or lookup names an unknown valve.
//	ErrLoopNotAllowed  - a tunnel leads from a valve to itself.
//	ErrDisconnected    - connectivity check enabled and the network is split.
package valve
