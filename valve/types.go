package valve

import "errors"

// Sentinel errors for network construction and lookup.
var (
	// ErrEmptyName indicates a record without a valve name.
	ErrEmptyName = errors.New("valve: name is empty")

	// ErrNegativeFlow indicates a record with a flow rate below zero.
	ErrNegativeFlow = errors.New("valve: negative flow rate")

	// ErrDuplicateValve indicates that a valve name appears more than once.
	ErrDuplicateValve = errors.New("valve: duplicate valve")

	// ErrValveNotFound indicates a reference to a valve that does not exist.
	ErrValveNotFound = errors.New("valve: valve not found")

	// ErrLoopNotAllowed indicates a tunnel from a valve back to itself.
	ErrLoopNotAllowed = errors.New("valve: self tunnel not allowed")

	// ErrDisconnected indicates that some valve cannot be reached from the first one.
	ErrDisconnected = errors.New("valve: network is disconnected")
)

// Valve is a node of the network.
type Valve struct {
	// Name uniquely identifies the valve.
	Name string

	// FlowRate is the pressure released per remaining tick once opened.
	FlowRate int
}

// Record is the parser-facing description of one valve and its tunnels.
type Record struct {
	Name     string
	FlowRate int
	Tunnels  []string
}

// Tunnel is one direction of a tunnel between two valves.
type Tunnel struct {
	From string
	To   string
}

// Option configures Build.
type Option func(*buildOptions)

type buildOptions struct {
	checkConnected bool
}

// WithConnectivityCheck makes Build reject networks where some valve
// cannot be reached from the first record.
func WithConnectivityCheck() Option {
	return func(o *buildOptions) { o.checkConnected = true }
}

// Network is an immutable valve graph indexed by record order.
type Network struct {
	valves []Valve
	index  map[string]int
	adj    [][]int // adj[i] = sorted, unique neighbor indices of valve i
}
