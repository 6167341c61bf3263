// SPDX-License-Identifier: MIT

package distance

import (
	"errors"
	"math"

	"github.com/katalvlaran/valvenet/valve"
)

// Unreachable is the distance sentinel for "no path".
const Unreachable = math.MaxInt

var (
	// ErrNilNetwork is returned when Build receives a nil network.
	ErrNilNetwork = errors.New("distance: network is nil")

	// ErrUnreachable indicates that some pair of valves has no connecting path.
	ErrUnreachable = errors.New("distance: valve unreachable")
)

// Table is an immutable all-pairs distance table.
//
// dist and next are flat row-major buffers: entry (i, j) lives at i*n+j.
// next[i*n+j] is the first valve on a shortest path from i toward j
// (next[i*n+i] == i).
type Table struct {
	n    int
	net  *valve.Network
	dist []int
	next []int
}
