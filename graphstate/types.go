// SPDX-License-Identifier: MIT
// Package graphstate defines core types, options, and sentinel errors
// for the graphstate subpackage of github.com/katalvlaran/lcgraph.

package graphstate

import (
	"errors"
	"fmt"
)

// Sentinel errors for graphstate operations.
var (
	// ErrSelfLoop indicates an edge from a coordinate to itself was requested.
	ErrSelfLoop = errors.New("graphstate: self-loops are not allowed")
	// ErrUnknownNode indicates a queried coordinate is not part of the state.
	ErrUnknownNode = errors.New("graphstate: unknown node coordinate")
	// ErrBadDisplacement indicates a macronize displacement outside (0, 0.5).
	ErrBadDisplacement = errors.New("graphstate: displacement must be positive and strictly less than 0.5")
)

// Coord labels a node with a point in 3-D space. Coordinates are compared
// lexicographically (x, then y, then z) to define the stable node order.
type Coord [3]float64

// Less reports whether c precedes d in lexicographic coordinate order.
func (c Coord) Less(d Coord) bool {
	if c[0] != d[0] {
		return c[0] < d[0]
	}
	if c[1] != d[1] {
		return c[1] < d[1]
	}

	return c[2] < d[2]
}

// String renders the coordinate as "(x, y, z)" for debugging.
func (c Coord) String() string {
	return fmt.Sprintf("(%g, %g, %g)", c[0], c[1], c[2])
}

// edgeAttrs carries per-edge attributes. Periodic marks edges closing a
// periodic boundary; macronization flips their displacement direction.
type edgeAttrs struct {
	periodic bool
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*edgeAttrs)

// WithPeriodic marks the edge as closing a periodic boundary.
func WithPeriodic() EdgeOption {
	return func(a *edgeAttrs) { a.periodic = true }
}

// StateOption configures behavior of a State before creation.
type StateOption func(*State)

// WithMacronodes marks the state as macronode-structured. Macronized
// states order their index by sorted macronode centers rather than by
// plain lexicographic coordinates.
func WithMacronodes() StateOption {
	return func(s *State) { s.macronodes = true }
}
