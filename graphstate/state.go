// SPDX-License-Identifier: MIT
// Package graphstate: the State container and its indexing/extraction
// operations.

package graphstate

import (
	"sort"

	"github.com/katalvlaran/lcgraph/binmat"
)

// State is a simple undirected graph over coordinate-labeled nodes,
// representing a stabilizer graph state. It owns an explicit, stable
// node-to-index mapping used by adjacency extraction; the mapping is
// computed lazily and cached until the next mutation.
type State struct {
	nodes map[Coord]struct{}            // node set
	adj   map[Coord]map[Coord]edgeAttrs // undirected adjacency with attributes

	macronodes   bool              // index by macronode centers when true
	macroToMicro map[Coord][]Coord // macronode center → micronodes, insertion order
	macroCenters []Coord           // centers in first-seen order (sorted on demand)

	perfect []Coord // perfect-qubit coordinates, carried through macronize

	toIndex map[Coord]int // cached coord → row/column index
	toCoord []Coord       // cached index → coord
}

// NewState returns an empty State configured by opts.
func NewState(opts ...StateOption) *State {
	s := &State{
		nodes: make(map[Coord]struct{}),
		adj:   make(map[Coord]map[Coord]edgeAttrs),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.macronodes {
		s.macroToMicro = make(map[Coord][]Coord)
	}

	return s
}

// Order returns the number of nodes. Complexity: O(1).
func (s *State) Order() int { return len(s.nodes) }

// AddNode inserts the coordinate c as a node. Adding an existing node is a
// no-op. Mutation invalidates the cached index. Complexity: O(1).
func (s *State) AddNode(c Coord) {
	if _, ok := s.nodes[c]; ok {
		return
	}
	s.nodes[c] = struct{}{}
	s.invalidate()
}

// AddEdge inserts the undirected edge (u, v), adding missing endpoints on
// the fly. Self-loops are rejected: adjacency matrices of graph states
// carry a zero diagonal by construction.
// Errors: ErrSelfLoop. Complexity: O(1) expected.
func (s *State) AddEdge(u, v Coord, opts ...EdgeOption) error {
	if u == v {
		return ErrSelfLoop
	}
	var attrs edgeAttrs
	for _, opt := range opts {
		opt(&attrs)
	}
	s.AddNode(u)
	s.AddNode(v)
	if s.adj[u] == nil {
		s.adj[u] = make(map[Coord]edgeAttrs)
	}
	if s.adj[v] == nil {
		s.adj[v] = make(map[Coord]edgeAttrs)
	}
	// Store both directions; the graph is undirected.
	s.adj[u][v] = attrs
	s.adj[v][u] = attrs
	s.invalidate()

	return nil
}

// HasEdge reports whether the undirected edge (u, v) exists.
// Complexity: O(1) expected.
func (s *State) HasEdge(u, v Coord) bool {
	_, ok := s.adj[u][v]

	return ok
}

// Neighbors returns the sorted neighbor coordinates of c.
// Errors: ErrUnknownNode. Complexity: O(deg log deg).
func (s *State) Neighbors(c Coord) ([]Coord, error) {
	if _, ok := s.nodes[c]; !ok {
		return nil, ErrUnknownNode
	}
	out := make([]Coord, 0, len(s.adj[c]))
	for n := range s.adj[c] {
		out = append(out, n)
	}
	sortCoords(out)

	return out, nil
}

// Nodes returns all node coordinates in index order (a fresh copy).
// Complexity: O(V log V) on the first call after a mutation, O(V) after.
func (s *State) Nodes() []Coord {
	s.ensureIndex()
	out := make([]Coord, len(s.toCoord))
	copy(out, s.toCoord)

	return out
}

// Index returns a fresh copy of the coordinate-to-index mapping that
// defines adjacency row/column assignment. The mapping is stable across
// calls until the state mutates.
func (s *State) Index() map[Coord]int {
	s.ensureIndex()
	out := make(map[Coord]int, len(s.toIndex))
	for c, i := range s.toIndex {
		out[c] = i
	}

	return out
}

// SetPerfectPoints records the perfect-qubit coordinates carried by the
// state; Macronize remaps them onto the resulting micronodes.
func (s *State) SetPerfectPoints(points []Coord) {
	s.perfect = append([]Coord(nil), points...)
}

// PerfectPoints returns a fresh copy of the recorded perfect-qubit
// coordinates, or nil when none are set.
func (s *State) PerfectPoints() []Coord {
	if s.perfect == nil {
		return nil
	}

	return append([]Coord(nil), s.perfect...)
}

// MacroToMicro returns the macronode-to-micronode map of a macronized
// state (micronodes in insertion order), or nil for plain states.
func (s *State) MacroToMicro() map[Coord][]Coord {
	if s.macroToMicro == nil {
		return nil
	}
	out := make(map[Coord][]Coord, len(s.macroToMicro))
	for center, micros := range s.macroToMicro {
		out[center] = append([]Coord(nil), micros...)
	}

	return out
}

// SliceCoords returns all node coordinates whose component along axis
// (0 = x, 1 = y, 2 = z) equals value, in index order.
// Complexity: O(V).
func (s *State) SliceCoords(axis int, value float64) []Coord {
	if axis < 0 || axis > 2 {
		return nil
	}
	s.ensureIndex()
	var out []Coord
	for _, c := range s.toCoord {
		if c[axis] == value {
			out = append(out, c)
		}
	}

	return out
}

// AdjacencyMatrix materializes the n×n binary adjacency matrix of the
// state in index order. Entry (i, j) is 1 exactly when the coordinates at
// indices i and j share an edge; the diagonal is zero by the self-loop
// ban. An empty state yields a legal 0×0 matrix — the equivalence
// orchestrator maps it to a negative verdict, not an error.
// Complexity: O(V² + E).
func (s *State) AdjacencyMatrix() (*binmat.Dense, error) {
	s.ensureIndex()
	n := len(s.toCoord)
	m, err := binmat.New(n, n)
	if err != nil {
		return nil, err
	}
	for i, u := range s.toCoord {
		for v := range s.adj[u] {
			if setErr := m.Set(i, s.toIndex[v], 1); setErr != nil {
				return nil, setErr
			}
		}
	}

	return m, nil
}

// ensureIndex builds the cached node ordering if a mutation invalidated
// it. Plain states sort coordinates lexicographically; macronized states
// sort macronode centers and lay out their micronodes in insertion order,
// mirroring how the macronization transform assigns qubits.
func (s *State) ensureIndex() {
	if s.toIndex != nil {
		return
	}
	var ordered []Coord
	if s.macronodes && s.macroToMicro != nil {
		centers := append([]Coord(nil), s.macroCenters...)
		sortCoords(centers)
		for _, center := range centers {
			ordered = append(ordered, s.macroToMicro[center]...)
		}
	} else {
		ordered = make([]Coord, 0, len(s.nodes))
		for c := range s.nodes {
			ordered = append(ordered, c)
		}
		sortCoords(ordered)
	}
	s.toCoord = ordered
	s.toIndex = make(map[Coord]int, len(ordered))
	for i, c := range ordered {
		s.toIndex[c] = i
	}
}

// invalidate drops the cached index after a mutation.
func (s *State) invalidate() {
	s.toIndex = nil
	s.toCoord = nil
}

// sortCoords sorts coordinates lexicographically in place.
func sortCoords(cs []Coord) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].Less(cs[j]) })
}

// sortedEdges returns every undirected edge exactly once as ordered pairs
// (u ≤ v), sorted by (u, v). Deterministic edge order keeps macronization
// and its micronode indexing reproducible.
func (s *State) sortedEdges() [][2]Coord {
	var edges [][2]Coord
	for u, nbrs := range s.adj {
		for v := range nbrs {
			if u.Less(v) {
				edges = append(edges, [2]Coord{u, v})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0].Less(edges[j][0])
		}

		return edges[i][1].Less(edges[j][1])
	})

	return edges
}
