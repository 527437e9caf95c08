// Package graphstate_test contains unit tests for the State container:
// node/edge mutation, stable indexing, adjacency extraction and slicing.
package graphstate_test

import (
	"testing"

	"github.com/katalvlaran/lcgraph/graphstate"
	"github.com/stretchr/testify/require"
)

// TestAddEdgeRejectsSelfLoop ensures self-loops are refused: graph-state
// adjacency matrices carry a zero diagonal by construction.
func TestAddEdgeRejectsSelfLoop(t *testing.T) {
	s := graphstate.NewState()
	c := graphstate.Coord{1, 2, 3}

	err := s.AddEdge(c, c)                          // loop on a single coordinate
	require.ErrorIs(t, err, graphstate.ErrSelfLoop) // expect ErrSelfLoop
	require.Equal(t, 0, s.Order())                  // nothing was inserted
}

// TestAddEdgeInsertsEndpoints verifies endpoints appear on the fly and the
// edge is undirected.
func TestAddEdgeInsertsEndpoints(t *testing.T) {
	s := graphstate.NewState()
	u := graphstate.Coord{0, 0, 0}
	v := graphstate.Coord{1, 0, 0}

	require.NoError(t, s.AddEdge(u, v)) // edge inserts cleanly
	require.Equal(t, 2, s.Order())      // both endpoints exist
	require.True(t, s.HasEdge(u, v))    // forward direction
	require.True(t, s.HasEdge(v, u))    // reverse direction
}

// TestNodesSortedAndIndexStable checks the lexicographic node order and
// that Index agrees with Nodes across calls.
func TestNodesSortedAndIndexStable(t *testing.T) {
	s := graphstate.NewState()
	// Insert deliberately out of order.
	s.AddNode(graphstate.Coord{2, 0, 0})
	s.AddNode(graphstate.Coord{0, 1, 0})
	s.AddNode(graphstate.Coord{0, 0, 5})
	s.AddNode(graphstate.Coord{0, 0, 1})

	want := []graphstate.Coord{
		{0, 0, 1},
		{0, 0, 5},
		{0, 1, 0},
		{2, 0, 0},
	}
	require.Equal(t, want, s.Nodes()) // lexicographic (x, y, z) order

	idx := s.Index()
	for i, c := range want {
		require.Equal(t, i, idx[c]) // index agrees with node order
	}

	// A second query without mutation returns the same ordering.
	require.Equal(t, want, s.Nodes())
	require.Equal(t, idx, s.Index())
}

// TestNeighborsAndUnknownNode covers the sorted neighbor query and its
// unknown-coordinate failure mode.
func TestNeighborsAndUnknownNode(t *testing.T) {
	s := graphstate.NewState()
	center := graphstate.Coord{1, 0, 0}
	require.NoError(t, s.AddEdge(center, graphstate.Coord{2, 0, 0}))
	require.NoError(t, s.AddEdge(center, graphstate.Coord{0, 0, 0}))

	nbrs, err := s.Neighbors(center)
	require.NoError(t, err) // known coordinate
	require.Equal(t, []graphstate.Coord{{0, 0, 0}, {2, 0, 0}}, nbrs) // sorted

	_, err = s.Neighbors(graphstate.Coord{9, 9, 9})    // never inserted
	require.ErrorIs(t, err, graphstate.ErrUnknownNode) // expect ErrUnknownNode
}

// TestAdjacencyMatrixMatchesIndex verifies the dense extraction: entries
// follow the stable index order, the matrix is symmetric with a zero
// diagonal, and an empty state yields a legal 0×0 matrix.
func TestAdjacencyMatrixMatchesIndex(t *testing.T) {
	s := graphstate.NewState()
	a := graphstate.Coord{0, 0, 0}
	b := graphstate.Coord{1, 0, 0}
	c := graphstate.Coord{2, 0, 0}
	require.NoError(t, s.AddEdge(a, b)) // path a—b—c
	require.NoError(t, s.AddEdge(b, c))

	m, err := s.AdjacencyMatrix()
	require.NoError(t, err)        // extraction succeeded
	require.Equal(t, 3, m.Rows())  // one row per node
	require.Equal(t, 3, m.Cols())  // square

	idx := s.Index()
	for _, pair := range [][2]graphstate.Coord{{a, b}, {b, c}} {
		v, atErr := m.At(idx[pair[0]], idx[pair[1]])
		require.NoError(t, atErr)
		require.Equal(t, byte(1), v) // edge entries set
		v, atErr = m.At(idx[pair[1]], idx[pair[0]])
		require.NoError(t, atErr)
		require.Equal(t, byte(1), v) // symmetric counterpart
	}
	for i := 0; i < 3; i++ {
		v, atErr := m.At(i, i)
		require.NoError(t, atErr)
		require.Equal(t, byte(0), v) // zero diagonal
	}
	v, err := m.At(idx[a], idx[c]) // non-adjacent pair
	require.NoError(t, err)
	require.Equal(t, byte(0), v)

	empty, err := graphstate.NewState().AdjacencyMatrix()
	require.NoError(t, err)           // empty extraction is legal
	require.Equal(t, 0, empty.Rows()) // 0×0 matrix
}

// TestSliceCoords extracts an axis-aligned plane of coordinates.
func TestSliceCoords(t *testing.T) {
	s := graphstate.NewState()
	s.AddNode(graphstate.Coord{0, 0, 0})
	s.AddNode(graphstate.Coord{0, 1, 0})
	s.AddNode(graphstate.Coord{1, 0, 0})
	s.AddNode(graphstate.Coord{1, 1, 1})

	slice := s.SliceCoords(0, 0) // plane x == 0
	require.Equal(t, []graphstate.Coord{{0, 0, 0}, {0, 1, 0}}, slice)

	slice = s.SliceCoords(2, 1) // plane z == 1
	require.Equal(t, []graphstate.Coord{{1, 1, 1}}, slice)

	require.Nil(t, s.SliceCoords(3, 0)) // invalid axis yields nil
}

// TestPerfectPointsCopied ensures the perfect-qubit list is stored and
// returned by value, never aliased.
func TestPerfectPointsCopied(t *testing.T) {
	s := graphstate.NewState()
	points := []graphstate.Coord{{0, 0, 0}}
	s.SetPerfectPoints(points)

	points[0] = graphstate.Coord{9, 9, 9}  // mutate the caller's slice
	got := s.PerfectPoints()               // stored copy is unaffected
	require.Equal(t, []graphstate.Coord{{0, 0, 0}}, got)

	got[0] = graphstate.Coord{5, 5, 5}     // mutate the returned slice
	require.Equal(t, []graphstate.Coord{{0, 0, 0}}, s.PerfectPoints())
}
