// Package lcequiv_test contains unit tests for the LC-equivalence
// constraint system builder.
package lcequiv_test

import (
	"testing"

	"github.com/katalvlaran/lcgraph/binmat"
	"github.com/katalvlaran/lcgraph/lcequiv"
	"github.com/stretchr/testify/require"
)

// matRows materializes a matrix as [][]byte for structural comparisons.
func matRows(t *testing.T, m *binmat.Dense) [][]byte {
	t.Helper()
	out := make([][]byte, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		row, err := m.Row(i)
		require.NoError(t, err) // Row must succeed for valid indices
		out[i] = row
	}
	return out
}

// TestConstraintSystemSingleEdge checks the exact 4×8 system produced for
// the single-edge two-node state compared against itself. Unknown order is
// (a1, a2, b1, b2, c1, c2, d1, d2).
func TestConstraintSystemSingleEdge(t *testing.T) {
	G, err := binmat.FromRows([][]byte{{0, 1}, {1, 0}}) // K2 adjacency
	require.NoError(t, err)                             // assert creation succeeded

	system, err := lcequiv.ConstraintSystem(G, G)
	require.NoError(t, err)            // construction succeeded
	require.Equal(t, 4, system.Rows()) // n² rows
	require.Equal(t, 8, system.Cols()) // 4n columns

	// Row blocks encode: b1+c2 = 0, a2+d1 = 0, a1+d2 = 0, b2+c1 = 0.
	require.Equal(t, [][]byte{
		{0, 0, 1, 0, 0, 1, 0, 0},
		{0, 1, 0, 0, 0, 0, 1, 0},
		{1, 0, 0, 0, 0, 0, 0, 1},
		{0, 0, 0, 1, 1, 0, 0, 0},
	}, matRows(t, system))
}

// TestConstraintSystemShapeAndValidation covers the defensive shape checks
// and the n²×4n output contract for a larger state.
func TestConstraintSystemShapeAndValidation(t *testing.T) {
	G, err := binmat.FromRows([][]byte{
		{0, 1, 1},
		{1, 0, 0},
		{1, 0, 0},
	})
	require.NoError(t, err) // assert creation succeeded

	system, err := lcequiv.ConstraintSystem(G, G)
	require.NoError(t, err)             // construction succeeded
	require.Equal(t, 9, system.Rows())  // n² = 9 rows
	require.Equal(t, 12, system.Cols()) // 4n = 12 columns

	// Every produced entry stays strictly binary.
	for _, row := range matRows(t, system) {
		for _, v := range row {
			require.LessOrEqual(t, v, byte(1)) // entries in {0,1}
		}
	}

	rect, err := binmat.New(2, 3) // non-square input
	require.NoError(t, err)
	_, err = lcequiv.ConstraintSystem(rect, rect)
	require.ErrorIs(t, err, binmat.ErrNonSquare) // expect wrapped ErrNonSquare

	small, err := binmat.New(2, 2) // square but mismatched with G
	require.NoError(t, err)
	_, err = lcequiv.ConstraintSystem(G, small)
	require.ErrorIs(t, err, binmat.ErrDimensionMismatch) // expect wrapped mismatch

	_, err = lcequiv.ConstraintSystem(nil, G)
	require.ErrorIs(t, err, binmat.ErrNilMatrix) // expect wrapped ErrNilMatrix
}
