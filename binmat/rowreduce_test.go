// Package binmat_test contains unit tests for row-echelon reduction and
// nullspace extraction over GF(2).
package binmat_test

import (
	"testing"

	"github.com/katalvlaran/lcgraph/binmat"
	"github.com/stretchr/testify/require"
)

// rows materializes a matrix as [][]byte for structural comparisons.
func rows(t *testing.T, m *binmat.Dense) [][]byte {
	t.Helper()
	out := make([][]byte, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		row, err := m.Row(i)
		require.NoError(t, err) // Row must succeed for valid indices
		out[i] = row
	}
	return out
}

// TestReduceRowEchelonKnownForm reduces a small matrix and checks the exact
// reduced form and pivot count.
func TestReduceRowEchelonKnownForm(t *testing.T) {
	m, err := binmat.FromRows([][]byte{
		{1, 1, 0},
		{1, 0, 1},
		{0, 1, 1},
	})
	require.NoError(t, err) // assert creation succeeded

	red, p, err := binmat.ReduceRowEchelon(m, binmat.FullWidth)
	require.NoError(t, err) // reduction never fails on valid input
	require.Equal(t, 2, p)  // row 3 is the XOR of rows 1 and 2 → rank 2

	// Reduced form: pivots in columns 0 and 1, dependent row zeroed.
	require.Equal(t, [][]byte{
		{1, 0, 1},
		{0, 1, 1},
		{0, 0, 0},
	}, rows(t, red))
}

// TestReduceRowEchelonIdempotent verifies that reducing a reduced matrix is
// a fixed point: no further swaps or eliminations occur.
func TestReduceRowEchelonIdempotent(t *testing.T) {
	m, err := binmat.FromRows([][]byte{
		{0, 1, 1, 0},
		{1, 1, 0, 1},
		{1, 0, 1, 1},
		{0, 0, 1, 1},
	})
	require.NoError(t, err) // assert creation succeeded

	once, p1, err := binmat.ReduceRowEchelon(m, binmat.FullWidth)
	require.NoError(t, err) // first reduction
	twice, p2, err := binmat.ReduceRowEchelon(once, binmat.FullWidth)
	require.NoError(t, err) // second reduction

	require.Equal(t, p1, p2)                        // pivot count unchanged
	require.Equal(t, rows(t, once), rows(t, twice)) // reduced form is a fixed point
}

// TestReduceRowEchelonMaxCols ensures columns at or beyond the limit never
// drive pivoting and the original matrix is not mutated.
func TestReduceRowEchelonMaxCols(t *testing.T) {
	m, err := binmat.FromRows([][]byte{
		{0, 0, 1},
		{0, 0, 1},
	})
	require.NoError(t, err) // assert creation succeeded

	red, p, err := binmat.ReduceRowEchelon(m, 2) // only columns 0..1 may pivot
	require.NoError(t, err)
	require.Equal(t, 0, p) // no pivots in the first two columns

	// Column 2 is carried along untouched because no elimination fired.
	require.Equal(t, rows(t, m), rows(t, red))

	_, _, err = binmat.ReduceRowEchelon(m, 4)     // limit beyond the width
	require.ErrorIs(t, err, binmat.ErrOutOfRange) // expect ErrOutOfRange

	_, _, err = binmat.ReduceRowEchelon(nil, binmat.FullWidth) // nil input
	require.ErrorIs(t, err, binmat.ErrNilMatrix)               // expect ErrNilMatrix
}

// TestReduceRowEchelonEntriesStayBinary checks the strict binary invariant
// after elimination on a dense random-ish pattern.
func TestReduceRowEchelonEntriesStayBinary(t *testing.T) {
	m, err := binmat.FromRows([][]byte{
		{1, 1, 1, 0, 1},
		{0, 1, 1, 1, 0},
		{1, 0, 1, 1, 1},
		{1, 1, 0, 0, 1},
	})
	require.NoError(t, err) // assert creation succeeded

	red, _, err := binmat.ReduceRowEchelon(m, binmat.FullWidth)
	require.NoError(t, err) // reduction succeeded

	for i := 0; i < red.Rows(); i++ {
		for j := 0; j < red.Cols(); j++ {
			v, atErr := red.At(i, j)
			require.NoError(t, atErr)          // read back every entry
			require.LessOrEqual(t, v, byte(1)) // entries stay in {0,1}
		}
	}
}

// TestNullspaceBasisKnownKernel extracts the nullspace of a rank-deficient
// matrix and verifies every basis row is annihilated by it.
func TestNullspaceBasisKnownKernel(t *testing.T) {
	// Rows are identical → rank 1, nullspace dimension 2 (for 3 columns).
	m, err := binmat.FromRows([][]byte{
		{1, 1, 0},
		{1, 1, 0},
	})
	require.NoError(t, err) // assert creation succeeded

	basis, err := binmat.NullspaceBasis(m)
	require.NoError(t, err)           // extraction succeeded
	require.Equal(t, 2, basis.Rows()) // d = 3 - rank(1) = 2
	require.Equal(t, 3, basis.Cols()) // vectors live in the column space

	// Every basis row v must satisfy m·vᵀ = 0 (mod 2).
	for i := 0; i < basis.Rows(); i++ {
		v, rowErr := basis.Row(i)
		require.NoError(t, rowErr)
		for r := 0; r < m.Rows(); r++ {
			var acc byte
			for c := 0; c < m.Cols(); c++ {
				e, atErr := m.At(r, c)
				require.NoError(t, atErr)
				acc ^= e & v[c] // accumulate the mod-2 dot product
			}
			require.Equal(t, byte(0), acc) // annihilated by every row of m
		}
	}
}

// TestNullspaceBasisTrivial ensures a full-column-rank matrix yields a
// zero-row basis, the "no solution possible" signal for downstream search.
func TestNullspaceBasisTrivial(t *testing.T) {
	eye, err := binmat.Identity(3) // identity has a trivial right nullspace
	require.NoError(t, err)        // assert creation succeeded

	basis, err := binmat.NullspaceBasis(eye)
	require.NoError(t, err)           // extraction succeeded
	require.Equal(t, 0, basis.Rows()) // empty basis
	require.Equal(t, 3, basis.Cols()) // width preserved for shape sanity
}
