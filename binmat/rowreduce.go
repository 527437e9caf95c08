// SPDX-License-Identifier: MIT
// Package binmat: row-echelon reduction over GF(2).

package binmat

// FullWidth selects reduction over every column of the input matrix.
// Pass it as maxCols to ReduceRowEchelon when no column limit applies.
const FullWidth = -1

// ReduceRowEchelon puts a binary matrix into reduced row-echelon form
// modulo 2, restricted to the first maxCols columns, and reports the
// number of pivots found.
//
// Implementation:
//   - Stage 1: validate m and the column limit; clone m into R.
//   - Stage 2: for each target column j in 0..maxCols-1, find the first
//     row at or below the current pivot row p with a 1 in column j; if
//     none, skip the column. Otherwise swap that row into position p,
//     then XOR row p into every other row holding a 1 in column j
//     (mod-2 normalization is a no-op: the pivot is already 1).
//     Increment p; stop early once p reaches the row count.
//
// Behavior highlights:
//   - Pivot tie-break is "lowest row index at or below p" — deterministic.
//   - Rows at index p and beyond are the remainder used by nullspace
//     extraction; columns ≥ maxCols are carried along but never drive
//     pivoting.
//   - Reduction is idempotent: reducing a reduced matrix changes nothing.
//
// Inputs:
//   - m: matrix to reduce (never mutated; a fresh copy is returned).
//   - maxCols: column limit in 0..m.Cols(), or FullWidth for every column.
//
// Returns:
//   - *Dense: the reduced matrix (same shape as m).
//   - int: the pivot count p.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrOutOfRange (maxCols > m.Cols()).
//
// Complexity:
//   - Time O(maxCols·r·c), Space O(r·c) for the copy.
//
// AI-Hints:
//   - Over GF(2) elimination is pure XOR; there is no scaling step and no
//     numerical tolerance to tune.
//   - The pivot count doubles as the matrix rank restricted to the first
//     maxCols columns.
func ReduceRowEchelon(m *Dense, maxCols int) (*Dense, int, error) {
	// Validate input non-nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, 0, matErrorf(opReduce, err)
	}
	// Resolve and validate the column limit.
	if maxCols == FullWidth {
		maxCols = m.c
	}
	if maxCols < 0 || maxCols > m.c {
		return nil, 0, matErrorf(opReduce, ErrOutOfRange)
	}

	// Work on a fresh copy; the input stays untouched.
	R := m.Clone()

	var (
		p       int // current pivot row
		i, j, k int // loop iterators
		pivot   int // row index holding the pivot for column j, -1 if none
	)
	for j = 0; j < maxCols; j++ {
		// Look for a pivot in column j at or below row p (lowest index wins).
		pivot = -1
		for i = p; i < R.r; i++ {
			if R.data[i*R.c+j] == 1 {
				pivot = i
				break
			}
		}
		if pivot == -1 {
			continue // no pivot in this column
		}

		// Interchange rows p and pivot (full-width swap).
		if pivot != p {
			swapRows(R, p, pivot)
		}

		// Eliminate column j from every other row holding a 1 there.
		// XOR is addition and subtraction mod 2 at once.
		for i = 0; i < R.r; i++ {
			if i == p || R.data[i*R.c+j] == 0 {
				continue
			}
			for k = 0; k < R.c; k++ {
				R.data[i*R.c+k] ^= R.data[p*R.c+k]
			}
		}

		// Advance the pivot row; stop once every row is consumed.
		p++
		if p == R.r {
			break
		}
	}

	return R, p, nil
}

// swapRows exchanges rows a and b of m in place. Internal helper; callers
// guarantee valid indices.
func swapRows(m *Dense, a, b int) {
	rowA := m.data[a*m.c : (a+1)*m.c]
	rowB := m.data[b*m.c : (b+1)*m.c]
	for k := range rowA {
		rowA[k], rowB[k] = rowB[k], rowA[k]
	}
}
