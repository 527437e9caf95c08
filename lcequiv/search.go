// SPDX-License-Identifier: MIT
// Package lcequiv: pairwise nullspace search against the determinant
// constraint.

package lcequiv

import "github.com/katalvlaran/lcgraph/binmat"

// searchNullspace scans mod-2 sums of distinct nullspace basis vector
// pairs for one satisfying the per-qubit determinant constraint, and
// returns the first hit or nil when the search is exhausted.
//
// A single nullspace vector need not satisfy the nonlinear determinant
// condition, but any GF(2) linear combination of nullspace vectors still
// solves the linear part, so pairwise sums are legitimate candidates.
// Scan order is the documented contract: outer index i ascending, inner
// index j < i ascending, first full match wins. Single vectors alone and
// combinations of three or more are not searched.
//
// A basis with fewer than two rows yields nil immediately — no pairs
// exist to try.
//
// Complexity: O(d²·n) worst case over d basis rows of width 4n.
func searchNullspace(basis *binmat.Dense) []byte {
	d := basis.Rows()     // number of basis vectors
	n := basis.Cols() / 4 // number of qubits

	var (
		i, j, k   int    // pair indices and qubit index
		rowI      []byte // cached outer row
		sol       []byte // candidate solution: rowI XOR rowJ
		det       byte   // per-qubit determinant mod 2
		satisfied bool   // candidate passed every qubit
	)
	for i = 0; i < d; i++ {
		rowI, _ = basis.Row(i) // valid index by construction
		for j = 0; j < i; j++ {
			rowJ, _ := basis.Row(j)

			// Candidate = mod-2 sum of the pair.
			sol = make([]byte, len(rowI))
			for k = range sol {
				sol[k] = rowI[k] ^ rowJ[k]
			}

			// Check the determinant (a_k·d_k + b_k·c_k ≡ 1 mod 2) for
			// every qubit; reject at the first failing index.
			satisfied = true
			for k = 0; k < n; k++ {
				det = (sol[k] & sol[k+3*n]) ^ (sol[k+n] & sol[k+2*n])
				if det != 1 {
					satisfied = false
					break
				}
			}
			if satisfied {
				return sol // first match in scan order wins
			}
		}
	}

	// Exhausted every pair without a hit.
	return nil
}
