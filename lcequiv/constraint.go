// SPDX-License-Identifier: MIT
// Package lcequiv: the LC-equivalence constraint system.

package lcequiv

import (
	"fmt"

	"github.com/katalvlaran/lcgraph/binmat"
)

const opConstraint = "ConstraintSystem"

// ConstraintSystem builds the binary system of equations that two
// adjacency matrices G and H must satisfy for equivalence through local
// Clifford operations.
//
// The result has n² rows and 4n columns. Row-block j (n rows) encodes,
// for qubit j, a necessary linear condition on the 4n unknowns
// (a_1..a_n, b_1..b_n, c_1..c_n, d_1..d_n) as four horizontally
// concatenated n×n blocks [A|B|C|D]:
//
//	A = diag(G row j)
//	B = zero except B[j][j] = 1
//	C[k][i] = G[i][j] · H[i][k]   (product-of-adjacency cross term)
//	D[k][j] = H[j][k]             (all other D columns zero)
//
// Inputs are validated defensively (the orchestrator guarantees matching
// square shapes); fresh storage is allocated and neither input is
// mutated or retained.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNonSquare (wrapped).
// Complexity: Time O(n³), Space O(n³).
func ConstraintSystem(G, H *binmat.Dense) (*binmat.Dense, error) {
	// Defensive validation; plain sentinels come from binmat validators.
	if err := binmat.ValidateSquare(G); err != nil {
		return nil, fmt.Errorf("%s: %w", opConstraint, err)
	}
	if err := binmat.ValidateSameShape(G, H); err != nil {
		return nil, fmt.Errorf("%s: %w", opConstraint, err)
	}

	n := G.Rows()
	system, err := binmat.New(n*n, 4*n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opConstraint, err)
	}

	var (
		j, k, i int  // qubit index, row within block, summation index
		row     int  // absolute row in the stacked system
		gij     byte // G[i][j] cache for the C block inner loop
	)
	for j = 0; j < n; j++ {
		for k = 0; k < n; k++ {
			row = j*n + k

			// A block: diag(G row j) → A[k][k] = G[j][k].
			if v, _ := G.At(j, k); v == 1 {
				if err = system.Set(row, k, 1); err != nil {
					return nil, fmt.Errorf("%s: %w", opConstraint, err)
				}
			}

			// B block: single 1 at (j, j).
			if k == j {
				if err = system.Set(row, n+j, 1); err != nil {
					return nil, fmt.Errorf("%s: %w", opConstraint, err)
				}
			}

			// C block: C[k][i] = G[i][j] · H[i][k].
			for i = 0; i < n; i++ {
				gij, _ = G.At(i, j)
				if gij == 0 {
					continue
				}
				if v, _ := H.At(i, k); v == 1 {
					if err = system.Set(row, 2*n+i, 1); err != nil {
						return nil, fmt.Errorf("%s: %w", opConstraint, err)
					}
				}
			}

			// D block: column j set to H[j][k].
			if v, _ := H.At(j, k); v == 1 {
				if err = system.Set(row, 3*n+j, 1); err != nil {
					return nil, fmt.Errorf("%s: %w", opConstraint, err)
				}
			}
		}
	}

	return system, nil
}
