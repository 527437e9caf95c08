// SPDX-License-Identifier: MIT
// Package binmat: right-nullspace basis extraction over GF(2).

package binmat

// NullspaceBasis returns a matrix whose rows form a basis of the right
// nullspace of m over GF(2): every row v satisfies m·vᵀ = 0 (mod 2).
//
// Implementation:
//   - Stage 1: transpose m, turning "right nullspace of M" into "left
//     nullspace of Mᵀ", and augment with an identity block: A = [Mᵀ | I].
//   - Stage 2: row-reduce A restricted to the Mᵀ columns, so only that
//     block drives pivoting. Rows from the pivot count p onward, taken in
//     the identity columns, span the nullspace: their Mᵀ part is zero, and
//     the identity part records the row combination that produced it.
//   - Stage 3: row-reduce the candidate block once more at full width and
//     keep only the pivot rows. The second pass is cleanup — it removes
//     dependent or zero rows, it is not required for the nullspace
//     property itself.
//
// Behavior highlights:
//   - A trivial nullspace yields a basis with zero rows; downstream search
//     must treat that as "no solution possible".
//   - Fresh matrices at every stage; m is never mutated.
//
// Inputs:
//   - m: any binary matrix (r×c).
//
// Returns:
//   - *Dense: basis matrix of shape d×c with d = c − rank(m).
//
// Errors:
//   - ErrNilMatrix (nil input); the internal kernels cannot fail on the
//     shapes produced here.
//
// Complexity:
//   - Time O(c²·(r+c)), Space O(c·(r+c)) for the augmented matrix.
func NullspaceBasis(m *Dense) (*Dense, error) {
	// Validate input non-nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matErrorf(opNullspace, err)
	}

	// Stage 1: A = [Mᵀ | I].
	mt, err := Transpose(m)
	if err != nil {
		return nil, matErrorf(opNullspace, err)
	}
	eye, err := Identity(mt.r)
	if err != nil {
		return nil, matErrorf(opNullspace, err)
	}
	aug, err := Augment(mt, eye)
	if err != nil {
		return nil, matErrorf(opNullspace, err)
	}

	// Stage 2: reduce with pivoting restricted to the Mᵀ block.
	red, p, err := ReduceRowEchelon(aug, mt.c)
	if err != nil {
		return nil, matErrorf(opNullspace, err)
	}

	// Rows p.. of the identity columns span the nullspace.
	span := &Dense{r: mt.r - p, c: mt.r, data: make([]byte, (mt.r-p)*mt.r)}
	var i int
	for i = p; i < mt.r; i++ {
		copy(span.data[(i-p)*span.c:(i-p+1)*span.c], red.data[i*red.c+mt.c:(i+1)*red.c])
	}

	// Stage 3: cleanup reduction; keep only the pivot rows as the basis.
	basis, rank, err := ReduceRowEchelon(span, FullWidth)
	if err != nil {
		return nil, matErrorf(opNullspace, err)
	}
	basis.data = basis.data[:rank*basis.c]
	basis.r = rank

	return basis, nil
}
