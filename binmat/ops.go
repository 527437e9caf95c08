// SPDX-License-Identifier: MIT
// Package binmat: supporting kernels (Transpose, Augment).
// All kernels perform fail-fast validation, allocate a fresh result and
// never mutate their inputs. Loop orders are fixed for determinism.

package binmat

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opTranspose = "Transpose"
	opAugment   = "Augment"
	opReduce    = "ReduceRowEchelon"
	opNullspace = "NullspaceBasis"
)

// matErrorf wraps err with an operation tag, preserving the original error
// via %w so callers can still match sentinels with errors.Is.
func matErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The input is validated non-nil and never mutated.
//
// Determinism: fixed i→j traversal.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	// Validate input non-nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matErrorf(opTranspose, err)
	}

	// Allocate result with flipped dimensions.
	res := &Dense{r: m.c, c: m.r, data: make([]byte, m.r*m.c)}

	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < m.r; i++ {
		baseSrc = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// Augment returns the horizontal concatenation [A|B] of two matrices with
// equal row counts. Both inputs are validated non-nil and never mutated.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (row counts differ).
// Complexity: Time O(r*(cA+cB)), Space O(r*(cA+cB)).
func Augment(a, b *Dense) (*Dense, error) {
	// Validate operands non-nil.
	if err := ValidateNotNil(a); err != nil {
		return nil, matErrorf(opAugment, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matErrorf(opAugment, err)
	}
	// Row counts must match for a horizontal concatenation.
	if a.r != b.r {
		return nil, matErrorf(opAugment, ErrDimensionMismatch)
	}

	// Allocate result and copy both blocks row by row.
	cols := a.c + b.c
	res := &Dense{r: a.r, c: cols, data: make([]byte, a.r*cols)}
	var i int
	for i = 0; i < a.r; i++ {
		// A block, then B block, into the same destination row.
		copy(res.data[i*cols:i*cols+a.c], a.data[i*a.c:(i+1)*a.c])
		copy(res.data[i*cols+a.c:(i+1)*cols], b.data[i*b.c:(i+1)*b.c])
	}

	return res, nil
}
