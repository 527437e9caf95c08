// SPDX-License-Identifier: MIT

// Package binmat provides dense matrices over GF(2), the finite field with
// two elements, together with the row-reduction and nullspace kernels that
// drive local-Clifford equivalence testing.
//
// What:
//
//   - Dense wraps a flat, row-major []byte with explicit dimensions; every
//     entry is strictly 0 or 1 and all arithmetic is mod 2 (XOR / AND).
//   - ReduceRowEchelon puts a matrix into row-echelon form mod 2, up to an
//     optional column limit, reporting the number of pivots found.
//   - NullspaceBasis extracts a basis of the right nullspace of a matrix by
//     reducing its transpose augmented with an identity block.
//   - Transpose, Augment and Identity supply the supporting plumbing.
//
// Why:
//
//   - Stabilizer/graph-state algebra lives entirely over GF(2): adjacency
//     matrices, constraint systems and Clifford solution vectors are binary.
//   - Division by a pivot is trivial mod 2 (the only nonzero element is 1),
//     so elimination is pure XOR — deterministic and exact, no epsilons.
//
// Determinism:
//
//   - All kernels use fixed loop orders; pivot tie-break is "lowest row
//     index at or below the current pivot row". Reduction is idempotent:
//     reducing an already-reduced matrix is a no-op.
//
// Complexity:
//
//   - ReduceRowEchelon: O(r·c·maxCols) time, O(r·c) memory.
//   - NullspaceBasis:   O(c²·(r+c)) time, O(c·(r+c)) memory.
//
// Errors:
//
//   - ErrBadShape: negative dimensions requested.
//   - ErrOutOfRange: index or column limit outside valid bounds.
//   - ErrDimensionMismatch: incompatible operand shapes.
//   - ErrNonSquare: square input required.
//   - ErrNotBinary: entry outside {0,1} at ingestion.
//   - ErrNilMatrix: nil matrix argument.
package binmat
