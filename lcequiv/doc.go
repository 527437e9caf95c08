// SPDX-License-Identifier: MIT

// Package lcequiv decides whether two graph states are equivalent under
// local Clifford (LC) operations and, when they are, reconstructs the
// transformation.
//
// What:
//
//   - ConstraintSystem builds, from two n×n adjacency matrices G and H,
//     the n²×4n binary system every LC map sending G to H must satisfy.
//   - IsEquivalent orchestrates the full pipeline: adjacency extraction,
//     constraint construction, nullspace extraction, and a pairwise search
//     of basis vectors against the per-qubit determinant constraint.
//   - Clifford carries a found solution vector and decodes it on demand:
//     Tensors yields n single-qubit 2×2 operators, Global assembles one
//     2n×2n block operator [[diag(a), diag(b)], [diag(c), diag(d)]].
//
// How:
//
//	A length-4n solution vector partitions into four length-n blocks
//	(a, b, c, d); entries (a_k, b_k, c_k, d_k) form the 2×2 operator on
//	qubit k. The linear part of LC equivalence is captured by the
//	constraint system's nullspace; the nonlinear invertibility condition
//	(a_k·d_k + b_k·c_k = 1 mod 2 per qubit) cannot be expressed linearly,
//	so the searcher scans mod-2 sums of basis-vector pairs and returns the
//	first combination satisfying every determinant. The scan order — outer
//	index ascending, inner index below it ascending, first full match
//	wins — is a documented contract, not an implementation detail.
//
// Negative outcomes vs. usage errors:
//
//   - Empty states, mismatched node counts, and an exhausted search are
//     normal negative verdicts: (false, nil) with a nil error.
//   - A nil adjacency source or a non-square adjacency matrix is a usage
//     error, signaled via sentinels.
//
// Complexity:
//
//   - ConstraintSystem: O(n³) time, O(n³) memory (n² rows of width 4n).
//   - Search: O(d²·n) over d ≤ 4n basis vectors.
//
// Errors:
//
//   - ErrNilSource: a nil adjacency source was supplied.
//   - ErrNilAdjacency: a source produced a nil adjacency matrix.
//   - ErrNonSquareAdjacency: an adjacency matrix is not square.
package lcequiv
