// SPDX-License-Identifier: MIT
// Package binmat: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the binmat
// package. All kernels return these sentinels and tests check them via
// errors.Is. No kernel panics on user-triggered error conditions.

package binmat

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// rows or columns). Zero-sized matrices are legal: empty adjacency
	// matrices and trivial nullspace bases both have a zero dimension.
	ErrBadShape = errors.New("binmat: invalid shape")

	// ErrOutOfRange indicates that an index (row, column, or column limit)
	// is outside valid bounds. Public indexers return this, never panic.
	ErrOutOfRange = errors.New("binmat: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Augment with differing row counts.
	ErrDimensionMismatch = errors.New("binmat: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't.
	ErrNonSquare = errors.New("binmat: matrix is not square")

	// ErrNotBinary signals a value outside {0,1} where strict GF(2) entries
	// are required (Set, FromRows ingestion).
	ErrNotBinary = errors.New("binmat: entry not in {0,1}")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was
	// passed where a matrix is required.
	ErrNilMatrix = errors.New("binmat: nil matrix")
)
