// SPDX-License-Identifier: MIT
// Package lcequiv: sentinel error set.

package lcequiv

import "errors"

var (
	// ErrNilSource indicates a nil adjacency source was supplied.
	ErrNilSource = errors.New("lcequiv: nil adjacency source")

	// ErrNilAdjacency indicates a source produced a nil adjacency matrix
	// where a dense binary matrix is required.
	ErrNilAdjacency = errors.New("lcequiv: adjacency matrix is nil")

	// ErrNonSquareAdjacency indicates an adjacency matrix is not square.
	// Shape mismatch between two square matrices is a negative verdict,
	// not an error; a non-square matrix is always a usage error.
	ErrNonSquareAdjacency = errors.New("lcequiv: adjacency matrix is not square")
)
