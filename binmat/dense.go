// SPDX-License-Identifier: MIT
// Package binmat: Dense is the concrete, row-major GF(2) matrix type.
// Elements are stored in a flat byte slice for cache friendliness; every
// public mutator enforces the strict {0,1} entry invariant.

package binmat

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix over GF(2).
// r is rows, c is columns, and data holds r*c elements in row-major order.
// The zero value is a legal 0×0 matrix.
type Dense struct {
	r, c int    // number of rows and columns
	data []byte // flat backing storage, length == r*c, entries in {0,1}
}

// New creates an r×c Dense matrix initialized to zeros.
// Zero-sized matrices are legal (empty adjacency, trivial nullspace basis);
// negative dimensions yield ErrBadShape.
// Complexity: O(r*c) time and memory.
func New(rows, cols int) (*Dense, error) {
	// Validate dimensions: zero is allowed, negative is not.
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}

	// Return initialized Dense over a flat zero-filled slice.
	return &Dense{r: rows, c: cols, data: make([]byte, rows*cols)}, nil
}

// FromRows builds a Dense from a rectangular slice of binary rows.
// Stage 1 (Validate): rows must share one length; entries must be 0 or 1.
// Stage 2 (Execute): copy into fresh flat storage; input is never aliased.
// Errors: ErrDimensionMismatch (ragged input), ErrNotBinary (bad entry).
// Complexity: O(r*c).
func FromRows(rows [][]byte) (*Dense, error) {
	r := len(rows)
	if r == 0 {
		return &Dense{}, nil // empty matrix
	}
	c := len(rows[0])

	m := &Dense{r: r, c: c, data: make([]byte, r*c)}
	var i, j int
	for i = 0; i < r; i++ {
		// Reject ragged input before touching storage for this row.
		if len(rows[i]) != c {
			return nil, fmt.Errorf("FromRows: row %d: %w", i, ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			if rows[i][j] > 1 {
				return nil, fmt.Errorf("FromRows: row %d col %d: %w", i, j, ErrNotBinary)
			}
			m.data[i*c+j] = rows[i][j]
		}
	}

	return m, nil
}

// Identity returns the n×n identity matrix over GF(2).
// Errors: ErrBadShape for negative n. Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, fmt.Errorf("Identity: %w", err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the number of rows in the matrix. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index.
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index.
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset.
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange on invalid indices. Complexity: O(1).
func (m *Dense) At(row, col int) (byte, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col). v must be 0 or 1.
// Errors: ErrOutOfRange on invalid indices, ErrNotBinary for v > 1.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v byte) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Enforce the strict GF(2) entry invariant at the only write boundary.
	if v > 1 {
		return denseErrorf("Set", row, col, ErrNotBinary)
	}
	m.data[idx] = v

	return nil
}

// Row returns a fresh copy of row i; the backing storage is never aliased.
// Errors: ErrOutOfRange on invalid index. Complexity: O(c).
func (m *Dense) Row(i int) ([]byte, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]byte, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	// Copy the flat storage into a new slice; dims carry over unchanged.
	cp := make([]byte, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		b.WriteByte('[')
		for j = 0; j < m.c; j++ { // iterate over columns
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
