// SPDX-License-Identifier: MIT
// Package lcequiv: decoding recovered local Clifford operations.

package lcequiv

import (
	"github.com/katalvlaran/lcgraph/binmat"
)

// Clifford is a local Clifford operation on n qubits recovered by the
// equivalence search, held as its raw length-4n solution vector
// (a_1..a_n, b_1..b_n, c_1..c_n, d_1..d_n). Decoding is a pure reshape:
// the vector is already constraint-satisfying and is not re-validated.
type Clifford struct {
	vec  []byte       // length-4n solution vector, owned by the Clifford
	form CliffordForm // requested decode form for Decode
}

// Qubits returns the number of qubits n the operation acts on.
func (c *Clifford) Qubits() int { return len(c.vec) / 4 }

// Vector returns a fresh copy of the underlying length-4n solution vector.
func (c *Clifford) Vector() []byte {
	return append([]byte(nil), c.vec...)
}

// Tensors decodes the operation as n single-qubit operators; entry k is
// the 2×2 block [[a_k, b_k], [c_k, d_k]] acting on qubit k.
// Complexity: O(n).
func (c *Clifford) Tensors() []Tensor {
	n := c.Qubits()
	out := make([]Tensor, n)
	for k := 0; k < n; k++ {
		out[k] = Tensor{
			{c.vec[k], c.vec[k+n]},
			{c.vec[k+2*n], c.vec[k+3*n]},
		}
	}

	return out
}

// Global decodes the operation as one 2n×2n block matrix
// [[A, B], [C, D]] with A = diag(a), B = diag(b), C = diag(c),
// D = diag(d). Complexity: O(n²) for the allocation, O(n) writes.
func (c *Clifford) Global() *binmat.Dense {
	n := c.Qubits()
	// Shape is always valid here; the vector length is a multiple of 4.
	m, _ := binmat.New(2*n, 2*n)
	for k := 0; k < n; k++ {
		_ = m.Set(k, k, c.vec[k])         // A quadrant diagonal
		_ = m.Set(k, n+k, c.vec[k+n])     // B quadrant diagonal
		_ = m.Set(n+k, k, c.vec[k+2*n])   // C quadrant diagonal
		_ = m.Set(n+k, n+k, c.vec[k+3*n]) // D quadrant diagonal
	}

	return m
}

// Decode returns the operation in the form requested at search time:
// []Tensor for FormTensor, *binmat.Dense for FormGlobal.
func (c *Clifford) Decode() interface{} {
	if c.form == FormGlobal {
		return c.Global()
	}

	return c.Tensors()
}
