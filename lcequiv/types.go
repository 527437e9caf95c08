// SPDX-License-Identifier: MIT
// Package lcequiv: public types and options.

package lcequiv

import (
	"github.com/katalvlaran/lcgraph/binmat"
)

// AdjacencySource supplies a dense binary adjacency matrix with a
// caller-stable node ordering. graphstate.State implements it; any
// container owning an explicit node-to-index mapping can.
type AdjacencySource interface {
	// AdjacencyMatrix returns the n×n binary adjacency matrix of the
	// underlying graph. The row/column assignment must be stable for the
	// lifetime of the equivalence call.
	AdjacencyMatrix() (*binmat.Dense, error)
}

// CliffordForm selects the decoded shape of a recovered local Clifford.
type CliffordForm int

const (
	// FormTensor decodes into n single-qubit 2×2 operators.
	FormTensor CliffordForm = iota
	// FormGlobal decodes into one 2n×2n block-diagonal-per-quadrant operator.
	FormGlobal
)

// String renders the form selector for debugging.
func (f CliffordForm) String() string {
	switch f {
	case FormTensor:
		return "tensor"
	case FormGlobal:
		return "global"
	default:
		return "unknown"
	}
}

// Options tunes the equivalence check.
type Options struct {
	// Form selects the decoded operator shape reported by Clifford.Decode.
	Form CliffordForm
}

// DefaultOptions returns the default equivalence options: tensor form.
func DefaultOptions() Options {
	return Options{Form: FormTensor}
}

// Tensor is a single-qubit 2×2 binary operator [[a, b], [c, d]].
type Tensor [2][2]byte
