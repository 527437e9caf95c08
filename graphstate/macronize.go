// SPDX-License-Identifier: MIT
// Package graphstate: macronization — the edge-to-dumbbell lattice
// rewriting transform.

package graphstate

import (
	"math"
)

// boundaryMacroSize is the macronode size boundary padding targets; it
// matches the bulk connectivity of the RHG lattice.
const boundaryMacroSize = 4

// padStep is the fixed coordinate offset used when padding boundary
// macronodes with extra micronodes.
const padStep = 0.05

// Macronize returns a new, macronized version of the state.
//
// Every vertex v is replaced by a macronode: one micronode per neighbor
// of v, displaced from v by disp toward that neighbor. Equivalently,
// every edge (u, v) becomes a "dumbbell" — two micronodes joined by an
// edge carrying the original edge's attributes. Periodic edges displace
// away from the partner instead of toward it.
//
// Implementation:
//   - Stage 1: validate disp ∈ (0, 0.5).
//   - Stage 2: walk edges in sorted order; for each edge place the two
//     displaced micronodes (rounded to a fixed number of decimals derived
//     from disp), connect them, and append them to the macronode map of
//     their centers.
//   - Stage 3: when padBoundary is set, pad every macronode smaller than
//     the bulk size (4) with extra micronodes offset by 0.05 along
//     successive axes.
//   - Stage 4: remap recorded perfect-qubit points onto their micronodes.
//
// Behavior highlights:
//   - Sorted edge order makes micronode insertion — and therefore the
//     macronized state's node indexing — fully deterministic.
//   - The receiver is never mutated; the result is an independent State
//     with WithMacronodes semantics and the macro-to-micro map attached.
//
// Inputs:
//   - disp: micronode displacement, positive and strictly less than 0.5
//     so dumbbells never collide with neighboring macronodes.
//   - padBoundary: pad boundary macronodes to the bulk size of 4.
//
// Returns:
//   - *State: the macronized state.
//
// Errors:
//   - ErrBadDisplacement: disp outside (0, 0.5).
//
// Complexity:
//   - Time O(E log E + V), Space O(V + E) for the result.
func (s *State) Macronize(disp float64, padBoundary bool) (*State, error) {
	// Validate the displacement range.
	if disp <= 0 || disp >= 0.5 {
		return nil, ErrBadDisplacement
	}

	macro := NewState(WithMacronodes())

	// Decimal precision follows the displacement's magnitude so rounding
	// never erases the displacement itself.
	decimals := -int(math.Log10(disp)) + 2

	// Stage 2: replace each edge with a dumbbell of displaced micronodes.
	for _, edge := range s.sortedEdges() {
		u, v := edge[0], edge[1]
		attrs := s.adj[u][v]

		// Unit direction from u to v, scaled by disp; periodic edges flip.
		var direction [3]float64
		var distance float64
		for k := 0; k < 3; k++ {
			direction[k] = v[k] - u[k]
			distance += direction[k] * direction[k]
		}
		distance = math.Sqrt(distance)
		flip := 1.0
		if attrs.periodic {
			flip = -1.0
		}

		// Micronode coordinates are rounded so displaced points compare
		// exactly as map keys; unrounded sums carry float dust
		// (1 - 0.1 is not 0.9 in binary floating point).
		var microU, microV Coord
		for k := 0; k < 3; k++ {
			shortened := flip * disp * direction[k] / distance
			microU[k] = roundTo(u[k]+shortened, decimals)
			microV[k] = roundTo(v[k]-shortened, decimals)
		}

		// Place the dumbbell; edge attributes carry over.
		macro.AddNode(microU)
		macro.AddNode(microV)
		macro.adj[microU] = ensureAdj(macro.adj[microU])
		macro.adj[microV] = ensureAdj(macro.adj[microV])
		macro.adj[microU][microV] = attrs
		macro.adj[microV][microU] = attrs

		macro.appendMicro(u, microU)
		macro.appendMicro(v, microV)
	}
	macro.invalidate()

	// Stage 3: pad boundary macronodes up to the bulk size.
	if padBoundary {
		centers := append([]Coord(nil), macro.macroCenters...)
		sortCoords(centers)
		for _, center := range centers {
			missing := boundaryMacroSize - len(macro.macroToMicro[center])
			for i := 0; i < missing; i++ {
				// The i-th pad node offsets axis i of the center by padStep.
				padded := center
				padded[i] += padStep
				macro.AddNode(padded)
				macro.appendMicro(center, padded)
			}
		}
	}

	// Stage 4: remap perfect points onto their micronodes.
	if s.perfect != nil {
		var remapped []Coord
		for _, p := range s.perfect {
			remapped = append(remapped, macro.macroToMicro[p]...)
		}
		macro.perfect = remapped
	}

	return macro, nil
}

// appendMicro registers micro under the macronode centered at center,
// tracking first-seen centers for deterministic index layout.
func (s *State) appendMicro(center, micro Coord) {
	if _, ok := s.macroToMicro[center]; !ok {
		s.macroCenters = append(s.macroCenters, center)
	}
	s.macroToMicro[center] = append(s.macroToMicro[center], micro)
}

// ensureAdj returns m, allocating it when nil.
func ensureAdj(m map[Coord]edgeAttrs) map[Coord]edgeAttrs {
	if m == nil {
		return make(map[Coord]edgeAttrs)
	}

	return m
}

// roundTo rounds x to the given number of decimal places, matching the
// displacement rounding of the lattice construction.
func roundTo(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))

	return math.Round(x*p) / p
}
