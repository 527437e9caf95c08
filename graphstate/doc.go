// SPDX-License-Identifier: MIT

// Package graphstate models quantum graph states as coordinate-labeled,
// simple undirected graphs with a stable node indexing, dense adjacency
// extraction, and a macronization transform for lattice construction.
//
// What:
//
//   - State holds nodes labeled by 3-D coordinates (Coord) and unweighted
//     undirected edges, optionally flagged as periodic.
//   - Index assigns every node a stable row/column index: plain states sort
//     coordinates lexicographically; macronized states order micronodes by
//     their sorted macronode centers.
//   - AdjacencyMatrix materializes the n×n binary adjacency matrix in
//     index order, ready for LC-equivalence testing.
//   - Macronize replaces every edge with a "dumbbell" of displaced
//     micronodes, producing the macronode lattice used by error-correction
//     codes, and carries the macronode-to-micronode map along.
//   - SliceCoords extracts all coordinates lying in an axis-aligned plane.
//
// Why:
//
//   - Stabilizer-state algorithms consume adjacency matrices whose row
//     order must be explicit and identical across calls; State owns that
//     ordering instead of leaving it to incidental sort order.
//   - Macronode lattices expand each vertex into a cluster per neighbor,
//     the standard construction for measurement-based error correction.
//
// Complexity:
//
//   - AddNode/AddEdge/HasEdge: O(1) expected.
//   - Index (first call): O(V log V); cached until the state mutates.
//   - AdjacencyMatrix: O(V² + E).
//   - Macronize: O(E log E + V).
//
// Errors:
//
//   - ErrSelfLoop: an edge from a coordinate to itself was requested.
//   - ErrUnknownNode: a queried coordinate is not part of the state.
//   - ErrBadDisplacement: macronize displacement outside (0, 0.5).
package graphstate
