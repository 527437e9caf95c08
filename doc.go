// Package lcgraph is an in-memory toolkit for representing quantum graph
// states and deciding their equivalence under local Clifford operations.
//
// 🚀 What is lcgraph?
//
//	A small, dependency-light library that brings together:
//		• Binary matrices: dense GF(2) storage, row reduction, nullspaces
//		• Graph states: coordinate-labeled states with stable node indexing
//		• Macronization: edge-to-dumbbell rewriting for lattice construction
//		• LC equivalence: constraint systems, nullspace search, Clifford recovery
//
// ✨ Why choose lcgraph?
//
//   - Deterministic – fixed loop orders, reproducible search, stable indexing
//   - Rock-solid guarantees – sentinel errors, strict binary invariants
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under three subpackages:
//
//	binmat/     — dense GF(2) matrices, row-echelon reduction, nullspace bases
//	graphstate/ — graph-state containers, indexing, slicing, macronization
//	lcequiv/    — LC-equivalence testing and local Clifford reconstruction
//
// Quick ASCII example:
//
//	    A───B          [0 1]
//	    two-node state  [1 0]  is LC-equivalent to itself via identity Cliffords.
//
// Dive into each package's doc.go for contracts, complexity and error sets.
//
//	go get github.com/katalvlaran/lcgraph
package lcgraph
