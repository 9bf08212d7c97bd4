// SPDX-License-Identifier: MIT

// Package core provides a small, thread-safe, in-memory adjacency-list Graph
// with non-negative float64 edge weights.
//
// The Graph G = (V,E) stores, for every vertex, an ordered list of outgoing
// edges (neighbor, weight). Order matters: algorithms iterate neighbors in
// exactly the order edges were added, which keeps results reproducible.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    true (default): AddEdge stores only the from→to arc.
//	    false:          AddEdge also stores the to→from mirror arc.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                   // O(1)
//	HasVertex(id string) bool                    // O(1)
//	Vertices() []string                          // O(V log V), sorted
//
//	// Edge lifecycle
//	AddEdge(from, to string, w float64) error    // O(1)†
//	HasEdge(from, to string) bool                // O(deg)
//	Edges() []Edge                               // O(V+E)
//
//	// Neighborhood
//	Neighbors(id string) ([]Edge, error)         // O(deg), insertion order
//	NeighborIDs(id string) ([]string, error)     // O(deg)
//
//	// Bulk
//	FromAdjacency(map[string][]Arc) (*Graph, error)
//	Adjacency() map[string][]Arc
//
// Invariants:
//
//   - Every edge endpoint is a vertex (AddEdge auto-adds missing endpoints).
//   - Weights are finite and ≥ 0; AddEdge rejects anything else.
//
// Errors:
//
//	ErrNilGraph, ErrEmptyVertexID, ErrVertexNotFound, ErrNegativeWeight, ErrBadWeight.
//
// Concurrency:
//
//	A single sync.RWMutex guards the catalog. Queries may run concurrently;
//	algorithms never mutate the graph they are given.
//
// † amortized
package core
