// SPDX-License-Identifier: MIT

// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() walks vertices in insertion order, then each adjacency list in insertion order.
// Concurrency:
//   - Mutations under the write lock; queries under the read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge appends the arc from→to with the given weight to from's adjacency list.
// Missing endpoints are added as vertices, so every neighbor is also a key.
// In an undirected graph (WithDirected(false)) the mirror arc to→from is appended
// as well; a self-loop is stored once.
//
// Steps:
//  1. Validate IDs and weight.
//  2. Ensure both endpoints exist.
//  3. Append the arc (and its mirror when undirected).
//
// Errors:
//   - ErrEmptyVertexID: if from or to is empty.
//   - ErrNegativeWeight: if weight < 0.
//   - ErrBadWeight: if weight is NaN or ±Inf.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if err := validateWeight(weight); err != nil {
		return fmt.Errorf("%w: edge %s→%s weight=%g", err, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertexLocked(from)
	g.ensureVertexLocked(to)

	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: weight})
	g.edgeCount++
	if !g.directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], Edge{From: to, To: from, Weight: weight})
		g.edgeCount++
	}

	return nil
}

// validateWeight rejects NaN, infinities and negative values.
func validateWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return ErrBadWeight
	}
	if w < 0 {
		return ErrNegativeWeight
	}

	return nil
}

// HasEdge reports whether at least one arc from→to exists.
//
// Complexity: O(deg(from))
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.adjacency[from] {
		if e.To == to {
			return true
		}
	}

	return false
}

// Edges returns every stored arc. In undirected graphs each connection
// appears twice, once per direction.
//
// Complexity: O(V + E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for _, id := range g.order {
		out = append(out, g.adjacency[id]...)
	}

	return out
}

// EdgeCount returns the number of stored arcs.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
