// SPDX-License-Identifier: MIT

// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//   - InsertionOrder() returns IDs in the order they were first seen.
//
// Concurrency:
//   - AddVertex takes the write lock; queries take the read lock.
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertexLocked(id)

	return nil
}

// ensureVertexLocked registers id with an empty adjacency list.
// Caller must hold the write lock.
func (g *Graph) ensureVertexLocked(id string) {
	if _, ok := g.adjacency[id]; ok {
		return
	}
	g.adjacency[id] = nil
	g.order = append(g.order, id)
}

// HasVertex reports whether the graph contains a vertex with the given ID.
// A nil graph contains nothing.
//
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	if g == nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[id]

	return ok
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
//
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	out := g.InsertionOrder()
	sort.Strings(out)

	return out
}

// InsertionOrder returns all vertex IDs in the order they were added.
// The returned slice is an independent copy.
//
// Complexity: O(V)
func (g *Graph) InsertionOrder() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Directed reports whether AddEdge stores single arcs (true) or mirrored pairs (false).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}
