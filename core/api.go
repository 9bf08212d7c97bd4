// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade: bulk constructors and read-only snapshots.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

import "sort"

// Arc is one (neighbor, weight) pair of a raw adjacency mapping.
type Arc struct {
	To     string
	Weight float64
}

// FromAdjacency builds a directed Graph from a mapping of node ID to an
// ordered list of (neighbor, weight) pairs. Reciprocal edges must be supplied
// by the caller for undirected semantics.
//
// Behavior highlights:
//   - Keys are inserted in sorted order so vertex enumeration is reproducible.
//   - Each key's arcs are appended in the given order.
//   - A neighbor that is not itself a key becomes a vertex with no outgoing edges.
//
// Errors:
//   - ErrEmptyVertexID, ErrNegativeWeight, ErrBadWeight from AddVertex/AddEdge.
//
// Complexity:
//   - Time O(V log V + E), Space O(V + E).
func FromAdjacency(adj map[string][]Arc) (*Graph, error) {
	g := NewGraph()

	keys := make([]string, 0, len(adj))
	for k := range adj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var err error
	for _, k := range keys {
		if err = g.AddVertex(k); err != nil {
			return nil, err
		}
	}
	for _, k := range keys {
		for _, a := range adj[k] {
			if err = g.AddEdge(k, a.To, a.Weight); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// Adjacency returns a copy of the graph as a mapping of node ID to its
// ordered outgoing (neighbor, weight) pairs. Isolated vertices map to an
// empty, non-nil slice.
func (g *Graph) Adjacency() map[string][]Arc {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]Arc, len(g.adjacency))
	for id, edges := range g.adjacency {
		arcs := make([]Arc, 0, len(edges))
		for _, e := range edges {
			arcs = append(arcs, Arc{To: e.To, Weight: e.Weight})
		}
		out[id] = arcs
	}

	return out
}

// GraphStats is a read-only snapshot of graph shape.
type GraphStats struct {
	Directed      bool
	VertexCount   int
	EdgeCount     int
	IsolatedCount int // vertices with no outgoing edges
}

// Stats produces a snapshot of configuration and catalog sizes.
//
// Complexity: O(V)
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := GraphStats{
		Directed:    g.directed,
		VertexCount: len(g.adjacency),
		EdgeCount:   g.edgeCount,
	}
	for _, edges := range g.adjacency {
		if len(edges) == 0 {
			s.IsolatedCount++
		}
	}

	return s
}
