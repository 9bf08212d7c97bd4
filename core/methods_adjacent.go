// SPDX-License-Identifier: MIT

// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs).
// Determinism:
//   - Neighbors() preserves insertion order; Dijkstra relaxes in exactly this order.
//   - NeighborIDs() returns unique IDs in first-seen order.

package core

// Neighbors returns the outgoing edges of id in insertion order.
// The returned slice is a copy; mutating it does not affect the graph.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d), Space O(d), where d is the out-degree of id.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	edges, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]Edge, len(edges))
	copy(out, edges)

	return out, nil
}

// NeighborIDs returns the unique vertex IDs adjacent to id, in first-seen order.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		if _, dup := seen[e.To]; dup {
			continue
		}
		seen[e.To] = struct{}{}
		out = append(out, e.To)
	}

	return out, nil
}

// Degree returns the out-degree of id (number of stored arcs leaving it).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	edges, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(edges), nil
}
