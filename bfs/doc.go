// SPDX-License-Identifier: MIT

// Package bfs walks a core.Graph breadth-first, ignoring edge weights.
//
// It answers the questions Dijkstra does not: which nodes can be reached at
// all from a start node, and in how few hops. The inspect package uses it to
// explain why a route comes back unreachable.
//
// Visit order follows arc insertion order, so results are deterministic.
// Hooks (WithOnVisit), a hop limit (WithMaxHops), an arc filter
// (WithFilterArc) and cancellation (WithContext) are available as options.
//
// Complexity: O(V + E) time and O(V) memory.
package bfs
