// SPDX-License-Identifier: MIT

// Package dijkstra implements single-source shortest paths on core.Graph
// values with non-negative float64 weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from one source vertex to every
//     vertex in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - A binary min-heap orders the frontier by tentative distance; equal
//     distances pop in push order (FIFO).
//   - Relaxation pushes a fresh entry on every improvement (“lazy decrease-key”);
//     superseded entries are skipped when popped.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist map[string]float64, prev map[string]string, err error)
//	func ShortestPath(g *core.Graph, start, end string, opts ...Option) (path []string, dist float64, err error)
//	func PathTo(prev map[string]string, end string) []string
//
//	  - dist: map[v] = minimal distance from Source to v, or math.Inf(1) if unreachable.
//	  - prev: map[v] = predecessor of v on one shortest path, or "" if v is the
//	          source or unreachable.
//
// Unreachable targets:
//
//	ShortestPath(g, a, b) for an unreachable b returns ([b], +Inf) and a nil error.
//	Path reconstruction walks predecessors back from b and stops immediately,
//	because b has none. Callers that need to tell "reachable" apart should
//	test math.IsInf(dist, 1) rather than len(path).
//
// Key features:
//
//   - MaxDistance: aborts exploration beyond a specified distance.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as a wall.
//
// Thread safety:
//
//   - Each call allocates its own distance map, predecessor map and heap.
//     Concurrent calls on the same graph are safe as long as nobody mutates it.
package dijkstra
