// SPDX-License-Identifier: MIT

// Package roundtrip plans closed tours that visit an ordered list of
// waypoints and return to the start, by chaining dijkstra.ShortestPath legs.
//
// A tour start → w0 → w1 → … → w(n-1) → start is split into n+1 legs. Each
// leg is an independent shortest-path query; legs are concatenated so that the
// junction node shared by consecutive legs appears once.
//
// Waypoint order is fixed by the caller: this package does not reorder stops
// (that would be a travelling-salesman problem), it only connects them.
//
// Errors:
//
//   - *ValidationError (kind "unknown node") when a waypoint is not a graph
//     vertex; errors.Is(err, ErrUnknownNode) reports true.
//   - dijkstra.ErrVertexNotFound / dijkstra.ErrNilGraph for a missing start or nil graph.
//
// Unreachable legs are not errors: their +Inf cost propagates into Tour.Cost.
package roundtrip
