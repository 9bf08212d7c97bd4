// SPDX-License-Identifier: MIT

// Package waypath plans routes over small, static, weighted graphs.
//
// The building blocks live in subpackages:
//
//	core/       — thread-safe Graph of string vertices and float64-weighted edges
//	dijkstra/   — single-source shortest paths and the ShortestPath query
//	roundtrip/  — round trips from a start node through ordered waypoints and back
//	bfs/        — hop-count reachability, ignoring weights
//	inspect/    — diagnostic listing of a node's connections and reach
//	render/     — terminal (lipgloss) and Graphviz DOT drawings of a planned tour
//	graphfile/  — YAML/JSON graph documents and the built-in sample graph
//	config/     — CLI configuration file, defaults and logging setup
//	cmd/waypath — the command-line front end
//
// Quick start:
//
//	g := graphfile.Sample()
//	path, cost, err := roundtrip.RoundTrip(g, "A", []string{"B", "C"})
//	// path == [A B C B A], cost == 6
//
// Unreachable targets are not errors: their cost is +Inf and the path
// degenerates to the target alone.
package waypath
