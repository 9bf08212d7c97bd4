// SPDX-License-Identifier: MIT

// Package core defines the central Graph and Edge types and provides
// thread-safe primitives for building and querying weighted adjacency-list graphs.
//
// The Graph is guarded by a single sync.RWMutex: mutations take the write lock,
// queries take the read lock. Algorithms treat the graph as read-only input.
//
// This file declares Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrNilGraph        - graph pointer is nil.
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrNegativeWeight  - edge weight is below zero.
//	ErrBadWeight       - edge weight is NaN or +Inf.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadWeight indicates an edge weight that is NaN or infinite.
	ErrBadWeight = errors.New("core: edge weight must be a finite number")
)

// Edge is one weighted, outgoing adjacency entry: From→To at cost Weight.
//
// Undirected connections are stored as two reciprocal edges.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the neighbor vertex ID.
	To string

	// Weight is the non-negative traversal cost.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether AddEdge stores a single arc (true, the default)
// or an arc plus its reciprocal mirror (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is an in-memory adjacency-list graph.
//
// adjacency[id] holds the outgoing edges of id in insertion order; every
// vertex, including isolated ones, has an entry. order records vertex
// insertion order for reproducible enumeration of unsorted views.
type Graph struct {
	mu sync.RWMutex

	directed bool

	adjacency map[string][]Edge
	order     []string
	edgeCount int
}

// NewGraph creates an empty Graph. By default the graph is directed:
// AddEdge stores exactly the arc it is given.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		directed:  true,
		adjacency: make(map[string][]Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
