// SPDX-License-Identifier: MIT

// Package inspect reports the outgoing connections of a single graph vertex
// and, via a breadth-first walk, everything reachable from it.
// It is a diagnostic view only; nothing here feeds back into path search.
package inspect

import (
	"fmt"
	"io"

	"github.com/katalvlaran/waypath/core"
)

// Status summarizes a Report.
type Status int

const (
	// StatusMissing means the vertex is not in the graph.
	StatusMissing Status = iota
	// StatusIsolated means the vertex exists but has no outgoing edges.
	StatusIsolated
	// StatusConnected means the vertex has at least one outgoing edge.
	StatusConnected
)

// String returns a lowercase label for s.
func (s Status) String() string {
	switch s {
	case StatusMissing:
		return "missing"
	case StatusIsolated:
		return "isolated"
	case StatusConnected:
		return "connected"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Report is the connection listing of one vertex.
type Report struct {
	Node   string
	Exists bool
	Edges  []core.Edge // outgoing, in adjacency order
}

// Status classifies the report.
func (r Report) Status() Status {
	switch {
	case !r.Exists:
		return StatusMissing
	case len(r.Edges) == 0:
		return StatusIsolated
	default:
		return StatusConnected
	}
}

// Connections looks node up in g and lists its outgoing edges.
// A nil graph or unknown node yields a report with Exists == false.
func Connections(g *core.Graph, node string) Report {
	r := Report{Node: node}
	if !g.HasVertex(node) {
		return r
	}
	r.Exists = true
	// HasVertex just succeeded and the graph is not mutated during inspection.
	r.Edges, _ = g.Neighbors(node)

	return r
}

// Fprint writes a human-readable form of r to w:
//
//	Node "Z" does not exist in the graph.
//	Node "E" has no connections.
//	Connections of node "A":
//	  -> B (weight 1)
func Fprint(w io.Writer, r Report) error {
	var err error
	switch r.Status() {
	case StatusMissing:
		_, err = fmt.Fprintf(w, "Node %q does not exist in the graph.\n", r.Node)
	case StatusIsolated:
		_, err = fmt.Fprintf(w, "Node %q has no connections.\n", r.Node)
	default:
		if _, err = fmt.Fprintf(w, "Connections of node %q:\n", r.Node); err != nil {
			return err
		}
		for _, e := range r.Edges {
			if _, err = fmt.Fprintf(w, "  -> %s (weight %g)\n", e.To, e.Weight); err != nil {
				return err
			}
		}
	}

	return err
}
