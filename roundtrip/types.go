// SPDX-License-Identifier: MIT

package roundtrip

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/waypath/dijkstra"
)

// ErrUnknownNode is matched by every *ValidationError of kind KindUnknownNode.
var ErrUnknownNode = errors.New("unknown node")

// Kind classifies a ValidationError.
type Kind string

// KindUnknownNode marks a waypoint (or start, when checked by a caller) that is not a graph vertex.
const KindUnknownNode Kind = "unknown node"

// ValidationError reports input that names something the graph does not contain.
// It is raised before any leg touching the offending node is computed.
type ValidationError struct {
	Kind Kind
	Node string
}

// UnknownNode returns a *ValidationError of kind KindUnknownNode for id.
func UnknownNode(id string) *ValidationError {
	return &ValidationError{Kind: KindUnknownNode, Node: id}
}

// Error renders "<kind>: <node>", e.g. "unknown node: Z".
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Node)
}

// Unwrap lets errors.Is(err, ErrUnknownNode) match unknown-node failures.
func (e *ValidationError) Unwrap() error {
	if e.Kind == KindUnknownNode {
		return ErrUnknownNode
	}
	return nil
}

// Leg is one shortest-path segment between two consecutive stops.
type Leg struct {
	From string
	To   string
	Path []string // as returned by dijkstra.ShortestPath, junction included
	Cost float64
}

// Reachable reports whether the leg has a finite cost.
func (l Leg) Reachable() bool { return !math.IsInf(l.Cost, 1) }

// Tour is the outcome of a round-trip plan.
//
// Path is a single walk start → waypoints… → start with no doubled node at
// leg boundaries; Cost is the sum of leg costs (+Inf if any leg is unreachable).
type Tour struct {
	Start     string
	Waypoints []string
	Path      []string
	Cost      float64
	Legs      []Leg
}

// Reachable reports whether every leg of the tour has a finite cost.
func (t *Tour) Reachable() bool { return !math.IsInf(t.Cost, 1) }

// Options configures Plan.
type Options struct {
	Logger   *slog.Logger
	Dijkstra []dijkstra.Option
}

// Option represents a functional option for configuring Plan.
type Option func(*Options)

// WithLogger routes per-leg debug records to l. A nil l is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithDijkstraOptions forwards options (thresholds, caps) to every leg's search.
func WithDijkstraOptions(opts ...dijkstra.Option) Option {
	return func(o *Options) {
		o.Dijkstra = append(o.Dijkstra, opts...)
	}
}

// DefaultOptions returns Options with a discarding logger and no search overrides.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
