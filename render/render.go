// SPDX-License-Identifier: MIT

// Package render draws a graph together with a planned round trip.
//
// Renderers are swappable: they consume a Scene (graph + tour) and never call
// into path search themselves. Visualize is the one entry point that plans
// and renders in a single step.
package render

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/roundtrip"
)

// Role is how a node participates in the tour; each role is drawn distinctly.
type Role int

const (
	RoleOther Role = iota
	RolePath
	RoleWaypoint
	RoleStart
)

// String returns a lowercase label for r.
func (r Role) String() string {
	switch r {
	case RoleStart:
		return "start"
	case RoleWaypoint:
		return "waypoint"
	case RolePath:
		return "path"
	default:
		return "other"
	}
}

// Scene is everything a Renderer needs.
type Scene struct {
	Graph *core.Graph
	Tour  *roundtrip.Tour
}

// Renderer turns a Scene into bytes on w.
type Renderer interface {
	Render(w io.Writer, s *Scene) error
	Name() string
}

// Get returns the renderer registered under format ("text" or "dot").
func Get(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case "text", "":
		return &TextRenderer{}, nil
	case "dot":
		return &DOTRenderer{}, nil
	default:
		return nil, fmt.Errorf("render: unknown format %q", format)
	}
}

// Formats lists the names accepted by Get.
func Formats() []string { return []string{"text", "dot"} }

// Visualize validates that start and every waypoint exist in g, plans the
// round trip and renders it with r. The planned tour is returned so callers
// can report on it.
//
// Errors:
//   - core.ErrNilGraph if g is nil.
//   - *roundtrip.ValidationError naming the first missing node (start first).
//   - any planner or renderer error.
func Visualize(w io.Writer, g *core.Graph, start string, waypoints []string, r Renderer, opts ...roundtrip.Option) (*roundtrip.Tour, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if !g.HasVertex(start) {
		return nil, roundtrip.UnknownNode(start)
	}
	for _, wp := range waypoints {
		if !g.HasVertex(wp) {
			return nil, roundtrip.UnknownNode(wp)
		}
	}

	tour, err := roundtrip.Plan(g, start, waypoints, opts...)
	if err != nil {
		return nil, err
	}
	if err = r.Render(w, &Scene{Graph: g, Tour: tour}); err != nil {
		return tour, fmt.Errorf("render: %s: %w", r.Name(), err)
	}

	return tour, nil
}

// roles assigns each vertex its highest-precedence role: start > waypoint > path > other.
func (s *Scene) roles() map[string]Role {
	out := make(map[string]Role, s.Graph.VertexCount())
	for _, v := range s.Graph.Vertices() {
		out[v] = RoleOther
	}
	if s.Tour == nil {
		return out
	}
	raise := func(id string, r Role) {
		if r > out[id] {
			out[id] = r
		}
	}
	for _, id := range s.Tour.Path {
		raise(id, RolePath)
	}
	for _, id := range s.Tour.Waypoints {
		raise(id, RoleWaypoint)
	}
	raise(s.Tour.Start, RoleStart)

	return out
}

// pathPairs is the set of consecutive (from, to) hops in the tour walk.
func (s *Scene) pathPairs() map[[2]string]bool {
	out := make(map[[2]string]bool)
	if s.Tour == nil {
		return out
	}
	for i := 1; i < len(s.Tour.Path); i++ {
		out[[2]string{s.Tour.Path[i-1], s.Tour.Path[i]}] = true
	}

	return out
}

// drawnEdge is one line in a drawing. Both is set when a reciprocal arc with
// the same weight exists, in which case the pair is drawn once.
type drawnEdge struct {
	From, To string
	Weight   float64
	Both     bool
	OnPath   bool
}

// drawnEdges folds reciprocal arcs of equal weight into single undirected
// lines and marks the lines the tour walks over.
func (s *Scene) drawnEdges() []drawnEdge {
	type key struct {
		from, to string
		w        float64
	}
	onPath := s.pathPairs()
	open := make(map[key][]int) // unmatched arcs awaiting their reverse
	var out []drawnEdge

	for _, e := range s.Graph.Edges() {
		rev := key{e.To, e.From, e.Weight}
		if idx := open[rev]; len(idx) > 0 && e.From != e.To {
			i := idx[0]
			open[rev] = idx[1:]
			out[i].Both = true
			out[i].OnPath = out[i].OnPath || onPath[[2]string{e.From, e.To}]
			continue
		}
		k := key{e.From, e.To, e.Weight}
		open[k] = append(open[k], len(out))
		out = append(out, drawnEdge{
			From:   e.From,
			To:     e.To,
			Weight: e.Weight,
			OnPath: onPath[[2]string{e.From, e.To}],
		})
	}

	return out
}

// sortedByRole returns vertex IDs ordered start, waypoints, path, other; ties by ID.
func sortedByRole(roles map[string]Role) []string {
	ids := make([]string, 0, len(roles))
	for id := range roles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if roles[ids[i]] != roles[ids[j]] {
			return roles[ids[i]] > roles[ids[j]]
		}
		return ids[i] < ids[j]
	})

	return ids
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}

// formatCost is formatWeight with +Inf spelled "unreachable".
func formatCost(c float64) string {
	if math.IsInf(c, 1) {
		return "unreachable"
	}
	return formatWeight(c)
}
