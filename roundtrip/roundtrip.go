// SPDX-License-Identifier: MIT

package roundtrip

import (
	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/dijkstra"
)

// RoundTrip returns the concatenated walk start → waypoints[0] → … → start
// and its total cost. It is Plan without the per-leg breakdown.
func RoundTrip(g *core.Graph, start string, waypoints []string) ([]string, float64, error) {
	tour, err := Plan(g, start, waypoints)
	if err != nil {
		return nil, 0, err
	}

	return tour.Path, tour.Cost, nil
}

// Plan stitches one shortest path per leg into a closed tour visiting every
// waypoint in the given order and returning to start.
//
// Steps:
//  1. For each waypoint, fail with an unknown-node *ValidationError if it is not
//     a vertex of g; otherwise run ShortestPath from the current position to it.
//  2. Run the return leg from the last stop back to start.
//  3. The first leg contributes its whole path; every later leg drops its first
//     node, which is the previous leg's last node.
//
// Behavior highlights:
//   - No waypoints ⇒ one leg start → start, giving ([start], 0).
//   - An unreachable leg contributes its degenerate [target] path and +Inf cost;
//     the total becomes +Inf and is not treated as an error.
//   - start itself is not pre-validated; a missing start surfaces as
//     dijkstra.ErrVertexNotFound from the first leg.
//
// Complexity: O(k · (V + E) log V) for k = len(waypoints)+1 legs.
func Plan(g *core.Graph, start string, waypoints []string, opts ...Option) (*Tour, error) {
	if g == nil {
		return nil, dijkstra.ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	tour := &Tour{
		Start:     start,
		Waypoints: append([]string(nil), waypoints...),
		Legs:      make([]Leg, 0, len(waypoints)+1),
	}

	current := start
	for _, wp := range waypoints {
		if !g.HasVertex(wp) {
			cfg.Logger.Debug("round trip rejected", "start", start, "node", wp)
			return nil, UnknownNode(wp)
		}
		if err := tour.addLeg(g, current, wp, cfg); err != nil {
			return nil, err
		}
		current = wp
	}
	if err := tour.addLeg(g, current, start, cfg); err != nil {
		return nil, err
	}

	cfg.Logger.Debug("round trip planned",
		"start", start,
		"waypoints", len(waypoints),
		"nodes", len(tour.Path),
		"cost", tour.Cost,
	)

	return tour, nil
}

// addLeg computes from→to, records it, and appends its path without the junction node.
func (t *Tour) addLeg(g *core.Graph, from, to string, cfg Options) error {
	path, cost, err := dijkstra.ShortestPath(g, from, to, cfg.Dijkstra...)
	if err != nil {
		return err
	}
	cfg.Logger.Debug("leg", "from", from, "to", to, "cost", cost, "hops", len(path)-1)

	t.Legs = append(t.Legs, Leg{From: from, To: to, Path: path, Cost: cost})
	if len(t.Legs) == 1 {
		t.Path = append(t.Path, path...)
	} else {
		t.Path = append(t.Path, path[1:]...)
	}
	t.Cost += cost

	return nil
}
