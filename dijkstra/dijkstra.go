// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/waypath/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of g.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (+Inf if unreachable).
//   - prev: vertex ID → predecessor on one shortest path; "" for the source
//     and for unreachable vertices. Every vertex of g has an entry.
//   - err:  ErrEmptySource, ErrNilGraph or ErrVertexNotFound.
//
// Negative weights cannot occur: core.Graph rejects them on insertion.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, cfg.Source)
	}

	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, len(vertices)),
		prev:    make(map[string]string, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns the minimum-cost walk from start to end and its cost.
//
// Behavior:
//   - start == end yields ([start], 0).
//   - If end is unreachable the result is ([end], +Inf): reconstruction stops at
//     the first vertex with no recorded predecessor, which is end itself.
//   - Ties between equal-cost frontier entries are broken by insertion order;
//     any equal-cost path is an acceptable answer.
//
// Errors:
//   - ErrNilGraph, ErrEmptySource, or ErrVertexNotFound (wrapped with the
//     offending ID) when start or end is not a vertex of g.
func ShortestPath(g *core.Graph, start, end string, opts ...Option) ([]string, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if !g.HasVertex(end) {
		return nil, 0, fmt.Errorf("%w: target %q", ErrVertexNotFound, end)
	}

	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, Source(start))
	dist, prev, err := Dijkstra(g, all...)
	if err != nil {
		return nil, 0, err
	}

	return PathTo(prev, end), dist[end], nil
}

// PathTo rebuilds the walk ending at end by following prev links backward
// until a vertex with no predecessor, then reversing. A vertex with no entry
// in prev is treated as having no predecessor, so the result is never empty.
//
// Complexity: O(path length)
func PathTo(prev map[string]string, end string) []string {
	path := []string{end}
	for node := prev[end]; node != ""; node = prev[node] {
		path = append(path, node)
		// prev forms a tree rooted at the source; this only trips on a hand-built cyclic map.
		if len(path) > len(prev)+1 {
			break
		}
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64
	prev    map[string]string
	pq      nodePQ
	seq     uint64 // insertion counter for FIFO tie-breaking
}

// init sets every distance to +Inf, clears predecessors and seeds the heap with the source.
func (r *runner) init(vertices []string) {
	inf := math.Inf(1)
	for _, v := range vertices {
		r.dist[v] = inf
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

func (r *runner) push(id string, d float64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
	r.seq++
}

// process pops the closest frontier entry until the heap is empty or the
// closest entry lies beyond MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		// Stale entry: a shorter distance was recorded after this push.
		if item.dist > r.dist[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		if err := r.relax(item.id, item.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor of u through u, in adjacency order.
func (r *runner) relax(u string, du float64) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	var candidate float64
	for _, e := range edges {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		candidate = du + e.Weight
		if candidate > r.options.MaxDistance {
			continue
		}
		// core guarantees e.To is a vertex, so dist[e.To] is initialized.
		if candidate >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = candidate
		r.prev[e.To] = u
		r.push(e.To, candidate)
	}

	return nil
}

// nodeItem is one frontier entry: a vertex and the tentative distance it was pushed with.
type nodeItem struct {
	id   string
	dist float64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by push order.
// Superseded entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
