// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/waypath/core"
)

type queueItem struct {
	id   string
	hops int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g from start, ignoring weights.
// Arcs are followed in their insertion order, so Order is reproducible.
//
// Errors: core.ErrNilGraph, core.ErrVertexNotFound (wrapped with the id),
// ErrOptionViolation, ctx.Err() on cancellation, or a wrapped OnVisit error.
//
// Complexity: O(V + E).
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("bfs: start %q: %w", start, core.ErrVertexNotFound)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]string, 0, n),
			Hops:   make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, hops int, parent string) {
	w.res.Hops[id] = hops
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, hops: hops})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.hops); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand enqueues every unseen, unfiltered neighbor within MaxHops.
func (w *walker) expand(item queueItem) error {
	next := item.hops + 1
	if w.opts.MaxHops > 0 && next > w.opts.MaxHops {
		return nil
	}
	arcs, err := w.graph.Neighbors(item.id)
	if err != nil {
		return err
	}
	for _, e := range arcs {
		if _, seen := w.res.Hops[e.To]; seen {
			continue
		}
		if !w.opts.FilterArc(e.From, e.To, e.Weight) {
			continue
		}
		w.enqueue(e.To, next, item.id)
	}

	return nil
}
