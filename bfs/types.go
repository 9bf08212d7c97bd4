// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by Result.PathTo for vertices the search never saw.
	ErrNotReached = errors.New("bfs: vertex not reached")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by BFS.
type Option func(*Options)

// Options holds parameters and callbacks for one search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a vertex is dequeued. A non-nil error aborts
	// the search and is returned wrapped.
	OnVisit func(id string, hops int) error

	// MaxHops, if > 0, stops exploring beyond this many edges from the start.
	MaxHops int

	// FilterArc can skip arcs by returning false. Called for each from→to.
	FilterArc func(from, to string, weight float64) bool

	err error
}

// DefaultOptions returns options with no hop limit, no filter and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnVisit:   func(string, int) error { return nil },
		FilterArc: func(string, string, float64) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every visit.
func WithOnVisit(fn func(id string, hops int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxHops limits the search depth.
//
//	n > 0: explore at most n edges away
//	n == 0: no limit
//	n < 0: ErrOptionViolation
func WithMaxHops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxHops cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxHops = n
	}
}

// WithFilterArc skips arcs when fn returns false.
func WithFilterArc(fn func(from, to string, weight float64) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterArc = fn
		}
	}
}

// Result holds the outcome of a traversal:
//   - Order: vertices in visit sequence, start first.
//   - Hops: edge count from the start for every reached vertex.
//   - Parent: predecessor of each reached vertex except the start.
type Result struct {
	Start  string
	Order  []string
	Hops   map[string]int
	Parent map[string]string
}

// Reached reports whether id was visited.
func (r *Result) Reached(id string) bool {
	_, ok := r.Hops[id]
	return ok
}

// PathTo reconstructs the fewest-edges path from the start to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %q", ErrNotReached, dest)
	}
	path := make([]string, 0, r.Hops[dest]+1)
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
