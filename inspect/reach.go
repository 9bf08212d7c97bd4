// SPDX-License-Identifier: MIT

package inspect

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/katalvlaran/waypath/bfs"
	"github.com/katalvlaran/waypath/core"
)

// Reach groups the vertices reachable from Node by hop count.
type Reach struct {
	Node   string
	Exists bool

	// Levels[i] holds the vertices exactly i+1 hops away, in visit order.
	Levels [][]string

	// Beyond lists vertices a walk could reach but only past the hop
	// limit, in visit order. Empty when no limit is set.
	Beyond []string

	// Unreached lists vertices no walk from Node reaches, sorted.
	Unreached []string
}

// Reachability walks g breadth-first from node. A missing node yields
// Exists == false and a nil error; opts are passed through to bfs.BFS.
// Under a hop limit a second, unlimited walk separates Beyond from Unreached.
func Reachability(g *core.Graph, node string, opts ...bfs.Option) (Reach, error) {
	r := Reach{Node: node}
	if g == nil {
		return r, core.ErrNilGraph
	}
	if !g.HasVertex(node) {
		return r, nil
	}
	r.Exists = true

	res, err := bfs.BFS(g, node, opts...)
	if err != nil {
		return r, err
	}
	for _, id := range res.Order[1:] {
		h := res.Hops[id]
		for len(r.Levels) < h {
			r.Levels = append(r.Levels, nil)
		}
		r.Levels[h-1] = append(r.Levels[h-1], id)
	}
	full := res
	if len(res.Order) < g.VertexCount() {
		unlimited := append(append([]bfs.Option(nil), opts...), bfs.WithMaxHops(0))
		if full, err = bfs.BFS(g, node, unlimited...); err != nil {
			return r, err
		}
	}
	for _, id := range full.Order {
		if !res.Reached(id) {
			r.Beyond = append(r.Beyond, id)
		}
	}
	for _, id := range g.Vertices() {
		if !full.Reached(id) {
			r.Unreached = append(r.Unreached, id)
		}
	}
	sort.Strings(r.Unreached)

	return r, nil
}

// FprintReach writes r to w:
//
//	Reachable from "A":
//	  1 hop:  B, C
//	  2 hops: D
//	Beyond hop limit: F
//	Unreachable: E
func FprintReach(w io.Writer, r Reach) error {
	var b strings.Builder
	switch {
	case !r.Exists:
		fmt.Fprintf(&b, "Node %q does not exist in the graph.\n", r.Node)
	case len(r.Levels) == 0:
		fmt.Fprintf(&b, "Nothing is reachable from %q.\n", r.Node)
	default:
		fmt.Fprintf(&b, "Reachable from %q:\n", r.Node)
		for i, ids := range r.Levels {
			unit := "hops:"
			if i == 0 {
				unit = "hop: "
			}
			fmt.Fprintf(&b, "  %d %s %s\n", i+1, unit, strings.Join(ids, ", "))
		}
	}
	if r.Exists && len(r.Beyond) > 0 {
		fmt.Fprintf(&b, "Beyond hop limit: %s\n", strings.Join(r.Beyond, ", "))
	}
	if r.Exists && len(r.Unreached) > 0 {
		fmt.Fprintf(&b, "Unreachable: %s\n", strings.Join(r.Unreached, ", "))
	}
	_, err := io.WriteString(w, b.String())

	return err
}
