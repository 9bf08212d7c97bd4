// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fill colors per role for Graphviz output.
var dotFill = map[Role]string{
	RoleStart:    "#2CD7C7",
	RoleWaypoint: "#F4D03F",
	RolePath:     "#A9DFDB",
	RoleOther:    "#FFFFFF",
}

// DOTRenderer emits Graphviz DOT. Every edge carries its weight as a label;
// edges the route walks over are drawn bold red. Reciprocal arc pairs are
// drawn once without arrowheads.
type DOTRenderer struct{}

// Name implements Renderer.
func (d *DOTRenderer) Name() string { return "dot" }

// Render implements Renderer.
func (d *DOTRenderer) Render(w io.Writer, s *Scene) error {
	var b strings.Builder
	roles := s.roles()

	b.WriteString("digraph G {\n")
	b.WriteString("  node [shape=circle, style=filled, fontname=\"Helvetica\"];\n")
	b.WriteString("  edge [fontname=\"Helvetica\"];\n")

	if s.Tour != nil {
		cost := formatCost(s.Tour.Cost)
		b.WriteString(fmt.Sprintf("  label=%s;\n", strconv.Quote("route: "+strings.Join(s.Tour.Path, " -> ")+"  cost: "+cost)))
	}

	for _, id := range sortedByRole(roles) {
		r := roles[id]
		b.WriteString(fmt.Sprintf("  %s [fillcolor=%q, tooltip=%q];\n", strconv.Quote(id), dotFill[r], r.String()))
	}

	for _, e := range s.drawnEdges() {
		attrs := []string{"label=" + strconv.Quote(formatWeight(e.Weight))}
		if e.Both {
			attrs = append(attrs, "dir=none")
		}
		if e.OnPath {
			attrs = append(attrs, `color="#E74C3C"`, "penwidth=2.5")
		}
		b.WriteString(fmt.Sprintf("  %s -> %s [%s];\n", strconv.Quote(e.From), strconv.Quote(e.To), strings.Join(attrs, ", ")))
	}

	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())

	return err
}
