// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette colors, one per node role plus accents.
var (
	ColorStart    = lipgloss.Color("#2CD7C7")
	ColorWaypoint = lipgloss.Color("#F4D03F")
	ColorPath     = lipgloss.Color("#1D9EA3")
	ColorOther    = lipgloss.Color("#2C4A54")
	ColorRoute    = lipgloss.Color("#E74C3C")
)

// Role markers keep roles distinguishable when color is unavailable.
var roleMarker = map[Role]string{
	RoleStart:    "◉",
	RoleWaypoint: "◆",
	RolePath:     "●",
	RoleOther:    "○",
}

// TextRenderer draws the scene for a terminal using lipgloss styles.
// Color depth is detected from the output writer; NoColor forces plain text.
type TextRenderer struct {
	NoColor bool
}

// Name implements Renderer.
func (t *TextRenderer) Name() string { return "text" }

type textStyles struct {
	title lipgloss.Style
	muted lipgloss.Style
	route lipgloss.Style
	roles map[Role]lipgloss.Style
}

func (t *TextRenderer) styles(w io.Writer) textStyles {
	if t.NoColor {
		plain := lipgloss.NewStyle()
		return textStyles{
			title: plain, muted: plain, route: plain,
			roles: map[Role]lipgloss.Style{RoleStart: plain, RoleWaypoint: plain, RolePath: plain, RoleOther: plain},
		}
	}

	re := lipgloss.NewRenderer(w)
	return textStyles{
		title: re.NewStyle().Bold(true).Foreground(ColorStart),
		muted: re.NewStyle().Foreground(ColorOther),
		route: re.NewStyle().Bold(true).Foreground(ColorRoute),
		roles: map[Role]lipgloss.Style{
			RoleStart:    re.NewStyle().Bold(true).Foreground(ColorStart),
			RoleWaypoint: re.NewStyle().Bold(true).Foreground(ColorWaypoint),
			RolePath:     re.NewStyle().Foreground(ColorPath),
			RoleOther:    re.NewStyle().Foreground(ColorOther),
		},
	}
}

// Render implements Renderer.
//
// Layout:
//
//	Route: A → B → C → B → A
//	Cost:  6
//
//	Nodes
//	  ◉ A  start
//	  ...
//
//	Edges
//	  A ── B  1  (route)
func (t *TextRenderer) Render(w io.Writer, s *Scene) error {
	st := t.styles(w)
	roles := s.roles()
	var b strings.Builder

	if s.Tour != nil {
		fmt.Fprintf(&b, "%s %s\n", st.title.Render("Route:"), st.route.Render(strings.Join(s.Tour.Path, " → ")))
		fmt.Fprintf(&b, "%s  %s\n\n", st.title.Render("Cost:"), formatCost(s.Tour.Cost))
	}

	ids := sortedByRole(roles)
	width := 0
	for _, id := range ids {
		if w := lipgloss.Width(id); w > width {
			width = w
		}
	}

	b.WriteString(st.title.Render("Nodes") + "\n")
	for _, id := range ids {
		r := roles[id]
		label := ""
		if r != RoleOther {
			label = "  " + st.muted.Render(r.String())
		}
		fmt.Fprintf(&b, "  %s%s\n", st.roles[r].Render(roleMarker[r]+" "+pad(id, width)), label)
	}

	edges := s.drawnEdges()
	b.WriteString("\n" + st.title.Render("Edges") + "\n")
	if len(edges) == 0 {
		b.WriteString("  " + st.muted.Render("(none)") + "\n")
	}
	for _, e := range edges {
		conn := "──▶"
		if e.Both {
			conn = "───"
		}
		line := fmt.Sprintf("%s %s %s  %s", pad(e.From, width), conn, pad(e.To, width), formatWeight(e.Weight))
		if e.OnPath {
			fmt.Fprintf(&b, "  %s  %s\n", st.route.Render(line), st.muted.Render("(route)"))
			continue
		}
		fmt.Fprintf(&b, "  %s\n", line)
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// pad right-fills s to width terminal cells.
func pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
