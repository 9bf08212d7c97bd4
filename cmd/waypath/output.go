// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/waypath/config"
	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/render"
	"github.com/katalvlaran/waypath/roundtrip"
)

// printer writes path and tour summaries, styled when color is on.
type printer struct {
	w     io.Writer
	label lipgloss.Style
	muted lipgloss.Style
	bad   lipgloss.Style
}

func newPrinter(w io.Writer, color bool) *printer {
	if !color {
		plain := lipgloss.NewStyle()
		return &printer{w: w, label: plain, muted: plain, bad: plain}
	}
	re := lipgloss.NewRenderer(w)

	return &printer{
		w:     w,
		label: re.NewStyle().Bold(true).Foreground(render.ColorStart),
		muted: re.NewStyle().Foreground(render.ColorOther),
		bad:   re.NewStyle().Foreground(render.ColorRoute),
	}
}

// route prints the result of a single shortest-path query.
//
//	Route: A → B → C → D
//	Cost:  4
func (p *printer) route(path []string, cost float64, start, end string) error {
	line := strings.Join(path, " → ")
	if math.IsInf(cost, 1) {
		line = p.bad.Render(fmt.Sprintf("none, %s is unreachable from %s", end, start))
	}
	_, err := fmt.Fprintf(p.w, "%s %s\n%s  %s\n",
		p.label.Render("Route:"), line,
		p.label.Render("Cost:"), p.cost(cost))

	return err
}

// tour prints the concatenated route followed by one line per leg.
func (p *printer) tour(t *roundtrip.Tour) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", p.label.Render("Route:"), strings.Join(t.Path, " → "))
	fmt.Fprintf(&b, "%s  %s\n", p.label.Render("Cost:"), p.cost(t.Cost))
	if len(t.Legs) > 0 {
		b.WriteString("\n" + p.label.Render("Legs") + "\n")
	}
	for i, leg := range t.Legs {
		via := strings.Join(leg.Path, " → ")
		if !leg.Reachable() {
			via = leg.To
		}
		fmt.Fprintf(&b, "  %d. %s ⇢ %s  %s  %s\n", i+1, leg.From, leg.To, p.cost(leg.Cost), p.muted.Render(via))
	}
	_, err := io.WriteString(p.w, b.String())

	return err
}

func (p *printer) cost(c float64) string {
	if math.IsInf(c, 1) {
		return p.bad.Render("unreachable")
	}

	return strconv.FormatFloat(c, 'g', -1, 64)
}

// printError reports err on w with a short hint for the common cases.
func printError(w io.Writer, err error) {
	style := lipgloss.NewRenderer(w).NewStyle().Bold(true).Foreground(render.ColorRoute)
	fmt.Fprintln(w, style.Render("Error:")+" "+err.Error())

	switch {
	case errors.Is(err, roundtrip.ErrUnknownNode), errors.Is(err, core.ErrVertexNotFound):
		fmt.Fprintln(w, "  Run 'waypath inspect NODE' or check the node names in the graph file.")
	case errors.Is(err, config.ErrInvalidConfig):
		fmt.Fprintln(w, "  Check the --config file and flag values.")
	}
}
