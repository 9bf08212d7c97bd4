// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/waypath/bfs"
	"github.com/katalvlaran/waypath/dijkstra"
	"github.com/katalvlaran/waypath/graphfile"
	"github.com/katalvlaran/waypath/inspect"
	"github.com/katalvlaran/waypath/render"
	"github.com/katalvlaran/waypath/roundtrip"
)

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path START END",
		Short: "Print the cheapest path between two nodes",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			start, end := args[0], args[1]
			if err := a.requireNodes(start, end); err != nil {
				return err
			}

			path, cost, err := dijkstra.ShortestPath(a.graph, start, end)
			if err != nil {
				return err
			}
			a.log.Debug("shortest path", slog.String("start", start), slog.String("end", end), slog.Float64("cost", cost))

			return newPrinter(a.stdout, a.color).route(path, cost, start, end)
		},
	}
}

func newTourCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tour START [WAYPOINT...]",
		Short: "Plan a round trip from START through each waypoint and back",
		Long: `Plan a round trip that leaves START, visits each waypoint in the order
given and returns to START. Each leg is the cheapest path between its two
endpoints; waypoint order is never optimized.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.requireNodes(args[0]); err != nil {
				return err
			}

			tour, err := roundtrip.Plan(a.graph, args[0], args[1:], roundtrip.WithLogger(a.log))
			if err != nil {
				return err
			}

			return newPrinter(a.stdout, a.color).tour(tour)
		},
	}
}

func newInspectCmd(a *app) *cobra.Command {
	var (
		reach   bool
		maxHops int
	)
	cmd := &cobra.Command{
		Use:   "inspect NODE",
		Short: "List the outgoing connections of a node",
		Long: `List the outgoing connections of NODE with their weights.

With --reach, list instead every node reachable from NODE grouped by hop
count, plus the nodes no route can reach.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if reach {
				r, err := inspect.Reachability(a.graph, args[0], bfs.WithMaxHops(maxHops))
				if err != nil {
					return err
				}
				a.log.Debug("reachability", slog.String("node", r.Node), slog.Int("levels", len(r.Levels)), slog.Int("unreached", len(r.Unreached)))
				return inspect.FprintReach(a.stdout, r)
			}

			report := inspect.Connections(a.graph, args[0])
			a.log.Debug("inspect", slog.String("node", report.Node), slog.String("status", report.Status().String()))

			return inspect.Fprint(a.stdout, report)
		},
	}
	cmd.Flags().BoolVar(&reach, "reach", false, "list reachable nodes by hop count")
	cmd.Flags().IntVar(&maxHops, "max-hops", 0, "with --reach, stop after this many hops (0 = no limit)")

	return cmd
}

func newRenderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render START [WAYPOINT...]",
		Short: "Draw the graph with the planned round trip highlighted",
		Long: `Plan the same round trip as 'tour' and draw the whole graph with the
start node, waypoints and route edges highlighted.

Formats:
  text  - styled terminal output (default)
  dot   - Graphviz DOT, e.g. waypath render A D --format dot | dot -Tpng -o route.png`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			r, err := render.Get(a.cfg.Format)
			if err != nil {
				return err
			}
			if tr, ok := r.(*render.TextRenderer); ok {
				tr.NoColor = !a.color
			}

			tour, err := render.Visualize(a.stdout, a.graph, args[0], args[1:], r, roundtrip.WithLogger(a.log))
			if err != nil {
				return err
			}
			a.log.Info("rendered", slog.String("format", r.Name()), slog.Int("legs", len(tour.Legs)))

			return nil
		},
	}
	cmd.Flags().StringVar(&a.format, "format", "", "output format: "+strings.Join(render.Formats(), ", "))

	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the loaded graph as a YAML adjacency document",
		Long: `Write the loaded graph (the sample graph unless --graph is set) as a
graph file in the adjacency shape. Undirected edges become reciprocal arcs.
The output can be passed back with --graph.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			data, err := graphfile.Marshal(a.graph)
			if err != nil {
				return err
			}
			_, err = a.stdout.Write(data)

			return err
		},
	}
}
