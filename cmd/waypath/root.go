// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/waypath/config"
	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/graphfile"
	"github.com/katalvlaran/waypath/roundtrip"
)

// app carries state resolved once in PersistentPreRunE and shared by every
// subcommand.
type app struct {
	stdout io.Writer
	stderr io.Writer

	// flag values
	configPath string
	graphPath  string
	logLevel   string
	format     string
	noColor    bool

	cfg   *config.Config
	graph *core.Graph
	log   *slog.Logger
	color bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "waypath",
		Short: "Shortest paths and round trips over a weighted graph",
		Long: `waypath answers routing questions about a small weighted graph.

Subcommands:
  path     - cheapest path between two nodes
  tour     - round trip from a start node through waypoints and back
  inspect  - list the outgoing connections of a node
  render   - draw the graph with a planned round trip highlighted
  export   - write the loaded graph as a YAML graph file

Examples:
  waypath path A D
  waypath tour A B C
  waypath --graph city.yaml render depot north south --format dot`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.setup(cmd) },
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a waypath.yaml config file")
	pf.StringVar(&a.graphPath, "graph", "", "graph file (YAML or JSON); defaults to the built-in sample")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&a.noColor, "no-color", false, "disable styled output")

	root.AddCommand(
		newPathCmd(a),
		newTourCmd(a),
		newInspectCmd(a),
		newRenderCmd(a),
		newExportCmd(a),
	)

	return root
}

// setup resolves configuration (defaults, file, flags), then builds the
// logger and loads the graph.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("graph") {
		cfg.Graph = a.graphPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if a.noColor {
		cfg.Color = false
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = cfg.Log.NewLogger(a.stderr)
	a.color = cfg.Color && isTerminal(a.stdout)

	if cfg.Graph == "" {
		a.graph = graphfile.Sample()
		a.log.Debug("using sample graph")
	} else if a.graph, err = graphfile.Load(cfg.Graph); err != nil {
		return err
	}

	stats := a.graph.Stats()
	a.log.Info("graph loaded",
		slog.String("source", sourceName(cfg.Graph)),
		slog.Int("nodes", stats.VertexCount),
		slog.Int("edges", stats.EdgeCount),
		slog.Bool("directed", stats.Directed),
	)

	return nil
}

// requireNodes reports the first id missing from the graph.
func (a *app) requireNodes(ids ...string) error {
	for _, id := range ids {
		if !a.graph.HasVertex(id) {
			return roundtrip.UnknownNode(id)
		}
	}

	return nil
}

func sourceName(path string) string {
	if path == "" {
		return "sample"
	}

	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
