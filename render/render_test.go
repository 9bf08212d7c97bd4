package render_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/render"
	"github.com/katalvlaran/waypath/roundtrip"
)

func fixtureGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(false))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 4))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("B", "D", 6))
	require.NoError(t, g.AddEdge("C", "D", 1))
	require.NoError(t, g.AddVertex("E"))

	return g
}

func TestGet(t *testing.T) {
	r, err := render.Get("text")
	require.NoError(t, err)
	require.Equal(t, "text", r.Name())

	r, err = render.Get("DOT")
	require.NoError(t, err)
	require.Equal(t, "dot", r.Name())

	_, err = render.Get("svg")
	require.Error(t, err)
	require.ElementsMatch(t, []string{"text", "dot"}, render.Formats())
}

func TestVisualize_Text(t *testing.T) {
	var buf bytes.Buffer
	tour, err := render.Visualize(&buf, fixtureGraph(t), "A", []string{"D"}, &render.TextRenderer{NoColor: true})
	require.NoError(t, err)
	require.Equal(t, 8.0, tour.Cost)

	out := buf.String()
	assert.Contains(t, out, "Route: A → B → C → D → C → B → A\n")
	assert.Contains(t, out, "Cost:  8\n")
	assert.Contains(t, out, "  ◉ A  start\n")
	assert.Contains(t, out, "  ◆ D  waypoint\n")
	assert.Contains(t, out, "  ● B  path\n")
	assert.Contains(t, out, "  ● C  path\n")
	assert.Contains(t, out, "  ○ E\n")

	// Mirror arcs collapse into one undirected line; route lines are tagged.
	assert.Contains(t, out, "  A ─── B  1  (route)\n")
	assert.Contains(t, out, "  C ─── D  1  (route)\n")
	assert.Contains(t, out, "  A ─── C  4\n")
	assert.Contains(t, out, "  B ─── D  6\n")
	assert.Equal(t, 1, strings.Count(out, "A ─── B"))
	assert.NotContains(t, out, "B ─── A")

	// Roles are listed start first, then waypoints, then path nodes, then the rest.
	require.Less(t, strings.Index(out, "◉ A"), strings.Index(out, "◆ D"))
	require.Less(t, strings.Index(out, "◆ D"), strings.Index(out, "● B"))
	require.Less(t, strings.Index(out, "● C"), strings.Index(out, "○ E"))
}

func TestVisualize_TextWithoutTTYHasNoEscapes(t *testing.T) {
	var buf bytes.Buffer
	_, err := render.Visualize(&buf, fixtureGraph(t), "A", []string{"B"}, &render.TextRenderer{})
	require.NoError(t, err)
	require.NotContains(t, buf.String(), "\x1b[")
}

func TestVisualize_UnreachableCost(t *testing.T) {
	var buf bytes.Buffer
	tour, err := render.Visualize(&buf, fixtureGraph(t), "A", []string{"E"}, &render.TextRenderer{NoColor: true})
	require.NoError(t, err)
	require.False(t, tour.Reachable())
	require.Contains(t, buf.String(), "Cost:  unreachable\n")
}

func TestVisualize_DirectedArcs(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 2))
	require.NoError(t, g.AddEdge("B", "A", 3))

	var buf bytes.Buffer
	_, err := render.Visualize(&buf, g, "A", []string{"B"}, &render.TextRenderer{NoColor: true})
	require.NoError(t, err)
	// Reverse arcs with different weights stay separate, one-way lines.
	assert.Contains(t, buf.String(), "A ──▶ B  2  (route)")
	assert.Contains(t, buf.String(), "B ──▶ A  3  (route)")
}

func TestVisualize_DOT(t *testing.T) {
	var buf bytes.Buffer
	_, err := render.Visualize(&buf, fixtureGraph(t), "A", []string{"B", "C"}, &render.DOTRenderer{})
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "digraph G {\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, `label="route: A -> B -> C -> B -> A  cost: 6";`)
	assert.Contains(t, out, `"A" [fillcolor="#2CD7C7", tooltip="start"];`)
	assert.Contains(t, out, `"B" [fillcolor="#F4D03F", tooltip="waypoint"];`)
	assert.Contains(t, out, `"D" [fillcolor="#FFFFFF", tooltip="other"];`)
	assert.Contains(t, out, `"A" -> "B" [label="1", dir=none, color="#E74C3C", penwidth=2.5];`)
	assert.Contains(t, out, `"B" -> "D" [label="6", dir=none];`)
}

func TestVisualize_DOTUnreachableCost(t *testing.T) {
	var buf bytes.Buffer
	_, err := render.Visualize(&buf, fixtureGraph(t), "A", []string{"E"}, &render.DOTRenderer{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "cost: unreachable")
	assert.NotContains(t, buf.String(), "Inf")
}

func TestVisualize_TextAlignsWideNodeIDs(t *testing.T) {
	g := core.NewGraph(core.WithDirected(false))
	require.NoError(t, g.AddEdge("Ä", "BB", 1))

	var buf bytes.Buffer
	_, err := render.Visualize(&buf, g, "Ä", []string{"BB"}, &render.TextRenderer{NoColor: true})
	require.NoError(t, err)
	// Columns are padded by display cells, not bytes.
	assert.Contains(t, buf.String(), "  ◉ Ä   start\n")
	assert.Contains(t, buf.String(), "  Ä  ─── BB  1  (route)\n")
}

func TestVisualize_ValidationErrors(t *testing.T) {
	g := fixtureGraph(t)
	var buf bytes.Buffer

	_, err := render.Visualize(&buf, g, "Q", []string{"B"}, &render.TextRenderer{})
	require.EqualError(t, err, "unknown node: Q")

	_, err = render.Visualize(&buf, g, "A", []string{"B", "Z"}, &render.TextRenderer{})
	var verr *roundtrip.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "Z", verr.Node)

	require.Empty(t, buf.String(), "nothing is drawn for invalid input")

	_, err = render.Visualize(&buf, nil, "A", nil, &render.TextRenderer{})
	require.ErrorIs(t, err, core.ErrNilGraph)
}

type brokenRenderer struct{}

func (brokenRenderer) Name() string { return "broken" }

func (brokenRenderer) Render(io.Writer, *render.Scene) error { return errors.New("boom") }

func TestVisualize_RendererErrorIsWrapped(t *testing.T) {
	tour, err := render.Visualize(io.Discard, fixtureGraph(t), "A", nil, brokenRenderer{})
	require.EqualError(t, err, "render: broken: boom")
	require.NotNil(t, tour)
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "start", render.RoleStart.String())
	assert.Equal(t, "waypoint", render.RoleWaypoint.String())
	assert.Equal(t, "path", render.RolePath.String())
	assert.Equal(t, "other", render.RoleOther.String())
}
