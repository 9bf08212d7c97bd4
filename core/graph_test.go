package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/waypath/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	// Undirected by default for most cases; individual tests may override.
	s.g = core.NewGraph(core.WithDirected(false))
}

func (s *GraphSuite) TestAddVertexAndHasVertex() {
	require := require.New(s.T())
	require.False(s.g.HasVertex("A"), "empty graph should not have A")

	require.NoError(s.g.AddVertex("A"))
	require.True(s.g.HasVertex("A"))

	// Idempotence: adding again does not change count
	require.NoError(s.g.AddVertex("A"))
	require.Equal(1, s.g.VertexCount())

	require.ErrorIs(s.g.AddVertex(""), core.ErrEmptyVertexID)
}

func (s *GraphSuite) TestAddEdgeMirrorsWhenUndirected() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("A", "B", 5))

	require.True(s.g.HasVertex("A") && s.g.HasVertex("B"), "AddEdge should auto-add vertices")
	require.True(s.g.HasEdge("A", "B"))
	require.True(s.g.HasEdge("B", "A"), "undirected graph stores the mirror arc")
	require.Equal(2, s.g.EdgeCount())
}

func (s *GraphSuite) TestAddEdgeDirectedStoresOneArc() {
	require := require.New(s.T())
	dg := core.NewGraph()
	require.True(dg.Directed())
	require.NoError(dg.AddEdge("X", "Y", 1))

	require.True(dg.HasEdge("X", "Y"))
	require.False(dg.HasEdge("Y", "X"))
	require.True(dg.HasVertex("Y"), "target of a directed arc is still a vertex")
	require.Equal(1, dg.EdgeCount())
}

func (s *GraphSuite) TestSelfLoopStoredOnce() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("A", "A", 3))
	nbs, err := s.g.Neighbors("A")
	require.NoError(err)
	require.Len(nbs, 1)
}

func (s *GraphSuite) TestAddEdgeRejectsBadWeights() {
	require := require.New(s.T())
	require.ErrorIs(s.g.AddEdge("A", "B", -1), core.ErrNegativeWeight)
	require.ErrorIs(s.g.AddEdge("A", "B", math.NaN()), core.ErrBadWeight)
	require.ErrorIs(s.g.AddEdge("A", "B", math.Inf(1)), core.ErrBadWeight)
	require.ErrorIs(s.g.AddEdge("", "B", 1), core.ErrEmptyVertexID)
	require.Zero(s.g.VertexCount(), "rejected edges must not add vertices")
}

func (s *GraphSuite) TestNeighborsPreserveInsertionOrder() {
	require := require.New(s.T())
	dg := core.NewGraph()
	require.NoError(dg.AddEdge("A", "C", 4))
	require.NoError(dg.AddEdge("A", "B", 1))
	require.NoError(dg.AddEdge("A", "C", 2))

	nbs, err := dg.Neighbors("A")
	require.NoError(err)
	require.Equal([]core.Edge{
		{From: "A", To: "C", Weight: 4},
		{From: "A", To: "B", Weight: 1},
		{From: "A", To: "C", Weight: 2},
	}, nbs)

	ids, err := dg.NeighborIDs("A")
	require.NoError(err)
	require.Equal([]string{"C", "B"}, ids)

	deg, err := dg.Degree("A")
	require.NoError(err)
	require.Equal(3, deg)
}

func (s *GraphSuite) TestNeighborsErrors() {
	require := require.New(s.T())
	_, err := s.g.Neighbors("")
	require.ErrorIs(err, core.ErrEmptyVertexID)
	_, err = s.g.Neighbors("missing")
	require.ErrorIs(err, core.ErrVertexNotFound)
	_, err = s.g.Degree("missing")
	require.ErrorIs(err, core.ErrVertexNotFound)
}

func (s *GraphSuite) TestNeighborsReturnsCopy() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("A", "B", 1))
	nbs, err := s.g.Neighbors("A")
	require.NoError(err)
	nbs[0].Weight = 99

	again, err := s.g.Neighbors("A")
	require.NoError(err)
	require.Equal(1.0, again[0].Weight)
}

func (s *GraphSuite) TestVerticesSortedAndInsertionOrder() {
	require := require.New(s.T())
	require.NoError(s.g.AddVertex("C"))
	require.NoError(s.g.AddEdge("B", "A", 1))

	require.Equal([]string{"A", "B", "C"}, s.g.Vertices())
	require.Equal([]string{"C", "B", "A"}, s.g.InsertionOrder())
}

func (s *GraphSuite) TestStats() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("A", "B", 1))
	require.NoError(s.g.AddVertex("E"))

	st := s.g.Stats()
	require.False(st.Directed)
	require.Equal(3, st.VertexCount)
	require.Equal(2, st.EdgeCount)
	require.Equal(1, st.IsolatedCount)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestFromAdjacency(t *testing.T) {
	g, err := core.FromAdjacency(map[string][]core.Arc{
		"A": {{To: "B", Weight: 1}, {To: "C", Weight: 4}},
		"B": {{To: "A", Weight: 1}},
		"E": {},
	})
	require.NoError(t, err)

	// C only appears as a neighbor but still becomes a vertex.
	require.Equal(t, []string{"A", "B", "C", "E"}, g.Vertices())
	require.True(t, g.Directed())
	require.False(t, g.HasEdge("C", "A"))

	nbs, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Equal(t, "B", nbs[0].To)
	require.Equal(t, "C", nbs[1].To)

	adj := g.Adjacency()
	require.Equal(t, []core.Arc{{To: "A", Weight: 1}}, adj["B"])
	require.NotNil(t, adj["E"])
	require.Empty(t, adj["C"])
}

func TestFromAdjacency_RejectsNegativeWeight(t *testing.T) {
	_, err := core.FromAdjacency(map[string][]core.Arc{
		"A": {{To: "B", Weight: -2}},
	})
	require.ErrorIs(t, err, core.ErrNegativeWeight)
}

func TestHasVertex_NilGraph(t *testing.T) {
	var g *core.Graph
	require.False(t, g.HasVertex("A"))
}
