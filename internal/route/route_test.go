package route_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davider90/argumappr/argraph"
	"github.com/davider90/argumappr/internal/acyclic"
	"github.com/davider90/argumappr/internal/order"
	"github.com/davider90/argumappr/internal/position"
	"github.com/davider90/argumappr/internal/rank"
	"github.com/davider90/argumappr/internal/route"
	"github.com/davider90/argumappr/internal/wgraph"
)

func runPipeline(t *testing.T, ag *argraph.Graph) *acyclic.Result {
	t.Helper()
	ctx := context.Background()
	g := wgraph.FromArgraph(ag)
	g.NodeSep = argraph.DefaultNodeSep
	g.RankSep = argraph.DefaultRankSep
	g.MaxRankingLoops = argraph.DefaultMaxRankingLoops
	g.MaxCrossingLoops = argraph.DefaultMaxCrossingLoops

	acy := acyclic.RemoveCycles(g)
	rank.Assign(ctx, g)
	res := order.Run(ctx, g)
	position.Run(g, res)
	route.Run(g, ag, acy)
	return acy
}

func TestRunProducesThreePointRouteBetweenEndpoints(t *testing.T) {
	ag := argraph.NewGraph()
	a := ag.AddVertex("a")
	b := ag.AddVertex("b")
	e := ag.AddEdge(a, b, "")

	runPipeline(t, ag)

	if assert.Len(t, e.Label.Points, 3) {
		assert.InDelta(t, a.Label.X, e.Label.Points[0].X, 0.001)
		assert.InDelta(t, a.Label.Y, e.Label.Points[0].Y, 0.001)
		assert.InDelta(t, b.Label.X, e.Label.Points[2].X, 0.001)
		assert.InDelta(t, b.Label.Y, e.Label.Points[2].Y, 0.001)
	}
}

func TestRunCollapsesLongEdgeIntoThreePoints(t *testing.T) {
	ag := argraph.NewGraph()
	a := ag.AddVertex("a")
	b := ag.AddVertex("b")
	c := ag.AddVertex("c")
	ag.AddEdge(a, b, "")
	ag.AddEdge(b, c, "")
	long := ag.AddEdge(a, c, "")

	runPipeline(t, ag)

	if assert.Len(t, long.Label.Points, 3) {
		assert.InDelta(t, a.Label.X, long.Label.Points[0].X, 0.001)
		assert.InDelta(t, a.Label.Y, long.Label.Points[0].Y, 0.001)
		assert.InDelta(t, c.Label.X, long.Label.Points[2].X, 0.001)
		assert.InDelta(t, c.Label.Y, long.Label.Points[2].Y, 0.001)
	}
}

func TestRunRestoresReversedEdgeDirection(t *testing.T) {
	ag := argraph.NewGraph()
	a := ag.AddVertex("a")
	b := ag.AddVertex("b")
	c := ag.AddVertex("c")
	ab := ag.AddEdge(a, b, "")
	ag.AddEdge(b, c, "")
	ca := ag.AddEdge(c, a, "")

	acy := runPipeline(t, ag)
	assert.NotEmpty(t, acy.ReversedEdges)

	if assert.Len(t, ca.Label.Points, 3) {
		assert.InDelta(t, c.Label.X, ca.Label.Points[0].X, 0.001)
		assert.InDelta(t, a.Label.X, ca.Label.Points[2].X, 0.001)
	}
	if assert.Len(t, ab.Label.Points, 3) {
		assert.InDelta(t, a.Label.X, ab.Label.Points[0].X, 0.001)
		assert.InDelta(t, b.Label.X, ab.Label.Points[2].X, 0.001)
	}
}

func TestRunRestoresDeletedSelfLoop(t *testing.T) {
	ag := argraph.NewGraph()
	a := ag.AddVertex("a")
	loop := ag.AddEdge(a, a, "")

	acy := runPipeline(t, ag)
	assert.Len(t, acy.DeletedLoops, 1)
	assert.Len(t, loop.Label.Points, 3)
}

func TestRunGivesWarrantSinkItsSimpleSourceX(t *testing.T) {
	ag := argraph.NewGraph()
	u := ag.AddVertex("u")
	w := ag.AddVertex("w")
	s := ag.AddVertex("s")
	ag.AddEdge(u, w, "")
	err := ag.SetWarrantEdge(s, u, w, "", argraph.EdgeLabel{MinLen: 1, Weight: 1})
	assert.NoError(t, err)

	runPipeline(t, ag)

	uwEdge, ok := ag.Edge(u, w, "")
	assert.True(t, ok)
	assert.Len(t, uwEdge.Label.Points, 3)

	sink, ok := ag.Vertex("u -> w")
	assert.True(t, ok)
	assert.InDelta(t, u.Label.X, sink.Label.X, 0.001)
}
