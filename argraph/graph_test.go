package argraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davider90/argumappr/argraph"
)

func TestAddVertexDefaults(t *testing.T) {
	g := argraph.NewGraph()
	v := g.AddVertex("a")
	assert.Equal(t, argraph.DefaultWidth, v.Label.Width)
	assert.Equal(t, argraph.DefaultHeight, v.Label.Height)

	again := g.AddVertex("a")
	assert.Same(t, v, again)
}

func TestAddEdgeDefaults(t *testing.T) {
	g := argraph.NewGraph()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	e := g.AddEdge(a, b, "")
	assert.Equal(t, argraph.DefaultMinLen, e.Label.MinLen)
	assert.Equal(t, argraph.DefaultWeight, e.Label.Weight)
	assert.True(t, g.HasEdge(a, b, ""))

	again := g.AddEdge(a, b, "")
	assert.Same(t, e, again)
}

func TestPredecessorsSuccessors(t *testing.T) {
	g := argraph.NewGraph()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	c := g.AddVertex("c")
	g.AddEdge(a, c, "")
	g.AddEdge(b, c, "")

	preds := g.Predecessors(c)
	assert.ElementsMatch(t, []string{"a", "b"}, idsOf(preds))
	assert.Empty(t, g.Predecessors(a))

	succs := g.Successors(a)
	assert.ElementsMatch(t, []string{"c"}, idsOf(succs))
}

func TestSelfLoopIsIncident(t *testing.T) {
	g := argraph.NewGraph()
	a := g.AddVertex("a")
	g.AddEdge(a, a, "")
	assert.Len(t, g.IncidentEdges(a), 1)
	assert.Len(t, g.InEdges(a), 1)
	assert.Len(t, g.OutEdges(a), 1)
}

func TestRemoveVertexRemovesIncidentEdges(t *testing.T) {
	g := argraph.NewGraph()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	g.AddEdge(a, b, "")
	g.RemoveVertex(a)

	_, ok := g.Vertex("a")
	assert.False(t, ok)
	assert.Empty(t, g.Edges())
}

func TestSetParentRejectsCycle(t *testing.T) {
	g := argraph.NewGraph()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	assert.NoError(t, g.SetParent(b, a))
	err := g.SetParent(a, b)
	assert.Error(t, err)
}

func TestSetParentRejectsSelf(t *testing.T) {
	g := argraph.NewGraph()
	a := g.AddVertex("a")
	assert.Error(t, g.SetParent(a, a))
}

func TestSetParentReparents(t *testing.T) {
	g := argraph.NewGraph()
	a := g.AddVertex("a")
	p1 := g.AddVertex("p1")
	p2 := g.AddVertex("p2")
	assert.NoError(t, g.SetParent(a, p1))
	assert.Len(t, p1.Children, 1)
	assert.NoError(t, g.SetParent(a, p2))
	assert.Empty(t, p1.Children)
	assert.Len(t, p2.Children, 1)
	assert.Same(t, p2, a.Parent)
}

func TestSnapshotIsStructural(t *testing.T) {
	g := argraph.NewGraph()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	e := g.AddEdge(a, b, "")
	e.Label.MinLen = 2
	a.Label.X = 42

	snap := g.Snapshot()
	sa, _ := snap.Vertex("a")
	sb, _ := snap.Vertex("b")
	assert.Equal(t, 0.0, sa.Label.X)
	se, ok := snap.Edge(sa, sb, "")
	assert.True(t, ok)
	assert.Equal(t, 2, se.Label.MinLen)
}

func idsOf(vs []*argraph.Vertex) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.ID
	}
	return out
}
