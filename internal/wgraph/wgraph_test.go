package wgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davider90/argumappr/argraph"
	"github.com/davider90/argumappr/internal/wgraph"
)

func TestFromArgraphMirrorsStructure(t *testing.T) {
	g := argraph.NewGraph()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	e := g.AddEdge(a, b, "")
	e.Label.MinLen = 2

	wg := wgraph.FromArgraph(g)
	wa, ok := wg.Vertex("a")
	assert.True(t, ok)
	assert.Same(t, a, wa.Orig)

	wb, _ := wg.Vertex("b")
	edges := wg.OutEdges(wa)
	assert.Len(t, edges, 1)
	assert.Same(t, wb, edges[0].Target)
	assert.Equal(t, 2, edges[0].MinLen)
	assert.Same(t, e, edges[0].Orig)
}

func TestNewDummyVertexIsCollisionFree(t *testing.T) {
	wg := wgraph.New()
	wg.AddVertex("d")
	d1 := wg.NewDummyVertex("d")
	d2 := wg.NewDummyVertex("d")
	assert.NotEqual(t, d1.ID, d2.ID)
	assert.True(t, d1.IsDummyNode)
}

func TestRemoveVertexRemovesIncidentEdges(t *testing.T) {
	wg := wgraph.New()
	a := wg.AddVertex("a")
	b := wg.AddVertex("b")
	wg.AddEdge(a, b, "")
	wg.RemoveVertex(a)

	_, ok := wg.Vertex("a")
	assert.False(t, ok)
	assert.Empty(t, wg.Edges())
}

func TestSetParentReparents(t *testing.T) {
	wg := wgraph.New()
	a := wg.AddVertex("a")
	p1 := wg.AddVertex("p1")
	p2 := wg.AddVertex("p2")
	wg.SetParent(a, p1)
	assert.Len(t, p1.Children, 1)
	wg.SetParent(a, p2)
	assert.Empty(t, p1.Children)
	assert.Same(t, p2, a.Parent)
}

func TestParallelEdgesAllowed(t *testing.T) {
	wg := wgraph.New()
	a := wg.AddVertex("a")
	b := wg.AddVertex("b")
	wg.AddEdge(a, b, "")
	wg.AddEdge(a, b, "")
	assert.Len(t, wg.OutEdges(a), 2)
}
