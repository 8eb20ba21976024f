package argraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davider90/argumappr/argraph"
)

func TestSetWarrantEdge(t *testing.T) {
	g := argraph.NewGraph()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	c := g.AddVertex("c")
	g.AddEdge(a, c, "")

	assert.NoError(t, g.SetWarrantEdge(b, a, c, "", argraph.EdgeLabel{MinLen: 1, Weight: 1}))

	sink, ok := g.Vertex("a -> c")
	assert.True(t, ok)
	assert.True(t, sink.IsWarrantSink)
	assert.Equal(t, 0.0, sink.Label.Width)
	assert.Equal(t, 0.0, sink.Label.Height)
	assert.True(t, g.HasEdge(b, sink, ""))
}

func TestSetWarrantEdgeMissingEdge(t *testing.T) {
	g := argraph.NewGraph()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	c := g.AddVertex("c")
	err := g.SetWarrantEdge(b, a, c, "", argraph.EdgeLabel{})
	assert.Error(t, err)
}

func TestRemovingWarrantedEdgeRemovesSink(t *testing.T) {
	g := argraph.NewGraph()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	c := g.AddVertex("c")
	g.AddEdge(a, c, "")
	assert.NoError(t, g.SetWarrantEdge(b, a, c, "", argraph.EdgeLabel{MinLen: 1, Weight: 1}))

	g.RemoveEdge(a, c, "")
	_, ok := g.Vertex("a -> c")
	assert.False(t, ok)
}
