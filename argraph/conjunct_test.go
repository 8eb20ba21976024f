package argraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davider90/argumappr/argraph"
)

func TestSetConjunctNodeSynthesizesContainer(t *testing.T) {
	g := argraph.NewGraph()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	c := g.AddVertex("c")
	g.AddEdge(a, c, "")

	assert.NoError(t, g.SetConjunctNode(a, a, c, ""))
	container := a.Parent
	assert.NotNil(t, container)
	assert.True(t, container.IsConjunctNode)
	assert.Equal(t, "-> c", container.ID)
	assert.False(t, g.HasEdge(a, c, ""))
	assert.True(t, g.HasEdge(container, c, ""))

	assert.NoError(t, g.SetConjunctNode(b, a, c, ""))
	assert.Same(t, container, b.Parent)
	assert.ElementsMatch(t, []string{"a", "b"}, childIDs(container))
}

func TestSetConjunctNodeMissingEdge(t *testing.T) {
	g := argraph.NewGraph()
	a := g.AddVertex("a")
	c := g.AddVertex("c")
	err := g.SetConjunctNode(a, a, c, "")
	assert.Error(t, err)
}

func TestRemoveEdgeDeletesEmptyContainer(t *testing.T) {
	g := argraph.NewGraph()
	a := g.AddVertex("a")
	c := g.AddVertex("c")
	g.AddEdge(a, c, "")
	assert.NoError(t, g.SetConjunctNode(a, a, c, ""))
	container := a.Parent

	g.RemoveVertex(a)
	assert.Empty(t, container.Children)

	g.RemoveEdge(container, c, "")
	_, ok := g.Vertex(container.ID)
	assert.False(t, ok)
}

func childIDs(v *argraph.Vertex) []string {
	out := make([]string, len(v.Children))
	for i, c := range v.Children {
		out[i] = c.ID
	}
	return out
}
