package position_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davider90/argumappr/internal/order"
	"github.com/davider90/argumappr/internal/position"
	"github.com/davider90/argumappr/internal/wgraph"
)

func TestRunSeparatesSiblingsByNodeSep(t *testing.T) {
	g := wgraph.New()
	g.NodeSep = 20
	top := g.AddVertex("top")
	top.Width = 100
	left := g.AddVertex("left")
	left.Width = 100
	right := g.AddVertex("right")
	right.Width = 100
	g.AddEdge(top, left, "")
	g.AddEdge(top, right, "")
	top.Rank, top.RankSet = 0, true
	left.Rank, left.RankSet = 1, true
	right.Rank, right.RankSet = 1, true

	res := order.Run(context.Background(), g)
	position.Run(g, res)

	gap := right.X - left.X
	if gap < 0 {
		gap = -gap
	}
	assert.GreaterOrEqual(t, gap, left.Width/2+right.Width/2+g.NodeSep-0.001)
}

func TestRunRecentersConjunctContainer(t *testing.T) {
	g := wgraph.New()
	g.NodeSep = 20
	container := g.AddVertex("-> target")
	container.IsConjunctNode = true
	container.Width = 1
	ch1 := g.AddVertex("ch1")
	ch1.Width = 100
	ch2 := g.AddVertex("ch2")
	ch2.Width = 100
	target := g.AddVertex("target")
	target.Width = 100
	g.SetParent(ch1, container)
	g.SetParent(ch2, container)
	g.AddEdge(container, target, "")
	container.Rank, container.RankSet = 0, true
	ch1.Rank, ch1.RankSet = 0, true
	ch2.Rank, ch2.RankSet = 0, true
	target.Rank, target.RankSet = 1, true

	res := order.Run(context.Background(), g)
	position.Run(g, res)

	assert.InDelta(t, (ch1.X+ch2.X)/2, container.X, 0.001)
	assert.Greater(t, container.Width, 0.0)
}
