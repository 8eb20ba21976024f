package order

import "github.com/davider90/argumappr/internal/wgraph"

// splitLongEdges replaces every edge spanning more than one level with a
// chain of unit-span dummy edges, one dummy vertex per intermediate
// level (spec §4.E.1). Every sub-edge in the chain keeps the original
// edge's Orig pointer so the router can later find and collapse it.
func splitLongEdges(g *wgraph.Graph, lv []float64) {
	for _, e := range g.Edges() {
		si := levelIndex(lv, e.Source.Rank)
		ti := levelIndex(lv, e.Target.Rank)
		if si < 0 || ti < 0 {
			continue
		}
		step := 1
		if si > ti {
			step = -1
		}
		if (ti-si)*step <= 1 {
			continue
		}

		g.RemoveEdge(e)
		prev := e.Source
		for i := si + step; i != ti; i += step {
			d := g.NewDummyVertex("_d")
			d.Rank = lv[i]
			d.RankSet = true
			sub := g.AddEdge(prev, d, "")
			sub.Orig = e.Orig
			sub.Weight = e.Weight
			sub.MinLen = 1
			prev = d
		}
		last := g.AddEdge(prev, e.Target, "")
		last.Orig = e.Orig
		last.Weight = e.Weight
		last.MinLen = 1
	}
}
