package rank

import "github.com/davider90/argumappr/internal/wgraph"

// longestPath assigns every vertex the length of its longest path from a
// source, respecting each edge's minlen (spec §4.D.2): rank(v) is the max
// over v's in-edges (u,v) of rank(u)+minlen, or 0 if v has none. It seeds
// the tight tree / network simplex refinement that follows and, on its
// own, is already a feasible ranking.
func longestPath(g *wgraph.Graph) {
	visited := make(map[*wgraph.Vertex]bool)

	var visit func(v *wgraph.Vertex) float64
	visit = func(v *wgraph.Vertex) float64 {
		if visited[v] {
			return v.Rank
		}
		visited[v] = true
		r := 0.0
		for _, e := range g.InEdges(v) {
			candidate := visit(e.Source) + float64(e.MinLen)
			if candidate > r {
				r = candidate
			}
		}
		v.Rank = r
		v.RankSet = true
		return r
	}

	for _, v := range g.Vertices() {
		visit(v)
	}
}
