package order

import (
	"sort"

	"github.com/davider90/argumappr/internal/wgraph"
)

// levels returns the distinct rank values present among g's ranked
// vertices, ascending. Warrant sinks contribute their own half-integer
// level alongside the normal integer levels (spec §4.D.5/§4.E).
func levels(g *wgraph.Graph) []float64 {
	seen := map[float64]bool{}
	for _, v := range g.Vertices() {
		if v.RankSet {
			seen[v.Rank] = true
		}
	}
	out := make([]float64, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Float64s(out)
	return out
}

func levelIndex(levels []float64, rank float64) int {
	for i, l := range levels {
		if l == rank {
			return i
		}
	}
	return -1
}
