package position

import "github.com/davider90/argumappr/internal/wgraph"

// markType1Conflicts flags, as IsConflicted, every non-inner edge that
// crosses an inner segment — an edge between two dummy vertices spanning
// the same pair of adjacent levels (spec §4.F.2). Brandes–Köpf alignment
// skips conflicted edges so a long edge's dummy chain stays straight
// through a crowded layer instead of a neighboring real vertex bending
// it.
func markType1Conflicts(levelsOrder [][]*wgraph.Vertex, edgesBetween func(upper, lower []*wgraph.Vertex) []*wgraph.Edge) {
	for i := 0; i+1 < len(levelsOrder); i++ {
		upper, lower := levelsOrder[i], levelsOrder[i+1]
		upperPos := indexOf(upper)
		lowerPos := indexOf(lower)

		edges := edgesBetween(upper, lower)
		var inner []*wgraph.Edge
		for _, e := range edges {
			if e.Source.IsDummyNode && e.Target.IsDummyNode {
				inner = append(inner, e)
			}
		}
		if len(inner) == 0 {
			continue
		}
		for _, e := range edges {
			if e.Source.IsDummyNode && e.Target.IsDummyNode {
				continue
			}
			eu, el := upperPos[e.Source], lowerPos[e.Target]
			for _, in := range inner {
				iu, il := upperPos[in.Source], lowerPos[in.Target]
				if (eu < iu && el > il) || (eu > iu && el < il) {
					e.IsConflicted = true
					break
				}
			}
		}
	}
}

func indexOf(vs []*wgraph.Vertex) map[*wgraph.Vertex]int {
	m := make(map[*wgraph.Vertex]int, len(vs))
	for i, v := range vs {
		m[v] = i
	}
	return m
}
