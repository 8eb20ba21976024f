package position

import (
	"sort"

	"github.com/davider90/argumappr/internal/wgraph"
)

// alignment is one of the four Brandes–Köpf vertical alignments: a
// processing direction (top-down or bottom-up) crossed with a median
// bias (lower or upper), each producing a block structure — blockRoot
// maps every vertex to the representative of the chain of vertices
// aligned to share one x coordinate, and parent records which neighbor
// it aligned to, so compaction can pull it toward that neighbor's x
// (spec §4.F.3).
type alignment struct {
	down, left bool
	blockRoot  map[*wgraph.Vertex]*wgraph.Vertex
	parent     map[*wgraph.Vertex]*wgraph.Vertex
}

func edgeBetween(g *wgraph.Graph, a, b *wgraph.Vertex) *wgraph.Edge {
	for _, e := range g.IncidentEdges(a) {
		if (e.Source == a && e.Target == b) || (e.Source == b && e.Target == a) {
			return e
		}
	}
	return nil
}

func align(g *wgraph.Graph, levelsOrder [][]*wgraph.Vertex, down, left bool) *alignment {
	a := &alignment{down: down, left: left, blockRoot: map[*wgraph.Vertex]*wgraph.Vertex{}, parent: map[*wgraph.Vertex]*wgraph.Vertex{}}
	for _, level := range levelsOrder {
		for _, v := range level {
			a.blockRoot[v] = v
		}
	}

	order := make([]int, len(levelsOrder))
	for i := range order {
		order[i] = i
	}
	if !down {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}

	for idx, li := range order {
		if idx == 0 {
			continue
		}
		adjLevel := levelsOrder[order[idx-1]]
		adjPos := indexOf(adjLevel)

		r := -1
		for _, v := range levelsOrder[li] {
			var neigh []*wgraph.Vertex
			if down {
				neigh = g.Predecessors(v)
			} else {
				neigh = g.Successors(v)
			}
			var adjacent []*wgraph.Vertex
			for _, n := range neigh {
				if _, ok := adjPos[n]; ok {
					adjacent = append(adjacent, n)
				}
			}
			if len(adjacent) == 0 {
				continue
			}
			sort.Slice(adjacent, func(i, j int) bool { return adjPos[adjacent[i]] < adjPos[adjacent[j]] })

			d := len(adjacent)
			var median int
			if left {
				median = (d - 1) / 2
			} else {
				median = d / 2
			}
			nb := adjacent[median]
			pos := adjPos[nb]

			if a.blockRoot[v] != v || pos <= r {
				continue
			}
			if e := edgeBetween(g, v, nb); e != nil && e.IsConflicted {
				continue
			}
			a.parent[v] = nb
			a.blockRoot[v] = a.blockRoot[nb]
			r = pos
		}
	}
	return a
}
