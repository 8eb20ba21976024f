package rank

import (
	"github.com/davider90/argumappr/internal/go2"
	"github.com/davider90/argumappr/internal/wgraph"
)

func slack(e *wgraph.Edge) float64 {
	return e.Target.Rank - e.Source.Rank - float64(e.MinLen)
}

// tightTreeComponent grows the maximal set of vertices reachable from
// start using only zero-slack edges, treated as undirected for
// connectivity (spec §4.D.3).
func tightTreeComponent(g *wgraph.Graph, start *wgraph.Vertex) (map[*wgraph.Vertex]bool, map[*wgraph.Edge]bool) {
	verts := map[*wgraph.Vertex]bool{start: true}
	edges := map[*wgraph.Edge]bool{}
	queue := []*wgraph.Vertex{start}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, e := range g.IncidentEdges(v) {
			if slack(e) != 0 {
				continue
			}
			other := e.Source
			if other == v {
				other = e.Target
			}
			if !verts[other] {
				verts[other] = true
				queue = append(queue, other)
			}
			edges[e] = true
		}
	}
	return verts, edges
}

// feasibleTree grows a tight tree spanning every vertex of g, shifting
// the ranks of every vertex already in the tree each time a non-tree edge
// must be made tight, until the whole graph is one tight component (spec
// §4.D.3). It returns the spanning tree's edges.
func feasibleTree(g *wgraph.Graph) map[*wgraph.Edge]bool {
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return map[*wgraph.Edge]bool{}
	}

	tree, treeEdges := tightTreeComponent(g, vertices[0])

	for len(tree) < len(vertices) {
		var minEdge *wgraph.Edge
		minSlack := 0.0
		for _, e := range g.Edges() {
			inTree := tree[e.Source]
			outTree := tree[e.Target]
			if inTree == outTree {
				continue
			}
			s := go2.Abs(slack(e))
			if minEdge == nil || s < minSlack {
				minEdge, minSlack = e, s
			}
		}
		if minEdge == nil {
			// Disconnected graph: seed a new component arbitrarily.
			for _, v := range vertices {
				if !tree[v] {
					tree[v] = true
					break
				}
			}
			continue
		}

		delta := slack(minEdge)
		if tree[minEdge.Target] {
			delta = -delta
		}
		for v := range tree {
			v.Rank += delta
		}

		more, moreEdges := tightTreeComponent(g, minEdge.Source)
		for v := range more {
			tree[v] = true
		}
		for e := range moreEdges {
			treeEdges[e] = true
		}
	}

	return treeEdges
}
