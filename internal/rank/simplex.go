package rank

import (
	"github.com/davider90/argumappr/internal/go2"
	"github.com/davider90/argumappr/internal/wgraph"
)

// tailComponent returns the vertices reachable from start using only
// tree edges other than cut, i.e. one side of the tree once cut is
// removed.
func tailComponent(tree map[*wgraph.Edge]bool, start *wgraph.Vertex, cut *wgraph.Edge) map[*wgraph.Vertex]bool {
	seen := map[*wgraph.Vertex]bool{start: true}
	queue := []*wgraph.Vertex{start}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for e := range tree {
			if e == cut {
				continue
			}
			var other *wgraph.Vertex
			switch v {
			case e.Source:
				other = e.Target
			case e.Target:
				other = e.Source
			default:
				continue
			}
			if !seen[other] {
				seen[other] = true
				queue = append(queue, other)
			}
		}
	}
	return seen
}

// cutValue computes the cut value of tree edge e (spec §4.D.4): the
// weight of every graph edge crossing the cut in e's direction minus the
// weight of every edge crossing against it.
func cutValue(g *wgraph.Graph, tree map[*wgraph.Edge]bool, e *wgraph.Edge) float64 {
	tailSide := tailComponent(tree, e.Source, e)
	v := 0.0
	for _, f := range g.Edges() {
		inTail := tailSide[f.Source]
		outTail := tailSide[f.Target]
		if inTail && !outTail {
			v += f.Weight
		} else if outTail && !inTail {
			v -= f.Weight
		}
	}
	return v
}

// networkSimplex refines the feasible ranking produced by feasibleTree
// toward a minimum weighted edge-length ranking, bounded by maxLoops
// iterations of leave/enter tree-edge exchange (spec §4.D.4).
func networkSimplex(g *wgraph.Graph, tree map[*wgraph.Edge]bool, maxLoops int) (iterations int, capped bool) {
	for iterations = 0; maxLoops <= 0 || iterations < maxLoops; iterations++ {
		var leave *wgraph.Edge
		leaveValue := 0.0
		for e := range tree {
			cv := cutValue(g, tree, e)
			if cv < leaveValue {
				leave, leaveValue = e, cv
			}
		}
		if leave == nil {
			return iterations, false
		}

		tailSide := tailComponent(tree, leave.Source, leave)
		var enter *wgraph.Edge
		enterSlack := 0.0
		for _, f := range g.Edges() {
			if tree[f] {
				continue
			}
			// A valid replacement runs from the head side back to the
			// tail side, the opposite orientation of leave across the
			// same cut.
			if tailSide[f.Target] && !tailSide[f.Source] {
				s := slack(f)
				if enter == nil || go2.Min(enterSlack, s) != enterSlack {
					enter, enterSlack = f, s
				}
			}
		}
		if enter == nil {
			return iterations, false
		}

		// enter.Target lies in tailSide; shifting tailSide by -slack(enter)
		// makes enter's slack zero without disturbing any edge with both
		// endpoints on the same side.
		delta := -slack(enter)
		for v := range tailSide {
			v.Rank += delta
		}

		delete(tree, leave)
		tree[enter] = true
	}
	return iterations, true
}
