// Package acyclic implements component C of the layout pipeline: a
// greedy feedback-arc-set cycle remover in the style of Eades, Lin and
// Smyth, so the later ranking phase can assume a DAG.
package acyclic

import (
	"github.com/davider90/argumappr/argraph"
	"github.com/davider90/argumappr/internal/go2"
	"github.com/davider90/argumappr/internal/wgraph"
)

// Result records what RemoveCycles did to g, identified by the caller's
// argraph.Edge (Orig) rather than the wgraph.Edge objects themselves, since
// long-edge splitting later discards and replaces those objects while
// keeping their Orig. The router uses this to undo both effects once
// coordinates are known.
type Result struct {
	// DeletedLoops are the caller edges whose self-loop was removed
	// outright; they carry no ranking information and are re-added as
	// trivial loop routes by the router.
	DeletedLoops []*argraph.Edge
	// ReversedEdges are the caller edges whose working-graph counterpart
	// was flipped end-for-end to break a cycle: its wgraph chain now runs
	// Orig.Target -> ... -> Orig.Source, so the router reverses the
	// collapsed point list before writing Orig.Label.Points.
	ReversedEdges []*argraph.Edge
}

// RemoveCycles breaks every cycle in g by deleting self-loops and
// reversing a greedily chosen small set of the remaining edges, in place.
func RemoveCycles(g *wgraph.Graph) *Result {
	res := &Result{}

	for _, e := range g.Edges() {
		if e.Source == e.Target {
			g.RemoveEdge(e)
			if e.Orig != nil {
				res.DeletedLoops = append(res.DeletedLoops, e.Orig)
			}
		}
	}

	order := greedyOrder(g)
	pos := make(map[*wgraph.Vertex]int, len(order))
	for i, v := range order {
		pos[v] = i
	}

	for _, e := range g.Edges() {
		if pos[e.Source] > pos[e.Target] {
			e.Source, e.Target = e.Target, e.Source
			if e.Orig != nil {
				res.ReversedEdges = append(res.ReversedEdges, e.Orig)
			}
		}
	}

	return res
}

// greedyOrder computes a linear vertex order minimizing backward edges,
// following the classic GR sequence construction: repeatedly peel off
// sinks (prepended to the right-hand sequence), sources (appended to the
// left-hand sequence), and otherwise the vertex with maximal out-degree
// minus in-degree (appended to the left-hand sequence), each removal
// updating the remaining degrees. The order is left followed by right.
func greedyOrder(g *wgraph.Graph) []*wgraph.Vertex {
	succ := make(map[*wgraph.Vertex][]*wgraph.Vertex)
	pred := make(map[*wgraph.Vertex][]*wgraph.Vertex)
	outDeg := make(map[*wgraph.Vertex]int)
	inDeg := make(map[*wgraph.Vertex]int)
	remaining := make(map[*wgraph.Vertex]bool)

	for _, v := range g.Vertices() {
		remaining[v] = true
	}
	for _, e := range g.Edges() {
		succ[e.Source] = append(succ[e.Source], e.Target)
		pred[e.Target] = append(pred[e.Target], e.Source)
		outDeg[e.Source]++
		inDeg[e.Target]++
	}

	var left, right []*wgraph.Vertex

	remove := func(v *wgraph.Vertex) {
		delete(remaining, v)
		for _, s := range succ[v] {
			if remaining[s] {
				inDeg[s]--
			}
		}
		for _, p := range pred[v] {
			if remaining[p] {
				outDeg[p]--
			}
		}
	}

	for len(remaining) > 0 {
		progress := true
		for progress {
			progress = false
			for _, v := range g.Vertices() {
				if remaining[v] && outDeg[v] == 0 {
					right = append([]*wgraph.Vertex{v}, right...)
					remove(v)
					progress = true
				}
			}
			for _, v := range g.Vertices() {
				if remaining[v] && inDeg[v] == 0 {
					left = append(left, v)
					remove(v)
					progress = true
				}
			}
		}
		if len(remaining) == 0 {
			break
		}
		var best *wgraph.Vertex
		first := true
		bestScore := 0
		for _, v := range g.Vertices() {
			if !remaining[v] {
				continue
			}
			score := outDeg[v] - inDeg[v]
			if first || go2.Max(bestScore, score) != bestScore {
				best, bestScore, first = v, go2.Max(bestScore, score), false
			}
		}
		left = append(left, best)
		remove(best)
	}

	return append(left, right...)
}
