// Package route implements component G of the layout pipeline: turning
// each caller edge's final vertex positions into a quadratic Bézier
// control polygon, and writing every computed coordinate back onto the
// caller's argraph.Graph.
package route

import (
	"strings"

	"github.com/davider90/argumappr/argraph"
	"github.com/davider90/argumappr/geo"
	"github.com/davider90/argumappr/internal/acyclic"
	"github.com/davider90/argumappr/internal/wgraph"
)

// Run computes every edge's route and every vertex's final position in g,
// writes them back onto ag, then restores what acy recorded: a deleted
// self-loop becomes a small loop route on its caller edge, and a reversed
// edge's collapsed point list is reversed back to the caller's original
// direction (spec §4.G).
func Run(g *wgraph.Graph, ag *argraph.Graph, acy *acyclic.Result) {
	for _, v := range g.Vertices() {
		if v.Orig != nil {
			v.Orig.Label.X = v.X
			v.Orig.Label.Y = v.Y
			if v.IsConjunctNode {
				v.Orig.Label.Width = v.Width
			}
		}
	}

	byOrig := make(map[*argraph.Edge][]*wgraph.Edge)
	var origOrder []*argraph.Edge
	for _, e := range g.Edges() {
		if e.Orig == nil {
			continue
		}
		if _, ok := byOrig[e.Orig]; !ok {
			origOrder = append(origOrder, e.Orig)
		}
		byOrig[e.Orig] = append(byOrig[e.Orig], e)
	}

	reversed := make(map[*argraph.Edge]bool, len(acy.ReversedEdges))
	for _, oe := range acy.ReversedEdges {
		reversed[oe] = true
	}

	for _, oe := range origOrder {
		chain := orderChain(g, byOrig[oe])
		points := collapseChain(g, chain)
		if reversed[oe] {
			points = reversePoints(points)
		}
		oe.Label.Points = points
	}

	for _, oe := range acy.DeletedLoops {
		oe.Label.Points = loopRoute(oe)
	}

	for _, v := range g.Vertices() {
		if v.IsWarrantSink && v.Orig != nil {
			snapWarrantSink(ag, v.Orig)
		}
	}
}

// orderChain arranges a long-edge dummy chain's sub-edges head to tail,
// starting from the sub-edge whose source is not a dummy. A single-edge
// group is already in order.
func orderChain(g *wgraph.Graph, group []*wgraph.Edge) []*wgraph.Edge {
	if len(group) == 1 {
		return group
	}
	inGroup := make(map[*wgraph.Edge]bool, len(group))
	for _, e := range group {
		inGroup[e] = true
	}

	var head *wgraph.Edge
	for _, e := range group {
		if !e.Source.IsDummyNode {
			head = e
			break
		}
	}
	if head == nil {
		head = group[0]
	}

	chain := []*wgraph.Edge{head}
	cur := head
	for cur.Target.IsDummyNode {
		var next *wgraph.Edge
		for _, e := range g.OutEdges(cur.Target) {
			if inGroup[e] {
				next = e
				break
			}
		}
		if next == nil {
			break
		}
		chain = append(chain, next)
		cur = next
	}
	return chain
}

// collapseChain turns a (possibly multi-segment) dummy chain into the
// single 3-point control polygon spec §4.E.1/§4.G specifies: the entering
// sub-edge's first two control points, and the leaving sub-edge's last
// control point.
func collapseChain(g *wgraph.Graph, chain []*wgraph.Edge) []*geo.Point {
	first := bendPoints(g, chain[0])
	if len(chain) == 1 {
		return first
	}
	last := bendPoints(g, chain[len(chain)-1])
	return []*geo.Point{first[0], first[1], last[2]}
}

func reversePoints(points []*geo.Point) []*geo.Point {
	out := make([]*geo.Point, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}
	return out
}

// loopRoute returns a small self-contained control polygon for an edge
// whose self-loop was deleted by acyclic cycle removal, bulging to the
// right of the vertex it loops on.
func loopRoute(e *argraph.Edge) []*geo.Point {
	v := e.Source
	x, y := v.Label.X, v.Label.Y
	r := v.Label.Width/2 + 20
	return []*geo.Point{
		geo.NewPoint(x, y-v.Label.Height/4),
		geo.NewPoint(x+r, y),
		geo.NewPoint(x, y+v.Label.Height/4),
	}
}

// snapWarrantSink gives a warrant sink its final x: the x of its
// simple-source endpoint, the source u of the warranted edge, recovered
// from the sink's "u -> w" id (spec §4.G's final restoration rule). Its y
// was already set from the rank assigned in component D.
func snapWarrantSink(ag *argraph.Graph, sink *argraph.Vertex) {
	i := strings.Index(sink.ID, " -> ")
	if i < 0 {
		return
	}
	u, ok := ag.Vertex(sink.ID[:i])
	if !ok {
		return
	}
	sink.Label.X = u.Label.X
}
