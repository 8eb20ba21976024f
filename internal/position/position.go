// Package position implements component F of the layout pipeline:
// Brandes–Köpf horizontal coordinate assignment.
package position

import (
	"sort"

	"github.com/davider90/argumappr/internal/order"
	"github.com/davider90/argumappr/internal/wgraph"
)

// Run assigns every vertex in res an X coordinate: it marks type-1
// conflicts, runs the four down/up × left/right alignments and their
// compactions, combines them by per-vertex median, and finally recenters
// every conjunct container over its restored children (spec §4.F).
func Run(g *wgraph.Graph, res *order.Result) {
	edgesBetween := func(upper, lower []*wgraph.Vertex) []*wgraph.Edge {
		up, lo := indexOf(upper), indexOf(lower)
		var out []*wgraph.Edge
		for _, e := range g.Edges() {
			_, eu := up[e.Source]
			_, el := lo[e.Target]
			if eu && el {
				out = append(out, e)
				continue
			}
			_, eu2 := up[e.Target]
			_, el2 := lo[e.Source]
			if eu2 && el2 {
				out = append(out, e)
			}
		}
		return out
	}
	markType1Conflicts(res.Order, edgesBetween)

	var vertices []*wgraph.Vertex
	for _, level := range res.Order {
		vertices = append(vertices, level...)
	}

	type assignment struct {
		left bool
		x    map[*wgraph.Vertex]float64
	}
	var assignments []assignment
	for _, down := range []bool{true, false} {
		for _, left := range []bool{true, false} {
			a := align(g, res.Order, down, left)
			assignments = append(assignments, assignment{left: left, x: compact(res.Order, a, g.NodeSep)})
		}
	}

	// spec §4.F.5: before averaging, put all four assignments in a common
	// coordinate frame — align the two left-biased assignments' min-x to
	// the narrowest assignment's min-x, and the two right-biased
	// assignments' max-x to its max-x.
	narrow := 0
	narrowWidth := 0.0
	extents := make([][2]float64, len(assignments))
	for i, asn := range assignments {
		min, max := extent(vertices, asn.x)
		extents[i] = [2]float64{min, max}
		if w := max - min; i == 0 || w < narrowWidth {
			narrow, narrowWidth = i, w
		}
	}
	for i, asn := range assignments {
		var delta float64
		if asn.left {
			delta = extents[narrow][0] - extents[i][0]
		} else {
			delta = extents[narrow][1] - extents[i][1]
		}
		if delta != 0 {
			for v := range asn.x {
				asn.x[v] += delta
			}
		}
	}

	for _, v := range vertices {
		vals := make([]float64, len(assignments))
		for i, asn := range assignments {
			vals[i] = asn.x[v]
		}
		sort.Float64s(vals)
		v.X = (vals[1] + vals[2]) / 2
	}

	recenterConjunctContainers(g)
}

// extent returns the min and max x across vertices in x.
func extent(vertices []*wgraph.Vertex, x map[*wgraph.Vertex]float64) (min, max float64) {
	for i, v := range vertices {
		if i == 0 {
			min, max = x[v], x[v]
			continue
		}
		if x[v] < min {
			min = x[v]
		}
		if x[v] > max {
			max = x[v]
		}
	}
	return min, max
}

// recenterConjunctContainers implements spec §4.F.1/§4.F.5: a container's
// final width spans its children (plus the gaps between them) and its X
// is the center of that span, rather than wherever the generic alignment
// pass happened to place its own box.
func recenterConjunctContainers(g *wgraph.Graph) {
	for _, v := range g.Vertices() {
		if !v.IsConjunctNode || len(v.Children) == 0 {
			continue
		}
		min, max := v.Children[0].X-v.Children[0].Width/2, v.Children[0].X+v.Children[0].Width/2
		for _, c := range v.Children {
			if l := c.X - c.Width/2; l < min {
				min = l
			}
			if r := c.X + c.Width/2; r > max {
				max = r
			}
		}
		v.X = (min + max) / 2
		v.Width = max - min
	}
}
