package route

import (
	"github.com/davider90/argumappr/geo"
	"github.com/davider90/argumappr/internal/wgraph"
)

// bendPoints returns the 3-point quadratic Bézier control polygon for
// one unit-span edge (spec §4.G): a straight line bends toward whichever
// endpoint has more than one incident edge at that end, so a fan of
// edges leaving one vertex (or arriving at one) visually separates
// instead of overlapping near the shared point.
func bendPoints(g *wgraph.Graph, e *wgraph.Edge) []*geo.Point {
	p0 := geo.NewPoint(e.Source.X, e.Source.Y)
	p2 := geo.NewPoint(e.Target.X, e.Target.Y)
	midX := (e.Source.X + e.Target.X) / 2

	var p1 *geo.Point
	switch {
	case len(g.OutEdges(e.Source)) > 1:
		p1 = geo.NewPoint(midX, e.Source.Y)
	case len(g.InEdges(e.Target)) > 1:
		p1 = geo.NewPoint(midX, e.Target.Y)
	default:
		p1 = p0.Interpolate(p2, 0.5)
	}
	return []*geo.Point{p0, p1, p2}
}
