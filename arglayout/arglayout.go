package arglayout

import (
	"context"
	"math"

	"oss.terrastruct.com/xdefer"

	"github.com/davider90/argumappr/argraph"
	"github.com/davider90/argumappr/internal/acyclic"
	"github.com/davider90/argumappr/internal/order"
	"github.com/davider90/argumappr/internal/position"
	"github.com/davider90/argumappr/internal/rank"
	"github.com/davider90/argumappr/internal/route"
	"github.com/davider90/argumappr/internal/wgraph"
)

// DefaultLayout runs Layout with opts taken entirely from g's own Label.
func DefaultLayout(ctx context.Context, g *argraph.Graph) error {
	return Layout(ctx, g, nil)
}

// Layout assigns every vertex in g an (X, Y) position and every edge a
// quadratic Bézier route, running the full pipeline: cycle removal (C),
// ranking (D), crossing minimization (E), horizontal positioning (F), and
// routing (G). It sets g.Label.Width/Height to the final drawing's bounding
// box. opts may be nil; any zero field in opts falls back to g.Label, then
// to DefaultOptions. A graph that fails g.Validate is rejected with that
// error before any phase runs.
func Layout(ctx context.Context, g *argraph.Graph, opts *Options) (err error) {
	defer xdefer.Errorf(&err, "arglayout: layout failed")

	if g == nil {
		return argraph.InvalidInput("layout: graph is nil")
	}
	if len(g.Vertices()) == 0 {
		return nil
	}
	if err := g.Validate(); err != nil {
		return err
	}

	merged := merge(opts, g.Label)

	wg := wgraph.FromArgraph(g)
	wg.NodeSep = merged.NodeSep
	wg.RankSep = merged.RankSep
	wg.MaxRankingLoops = merged.MaxRankingLoops
	wg.MaxCrossingLoops = merged.MaxCrossingLoops

	acy := acyclic.RemoveCycles(wg)
	rank.Assign(ctx, wg)
	res := order.Run(ctx, wg)
	position.Run(wg, res)
	route.Run(wg, g, acy)

	g.Label.Width, g.Label.Height = boundingBox(g)
	return nil
}

// boundingBox returns the width and height spanning every vertex's final
// box, per spec §6's graph-level output fields.
func boundingBox(g *argraph.Graph) (width, height float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range g.Vertices() {
		l, r := v.Label.X-v.Label.Width/2, v.Label.X+v.Label.Width/2
		t, b := v.Label.Y-v.Label.Height/2, v.Label.Y+v.Label.Height/2
		if l < minX {
			minX = l
		}
		if r > maxX {
			maxX = r
		}
		if t < minY {
			minY = t
		}
		if b > maxY {
			maxY = b
		}
	}
	if math.IsInf(minX, 1) {
		return 0, 0
	}
	return maxX - minX, maxY - minY
}
