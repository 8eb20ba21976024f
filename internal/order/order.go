// Package order implements component E of the layout pipeline: ordering
// each level's vertices left to right to minimize edge crossings.
package order

import (
	"context"

	"cdr.dev/slog"

	"github.com/davider90/argumappr/argraph"
	"github.com/davider90/argumappr/internal/wgraph"
	"github.com/davider90/argumappr/log"
)

// Result is the final per-level order, one entry per distinct rank,
// ascending, each a left-to-right vertex sequence with conjunct clusters
// expanded inline (children followed by their container).
type Result struct {
	Levels []float64
	Order  [][]*wgraph.Vertex
}

// Run splits long edges into dummy chains and then iterates constrained
// barycenter sweeps, bounded by g.MaxCrossingLoops, keeping the
// best-scoring order seen (spec §4.E).
func Run(ctx context.Context, g *wgraph.Graph) *Result {
	lv := levels(g)
	splitLongEdges(g, lv)
	lv = levels(g) // dummy vertices may have introduced no new levels, but recomputing is cheap and safe

	byLevel := make(map[float64][]*wgraph.Vertex, len(lv))
	for _, v := range g.Vertices() {
		if v.RankSet {
			byLevel[v.Rank] = append(byLevel[v.Rank], v)
		}
	}

	unitsByLevel := make([][]*unit, len(lv))
	for i, r := range lv {
		unitsByLevel[i] = buildUnits(byLevel[r])
	}
	applyWarrantConstraints(g, lv, unitsByLevel)

	successors := func(v *wgraph.Vertex) []*wgraph.Vertex { return g.Successors(v) }
	predecessors := func(v *wgraph.Vertex) []*wgraph.Vertex { return g.Predecessors(v) }

	positions := func(units []*unit) map[*wgraph.Vertex]int {
		pos := make(map[*wgraph.Vertex]int)
		for i, v := range expand(units) {
			pos[v] = i
		}
		return pos
	}

	best := cloneUnits(unitsByLevel)
	bestScore := totalCrossings(g, expandAll(best))
	maxLoops := g.MaxCrossingLoops
	if maxLoops <= 0 {
		maxLoops = argraph.DefaultMaxCrossingLoops
	}

	stale := 0
	for iter := 0; iter < maxLoops; iter++ {
		down := iter%2 == 0
		if down {
			for i := 1; i < len(unitsByLevel); i++ {
				pos := positions(unitsByLevel[i-1])
				unitsByLevel[i] = sweepLevel(unitsByLevel[i], pos, predecessors)
			}
		} else {
			for i := len(unitsByLevel) - 2; i >= 0; i-- {
				pos := positions(unitsByLevel[i+1])
				unitsByLevel[i] = sweepLevel(unitsByLevel[i], pos, successors)
			}
		}

		score := totalCrossings(g, expandAll(unitsByLevel))
		if score < bestScore {
			bestScore = score
			best = cloneUnits(unitsByLevel)
			stale = 0
		} else {
			stale++
			if stale >= 4 {
				break
			}
		}
		if score == 0 {
			break
		}
	}
	if bestScore > 0 && stale < 4 {
		log.Warn(ctx, "order: crossing minimization loop cap reached", slog.F("crossings", bestScore))
	}

	res := &Result{Levels: lv, Order: make([][]*wgraph.Vertex, len(lv))}
	for i, units := range best {
		res.Order[i] = expand(units)
	}
	return res
}

func cloneUnits(levels [][]*unit) [][]*unit {
	out := make([][]*unit, len(levels))
	for i, units := range levels {
		out[i] = append([]*unit{}, units...)
	}
	return out
}

func expandAll(levels [][]*unit) [][]*wgraph.Vertex {
	out := make([][]*wgraph.Vertex, len(levels))
	for i, units := range levels {
		out[i] = expand(units)
	}
	return out
}
