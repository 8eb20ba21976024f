// Package rank implements component D of the layout pipeline: assigning
// every vertex an integer (or, for warrant sinks, half-integer) layer,
// minimizing the total weighted edge length.
package rank

import (
	"context"
	"math"

	"cdr.dev/slog"

	"github.com/davider90/argumappr/internal/wgraph"
	"github.com/davider90/argumappr/log"
)

// Assign ranks every vertex in g and sets its Y coordinate to rank *
// ranksep. It runs, in order: conjunct/warrant contraction, longest-path
// seeding, tight-tree growth, bounded network-simplex refinement,
// normalization, balancing, and conjunct/warrant restoration (spec
// §4.D).
func Assign(ctx context.Context, g *wgraph.Graph) {
	conjunctStashes := contractConjuncts(g)
	warrantStashes := excludeWarrantSinks(g)

	longestPath(g)
	tree := feasibleTree(g)
	iterations, capped := networkSimplex(g, tree, g.MaxRankingLoops)
	if capped {
		log.Warn(ctx, "rank: network simplex iteration cap reached before convergence",
			slog.F("iterations", iterations))
	}

	normalize(g)
	balance(g)

	restoreConjuncts(g, conjunctStashes)
	restoreWarrantSinks(g, warrantStashes)

	for _, v := range g.Vertices() {
		v.Y = v.Rank * g.RankSep
	}
}

// normalize shifts every rank down so the minimum is zero.
func normalize(g *wgraph.Graph) {
	min := math.Inf(1)
	for _, v := range g.Vertices() {
		if v.RankSet && v.Rank < min {
			min = v.Rank
		}
	}
	if math.IsInf(min, 1) || min == 0 {
		return
	}
	for _, v := range g.Vertices() {
		if v.RankSet {
			v.Rank -= min
		}
	}
}

// balance moves each vertex whose in-degree equals its out-degree to
// the least populated rank within the range its incident edges' minlens
// still allow, spreading ties without changing the summed length of its
// incident edges (each in-edge grows by what each out-edge shrinks, spec
// §4.D.5).
func balance(g *wgraph.Graph) {
	counts := map[float64]int{}
	for _, v := range g.Vertices() {
		if v.RankSet {
			counts[v.Rank]++
		}
	}

	for _, v := range g.Vertices() {
		in := g.InEdges(v)
		out := g.OutEdges(v)
		if len(in) != len(out) {
			continue
		}

		low := math.Inf(-1)
		for _, e := range in {
			if cand := e.Source.Rank + float64(e.MinLen); cand > low {
				low = cand
			}
		}
		high := math.Inf(1)
		for _, e := range out {
			if cand := e.Target.Rank - float64(e.MinLen); cand < high {
				high = cand
			}
		}
		if low > high || (math.IsInf(low, -1) && math.IsInf(high, 1)) {
			continue
		}
		if math.IsInf(low, -1) {
			low = v.Rank
		}
		if math.IsInf(high, 1) {
			high = v.Rank
		}

		best, bestCount := v.Rank, counts[v.Rank]
		for r := low; r <= high; r++ {
			if counts[r] < bestCount {
				best, bestCount = r, counts[r]
			}
		}
		if best != v.Rank {
			counts[v.Rank]--
			v.Rank = best
			counts[best]++
		}
	}
}
