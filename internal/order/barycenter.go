package order

import (
	"sort"

	"github.com/davider90/argumappr/internal/wgraph"
)

// barycenter is the mean position, in the fixed neighboring level, of
// every neighbor any member of u connects to via neighborEdges (spec
// §4.E.3). Units with no such neighbor keep their current slot, signaled
// by ok == false.
func barycenter(u *unit, pos map[*wgraph.Vertex]int, neighbors func(*wgraph.Vertex) []*wgraph.Vertex) (float64, bool) {
	sum, n := 0.0, 0
	for _, m := range u.members {
		for _, nb := range neighbors(m) {
			if p, ok := pos[nb]; ok {
				sum += float64(p)
				n++
			}
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// sweepLevel reorders units by barycenter relative to the fixed level,
// keeping units with no neighbor in their current slot (stable sort).
func sweepLevel(units []*unit, pos map[*wgraph.Vertex]int, neighbors func(*wgraph.Vertex) []*wgraph.Vertex) []*unit {
	type scored struct {
		u     *unit
		score float64
	}
	scoredUnits := make([]scored, len(units))
	for i, u := range units {
		bc, ok := barycenter(u, pos, neighbors)
		if !ok {
			bc = float64(i) // no neighbor to sort by: hold its current slot
		}
		scoredUnits[i] = scored{u: u, score: bc}
	}
	sort.SliceStable(scoredUnits, func(i, j int) bool {
		return scoredUnits[i].score < scoredUnits[j].score
	})
	out := make([]*unit, len(units))
	for i, s := range scoredUnits {
		out[i] = s.u
	}
	return out
}
