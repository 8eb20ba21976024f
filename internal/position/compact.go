package position

import "github.com/davider90/argumappr/internal/wgraph"

// compact assigns each vertex an x coordinate for one alignment: vertices
// are pulled toward their align parent's x (so a block shares one x
// wherever the layer's spacing allows it) while never violating nodesep
// against the neighbor already placed on the anchor side (spec §4.F.4).
// A left-biased alignment (a.left) compacts each level left to right,
// anchored against the previous (leftward) neighbor; a right-biased one
// mirrors this, compacting right to left anchored against the next
// (rightward) neighbor, so the two biases produce genuinely different
// layouts rather than the same one walked in a different rank order.
func compact(levelsOrder [][]*wgraph.Vertex, a *alignment, nodesep float64) map[*wgraph.Vertex]float64 {
	x := map[*wgraph.Vertex]float64{}

	order := make([]int, len(levelsOrder))
	for i := range order {
		order[i] = i
	}
	if !a.down {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}

	for _, li := range order {
		level := levelsOrder[li]
		if a.left {
			compactLevelLeft(x, level, a, nodesep)
		} else {
			compactLevelRight(x, level, a, nodesep)
		}
	}
	return x
}

func compactLevelLeft(x map[*wgraph.Vertex]float64, level []*wgraph.Vertex, a *alignment, nodesep float64) {
	havePrev := false
	prevRight := 0.0
	for _, v := range level {
		half := v.Width / 2
		min := 0.0
		if havePrev {
			min = prevRight + nodesep + half
		}
		desired, ok := desiredX(x, a, v)
		vx := min
		if ok && desired > min {
			vx = desired
		} else if !havePrev && !ok {
			vx = 0
		}
		x[v] = vx
		prevRight = vx + half
		havePrev = true
	}
}

// compactLevelRight mirrors compactLevelLeft: it walks the level right to
// left, pulling each vertex toward its align parent's x but never closer
// than nodesep to the vertex already placed on its right.
func compactLevelRight(x map[*wgraph.Vertex]float64, level []*wgraph.Vertex, a *alignment, nodesep float64) {
	havePrev := false
	prevLeft := 0.0
	for i := len(level) - 1; i >= 0; i-- {
		v := level[i]
		half := v.Width / 2
		max := 0.0
		if havePrev {
			max = prevLeft - nodesep - half
		}
		desired, ok := desiredX(x, a, v)
		vx := max
		if ok && desired < max {
			vx = desired
		} else if !havePrev && !ok {
			vx = 0
		}
		x[v] = vx
		prevLeft = vx - half
		havePrev = true
	}
}

func desiredX(x map[*wgraph.Vertex]float64, a *alignment, v *wgraph.Vertex) (float64, bool) {
	if p, ok := a.parent[v]; ok {
		if px, ok2 := x[p]; ok2 {
			return px, true
		}
	}
	return 0, false
}
