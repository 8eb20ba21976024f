package order

import (
	"sort"

	"github.com/davider90/argumappr/internal/wgraph"
)

// fenwick is the accumulation tree Barth, Jünger and Mutzel use to count
// two-layer crossings in O(E log V): the number of edges crossing
// between two adjacent, already-positioned levels equals the number of
// inversions in the sequence of lower-level positions visited in
// increasing upper-level order, which this tree accumulates in
// O(log V) per insertion instead of the O(V) a naive scan would take.
type fenwick struct{ tree []int }

func newFenwick(n int) *fenwick { return &fenwick{tree: make([]int, n+1)} }

func (f *fenwick) add(i int, delta int) {
	for i++; i < len(f.tree); i += i & (-i) {
		f.tree[i] += delta
	}
}

func (f *fenwick) sum(i int) int {
	s := 0
	for i++; i > 0; i -= i & (-i) {
		s += f.tree[i]
	}
	return s
}

// countCrossings counts how many edges between the upper and lower
// levels cross each other given their current orders.
func countCrossings(g *wgraph.Graph, upper, lower []*wgraph.Vertex) int {
	upperPos := make(map[*wgraph.Vertex]int, len(upper))
	for i, v := range upper {
		upperPos[v] = i
	}
	lowerPos := make(map[*wgraph.Vertex]int, len(lower))
	for i, v := range lower {
		lowerPos[v] = i
	}

	type endpoints struct{ u, l int }
	var seq []endpoints
	for _, e := range g.Edges() {
		up, inU := upperPos[e.Source]
		lp, inL := lowerPos[e.Target]
		if !inU || !inL {
			up, inU = upperPos[e.Target]
			lp, inL = lowerPos[e.Source]
			if !inU || !inL {
				continue
			}
		}
		seq = append(seq, endpoints{u: up, l: lp})
	}
	sort.Slice(seq, func(i, j int) bool {
		if seq[i].u != seq[j].u {
			return seq[i].u < seq[j].u
		}
		return seq[i].l < seq[j].l
	})

	bit := newFenwick(len(lower))
	crossings := 0
	for i := len(seq) - 1; i >= 0; i-- {
		crossings += bit.sum(seq[i].l - 1)
		bit.add(seq[i].l, 1)
	}
	return crossings
}

// totalCrossings sums crossings over every adjacent pair of levels.
func totalCrossings(g *wgraph.Graph, ordered [][]*wgraph.Vertex) int {
	total := 0
	for i := 0; i+1 < len(ordered); i++ {
		total += countCrossings(g, ordered[i], ordered[i+1])
	}
	return total
}
