package order

import (
	"strings"

	"github.com/davider90/argumappr/internal/wgraph"
)

// warrantConstraint is one warrant's target edge, recovered from its
// warrant-sink vertex: simpleSource/simpleSink are the edge's own
// endpoints (spec §4.E.2's terms), and width is the warrant source's
// label width, carried over onto the sentinel that reserves its column.
type warrantConstraint struct {
	simpleSource, simpleSink *wgraph.Vertex
	width                    float64
}

// warrantConstraints finds every warrant sink in g and recovers the
// target edge it annotates plus the width its sentinel must reserve.
func warrantConstraints(g *wgraph.Graph) []warrantConstraint {
	var out []warrantConstraint
	for _, v := range g.Vertices() {
		if !v.IsWarrantSink {
			continue
		}
		u, w, ok := warrantedEndpoints(g, v)
		if !ok {
			continue
		}
		preds := g.Predecessors(v)
		if len(preds) == 0 {
			continue
		}
		out = append(out, warrantConstraint{simpleSource: u, simpleSink: w, width: preds[0].Width})
	}
	return out
}

// warrantedEndpoints recovers the u, w vertices a warrant sink annotates
// from its "u -> w" id, the same encoding argraph.Graph.SetWarrantEdge
// uses when it synthesizes the sink.
func warrantedEndpoints(g *wgraph.Graph, sink *wgraph.Vertex) (u, w *wgraph.Vertex, ok bool) {
	i := strings.Index(sink.ID, " -> ")
	if i < 0 {
		return nil, nil, false
	}
	uv, uok := g.Vertex(sink.ID[:i])
	wv, wok := g.Vertex(sink.ID[i+len(" -> "):])
	if !uok || !wok {
		return nil, nil, false
	}
	return uv, wv, true
}

// applyWarrantConstraints synthesizes the start-rs/end-rs sentinels spec
// §4.E.2 requires: for every warrant, a sentinel on simpleSource's level
// and one on simpleSink's level, each merged into that anchor's unit
// immediately after it. Enforced the same way conjunct contiguity is
// (spec §4.E.2's first bullet, see cluster.go): a fixed-order merged
// unit, not a constraint edge the barycenter sweep has to check. The
// effect is the one the spec names: the warrant's column sits next to
// its target edge wherever the sweep places simpleSource/simpleSink.
func applyWarrantConstraints(g *wgraph.Graph, lv []float64, unitsByLevel [][]*unit) {
	for _, wc := range warrantConstraints(g) {
		attachSentinel(g, lv, unitsByLevel, wc.simpleSource, "start-rs", wc.width)
		attachSentinel(g, lv, unitsByLevel, wc.simpleSink, "end-rs", wc.width)
	}
}

func attachSentinel(g *wgraph.Graph, lv []float64, unitsByLevel [][]*unit, anchor *wgraph.Vertex, prefix string, width float64) {
	li := levelIndex(lv, anchor.Rank)
	if li < 0 {
		return
	}
	u := findUnit(unitsByLevel[li], anchor)
	if u == nil {
		return
	}
	sentinel := g.NewDummyVertex(prefix)
	sentinel.Rank = anchor.Rank
	sentinel.RankSet = true
	sentinel.Width = width
	u.members = append(u.members, sentinel)
}

func findUnit(units []*unit, v *wgraph.Vertex) *unit {
	for _, u := range units {
		for _, m := range u.members {
			if m == v {
				return u
			}
		}
	}
	return nil
}
