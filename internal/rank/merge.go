package rank

import (
	"strings"

	"github.com/davider90/argumappr/internal/wgraph"
)

// conjunctStash lets Assign temporarily contract a conjunct cluster into
// its container for ranking (spec §4.D.1: a cluster occupies one layer)
// and restore the children and their external edges afterward.
type conjunctStash struct {
	container *wgraph.Vertex
	children  []*wgraph.Vertex
	redirects []redirectedEdge
}

type redirectedEdge struct {
	edge    *wgraph.Edge
	child   *wgraph.Vertex
	wasTail bool // true if child was edge.Source before redirection
}

// warrantStash lets Assign exclude a warrant sink from integer ranking
// and restore it at its midpoint rank afterward.
type warrantStash struct {
	sink    *wgraph.Vertex
	inEdges []*wgraph.Edge
}

// contractConjuncts redirects every external edge of every conjunct
// child onto its container and removes the children from g, so ranking
// sees one vertex per cluster.
func contractConjuncts(g *wgraph.Graph) []*conjunctStash {
	var stashes []*conjunctStash
	for _, v := range g.Vertices() {
		if !v.IsConjunctNode || len(v.Children) == 0 {
			continue
		}
		st := &conjunctStash{container: v, children: append([]*wgraph.Vertex{}, v.Children...)}
		for _, c := range st.children {
			for _, e := range g.OutEdges(c) {
				st.redirects = append(st.redirects, redirectedEdge{edge: e, child: c, wasTail: true})
				e.Source = v
			}
			for _, e := range g.InEdges(c) {
				st.redirects = append(st.redirects, redirectedEdge{edge: e, child: c, wasTail: false})
				e.Target = v
			}
			g.RemoveVertex(c)
		}
		stashes = append(stashes, st)
	}
	// Drop any self-loops the contraction created (a child's edge to a
	// sibling under the same container): they carry no ranking
	// information once both ends are the container.
	for _, e := range g.Edges() {
		if e.Source == e.Target {
			g.RemoveEdge(e)
		}
	}
	return stashes
}

// restoreConjuncts undoes contractConjuncts, assigning each restored
// child its container's final rank.
func restoreConjuncts(g *wgraph.Graph, stashes []*conjunctStash) {
	for _, st := range stashes {
		for _, c := range st.children {
			g.InsertVertex(c)
			g.SetParent(c, st.container)
			c.Rank = st.container.Rank
			c.RankSet = true
		}
		for _, r := range st.redirects {
			if r.wasTail {
				r.edge.Source = r.child
			} else {
				r.edge.Target = r.child
			}
		}
	}
}

// excludeWarrantSinks removes every warrant sink from g so integer
// ranking never has to reason about a half-integer target.
func excludeWarrantSinks(g *wgraph.Graph) []*warrantStash {
	var stashes []*warrantStash
	for _, v := range g.Vertices() {
		if !v.IsWarrantSink {
			continue
		}
		st := &warrantStash{sink: v, inEdges: g.InEdges(v)}
		g.RemoveVertex(v)
		stashes = append(stashes, st)
	}
	return stashes
}

// restoreWarrantSinks re-admits every warrant sink at the midpoint rank
// of the inference edge it annotates (spec: rank(sink) sits halfway
// between the warranted edge's source and target).
func restoreWarrantSinks(g *wgraph.Graph, stashes []*warrantStash) {
	for _, st := range stashes {
		g.InsertVertex(st.sink)
		for _, e := range st.inEdges {
			g.InsertEdge(e)
		}
		u, w, ok := warrantedEndpoints(g, st.sink)
		if ok && u.RankSet && w.RankSet {
			st.sink.Rank = u.Rank + (w.Rank-u.Rank)/2
		} else {
			st.sink.Rank = 0
		}
		st.sink.RankSet = true
	}
}

// warrantedEndpoints recovers the u, w vertices a warrant sink
// annotates by splitting its "u -> w" id, the same encoding
// argraph.Graph.SetWarrantEdge uses when it synthesizes the sink.
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
