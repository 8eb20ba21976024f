// Package wgraph is the per-call mutable working graph every layout phase
// (cycle removal through routing) shares, per spec §3/§9: a typed mirror of
// the caller's argraph.Graph plus the scratch fields (rank, postorder
// number, barycenter, block/class links, dummy/conjunct/warrant flags, cut
// values, conflict flags) that only live for the duration of one Layout
// call. Dummy vertices created while splitting long edges (component E) and
// merging conjunct/warrant structures (component D) live here and nowhere
// else; argraph.Graph never sees them.
package wgraph

import (
	"github.com/davider90/argumappr/argraph"
	"github.com/davider90/argumappr/geo"
)

// Vertex is a working-graph vertex: either a mirror of an argraph.Vertex
// (Orig != nil) or a dummy created during layout (Orig == nil).
type Vertex struct {
	ID       string
	Orig     *argraph.Vertex
	Parent   *Vertex
	Children []*Vertex

	Width, Height float64
	X, Y          float64

	Rank    float64
	RankSet bool

	IsConjunctNode       bool
	IsWarrantSink        bool
	IsDummyNode          bool
	IsConjunctDummyNode  bool
	IsWarrantDummySource bool

	// Number/MinSubtreeNumber: postorder-numbering scratch slots (spec
	// §4.D.4). No phase sets or reads them; the layerer finds each cut's
	// components by traversal (rank.tailComponent).
	Number           int
	MinSubtreeNumber int

	// Barycenter/BlockRoot/NextBlockNode/ClassSink/XShift: barycenter and
	// Brandes–Köpf scratch slots (spec §4.E/§4.F). No phase sets or reads
	// them; order and position keep this state in local maps.
	Barycenter    float64
	BlockRoot     *Vertex
	NextBlockNode *Vertex
	ClassSink     *Vertex
	XShift        float64

	childIndex map[string]int
}

func newVertex(id string) *Vertex {
	return &Vertex{ID: id, childIndex: make(map[string]int)}
}

func (v *Vertex) addChild(c *Vertex) {
	if _, ok := v.childIndex[c.ID]; ok {
		return
	}
	v.childIndex[c.ID] = len(v.Children)
	v.Children = append(v.Children, c)
}

func (v *Vertex) removeChild(c *Vertex) {
	i, ok := v.childIndex[c.ID]
	if !ok {
		return
	}
	v.Children = append(v.Children[:i], v.Children[i+1:]...)
	delete(v.childIndex, c.ID)
	for id, idx := range v.childIndex {
		if idx > i {
			v.childIndex[id] = idx - 1
		}
	}
}

// Edge is a working-graph edge. Orig points back to the argraph.Edge it
// renders (nil for a purely synthetic edge with no caller-visible
// counterpart); every sub-edge of a long-edge dummy chain (spec §4.E.1)
// shares the same Orig so the router can find and collapse the chain.
type Edge struct {
	Source, Target *Vertex
	Name           string
	Orig           *argraph.Edge

	MinLen int
	Weight float64
	Points []*geo.Point

	IsConflicted bool
	CutValue     float64
	IsTreeEdge   bool
}

// Graph is the shared working representation. Unlike argraph.Graph it
// allows parallel edges between the same two vertices (dummy chains and
// restored reversed edges can produce them) and exposes its scratch fields
// directly, so it intentionally has a thinner API than argraph.Graph.
type Graph struct {
	NodeSep, RankSep                  float64
	MaxRankingLoops, MaxCrossingLoops int

	vertices    map[string]*Vertex
	vertexOrder []*Vertex
	edgeOrder   []*Edge
	dummySeq    int
}

// New returns an empty working graph.
func New() *Graph {
	return &Graph{vertices: make(map[string]*Vertex)}
}

// FromArgraph builds a working graph mirroring g: one Vertex per
// argraph.Vertex (same id, dimensions, parent relation, conjunct/warrant
// flags) and one Edge per argraph.Edge (same endpoints, minlen, weight),
// each Edge's Orig pointing back to its argraph.Edge.
func FromArgraph(g *argraph.Graph) *Graph {
	wg := New()
	for _, v := range g.Vertices() {
		nv := wg.AddVertex(v.ID)
		nv.Orig = v
		nv.Width = v.Label.Width
		nv.Height = v.Label.Height
		nv.IsConjunctNode = v.IsConjunctNode
		nv.IsWarrantSink = v.IsWarrantSink
	}
	for _, v := range g.Vertices() {
		if v.Parent != nil {
			nv, _ := wg.Vertex(v.ID)
			np, _ := wg.Vertex(v.Parent.ID)
			wg.SetParent(nv, np)
		}
	}
	for _, e := range g.Edges() {
		s, _ := wg.Vertex(e.Source.ID)
		t, _ := wg.Vertex(e.Target.ID)
		ne := wg.AddEdge(s, t, e.Name)
		ne.Orig = e
		ne.MinLen = e.Label.MinLen
		ne.Weight = e.Label.Weight
	}
	return wg
}

// Vertex returns the vertex with the given id, if any.
func (g *Graph) Vertex(id string) (*Vertex, bool) {
	v, ok := g.vertices[id]
	return v, ok
}

// Vertices returns all vertices in insertion order.
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, len(g.vertexOrder))
	copy(out, g.vertexOrder)
	return out
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edgeOrder))
	copy(out, g.edgeOrder)
	return out
}

// AddVertex adds and returns a new, non-dummy vertex. Callers adding an
// already-present id get the existing vertex back.
func (g *Graph) AddVertex(id string) *Vertex {
	if v, ok := g.vertices[id]; ok {
		return v
	}
	v := newVertex(id)
	g.vertices[id] = v
	g.vertexOrder = append(g.vertexOrder, v)
	return v
}

// NewDummyVertex adds and returns a fresh dummy vertex with a synthetic,
// collision-free id.
func (g *Graph) NewDummyVertex(prefix string) *Vertex {
	g.dummySeq++
	id := prefix
	for {
		if _, ok := g.vertices[id]; !ok {
			break
		}
		g.dummySeq++
		id = prefix + itoa(g.dummySeq)
	}
	v := g.AddVertex(id)
	v.IsDummyNode = true
	return v
}

// RemoveVertex removes v and every edge incident to it.
func (g *Graph) RemoveVertex(v *Vertex) {
	if _, ok := g.vertices[v.ID]; !ok {
		return
	}
	for _, e := range g.IncidentEdges(v) {
		g.RemoveEdge(e)
	}
	if v.Parent != nil {
		v.Parent.removeChild(v)
	}
	for _, c := range append([]*Vertex{}, v.Children...) {
		c.Parent = nil
	}
	delete(g.vertices, v.ID)
	for i, o := range g.vertexOrder {
		if o == v {
			g.vertexOrder = append(g.vertexOrder[:i], g.vertexOrder[i+1:]...)
			break
		}
	}
}

// AddEdge adds and returns a new edge from source to target. Unlike
// argraph, the working graph permits more than one edge between the same
// pair (long-edge splitting and reversed-edge restoration both rely on
// this), so name is advisory bookkeeping only.
func (g *Graph) AddEdge(source, target *Vertex, name string) *Edge {
	e := &Edge{Source: source, Target: target, Name: name, MinLen: argraph.DefaultMinLen, Weight: argraph.DefaultWeight}
	g.edgeOrder = append(g.edgeOrder, e)
	return e
}

// InsertVertex re-admits a vertex previously removed by RemoveVertex,
// preserving its identity (scratch fields, dummy/conjunct/warrant flags).
// Phases that temporarily contract part of the graph (the layerer's
// conjunct and warrant pre-merge) use this to restore it afterward.
func (g *Graph) InsertVertex(v *Vertex) {
	if _, ok := g.vertices[v.ID]; ok {
		return
	}
	g.vertices[v.ID] = v
	g.vertexOrder = append(g.vertexOrder, v)
}

// InsertEdge re-admits an edge previously removed by RemoveEdge.
func (g *Graph) InsertEdge(e *Edge) {
	g.edgeOrder = append(g.edgeOrder, e)
}

// RemoveEdge removes e.
func (g *Graph) RemoveEdge(e *Edge) {
	for i, o := range g.edgeOrder {
		if o == e {
			g.edgeOrder = append(g.edgeOrder[:i], g.edgeOrder[i+1:]...)
			return
		}
	}
}

// Predecessors returns the distinct sources of v's in-edges.
func (g *Graph) Predecessors(v *Vertex) []*Vertex {
	seen := make(map[*Vertex]bool)
	var out []*Vertex
	for _, e := range g.edgeOrder {
		if e.Target == v && !seen[e.Source] {
			seen[e.Source] = true
			out = append(out, e.Source)
		}
	}
	return out
}

// Successors returns the distinct targets of v's out-edges.
func (g *Graph) Successors(v *Vertex) []*Vertex {
	seen := make(map[*Vertex]bool)
	var out []*Vertex
	for _, e := range g.edgeOrder {
		if e.Source == v && !seen[e.Target] {
			seen[e.Target] = true
			out = append(out, e.Target)
		}
	}
	return out
}

// InEdges returns v's in-edges in graph insertion order.
func (g *Graph) InEdges(v *Vertex) []*Edge {
	var out []*Edge
	for _, e := range g.edgeOrder {
		if e.Target == v {
			out = append(out, e)
		}
	}
	return out
}

// OutEdges returns v's out-edges in graph insertion order.
func (g *Graph) OutEdges(v *Vertex) []*Edge {
	var out []*Edge
	for _, e := range g.edgeOrder {
		if e.Source == v {
			out = append(out, e)
		}
	}
	return out
}

// IncidentEdges returns every edge touching v.
func (g *Graph) IncidentEdges(v *Vertex) []*Edge {
	var out []*Edge
	for _, e := range g.edgeOrder {
		if e.Source == v || e.Target == v {
			out = append(out, e)
		}
	}
	return out
}

// SetParent makes parent the grouping container of child.
func (g *Graph) SetParent(child, parent *Vertex) {
	if child.Parent != nil {
		child.Parent.removeChild(child)
	}
	child.Parent = parent
	if parent != nil {
		parent.addChild(child)
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
