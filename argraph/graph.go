// Package argraph implements the directed compound graph the layout engine
// consumes and produces: component A (Graph Model) and component B (Rank
// Table) of the layered layout pipeline. It stores typed vertex/edge labels
// rather than the freeform attribute bags spec.md's source graph library
// uses (see DESIGN.md "attribute bags" note) and provides the two
// argument-map-specific extensions, conjunct vertices and warrant edges.
package argraph

import (
	"strings"

	"github.com/davider90/argumappr/geo"
)

// Default label values, applied whenever a caller omits them (spec §6).
const (
	DefaultWidth  = 300.0
	DefaultHeight = 100.0
	DefaultMinLen = 1
	DefaultWeight = 1.0

	DefaultRankSep          = 225.0
	DefaultNodeSep          = 100.0
	DefaultMaxRankingLoops  = 100
	DefaultMaxCrossingLoops = 100
)

// VertexLabel carries a vertex's input dimensions and output position.
type VertexLabel struct {
	Width, Height float64
	X, Y          float64
}

// EdgeLabel carries an edge's input constraints and output route: Points
// is the quadratic Bézier control polygon the router (component G)
// produces, empty until layout has run.
type EdgeLabel struct {
	MinLen int
	Weight float64
	Points []*geo.Point
}

// Vertex is a statement in the argument map. ID is its unique identifier.
// Parent/Children model the compound (grouping) forest used for conjunct
// containers; a Vertex with no Parent is a root of that forest.
type Vertex struct {
	ID       string
	Parent   *Vertex
	Children []*Vertex

	Label VertexLabel

	// IsConjunctNode marks a synthesized container vertex created by
	// SetConjunctNode: its children are a cluster of premises sharing one
	// outgoing edge to their conclusion.
	IsConjunctNode bool
	// IsWarrantSink marks a synthesized vertex standing in for an edge
	// that is itself the target of a warrant edge.
	IsWarrantSink bool

	childIndex map[string]int
}

func newVertex(id string) *Vertex {
	return &Vertex{
		ID: id,
		Label: VertexLabel{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		childIndex: make(map[string]int),
	}
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

// edgeKey identifies an edge by (source, target, name), the single-edge name
// slot spec.md's data model uses to reject multi-edges by default.
type edgeKey struct {
	Source, Target, Name string
}

// Edge is an inference (or, when its target is a warrant sink, a warrant)
// between two vertices.
type Edge struct {
	Source *Vertex
	Target *Vertex
	Name   string

	Label EdgeLabel
}

func newEdge(source, target *Vertex, name string) *Edge {
	return &Edge{
		Source: source,
		Target: target,
		Name:   name,
		Label: EdgeLabel{
			MinLen: DefaultMinLen,
			Weight: DefaultWeight,
		},
	}
}

func (e *Edge) key() edgeKey {
	return edgeKey{Source: e.Source.ID, Target: e.Target.ID, Name: e.Name}
}

// GraphLabel carries the recognized graph-level configuration (spec §6) plus
// the output bounding-box dimensions. Zero-valued fields mean "use the
// default"; arglayout.Options is what actually merges in defaults at layout
// time, so this struct only ever reflects what the caller explicitly set.
type GraphLabel struct {
	RankSep          float64
	NodeSep          float64
	MaxRankingLoops  int
	MaxCrossingLoops int

	Width, Height float64
}

// Graph is a directed compound graph: vertices, edges between them, and a
// parent/children forest layered on top for grouping. It rejects multi-edges
// (same source, target, and name) and self-loops are always permitted.
type Graph struct {
	Label GraphLabel

	vertices    map[string]*Vertex
	vertexOrder []*Vertex

	edges     map[edgeKey]*Edge
	edgeOrder []*Edge
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[string]*Vertex),
		edges:    make(map[edgeKey]*Edge),
	}
}

// Vertex returns the vertex with the given id, if any.
func (g *Graph) Vertex(id string) (*Vertex, bool) {
	v, ok := g.vertices[id]
	return v, ok
}

// Vertices returns all vertices in insertion order. Stable enumeration order
// is required by the cycle remover's tie-break policy (spec §4.C).
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

// AddVertex adds a new vertex with default dimensions and returns it. It is
// a no-op (returning the existing vertex) if id is already present.
func (g *Graph) AddVertex(id string) *Vertex {
	if v, ok := g.vertices[id]; ok {
		return v
	}
	v := newVertex(id)
	g.vertices[id] = v
	g.vertexOrder = append(g.vertexOrder, v)
	return v
}

// RemoveVertex removes v, every edge incident to it, and detaches it from
// its parent and children (children become parentless).
func (g *Graph) RemoveVertex(v *Vertex) {
	if _, ok := g.vertices[v.ID]; !ok {
		return
	}
	for _, e := range g.IncidentEdges(v) {
		g.RemoveEdge(e.Source, e.Target, e.Name)
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

// HasEdge reports whether an edge (source, target, name) exists.
func (g *Graph) HasEdge(source, target *Vertex, name string) bool {
	_, ok := g.edges[edgeKey{Source: source.ID, Target: target.ID, Name: name}]
	return ok
}

// Edge returns the edge (source, target, name), if any.
func (g *Graph) Edge(source, target *Vertex, name string) (*Edge, bool) {
	e, ok := g.edges[edgeKey{Source: source.ID, Target: target.ID, Name: name}]
	return e, ok
}

// AddEdge adds an edge from source to target named name, with default
// minlen/weight. It returns the existing edge if one already occupies that
// (source, target, name) slot.
func (g *Graph) AddEdge(source, target *Vertex, name string) *Edge {
	k := edgeKey{Source: source.ID, Target: target.ID, Name: name}
	if e, ok := g.edges[k]; ok {
		return e
	}
	e := newEdge(source, target, name)
	g.edges[k] = e
	g.edgeOrder = append(g.edgeOrder, e)
	return e
}

// RemoveEdge removes the edge (source, target, name), and applies the
// argument-map cleanup rules from spec §4.A: a now-childless conjunct
// container is removed, and a now-unreferenced warrant sink is removed.
func (g *Graph) RemoveEdge(source, target *Vertex, name string) {
	k := edgeKey{Source: source.ID, Target: target.ID, Name: name}
	if _, ok := g.edges[k]; !ok {
		return
	}
	delete(g.edges, k)
	for i, o := range g.edgeOrder {
		if o.Source == source && o.Target == target && o.Name == name {
			g.edgeOrder = append(g.edgeOrder[:i], g.edgeOrder[i+1:]...)
			break
		}
	}

	if source.IsConjunctNode && len(source.Children) == 0 {
		g.RemoveVertex(source)
	}
	if target.IsWarrantSink && len(g.InEdges(target)) == 0 {
		g.RemoveVertex(target)
	}

	// An edge (source, target) may itself be the referent of a warrant: if
	// a "source -> target" sink vertex exists, the warrant it represents no
	// longer has an underlying edge to target, so the sink goes too.
	if sink, ok := g.vertices[warrantSinkID(source, target)]; ok && sink.IsWarrantSink {
		g.RemoveVertex(sink)
	}
}

// moveEdge relocates an edge, preserving its label, to a new (source,
// target, name) triple. Used by SetConjunctNode to redirect a premise's
// edge to its container.
func (g *Graph) moveEdge(e *Edge, newSource, newTarget *Vertex) *Edge {
	label := e.Label
	name := e.Name
	g.RemoveEdge(e.Source, e.Target, name)
	moved := g.AddEdge(newSource, newTarget, name)
	moved.Label = label
	return moved
}

// Predecessors returns the distinct sources of v's in-edges.
func (g *Graph) Predecessors(v *Vertex) []*Vertex {
	seen := make(map[string]bool)
	var out []*Vertex
	for _, e := range g.InEdges(v) {
		if !seen[e.Source.ID] {
			seen[e.Source.ID] = true
			out = append(out, e.Source)
		}
	}
	return out
}

// Successors returns the distinct targets of v's out-edges.
func (g *Graph) Successors(v *Vertex) []*Vertex {
	seen := make(map[string]bool)
	var out []*Vertex
	for _, e := range g.OutEdges(v) {
		if !seen[e.Target.ID] {
			seen[e.Target.ID] = true
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

// IncidentEdges returns every edge touching v (in, out, and self-loops once
// each) in graph insertion order.
func (g *Graph) IncidentEdges(v *Vertex) []*Edge {
	var out []*Edge
	for _, e := range g.edgeOrder {
		if e.Source == v || e.Target == v {
			out = append(out, e)
		}
	}
	return out
}

// SetParent makes parent the grouping container of child, detaching child
// from any previous parent. It rejects a parent assignment that would
// create a cycle in the parent forest.
func (g *Graph) SetParent(child, parent *Vertex) error {
	if parent == child {
		return InvalidInput("vertex %q cannot be its own parent", child.ID)
	}
	for p := parent; p != nil; p = p.Parent {
		if p == child {
			return InvalidInput("setting parent of %q to %q would create a cycle", child.ID, parent.ID)
		}
	}
	if child.Parent != nil {
		child.Parent.removeChild(child)
	}
	child.Parent = parent
	parent.addChild(child)
	return nil
}

// Snapshot returns a structural-only copy of g: the same vertex ids, parent
// relation, conjunct/warrant flags, and edges (with minlen/weight carried,
// since downstream structural analysis needs them; no output fields like
// X/Y/Points are carried). This is the "structural copy" spec §9's design
// notes call for: callers that need to mutate a working copy without
// disturbing labels on the real graph take a Snapshot first.
func (g *Graph) Snapshot() *Graph {
	out := NewGraph()
	out.Label = g.Label
	for _, v := range g.vertexOrder {
		nv := out.AddVertex(v.ID)
		nv.IsConjunctNode = v.IsConjunctNode
		nv.IsWarrantSink = v.IsWarrantSink
		nv.Label.Width = v.Label.Width
		nv.Label.Height = v.Label.Height
	}
	for _, v := range g.vertexOrder {
		if v.Parent != nil {
			nv, _ := out.Vertex(v.ID)
			np, _ := out.Vertex(v.Parent.ID)
			_ = out.SetParent(nv, np)
		}
	}
	for _, e := range g.edgeOrder {
		ns, _ := out.Vertex(e.Source.ID)
		nt, _ := out.Vertex(e.Target.ID)
		ne := out.AddEdge(ns, nt, e.Name)
		ne.Label.MinLen = e.Label.MinLen
		ne.Label.Weight = e.Label.Weight
	}
	return out
}

// conjunctContainerID and warrantSinkID compute the deterministic
// identifiers spec §3 mandates for synthesized vertices.
func conjunctContainerID(target *Vertex) string {
	return "-> " + target.ID
}

func warrantSinkID(u, w *Vertex) string {
	return u.ID + " -> " + w.ID
}

// splitWarrantSinkID parses a warrant sink id back into its (u, w) parts, if
// id has the "<u> -> <w>" shape.
func splitWarrantSinkID(id string) (u, w string, ok bool) {
	idx := strings.Index(id, " -> ")
	if idx < 0 {
		return "", "", false
	}
	return id[:idx], id[idx+len(" -> "):], true
}
