package argraph

// SetConjunctNode marks v as a premise in the conjunct cluster whose shared
// conclusion is the target of edge (u, w) (named edgeName), per spec §4.A.
// The first call for a given conclusion w synthesizes the "-> w" container,
// reparents u under it, and moves the u->w edge to container->w; every
// subsequent call for the same conclusion reuses that container and just
// reparents its vertex (which may be u itself, on the first call, or any
// later premise).
func (g *Graph) SetConjunctNode(v, u, w *Vertex, edgeName string) error {
	var container *Vertex
	if u.Parent == nil {
		e, ok := g.Edge(u, w, edgeName)
		if !ok {
			return InvalidInput("setConjunctNode: edge %q -> %q (name %q) does not exist", u.ID, w.ID, edgeName)
		}
		container = g.AddVertex(conjunctContainerID(w))
		container.IsConjunctNode = true
		if err := g.SetParent(u, container); err != nil {
			return err
		}
		g.moveEdge(e, container, w)
	} else {
		container = u.Parent
	}

	return g.SetParent(v, container)
}
