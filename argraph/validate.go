package argraph

// Validate checks the boundary conditions spec §6/§7 require before any
// layout phase runs: every edge has minlen >= 1, every warrant sink and
// conjunct container is well formed, and the parent relation is a forest
// (SetParent already refuses to create cycles, so this only needs to check
// for orphaned/malformed synthesized vertices left by direct manipulation).
func (g *Graph) Validate() error {
	for _, e := range g.edgeOrder {
		if e.Label.MinLen < 1 {
			return InvalidInput("edge %q -> %q (name %q) has minlen %d, want >= 1", e.Source.ID, e.Target.ID, e.Name, e.Label.MinLen)
		}
		if e.Label.Weight < 0 {
			return InvalidInput("edge %q -> %q (name %q) has weight %g, want >= 0", e.Source.ID, e.Target.ID, e.Name, e.Label.Weight)
		}
	}

	for _, v := range g.vertexOrder {
		if v.IsConjunctNode {
			if len(v.Children) == 0 {
				return InvalidInput("conjunct container %q has no children", v.ID)
			}
			out := g.OutEdges(v)
			if len(out) != 1 {
				return InvalidInput("conjunct container %q must have exactly one outgoing edge, has %d", v.ID, len(out))
			}
			for _, c := range v.Children {
				if c.Parent != v {
					return InvalidInput("conjunct container %q child %q has mismatched parent", v.ID, c.ID)
				}
			}
		}
		if v.IsWarrantSink {
			u, w, ok := splitWarrantSinkID(v.ID)
			if !ok {
				return InvalidInput("warrant sink %q does not have the \"<u> -> <w>\" shape", v.ID)
			}
			uv, uOk := g.Vertex(u)
			wv, wOk := g.Vertex(w)
			if !uOk || !wOk {
				return InvalidInput("warrant sink %q references a missing edge endpoint", v.ID)
			}
			if !g.HasEdge(uv, wv, "") {
				found := false
				for _, e := range g.edgeOrder {
					if e.Source == uv && e.Target == wv {
						found = true
						break
					}
				}
				if !found {
					return InvalidInput("warrant sink %q has no underlying edge %q -> %q", v.ID, u, w)
				}
			}
		}
	}

	return nil
}
