package argraph

// SetWarrantEdge materializes the warrant (s, (u, w)): a statement s that
// licenses the inference u -> w. Per spec §4.A it creates or updates a
// warrant-sink vertex "u -> w" (zero width/height, IsWarrantSink) and
// ensures an s -> sink edge carrying label exists.
func (g *Graph) SetWarrantEdge(s, u, w *Vertex, edgeName string, label EdgeLabel) error {
	if _, ok := g.Edge(u, w, edgeName); !ok {
		return InvalidInput("setWarrantEdge: edge %q -> %q (name %q) does not exist", u.ID, w.ID, edgeName)
	}

	sink := g.AddVertex(warrantSinkID(u, w))
	sink.IsWarrantSink = true
	sink.Label.Width = 0
	sink.Label.Height = 0

	e := g.AddEdge(s, sink, "")
	e.Label = label
	return nil
}
