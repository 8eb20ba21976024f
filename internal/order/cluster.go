package order

import "github.com/davider90/argumappr/internal/wgraph"

// unit is one slot in a level's order: either a single vertex or, for a
// conjunct cluster, the container and all of its children treated as one
// indivisible block so the barycenter sweep can never separate them
// (spec §4.E.2's contiguity constraint, enforced the same way a
// constraint-graph violation is resolved: by merging into a single meta
// node rather than tracking the constraint separately).
type unit struct {
	members []*wgraph.Vertex
}

func singleton(v *wgraph.Vertex) *unit { return &unit{members: []*wgraph.Vertex{v}} }

// buildUnits groups the vertices at one level into units, merging every
// conjunct container with its children.
func buildUnits(vs []*wgraph.Vertex) []*unit {
	var units []*unit
	for _, v := range vs {
		if v.Parent != nil && v.Parent.IsConjunctNode {
			continue // folded into its container's unit below
		}
		if v.IsConjunctNode && len(v.Children) > 0 {
			members := append([]*wgraph.Vertex{}, v.Children...)
			members = append(members, v)
			units = append(units, &unit{members: members})
			continue
		}
		units = append(units, singleton(v))
	}
	return units
}

// expand flattens an ordered slice of units back into a flat vertex
// sequence for crossing counting and for the final level order handed to
// the position phase.
func expand(units []*unit) []*wgraph.Vertex {
	var out []*wgraph.Vertex
	for _, u := range units {
		out = append(out, u.members...)
	}
	return out
}
