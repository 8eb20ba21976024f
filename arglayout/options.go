// Package arglayout is the public entry point: it runs the full layered
// layout pipeline (cycle removal, ranking, ordering, positioning, routing)
// over an argraph.Graph, in place.
package arglayout

import "github.com/davider90/argumappr/argraph"

// Options configures one Layout call. A zero field means "not set"; Layout
// fills zero fields from the graph's own Label first, then from
// DefaultOptions, so a caller only needs to set what it wants to override.
type Options struct {
	RankSep          float64
	NodeSep          float64
	MaxRankingLoops  int
	MaxCrossingLoops int
}

// DefaultOptions mirrors argraph's documented defaults (spec §6).
var DefaultOptions = Options{
	RankSep:          argraph.DefaultRankSep,
	NodeSep:          argraph.DefaultNodeSep,
	MaxRankingLoops:  argraph.DefaultMaxRankingLoops,
	MaxCrossingLoops: argraph.DefaultMaxCrossingLoops,
}

// merge layers opts over label over DefaultOptions, each only filling in
// what the layer before it left unset.
func merge(opts *Options, label argraph.GraphLabel) Options {
	out := DefaultOptions

	if label.RankSep != 0 {
		out.RankSep = label.RankSep
	}
	if label.NodeSep != 0 {
		out.NodeSep = label.NodeSep
	}
	if label.MaxRankingLoops != 0 {
		out.MaxRankingLoops = label.MaxRankingLoops
	}
	if label.MaxCrossingLoops != 0 {
		out.MaxCrossingLoops = label.MaxCrossingLoops
	}

	if opts == nil {
		return out
	}
	if opts.RankSep != 0 {
		out.RankSep = opts.RankSep
	}
	if opts.NodeSep != 0 {
		out.NodeSep = opts.NodeSep
	}
	if opts.MaxRankingLoops != 0 {
		out.MaxRankingLoops = opts.MaxRankingLoops
	}
	if opts.MaxCrossingLoops != 0 {
		out.MaxCrossingLoops = opts.MaxCrossingLoops
	}
	return out
}
