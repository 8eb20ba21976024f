package argraph

import "sort"

// RankTable is the bidirectional vertex-id <-> rank map of spec §3/§4.B.
// Ranks may be half-integers (warrant sinks sit between adjacent integer
// ranks). Inserting a vertex into a rank removes it from any prior rank, and
// rank sets that become empty are pruned, so Nodes and MinRank/MaxRank never
// see stale entries.
type RankTable struct {
	rankOf map[string]float64
	byRank map[float64][]string
}

// NewRankTable returns an empty rank table.
func NewRankTable() *RankTable {
	return &RankTable{
		rankOf: make(map[string]float64),
		byRank: make(map[float64][]string),
	}
}

// Set assigns v to rank r, idempotently: if v is already at r this is a
// no-op, otherwise v is moved out of its previous rank (if any) first.
func (t *RankTable) Set(v string, r float64) {
	if old, ok := t.rankOf[v]; ok {
		if old == r {
			return
		}
		t.removeFromRank(old, v)
	}
	t.rankOf[v] = r
	t.byRank[r] = append(t.byRank[r], v)
}

// Delete removes v from the table entirely.
func (t *RankTable) Delete(v string) {
	if r, ok := t.rankOf[v]; ok {
		t.removeFromRank(r, v)
		delete(t.rankOf, v)
	}
}

func (t *RankTable) removeFromRank(r float64, v string) {
	list := t.byRank[r]
	for i, x := range list {
		if x == v {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(t.byRank, r)
	} else {
		t.byRank[r] = list
	}
}

// Rank returns the rank assigned to v, if any.
func (t *RankTable) Rank(v string) (float64, bool) {
	r, ok := t.rankOf[v]
	return r, ok
}

// Nodes returns the vertex ids assigned to rank r.
func (t *RankTable) Nodes(r float64) []string {
	out := make([]string, len(t.byRank[r]))
	copy(out, t.byRank[r])
	return out
}

// Ranks returns every non-empty rank in ascending order.
func (t *RankTable) Ranks() []float64 {
	out := make([]float64, 0, len(t.byRank))
	for r := range t.byRank {
		out = append(out, r)
	}
	sort.Float64s(out)
	return out
}

// MinRank returns the smallest assigned rank, and false if the table is
// empty.
func (t *RankTable) MinRank() (float64, bool) {
	ranks := t.Ranks()
	if len(ranks) == 0 {
		return 0, false
	}
	return ranks[0], true
}

// MaxRank returns the largest assigned rank, and false if the table is
// empty.
func (t *RankTable) MaxRank() (float64, bool) {
	ranks := t.Ranks()
	if len(ranks) == 0 {
		return 0, false
	}
	return ranks[len(ranks)-1], true
}
