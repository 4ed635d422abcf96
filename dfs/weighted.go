package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/aoc2020/core"
)

// totaler memoises per-vertex descendant totals during WeightedTotal.
type totaler struct {
	graph *core.Graph
	ctx   context.Context
	state map[string]int
	memo  map[string]int64
}

// WeightedTotal returns the weighted number of descendants of startID:
//
//	total(v) = Σ over edges v→c of  weight(v→c) × (1 + total(c))
//
// With weights read as "v holds weight copies of c", this counts every
// copy of every vertex transitively held by startID (startID itself excluded).
// Each vertex total is computed once (post-order memoisation), so the cost is
// O(V + E) however many paths share a subtree.
//
// Errors: ErrGraphNil, ErrUndirected, ErrStartVertexNotFound, ErrCycleDetected
// (an infinite total), ErrNeighborFetch, or the context error.
func WeightedTotal(g *core.Graph, startID string, options ...TopoOption) (int64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if !g.Directed() {
		return 0, ErrUndirected
	}
	if !g.HasVertex(startID) {
		return 0, ErrStartVertexNotFound
	}
	opts := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&opts)
	}

	t := &totaler{
		graph: g,
		ctx:   opts.ctx,
		state: make(map[string]int),
		memo:  make(map[string]int64),
	}

	return t.total(startID)
}

func (t *totaler) total(id string) (int64, error) {
	select {
	case <-t.ctx.Done():
		return 0, t.ctx.Err()
	default:
	}
	switch t.state[id] {
	case Gray:
		return 0, cycleAt(id)
	case Black:
		return t.memo[id], nil
	}
	t.state[id] = Gray

	edges, err := t.graph.Neighbors(id)
	if err != nil {
		return 0, wrapNeighbors(id, err)
	}
	var sum int64
	for _, e := range edges {
		sub, err := t.total(e.To)
		if err != nil {
			return 0, err
		}
		sum += e.Weight * (1 + sub)
	}

	t.state[id] = Black
	t.memo[id] = sum

	return sum, nil
}

// cycleAt reports a back-edge into id.
func cycleAt(id string) error {
	return fmt.Errorf("%w: back-edge into %q", ErrCycleDetected, id)
}

// wrapNeighbors wraps a core neighbor failure in ErrNeighborFetch.
func wrapNeighbors(id string, err error) error {
	return fmt.Errorf("%w: %q: %v", ErrNeighborFetch, id, err)
}
