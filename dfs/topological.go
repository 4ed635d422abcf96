package dfs

import (
	"context"

	"github.com/katalvlaran/aoc2020/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph
	ctx   context.Context
	state map[string]int
	order []string
}

// TopologicalSort computes an ordering of all vertices in g such that for
// every edge u→v, u appears before v.
//
// Errors: ErrGraphNil, ErrUndirected, ErrCycleDetected, ErrNeighborFetch,
// or the context error.
//
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirected
	}
	opts := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&opts)
	}

	verts := g.Vertices()
	sorter := &topoSorter{
		graph: g,
		ctx:   opts.ctx,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// reverse post-order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting back-edges.
func (t *topoSorter) visit(id string) error {
	select {
	case <-t.ctx.Done():
		return t.ctx.Err()
	default:
	}
	switch t.state[id] {
	case Gray:
		return cycleAt(id)
	case Black:
		return nil
	}
	t.state[id] = Gray

	next, err := t.graph.NeighborIDs(id)
	if err != nil {
		return wrapNeighbors(id, err)
	}
	for _, nid := range next {
		if err = t.visit(nid); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
