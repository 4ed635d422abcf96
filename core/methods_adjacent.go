// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, InNeighbors, NeighborIDs, InNeighborIDs)
// and the adjacency helpers used by mutators.
// Determinism:
//   - Neighbors()/InNeighbors() sort by edge creation order.
//   - NeighborIDs()/InNeighborIDs() return unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.

package core

import "sort"

// Neighbors returns the edges leaving id.
//
// Directed edges are included only when e.From == id. Undirected edges are
// included once whichever endpoint id is; self-loops appear once.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d), where d is the out-degree.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	return g.collect(g.out, id)
}

// InNeighbors returns the edges arriving at id. It is the reverse view of
// Neighbors: directed edges with e.To == id, plus every incident undirected edge.
func (g *Graph) InNeighbors(id string) ([]*Edge, error) {
	return g.collect(g.in, id)
}

// NeighborIDs returns the unique vertex IDs reachable from id over one edge,
// sorted lexicographically.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	return otherEnds(id, edges), nil
}

// InNeighborIDs returns the unique vertex IDs with an edge into id,
// sorted lexicographically.
func (g *Graph) InNeighborIDs(id string) ([]string, error) {
	edges, err := g.InNeighbors(id)
	if err != nil {
		return nil, err
	}

	return otherEnds(id, edges), nil
}

// collect gathers the edges recorded under index[id] with consistent locking.
func (g *Graph) collect(index map[string]map[string]map[string]struct{}, id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	seen := make(map[string]struct{})
	var out []*Edge
	for _, edgeSet := range index[id] {
		for eid := range edgeSet {
			if _, dup := seen[eid]; dup {
				continue
			}
			e, ok := g.edges[eid]
			if !ok {
				continue
			}
			seen[eid] = struct{}{}
			out = append(out, e)
		}
	}
	sortEdges(out)

	return out, nil
}

// otherEnds maps incident edges to the unique opposite endpoints of id.
func otherEnds(id string, edges []*Edge) []string {
	set := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		switch {
		case e.From == id:
			set[e.To] = struct{}{}
		default:
			set[e.From] = struct{}{}
		}
	}
	ids := make([]string, 0, len(set))
	for v := range set {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids
}

// ensureBucket allocates index[id] if missing. Caller holds muEdgeAdj.
func ensureBucket(index map[string]map[string]map[string]struct{}, id string) {
	if _, ok := index[id]; !ok {
		index[id] = make(map[string]map[string]struct{})
	}
}

// link records index[a][b][eid]. Caller holds muEdgeAdj.
func link(index map[string]map[string]map[string]struct{}, a, b, eid string) {
	ensureBucket(index, a)
	if _, ok := index[a][b]; !ok {
		index[a][b] = make(map[string]struct{})
	}
	index[a][b][eid] = struct{}{}
}
