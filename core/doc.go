// Package core provides a thread-safe in-memory Graph with a minimal API
// surface, used as the substrate for the traversal packages (bfs, dfs) and for
// the bag-rule graph of the haversack puzzle.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge insertion via nested maps, indexed both ways:
//     out[from][to][edgeID] and in[to][from][edgeID]
//   - Monotonic Edge.ID generation ("e1", "e2", ...)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Core Methods:
//
//	AddVertex(id string) error                            // O(1)
//	HasVertex(id string) bool                             // O(1)
//	AddEdge(from, to string, weight int64) (string, error) // O(1)†
//	HasEdge(from, to string) bool                         // O(1)
//	Neighbors(id string) ([]*Edge, error)                 // outgoing, O(d·log d)
//	InNeighbors(id string) ([]*Edge, error)               // incoming, O(d·log d)
//	NeighborIDs / InNeighborIDs                           // unique, sorted
//	Vertices() []string                                   // O(V·log V)
//	Edges() []*Edge                                       // O(E·log E)
//
// † amortized: atomic ID generation + nested-map insertion.
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrBadWeight           – non-zero weight on unweighted graph
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
