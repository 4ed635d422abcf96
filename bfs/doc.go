// Package bfs provides breadth-first search over a core.Graph.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Follow outgoing edges (descendants) or incoming edges (ancestors) via WithDirection.
//   - Returns a BFSResult containing Order, Depth and Parent.
//   - OnVisit hook may abort the traversal with an error.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	core.NeighborIDs and core.InNeighborIDs return sorted IDs and BFS enqueues
//	them in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	// Every vertex that can reach "shiny gold":
//	res, err := bfs.BFS(g, "shiny gold", bfs.WithDirection(bfs.Incoming))
//	ancestors := res.Reached()
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (negative MaxDepth, unknown Direction).
//   - ErrNeighbors            if neighbor lookup fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
