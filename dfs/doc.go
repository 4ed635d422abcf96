// Package dfs implements depth-first search traversal, topological sort and
// weighted descendant totals on a core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before backtracking.
//     Supports pre-/post-order hooks, cancellation, depth limiting, neighbor
//     filtering and forest traversal (WithFullTraversal).
//   - TopologicalSort: linear ordering of a directed acyclic graph, or
//     ErrCycleDetected.
//   - WeightedTotal: Σ weight × (1 + total(child)) over a DAG, memoised per
//     vertex. This is the "how many bags inside" count of nested containment.
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//   - WeightedTotal:   Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - ErrCycleDetected        cycle discovered where a DAG is required
//   - ErrUndirected           TopologicalSort/WeightedTotal on an undirected graph
//   - ErrNeighborFetch        neighbor lookup failed
//   - context.Canceled        traversal canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
