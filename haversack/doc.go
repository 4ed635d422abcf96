// Package haversack solves day 7, Handy Haversacks.
//
// Each rule "<color> bags contain N <color> bag(s), ..." becomes weighted
// directed edges parent→child with weight N in a core.Graph. Two read-only
// traversals answer the puzzle:
//
//   - Holders: distinct colors that can eventually contain the target, a bfs
//     walk over incoming edges.
//   - Inside: total bags within the target, dfs.WeightedTotal over outgoing
//     edges. A containment cycle would make this infinite and is reported as
//     dfs.ErrCycleDetected.
package haversack
