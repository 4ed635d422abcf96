package dfs_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/aoc2020/core"
	"github.com/katalvlaran/aoc2020/dfs"
)

// WeightedTotalSuite exercises WeightedTotal on containment-style DAGs.
type WeightedTotalSuite struct {
	suite.Suite
}

func weighted() *core.Graph {
	return core.NewGraph(core.WithDirected(true), core.WithWeighted())
}

// TestLeaf verifies a vertex without children totals zero.
func (s *WeightedTotalSuite) TestLeaf() {
	g := weighted()
	require.NoError(s.T(), g.AddVertex("faded blue"))
	got, err := dfs.WeightedTotal(g, "faded blue")
	require.NoError(s.T(), err)
	require.Zero(s.T(), got)
}

// TestDoublingChain mirrors the seven-level doubling chain: 2+4+…+64 = 126.
func (s *WeightedTotalSuite) TestDoublingChain() {
	g := weighted()
	for i := 0; i < 6; i++ {
		_, err := g.AddEdge(fmt.Sprintf("L%d", i), fmt.Sprintf("L%d", i+1), 2)
		require.NoError(s.T(), err)
	}
	got, err := dfs.WeightedTotal(g, "L0")
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(126), got)
}

// TestSharedSubtree verifies a shared child is counted once per path.
//
//	A -2-> B -3-> D
//	A -1-> C -4-> D
//
// total(D)=0, total(B)=3, total(C)=4, total(A)=2×4 + 1×5 = 13.
func (s *WeightedTotalSuite) TestSharedSubtree() {
	g := weighted()
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("A", "C", 1)
	_, _ = g.AddEdge("B", "D", 3)
	_, _ = g.AddEdge("C", "D", 4)
	got, err := dfs.WeightedTotal(g, "A")
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(13), got)
}

// TestCycle verifies containment cycles are rejected rather than looping.
func (s *WeightedTotalSuite) TestCycle() {
	g := weighted()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "A", 1)
	_, err := dfs.WeightedTotal(g, "A")
	require.ErrorIs(s.T(), err, dfs.ErrCycleDetected)
}

// TestErrors covers argument validation.
func (s *WeightedTotalSuite) TestErrors() {
	_, err := dfs.WeightedTotal(nil, "A")
	require.ErrorIs(s.T(), err, dfs.ErrGraphNil)

	_, err = dfs.WeightedTotal(core.NewGraph(), "A")
	require.ErrorIs(s.T(), err, dfs.ErrUndirected)

	_, err = dfs.WeightedTotal(weighted(), "A")
	require.ErrorIs(s.T(), err, dfs.ErrStartVertexNotFound)

	g := weighted()
	_ = g.AddVertex("A")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.WeightedTotal(g, "A", dfs.WithCancelContext(ctx))
	require.ErrorIs(s.T(), err, context.Canceled)
}

func TestWeightedTotalSuite(t *testing.T) {
	suite.Run(t, new(WeightedTotalSuite))
}
