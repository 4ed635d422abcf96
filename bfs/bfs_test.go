package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/katalvlaran/aoc2020/bfs"
	"github.com/katalvlaran/aoc2020/core"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	_ = g.AddVertex("A")
	if _, err := bfs.BFS(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	if _, err := bfs.BFS(g, "A", bfs.WithDirection(bfs.Direction(7))); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("bad direction: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_WeightedAllowed verifies weights do not block traversal.
func TestBFS_WeightedAllowed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 5)
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_Directions compares outgoing and incoming traversals of the same DAG.
//
//	A → B → D
//	A → C → D
//	E → C
func TestBFS_Directions(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"E", "C"}} {
		_, _ = g.AddEdge(e[0], e[1], 0)
	}

	out, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C", "D"}; !reflect.DeepEqual(out.Order, want) {
		t.Errorf("outgoing Order = %v; want %v", out.Order, want)
	}

	in, err := bfs.BFS(g, "D", bfs.WithDirection(bfs.Incoming))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"D", "B", "C", "A", "E"}; !reflect.DeepEqual(in.Order, want) {
		t.Errorf("incoming Order = %v; want %v", in.Order, want)
	}
	if got := in.Reached(); got != 4 {
		t.Errorf("Reached = %d; want 4", got)
	}
	if got := in.Depth["E"]; got != 2 {
		t.Errorf("Depth[E] = %d; want 2", got)
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth for a positive limit and for 0 (no limit).
func TestBFS_MaxDepth(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []string{"A", "B"}) {
		t.Errorf("MaxDepth=1: got %v; want [A B]", res.Order)
	}
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(0)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=0: got %v; want [A B C]", res.Order)
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain steps.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	res, _ := bfs.BFS(g, "A",
		bfs.WithFilterNeighbor(func(curr, nbr string) bool {
			return !(curr == "B" && nbr == "C")
		}),
	)
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
}

// TestBFS_OnVisitAbort verifies a hook error stops the search and is wrapped.
func TestBFS_OnVisitAbort(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	stop := errors.New("stop")
	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("want wrapped stop error, got %v", err)
	}
}

// TestBFS_PathTo covers both trivial (start→start) and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("X", "Y", 0)
	_, _ = g.AddEdge("Y", "Z", 0)
	_ = g.AddVertex("W")
	res, _ := bfs.BFS(g, "X")
	if path, _ := res.PathTo("Z"); !reflect.DeepEqual(path, []string{"X", "Y", "Z"}) {
		t.Errorf("PathTo Z: got %v; want [X Y Z]", path)
	}
	if path, _ := res.PathTo("X"); !reflect.DeepEqual(path, []string{"X"}) {
		t.Errorf("PathTo start: got %v; want [X]", path)
	}
	_, err := res.PathTo("W")
	if err == nil || !strings.Contains(err.Error(), "no path") {
		t.Errorf("PathTo unreachable: expected error, got %v", err)
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 100; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 0)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, "v0", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}
