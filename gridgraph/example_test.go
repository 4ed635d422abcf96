// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2020/gridgraph"
)

// ExampleGridGraph_CountAlong walks a repeating map on slope right 3, down 1
// and counts the trees ('#') met on the way.
func ExampleGridGraph_CountAlong() {
	rows := []string{
		"..##.......",
		"#...#...#..",
		".#....#..#.",
		"..#.#...#.#",
		".#...##..#.",
		"..#.##.....",
		".#.#.#....#",
		".#........#",
		"#.##...#...",
		"#...##....#",
		".#..#...#.#",
	}
	opts := gridgraph.GridOptions{LandThreshold: 1, WrapX: true}
	gg, err := gridgraph.ParseRunes(rows, map[rune]int{'.': 0, '#': 1}, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	trees, _ := gg.CountAlong(3, 1)
	fmt.Println("trees:", trees)

	// Output:
	// trees: 7
}
