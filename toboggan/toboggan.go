// Package toboggan solves day 3, Toboggan Trajectory: count the trees hit
// sledding down a map that repeats to the right.
package toboggan

import (
	"fmt"

	"github.com/katalvlaran/aoc2020/gridgraph"
	"github.com/katalvlaran/aoc2020/internal/text"
)

const (
	open = 0
	tree = 1
)

var legend = map[rune]int{'.': open, '#': tree}

// Slope is a step of Right columns and Down rows.
type Slope struct {
	Right, Down int
}

// Slopes lists the trajectories checked in part two.
var Slopes = []Slope{{1, 1}, {3, 1}, {5, 1}, {7, 1}, {1, 2}}

// Map is a parsed tree map; columns wrap.
type Map struct {
	grid *gridgraph.GridGraph
}

// Parse reads rows of '.' and '#'. An empty map, ragged rows or any other
// symbol is an error.
func Parse(input string) (*Map, error) {
	g, err := gridgraph.ParseRunes(text.Lines(input), legend, gridgraph.GridOptions{
		LandThreshold: tree,
		WrapX:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("toboggan: %w", err)
	}

	return &Map{grid: g}, nil
}

// Width and Height return the size of the repeating tile.
func (m *Map) Width() int  { return m.grid.Width }
func (m *Map) Height() int { return m.grid.Height }

// Trees counts the trees met from the top-left corner along s until the
// sled passes the bottom row.
func (m *Map) Trees(s Slope) (int, error) {
	return m.grid.CountAlong(s.Right, s.Down)
}

// PartOne counts trees on slope right 3, down 1.
func PartOne(input string) (int, error) {
	m, err := Parse(input)
	if err != nil {
		return 0, err
	}

	return m.Trees(Slope{Right: 3, Down: 1})
}

// PartTwo multiplies the tree counts of every slope in Slopes.
func PartTwo(input string) (int, error) {
	m, err := Parse(input)
	if err != nil {
		return 0, err
	}
	product := 1
	for _, s := range Slopes {
		n, err := m.Trees(s)
		if err != nil {
			return 0, err
		}
		product *= n
	}

	return product, nil
}
