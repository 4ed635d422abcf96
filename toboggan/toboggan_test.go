package toboggan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2020/gridgraph"
	"github.com/katalvlaran/aoc2020/toboggan"
)

const area = `..##.......
#...#...#..
.#....#..#.
..#.#...#.#
.#...##..#.
..#.##.....
.#.#.#....#
.#........#
#.##...#...
#...##....#
.#..#...#.#
`

func TestParts(t *testing.T) {
	got, err := toboggan.PartOne(area)
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	got, err = toboggan.PartTwo(area)
	require.NoError(t, err)
	assert.Equal(t, 336, got)
}

func TestTrees_EachSlope(t *testing.T) {
	m, err := toboggan.Parse(area)
	require.NoError(t, err)
	assert.Equal(t, 11, m.Width())
	assert.Equal(t, 11, m.Height())

	want := []int{2, 7, 3, 4, 2}
	for i, s := range toboggan.Slopes {
		n, err := m.Trees(s)
		require.NoError(t, err)
		assert.Equal(t, want[i], n, "slope %+v", s)
	}

	_, err = m.Trees(toboggan.Slope{Right: 1, Down: 0})
	assert.ErrorIs(t, err, gridgraph.ErrBadStep)
}

func TestParseErrors(t *testing.T) {
	_, err := toboggan.PartOne("")
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
	_, err = toboggan.PartOne("..#\n.#\n")
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)
	_, err = toboggan.PartTwo("..#\n.O.\n")
	assert.ErrorIs(t, err, gridgraph.ErrUnknownCell)
}
