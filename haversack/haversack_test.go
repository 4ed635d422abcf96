package haversack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2020/dfs"
	"github.com/katalvlaran/aoc2020/haversack"
)

const rulesOne = `light red bags contain 1 bright white bag, 2 muted yellow bags.
dark orange bags contain 3 bright white bags, 4 muted yellow bags.
bright white bags contain 1 shiny gold bag.
muted yellow bags contain 2 shiny gold bags, 9 faded blue bags.
shiny gold bags contain 1 dark olive bag, 2 vibrant plum bags.
dark olive bags contain 3 faded blue bags, 4 dotted black bags.
vibrant plum bags contain 5 faded blue bags, 6 dotted black bags.
faded blue bags contain no other bags.
dotted black bags contain no other bags.
`

const rulesTwo = `shiny gold bags contain 2 dark red bags.
dark red bags contain 2 dark orange bags.
dark orange bags contain 2 dark yellow bags.
dark yellow bags contain 2 dark green bags.
dark green bags contain 2 dark blue bags.
dark blue bags contain 2 dark violet bags.
dark violet bags contain no other bags.
`

func TestParts(t *testing.T) {
	got, err := haversack.PartOne(rulesOne)
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	got, err = haversack.PartTwo(rulesOne)
	require.NoError(t, err)
	assert.Equal(t, 32, got)

	got, err = haversack.PartTwo(rulesTwo)
	require.NoError(t, err)
	assert.Equal(t, 126, got)

	got, err = haversack.PartOne(rulesTwo)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestRules_Queries(t *testing.T) {
	rules, err := haversack.Parse(rulesOne)
	require.NoError(t, err)
	assert.Len(t, rules.Colors(), 9)

	n, err := rules.Holders("faded blue")
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	n, err = rules.Inside("dark olive")
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = rules.Holders("mauve")
	assert.ErrorIs(t, err, haversack.ErrUnknownColor)
	_, err = rules.Inside("mauve")
	assert.ErrorIs(t, err, haversack.ErrUnknownColor)
}

func TestParseRule(t *testing.T) {
	color, contents, err := haversack.ParseRule("light red bags contain 1 bright white bag, 2 muted yellow bags.")
	require.NoError(t, err)
	assert.Equal(t, "light red", color)
	assert.Equal(t, []haversack.Content{{Count: 1, Color: "bright white"}, {Count: 2, Color: "muted yellow"}}, contents)

	color, contents, err = haversack.ParseRule("faded blue bags contain no other bags.")
	require.NoError(t, err)
	assert.Equal(t, "faded blue", color)
	assert.Empty(t, contents)

	for _, bad := range []string{
		"",
		"light red bags hold 1 bright white bag.",
		"light red bags contain 1 bright white bag",
		"light red bags contain one bright white bag.",
		"light red bags contain 0 bright white bags.",
		"light red bags contain 2 bright white.",
		"light red bags contain 2 bags.",
		" bags contain no other bags.",
	} {
		_, _, err := haversack.ParseRule(bad)
		assert.ErrorIs(t, err, haversack.ErrMalformedRule, "rule %q", bad)
	}
}

func TestParse_Duplicates(t *testing.T) {
	_, err := haversack.Parse("a b bags contain no other bags.\na b bags contain 1 c d bag.\n")
	assert.ErrorIs(t, err, haversack.ErrDuplicateRule)

	_, err = haversack.Parse("a b bags contain 1 c d bag, 2 c d bags.\n")
	assert.ErrorIs(t, err, haversack.ErrDuplicateRule)
}

func TestCycle(t *testing.T) {
	cyclic := "shiny gold bags contain 1 dark red bag.\ndark red bags contain 2 shiny gold bags.\n"
	_, err := haversack.PartTwo(cyclic)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)

	got, err := haversack.PartOne(cyclic)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	_, err = haversack.PartTwo("shiny gold bags contain 1 shiny gold bag.\n")
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestMissingTarget(t *testing.T) {
	_, err := haversack.PartOne("faded blue bags contain no other bags.\n")
	assert.ErrorIs(t, err, haversack.ErrUnknownColor)
}
