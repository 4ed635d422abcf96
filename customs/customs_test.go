package customs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2020/customs"
)

const forms = "abc\n\na\nb\nc\n\nab\nac\n\na\na\na\na\n\nb\n"

func TestParts(t *testing.T) {
	got, err := customs.PartOne(forms)
	require.NoError(t, err)
	assert.Equal(t, 11, got)

	got, err = customs.PartTwo(forms)
	require.NoError(t, err)
	assert.Equal(t, 6, got)
}

func TestGroups(t *testing.T) {
	groups, err := customs.Parse(forms)
	require.NoError(t, err)
	require.Len(t, groups, 5)

	anyone := []int{3, 3, 3, 1, 1}
	everyone := []int{3, 0, 1, 1, 1}
	for i, g := range groups {
		assert.Equal(t, anyone[i], g.Anyone(), "group %d anyone", i+1)
		assert.Equal(t, everyone[i], g.Everyone(), "group %d everyone", i+1)
	}
	assert.Zero(t, customs.Group(nil).Everyone())
}

func TestEveryone_DoesNotMutate(t *testing.T) {
	groups, err := customs.Parse("ab\nb\n")
	require.NoError(t, err)
	assert.Equal(t, 1, groups[0].Everyone())
	assert.Equal(t, 2, groups[0].Anyone())
	assert.Equal(t, uint(2), groups[0][0].Count())
}

func TestParseErrors(t *testing.T) {
	_, err := customs.PartOne("abc\n\naB\n")
	require.ErrorIs(t, err, customs.ErrBadAnswer)
	assert.Contains(t, err.Error(), "group 2")
}
