// Package customs solves day 6, Custom Customs. Each group's answers are a
// bitset over the 26 questions a..z; part one sums the union sizes and part
// two the intersection sizes.
package customs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/aoc2020/internal/text"
)

// Questions is the number of yes/no questions on the form.
const Questions = 26

// ErrBadAnswer reports a character outside a..z.
var ErrBadAnswer = errors.New("customs: answer must be a lowercase letter")

// Group holds one answer set per person.
type Group []*bitset.BitSet

// Parse splits input into blank-line separated groups.
func Parse(input string) ([]Group, error) {
	blocks := text.Blocks(input)
	groups := make([]Group, 0, len(blocks))
	for i, block := range blocks {
		g := make(Group, 0, len(block))
		for _, line := range block {
			set, err := Answers(strings.TrimSpace(line))
			if err != nil {
				return nil, fmt.Errorf("group %d: %w", i+1, err)
			}
			g = append(g, set)
		}
		groups = append(groups, g)
	}

	return groups, nil
}

// Answers converts one person's line into a set of questions.
func Answers(line string) (*bitset.BitSet, error) {
	set := bitset.New(Questions)
	for _, c := range line {
		if c < 'a' || c > 'z' {
			return nil, fmt.Errorf("%w: %q", ErrBadAnswer, c)
		}
		set.Set(uint(c - 'a'))
	}

	return set, nil
}

// Anyone returns the number of questions at least one member answered.
func (g Group) Anyone() int {
	all := bitset.New(Questions)
	for _, s := range g {
		all.InPlaceUnion(s)
	}

	return int(all.Count())
}

// Everyone returns the number of questions every member answered.
func (g Group) Everyone() int {
	if len(g) == 0 {
		return 0
	}
	common := g[0].Clone()
	for _, s := range g[1:] {
		common.InPlaceIntersection(s)
	}

	return int(common.Count())
}

func solve(input string, count func(Group) int) (int, error) {
	groups, err := Parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range groups {
		sum += count(g)
	}

	return sum, nil
}

// PartOne sums, per group, the questions anyone answered.
func PartOne(input string) (int, error) { return solve(input, Group.Anyone) }

// PartTwo sums, per group, the questions everyone answered.
func PartTwo(input string) (int, error) { return solve(input, Group.Everyone) }
