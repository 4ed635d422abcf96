package haversack

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2020/bfs"
	"github.com/katalvlaran/aoc2020/core"
	"github.com/katalvlaran/aoc2020/dfs"
	"github.com/katalvlaran/aoc2020/internal/text"
)

// Target is the bag color the puzzle asks about.
const Target = "shiny gold"

const (
	containSep = " bags contain "
	emptyRule  = "no other bags"
)

var (
	// ErrMalformedRule reports a line that does not follow the rule grammar.
	ErrMalformedRule = errors.New("haversack: malformed rule")
	// ErrDuplicateRule reports a second rule for the same color, or a rule
	// naming the same content color twice.
	ErrDuplicateRule = errors.New("haversack: duplicate rule")
	// ErrUnknownColor reports a query for a color no rule mentions.
	ErrUnknownColor = errors.New("haversack: unknown color")
)

// Content is one "N <color>" clause of a rule.
type Content struct {
	Count int
	Color string
}

// Rules is the containment graph: an edge parent→child weighted by how many
// child bags the parent must hold.
type Rules struct {
	g     *core.Graph
	ruled map[string]bool
}

// NewRules returns an empty rule set.
func NewRules() *Rules {
	return &Rules{
		g:     core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithLoops()),
		ruled: make(map[string]bool),
	}
}

// Add records that color holds contents. A color may be ruled only once.
func (r *Rules) Add(color string, contents []Content) error {
	if r.ruled[color] {
		return fmt.Errorf("%w: %q", ErrDuplicateRule, color)
	}
	if err := r.g.AddVertex(color); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedRule, err)
	}
	for _, c := range contents {
		if _, err := r.g.AddEdge(color, c.Color, int64(c.Count)); err != nil {
			if errors.Is(err, core.ErrMultiEdgeNotAllowed) {
				return fmt.Errorf("%w: %q lists %q twice", ErrDuplicateRule, color, c.Color)
			}
			return fmt.Errorf("%w: %v", ErrMalformedRule, err)
		}
	}
	r.ruled[color] = true

	return nil
}

// Colors returns every color mentioned by a rule, sorted.
func (r *Rules) Colors() []string {
	return r.g.Vertices()
}

// Holders returns how many distinct colors can eventually contain color.
func (r *Rules) Holders(color string) (int, error) {
	if !r.g.HasVertex(color) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColor, color)
	}
	res, err := bfs.BFS(r.g, color, bfs.WithDirection(bfs.Incoming))
	if err != nil {
		return 0, err
	}

	return res.Reached(), nil
}

// Inside returns the total number of bags color must hold.
func (r *Rules) Inside(color string) (int, error) {
	if !r.g.HasVertex(color) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColor, color)
	}
	n, err := dfs.WeightedTotal(r.g, color)
	if err != nil {
		return 0, err
	}

	return int(n), nil
}

// ParseRule reads one rule line.
func ParseRule(line string) (string, []Content, error) {
	line = strings.TrimSpace(line)
	color, rest, ok := strings.Cut(line, containSep)
	if !ok || color == "" {
		return "", nil, fmt.Errorf("%w: %q", ErrMalformedRule, line)
	}
	rest, ok = strings.CutSuffix(rest, ".")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing final period: %q", ErrMalformedRule, line)
	}
	if rest == emptyRule {
		return color, nil, nil
	}

	var contents []Content
	for _, clause := range strings.Split(rest, ", ") {
		c, err := parseContent(clause)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %q", err, line)
		}
		contents = append(contents, c)
	}

	return color, contents, nil
}

// parseContent reads "N <color> bag" or "N <color> bags".
func parseContent(clause string) (Content, error) {
	num, rest, ok := strings.Cut(clause, " ")
	if !ok {
		return Content{}, ErrMalformedRule
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 1 {
		return Content{}, fmt.Errorf("%w: bad count %q", ErrMalformedRule, num)
	}
	color, ok := strings.CutSuffix(rest, " bags")
	if !ok {
		color, ok = strings.CutSuffix(rest, " bag")
	}
	if !ok || color == "" {
		return Content{}, fmt.Errorf("%w: clause %q", ErrMalformedRule, clause)
	}

	return Content{Count: n, Color: color}, nil
}

// Parse builds Rules from every non-blank line of input.
func Parse(input string) (*Rules, error) {
	rules := NewRules()
	for i, line := range text.Lines(input) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		color, contents, err := ParseRule(line)
		if err == nil {
			err = rules.Add(color, contents)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}

	return rules, nil
}

// PartOne counts the colors that can eventually hold a shiny gold bag.
func PartOne(input string) (int, error) {
	rules, err := Parse(input)
	if err != nil {
		return 0, err
	}

	return rules.Holders(Target)
}

// PartTwo counts the bags inside a single shiny gold bag.
func PartTwo(input string) (int, error) {
	rules, err := Parse(input)
	if err != nil {
		return 0, err
	}

	return rules.Inside(Target)
}
