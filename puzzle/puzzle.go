package puzzle

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnsolved is returned when running a day that has no solver.
	ErrUnsolved = errors.New("puzzle: day has no solver")
	// ErrUnknownDay is returned by Lookup for a day missing from the catalog.
	ErrUnknownDay = errors.New("puzzle: unknown day")
	// ErrDuplicateDay is returned by NewCatalog when a day number repeats.
	ErrDuplicateDay = errors.New("puzzle: duplicate day")
	// ErrBadPart is returned for a part number other than 1 or 2.
	ErrBadPart = errors.New("puzzle: part must be 1 or 2")
)

// Part solves one half of a day from the raw input text.
type Part func(input string) (int, error)

// Day is a catalog entry.
type Day struct {
	Number  int
	Title   string
	PartOne Part
	PartTwo Part
}

// Solved reports whether the day has at least one part.
func (d Day) Solved() bool {
	return d.PartOne != nil || d.PartTwo != nil
}

// Part returns part n (1 or 2). A missing part yields ErrUnsolved.
func (d Day) Part(n int) (Part, error) {
	var p Part
	switch n {
	case 1:
		p = d.PartOne
	case 2:
		p = d.PartTwo
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadPart, n)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: day %d part %d", ErrUnsolved, d.Number, n)
	}

	return p, nil
}

// String returns "Day N: Title".
func (d Day) String() string {
	return fmt.Sprintf("Day %d: %s", d.Number, d.Title)
}

// Catalog is an ordered, read-only set of days.
type Catalog struct {
	days []Day
	byNo map[int]int
}

// NewCatalog orders days by number. Day numbers must be unique and positive.
func NewCatalog(days ...Day) (*Catalog, error) {
	c := &Catalog{
		days: append([]Day(nil), days...),
		byNo: make(map[int]int, len(days)),
	}
	sort.SliceStable(c.days, func(i, j int) bool { return c.days[i].Number < c.days[j].Number })
	for i, d := range c.days {
		if d.Number < 1 {
			return nil, fmt.Errorf("%w: %d", ErrUnknownDay, d.Number)
		}
		if _, dup := c.byNo[d.Number]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateDay, d.Number)
		}
		c.byNo[d.Number] = i
	}

	return c, nil
}

// Days returns every day in ascending order.
func (c *Catalog) Days() []Day {
	return append([]Day(nil), c.days...)
}

// Solved returns the days that have at least one part.
func (c *Catalog) Solved() []Day {
	var out []Day
	for _, d := range c.days {
		if d.Solved() {
			out = append(out, d)
		}
	}

	return out
}

// Lookup returns day n.
func (c *Catalog) Lookup(n int) (Day, error) {
	i, ok := c.byNo[n]
	if !ok {
		return Day{}, fmt.Errorf("%w: %d", ErrUnknownDay, n)
	}

	return c.days[i], nil
}
