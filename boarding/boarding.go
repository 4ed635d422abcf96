// Package boarding solves day 5, Binary Boarding: decode boarding passes
// written as binary space partitioning and find the one empty seat.
//
// A pass is seven F/B letters selecting the row (F = lower half) followed by
// three L/R letters selecting the column (L = lower half). That is a 10-bit
// binary number with B and R as 1, so the seat ID row*8+col is the pass read
// as binary.
package boarding

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/aoc2020/internal/text"
)

const (
	rowLetters = 7
	colLetters = 3
	passLen    = rowLetters + colLetters

	// MaxSeatID is the largest encodable seat ID (row 127, column 7).
	MaxSeatID = 1<<passLen - 1
)

var (
	// ErrBadPass reports a pass of the wrong length or with an unexpected letter.
	ErrBadPass = errors.New("boarding: malformed boarding pass")
	// ErrSeatNotFound is returned when no empty seat has both neighbours taken.
	ErrSeatNotFound = errors.New("boarding: no free seat between two taken seats")
	// ErrNoPasses is returned when the input holds no boarding passes.
	ErrNoPasses = errors.New("boarding: no boarding passes")
)

// Seat is a decoded boarding pass.
type Seat struct {
	Row, Col int
}

// ID returns row*8 + col.
func (s Seat) ID() int {
	return s.Row*8 + s.Col
}

// Decode reads one boarding pass such as "FBFBBFFRLR" (row 44, column 5).
func Decode(pass string) (Seat, error) {
	if len(pass) != passLen {
		return Seat{}, fmt.Errorf("%w: %q has %d letters, want %d", ErrBadPass, pass, len(pass), passLen)
	}
	var s Seat
	for i := 0; i < rowLetters; i++ {
		s.Row <<= 1
		switch pass[i] {
		case 'B':
			s.Row |= 1
		case 'F':
		default:
			return Seat{}, fmt.Errorf("%w: %q: row letter %q", ErrBadPass, pass, pass[i])
		}
	}
	for i := rowLetters; i < passLen; i++ {
		s.Col <<= 1
		switch pass[i] {
		case 'R':
			s.Col |= 1
		case 'L':
		default:
			return Seat{}, fmt.Errorf("%w: %q: column letter %q", ErrBadPass, pass, pass[i])
		}
	}

	return s, nil
}

// Parse decodes every non-blank line into a seat ID.
func Parse(input string) ([]int, error) {
	var ids []int
	for i, line := range text.Lines(input) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		s, err := Decode(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		ids = append(ids, s.ID())
	}
	if len(ids) == 0 {
		return nil, ErrNoPasses
	}

	return ids, nil
}

// Highest returns the largest seat ID.
func Highest(ids []int) int {
	best := ids[0]
	for _, id := range ids[1:] {
		best = max(best, id)
	}

	return best
}

// FreeSeat returns the one ID absent from ids whose neighbours ID-1 and ID+1
// are both present. Seats at the very front and back of the plane, outside
// the taken range, are never candidates.
func FreeSeat(ids []int) (int, error) {
	taken := bitset.New(MaxSeatID + 1)
	for _, id := range ids {
		if id < 0 || id > MaxSeatID {
			return 0, fmt.Errorf("%w: seat ID %d out of range", ErrBadPass, id)
		}
		taken.Set(uint(id))
	}
	first, ok := taken.NextSet(0)
	if !ok {
		return 0, ErrSeatNotFound
	}
	for id := first + 1; id < MaxSeatID; id++ {
		if !taken.Test(id) && taken.Test(id-1) && taken.Test(id+1) {
			return int(id), nil
		}
	}

	return 0, ErrSeatNotFound
}

// PartOne returns the highest seat ID on any pass.
func PartOne(input string) (int, error) {
	ids, err := Parse(input)
	if err != nil {
		return 0, err
	}

	return Highest(ids), nil
}

// PartTwo returns the ID of the missing seat.
func PartTwo(input string) (int, error) {
	ids, err := Parse(input)
	if err != nil {
		return 0, err
	}

	return FreeSeat(ids)
}
