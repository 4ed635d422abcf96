package password

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2020/internal/text"
)

var (
	// ErrMalformedEntry reports a line not shaped like "lo-hi c: password".
	ErrMalformedEntry = errors.New("password: malformed entry")
	// ErrBadPosition reports a positional policy naming position 0.
	ErrBadPosition = errors.New("password: positions are 1-based")
)

// Entry is one database line: a policy (Lo, Hi, Letter) and a password.
type Entry struct {
	Lo, Hi   int
	Letter   byte
	Password string
}

// Policy decides whether an entry's password is acceptable.
type Policy func(Entry) (bool, error)

// ParseEntry parses "lo-hi c: password".
func ParseEntry(line string) (Entry, error) {
	policy, pw, ok := strings.Cut(line, ": ")
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrMalformedEntry, line)
	}
	bounds, letter, ok := strings.Cut(policy, " ")
	if !ok || len(letter) != 1 {
		return Entry{}, fmt.Errorf("%w: %q", ErrMalformedEntry, line)
	}
	loStr, hiStr, ok := strings.Cut(bounds, "-")
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrMalformedEntry, line)
	}
	lo, err := strconv.Atoi(loStr)
	if err != nil || lo < 0 {
		return Entry{}, fmt.Errorf("%w: bad lower bound in %q", ErrMalformedEntry, line)
	}
	hi, err := strconv.Atoi(hiStr)
	if err != nil || hi < 0 {
		return Entry{}, fmt.Errorf("%w: bad upper bound in %q", ErrMalformedEntry, line)
	}

	return Entry{Lo: lo, Hi: hi, Letter: letter[0], Password: pw}, nil
}

// Parse reads every non-blank line as an Entry.
func Parse(input string) ([]Entry, error) {
	var entries []Entry
	for i, line := range text.Lines(input) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, err := ParseEntry(strings.TrimSpace(line))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// SledRental accepts a password containing Letter between Lo and Hi times, inclusive.
func SledRental(e Entry) (bool, error) {
	n := strings.Count(e.Password, string(e.Letter))

	return n >= e.Lo && n <= e.Hi, nil
}

// Toboggan accepts a password holding Letter at exactly one of the 1-based
// positions Lo and Hi. A position past the end holds nothing.
func Toboggan(e Entry) (bool, error) {
	if e.Lo < 1 || e.Hi < 1 {
		return false, fmt.Errorf("%w: %d-%d", ErrBadPosition, e.Lo, e.Hi)
	}

	return e.holds(e.Lo) != e.holds(e.Hi), nil
}

func (e Entry) holds(pos int) bool {
	return pos <= len(e.Password) && e.Password[pos-1] == e.Letter
}

// Count returns how many entries satisfy policy.
func Count(entries []Entry, policy Policy) (int, error) {
	n := 0
	for _, e := range entries {
		ok, err := policy(e)
		if err != nil {
			return 0, err
		}
		if ok {
			n++
		}
	}

	return n, nil
}

func solve(input string, policy Policy) (int, error) {
	entries, err := Parse(input)
	if err != nil {
		return 0, err
	}

	return Count(entries, policy)
}

// PartOne counts entries valid under the sled rental policy.
func PartOne(input string) (int, error) { return solve(input, SledRental) }

// PartTwo counts entries valid under the Official Toboggan Corporate policy.
func PartTwo(input string) (int, error) { return solve(input, Toboggan) }
