// Package text splits puzzle input into lines, blank-line separated blocks
// and integers.
package text

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrNotInteger reports a line that does not parse as an integer.
var ErrNotInteger = errors.New("text: not an integer")

// Lines returns the non-empty lines of s with trailing "\r" and surrounding
// blank lines removed. Interior blank lines are kept.
func Lines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.Trim(s, "\n")
	if strings.TrimSpace(s) == "" {
		return nil
	}

	return strings.Split(s, "\n")
}

// Blocks groups lines separated by one or more blank lines.
// Whitespace-only lines count as blank.
func Blocks(s string) [][]string {
	var (
		blocks [][]string
		cur    []string
	)
	for _, line := range Lines(s) {
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}

	return blocks
}

// Int parses a single base-10 integer of type T after trimming spaces.
func Int[T constraints.Integer](s string) (T, error) {
	s = strings.TrimSpace(s)
	var zero T
	// Parse at 64 bits and reject values that do not survive the conversion to T.
	if isSigned[T]() {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil || int64(T(v)) != v {
			return zero, fmt.Errorf("%w: %q", ErrNotInteger, s)
		}
		return T(v), nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || uint64(T(v)) != v {
		return zero, fmt.Errorf("%w: %q", ErrNotInteger, s)
	}

	return T(v), nil
}

// Ints parses every non-blank line of s as an integer of type T.
// The error names the 1-based line number of the first bad line.
func Ints[T constraints.Integer](s string) ([]T, error) {
	lines := Lines(s)
	out := make([]T, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		v, err := Int[T](line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, v)
	}

	return out, nil
}

func isSigned[T constraints.Integer]() bool {
	var zero T

	return zero-1 < zero
}
