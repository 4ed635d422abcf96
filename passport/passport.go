package passport

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2020/internal/text"
)

// ErrMalformedField reports a token that is not "key:value".
var ErrMalformedField = errors.New("passport: malformed field")

// Passport maps field keys to their raw values.
type Passport map[string]string

// Validator decides whether a passport is acceptable.
type Validator func(Passport) bool

// Required lists the fields every passport must carry.
var Required = []string{"byr", "iyr", "eyr", "hgt", "hcl", "ecl", "pid"}

var eyeColors = map[string]bool{
	"amb": true, "blu": true, "brn": true, "gry": true, "grn": true, "hzl": true, "oth": true,
}

// Parse splits input into passports. Fields within a record may be separated
// by spaces or newlines; a repeated key keeps its last value.
func Parse(input string) ([]Passport, error) {
	blocks := text.Blocks(input)
	out := make([]Passport, 0, len(blocks))
	for i, block := range blocks {
		p := make(Passport)
		for _, tok := range strings.Fields(strings.Join(block, " ")) {
			k, v, ok := strings.Cut(tok, ":")
			if !ok || k == "" {
				return nil, fmt.Errorf("%w: record %d: %q", ErrMalformedField, i+1, tok)
			}
			p[k] = v
		}
		out = append(out, p)
	}

	return out, nil
}

// HasRequiredFields reports whether every Required field is present.
func HasRequiredFields(p Passport) bool {
	for _, k := range Required {
		if _, ok := p[k]; !ok {
			return false
		}
	}

	return true
}

// IsValid reports whether every Required field is present and well formed.
func IsValid(p Passport) bool {
	return HasRequiredFields(p) &&
		year(p["byr"], 1920, 2002) &&
		year(p["iyr"], 2010, 2020) &&
		year(p["eyr"], 2020, 2030) &&
		height(p["hgt"]) &&
		hairColor(p["hcl"]) &&
		eyeColors[p["ecl"]] &&
		digits(p["pid"], 9)
}

// Count returns how many passports satisfy v.
func Count(ps []Passport, v Validator) int {
	n := 0
	for _, p := range ps {
		if v(p) {
			n++
		}
	}

	return n
}

func year(s string, lo, hi int) bool {
	if !digits(s, 4) {
		return false
	}
	n, _ := strconv.Atoi(s)

	return n >= lo && n <= hi
}

func height(s string) bool {
	var lo, hi int
	switch {
	case strings.HasSuffix(s, "cm"):
		lo, hi = 150, 193
	case strings.HasSuffix(s, "in"):
		lo, hi = 59, 76
	default:
		return false
	}
	num := s[:len(s)-2]
	if num == "" || !digits(num, len(num)) {
		return false
	}
	n, err := strconv.Atoi(num)

	return err == nil && n >= lo && n <= hi
}

func hairColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			return false
		}
	}

	return true
}

// digits reports whether s is exactly n ASCII digits.
func digits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}

func solve(input string, v Validator) (int, error) {
	ps, err := Parse(input)
	if err != nil {
		return 0, err
	}

	return Count(ps, v), nil
}

// PartOne counts passports with every required field.
func PartOne(input string) (int, error) { return solve(input, HasRequiredFields) }

// PartTwo counts passports whose required fields are all valid.
func PartTwo(input string) (int, error) { return solve(input, IsValid) }
