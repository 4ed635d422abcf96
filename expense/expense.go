package expense

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/aoc2020/internal/text"
)

// Target is the sum the report entries must reach.
const Target = 2020

var (
	// ErrNoPair is returned when no two entries sum to the target.
	ErrNoPair = errors.New("expense: no two entries sum to target")
	// ErrNoTriple is returned when no three entries sum to the target.
	ErrNoTriple = errors.New("expense: no three entries sum to target")
)

// Parse reads one integer entry per line.
func Parse(input string) ([]int, error) {
	entries, err := text.Ints[int](input)
	if err != nil {
		return nil, fmt.Errorf("expense: %w", err)
	}

	return entries, nil
}

// PairProduct returns a*b for two entries at different positions with
// a+b == target. A value may pair with itself only if it occurs twice.
func PairProduct(entries []int, target int) (int, error) {
	seen := make(map[int]struct{}, len(entries))
	for _, v := range entries {
		if _, ok := seen[target-v]; ok {
			return v * (target - v), nil
		}
		seen[v] = struct{}{}
	}

	return 0, fmt.Errorf("%w %d", ErrNoPair, target)
}

// TripleProduct returns a*b*c for three entries at different positions with
// a+b+c == target. The input slice is not modified.
func TripleProduct(entries []int, target int) (int, error) {
	nums := append([]int(nil), entries...)
	sort.Ints(nums)
	for i := 0; i+2 < len(nums); i++ {
		lo, hi := i+1, len(nums)-1
		for lo < hi {
			sum := nums[i] + nums[lo] + nums[hi]
			switch {
			case sum < target:
				lo++
			case sum > target:
				hi--
			default:
				return nums[i] * nums[lo] * nums[hi], nil
			}
		}
	}

	return 0, fmt.Errorf("%w %d", ErrNoTriple, target)
}

// PartOne multiplies the pair of entries summing to 2020.
func PartOne(input string) (int, error) {
	entries, err := Parse(input)
	if err != nil {
		return 0, err
	}

	return PairProduct(entries, Target)
}

// PartTwo multiplies the triple of entries summing to 2020.
func PartTwo(input string) (int, error) {
	entries, err := Parse(input)
	if err != nil {
		return 0, err
	}

	return TripleProduct(entries, Target)
}
