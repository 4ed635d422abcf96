package password_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2020/password"
)

// ExampleCount compares both policies on the same database.
func ExampleCount() {
	entries, _ := password.Parse("1-3 a: abcde\n1-3 b: cdefg\n2-9 c: ccccccccc")
	sled, _ := password.Count(entries, password.SledRental)
	toboggan, _ := password.Count(entries, password.Toboggan)
	fmt.Println("sled:", sled, "toboggan:", toboggan)

	// Output:
	// sled: 2 toboggan: 1
}
