package toboggan_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2020/toboggan"
)

func ExampleMap_Trees() {
	m, err := toboggan.Parse("#..\n.#.\n..#\n#..\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	n, _ := m.Trees(toboggan.Slope{Right: 1, Down: 1})
	fmt.Println(n)

	// Output:
	// 4
}
