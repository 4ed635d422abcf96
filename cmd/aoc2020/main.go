package main

import "github.com/katalvlaran/aoc2020/internal/cli"

func main() {
	cli.Execute()
}
