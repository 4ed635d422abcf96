// Package aoc2020 collects solutions to Advent of Code 2020, one package per
// day, on top of a small in-memory graph toolkit.
//
// Each day reads a short text input and prints two answers:
//
//	Part one: <value>
//	Part two: <value>
//
// Layout:
//
//	core/        directed, weighted Graph with outgoing and incoming adjacency
//	bfs/         breadth-first traversal in either edge direction
//	dfs/         depth-first traversal, topological sort, weighted totals
//	gridgraph/   rectangular grids with horizontal wrap and slope walks
//	expense/     day 1, Report Repair
//	password/    day 2, Password Philosophy
//	toboggan/    day 3, Toboggan Trajectory
//	passport/    day 4, Passport Processing
//	boarding/    day 5, Binary Boarding
//	customs/     day 6, Custom Customs
//	haversack/   day 7, Handy Haversacks
//	handheld/    day 8, Handheld Halting
//	puzzle/      day catalog and runner
//	cmd/aoc2020  the command-line entry point
//
// Quick start:
//
//	go run ./cmd/aoc2020 run --example --all
//	go run ./cmd/aoc2020 run 7            # reads inputs/day07.txt
//	go run ./cmd/aoc2020 list
//
// Real puzzle inputs differ per account and are not part of the repository;
// place them under inputs/ as dayNN.txt or point aoc2020.yaml at them.
package aoc2020
