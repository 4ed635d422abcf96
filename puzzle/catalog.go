package puzzle

import (
	"github.com/katalvlaran/aoc2020/boarding"
	"github.com/katalvlaran/aoc2020/customs"
	"github.com/katalvlaran/aoc2020/expense"
	"github.com/katalvlaran/aoc2020/handheld"
	"github.com/katalvlaran/aoc2020/haversack"
	"github.com/katalvlaran/aoc2020/passport"
	"github.com/katalvlaran/aoc2020/password"
	"github.com/katalvlaran/aoc2020/toboggan"
)

// defaultDays lists every day of the event solved so far. Day 9 is listed
// without parts.
var defaultDays = []Day{
	{Number: 1, Title: "Report Repair", PartOne: expense.PartOne, PartTwo: expense.PartTwo},
	{Number: 2, Title: "Password Philosophy", PartOne: password.PartOne, PartTwo: password.PartTwo},
	{Number: 3, Title: "Toboggan Trajectory", PartOne: toboggan.PartOne, PartTwo: toboggan.PartTwo},
	{Number: 4, Title: "Passport Processing", PartOne: passport.PartOne, PartTwo: passport.PartTwo},
	{Number: 5, Title: "Binary Boarding", PartOne: boarding.PartOne, PartTwo: boarding.PartTwo},
	{Number: 6, Title: "Custom Customs", PartOne: customs.PartOne, PartTwo: customs.PartTwo},
	{Number: 7, Title: "Handy Haversacks", PartOne: haversack.PartOne, PartTwo: haversack.PartTwo},
	{Number: 8, Title: "Handheld Halting", PartOne: handheld.PartOne, PartTwo: handheld.PartTwo},
	{Number: 9, Title: "Encoding Error"},
}

// Default returns the catalog of every day in this repository.
func Default() *Catalog {
	c, err := NewCatalog(defaultDays...)
	if err != nil {
		panic(err)
	}

	return c
}
