package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2020/internal/inputs"
	"github.com/katalvlaran/aoc2020/internal/logger"
	"github.com/katalvlaran/aoc2020/puzzle"
)

func runCmd(a *app) *cobra.Command {
	var (
		all       bool
		example   bool
		inputPath string
	)

	c := &cobra.Command{
		Use:   "run [day...]",
		Short: "Solve one or more days and print both answers",
		Example: `  aoc2020 run 7
  aoc2020 run --example 1 2 3
  aoc2020 run --all
  aoc2020 run 8 --input ./my-day08.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := a.selectDays(args, all)
			if err != nil {
				return err
			}
			if inputPath != "" && (len(days) != 1 || example) {
				return errors.New("--input needs exactly one day and no --example")
			}

			overrides := a.cfg.Overrides()
			if inputPath != "" {
				overrides[days[0].Number] = inputPath
			}
			src := a.source(example, overrides)
			opts := []puzzle.RunnerOption{puzzle.WithLogger(logger.L())}
			if len(days) > 1 {
				opts = append(opts, puzzle.WithHeaders())
			}
			r := puzzle.NewRunner(cmd.OutOrStdout(), opts...)
			_, err = r.RunAll(cmd.Context(), days, src)

			return err
		},
	}

	c.Flags().BoolVar(&all, "all", false, "run every solved day")
	c.Flags().BoolVar(&example, "example", false, "use the bundled worked examples instead of real inputs")
	c.Flags().StringVar(&inputPath, "input", "", "input file for a single day (overrides the config)")

	return c
}

// selectDays resolves day arguments, or every solved day for --all.
func (a *app) selectDays(args []string, all bool) ([]puzzle.Day, error) {
	switch {
	case all && len(args) > 0:
		return nil, errors.New("give day numbers or --all, not both")
	case all:
		return a.catalog.Solved(), nil
	case len(args) == 0:
		return nil, errors.New("give at least one day number, or --all")
	}

	days := make([]puzzle.Day, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("day %q is not a number", arg)
		}
		d, err := a.catalog.Lookup(n)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}

	return days, nil
}

// source picks bundled examples, or the configured inputs directory with
// per-day overrides. Both parts of a day read the same real input.
func (a *app) source(example bool, overrides map[int]string) puzzle.Source {
	if example {
		return inputs.Example
	}
	loader := inputs.Loader{Dir: a.cfg.InputsDir, Overrides: overrides}

	return func(day, _ int) (string, error) {
		return loader.Load(day)
	}
}
