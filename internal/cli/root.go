// Package cli builds the aoc2020 command tree.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2020/internal/config"
	"github.com/katalvlaran/aoc2020/internal/logger"
	"github.com/katalvlaran/aoc2020/puzzle"
)

// Execute runs the root command and exits with status 1 on error.
func Execute() {
	cmd := newRootCmd(puzzle.Default())
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the state shared by subcommands once flags are parsed.
type app struct {
	catalog *puzzle.Catalog
	cfg     config.Config
}

func newRootCmd(catalog *puzzle.Catalog) *cobra.Command {
	var (
		configPath string
		debug      bool
	)
	a := &app{catalog: catalog}

	cmd := &cobra.Command{
		Use:          "aoc2020",
		Short:        "Advent of Code 2020 solutions",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			explicit := cmd.Flags().Changed("config")
			cfg, err := config.Load(configPath, explicit)
			if err != nil {
				return err
			}
			a.cfg = cfg

			return logger.Setup(logger.Config{
				Level:  cfg.Log.Level,
				Format: cfg.Log.Format,
				Debug:  debug,
				Writer: cmd.ErrOrStderr(),
			})
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "configuration file")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")

	cmd.AddCommand(runCmd(a))
	cmd.AddCommand(listCmd(a))

	return cmd
}
