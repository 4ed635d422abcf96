package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the days and whether they are solved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, d := range a.catalog.Days() {
				status := "solved"
				if !d.Solved() {
					status = "unsolved"
				}
				if _, err := fmt.Fprintf(w, "%2d  %-22s %s\n", d.Number, d.Title, status); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
