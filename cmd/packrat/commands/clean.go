package commands

import (
	"github.com/spf13/cobra"
	"go.limmat.ch/packrat/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove pipeline bookkeeping",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			journal, _ := cmd.Flags().GetBool("journal")
			staging, _ := cmd.Flags().GetBool("staging")
			all, _ := cmd.Flags().GetBool("all")

			opts := app.CleanOptions{
				Journal: journal,
				Staging: staging,
			}

			switch {
			case all:
				opts.Journal = true
				opts.Staging = true
			case !journal && !staging:
				// Default behavior: clean leftover staging and build directories
				opts.Staging = true
			}

			return c.app.Clean(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolP("journal", "j", false, "Remove the run journal")
	cmd.Flags().BoolP("staging", "s", false, "Remove leftover staging and build directories")
	cmd.Flags().BoolP("all", "a", false, "Remove everything")

	return cmd
}
