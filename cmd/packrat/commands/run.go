package commands

import (
	"github.com/spf13/cobra"
	"go.limmat.ch/packrat/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Rebuild stale packages and republish the archive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			ci, _ := cmd.Flags().GetBool("ci")

			_, err := c.app.Run(cmd.Context(), app.RunOptions{
				Force: force,
				CI:    ci,
			})
			return err
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Rebuild every package regardless of the published state")
	cmd.Flags().Bool("ci", false, "Commit and push the published tree even outside a CI environment")
	return cmd
}
