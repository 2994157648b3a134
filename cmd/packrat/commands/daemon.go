package commands

import (
	"time"

	"github.com/spf13/cobra"
	"go.limmat.ch/packrat/internal/app"
)

func (c *CLI) newDaemonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Run the pipeline on an interval and serve run metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			every, _ := cmd.Flags().GetDuration("every")
			listen, _ := cmd.Flags().GetString("listen")
			force, _ := cmd.Flags().GetBool("force")
			ci, _ := cmd.Flags().GetBool("ci")

			return c.app.Daemon(cmd.Context(), app.DaemonOptions{
				Every:  every,
				Listen: listen,
				Run:    app.RunOptions{Force: force, CI: ci},
			})
		},
	}
	cmd.Flags().Duration("every", 6*time.Hour, "Interval between pipeline runs")
	cmd.Flags().String("listen", ":9753", "Metrics listen address")
	cmd.Flags().Bool("force", false, "Rebuild every package on every run")
	cmd.Flags().Bool("ci", false, "Commit and push the published tree even outside a CI environment")
	return cmd
}
