package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.limmat.ch/packrat/internal/core/domain"
	"go.limmat.ch/packrat/internal/ui/style"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Foreground(style.Slate)
	freshStyle = lipgloss.NewStyle().Foreground(style.Green)
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the outcome of the last run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			record, err := c.app.Status(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if record == nil {
				_, _ = fmt.Fprintln(out, "no runs recorded yet")
				return nil
			}

			if jsonMode, _ := cmd.Flags().GetBool("json"); jsonMode {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(record)
			}

			renderRecord(out, record)
			return nil
		},
	}
}

// renderRecord prints a colored summary of one journaled run.
func renderRecord(w io.Writer, record *domain.RunRecord) {
	took := record.Finished.Sub(record.Started).Round(time.Second)
	_, _ = fmt.Fprintf(w, "%s %s\n",
		labelStyle.Render("run "+record.ID),
		faintStyle.Render(fmt.Sprintf("finished %s, took %s",
			record.Finished.Local().Format("2006-01-02 15:04:05"), took)),
	)

	if record.Published {
		_, _ = fmt.Fprintf(w, "%s archive republished\n", freshStyle.Render(style.Check))
	} else {
		_, _ = fmt.Fprintf(w, "%s archive unchanged\n", faintStyle.Render(style.Circle))
	}

	for _, pkg := range record.Packages {
		marker, state := faintStyle.Render(style.Circle), "up to date"
		if pkg.Rebuilt {
			marker, state = freshStyle.Render(style.Dot), "rebuilt"
		}

		line := fmt.Sprintf("  %s %s", marker, pkg.Name)
		if pkg.Version != "" {
			line += " " + pkg.Version
		}
		line += " " + faintStyle.Render(state)
		if pkg.Fingerprint != "" {
			line += " " + faintStyle.Render("("+pkg.Fingerprint+")")
		}
		_, _ = fmt.Fprintln(w, line)
	}
}
