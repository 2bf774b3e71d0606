package cli

import (
	"fmt"

	"github.com/alexanderramin/wayfarer/internal/cli/formatter"
	"github.com/alexanderramin/wayfarer/internal/config"
	"github.com/alexanderramin/wayfarer/internal/domain"
	"github.com/spf13/cobra"
)

// newProgressCmd prints the roadmap's completion summary without
// starting the TUI.
func newProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Print roadmap completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			app, cleanup, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := app.Tracker.LoadDefault(cmd.Context()); err != nil {
				return err
			}
			r := app.Tracker.Current()

			var inProgress, completed int
			for _, it := range r.Items {
				switch it.Status {
				case domain.StatusCompleted:
					completed++
				case domain.StatusInProgress:
					inProgress++
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Bold(r.Title))
			fmt.Fprintf(out, "%s  %d of %d completed",
				formatter.RenderProgress(float64(r.Progress())/100, 24),
				completed, len(r.Items))
			if inProgress > 0 {
				fmt.Fprintf(out, ", %d in progress", inProgress)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}
