package cli

import (
	"fmt"

	"github.com/alexanderramin/wayfarer/internal/config"
	"github.com/spf13/cobra"
)

// newExportCmd loads the configured source and writes it back out as a
// fully-populated roadmap file. Combined with --source this doubles as
// a normalizer for hand-written documents.
func newExportCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the roadmap to a JSON file",
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

			dir := outDir
			if dir == "" {
				dir = cfg.ExportDir
			}
			path, err := app.Tracker.Export(dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default from config)")
	return cmd
}
