package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/wayfarer/internal/cli/formatter"
	"github.com/alexanderramin/wayfarer/internal/importer"
	"github.com/spf13/cobra"
)

// newValidateCmd checks a roadmap file without loading it into a
// session. Structural errors are listed one per line; the JSON Schema
// pass catches anything the structural checks let through.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a roadmap file for errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			doc, err := importer.Parse(data)
			if err != nil {
				return err
			}

			if errs := importer.ValidateDocument(doc); len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", formatter.StyleRed.Render("✗"), e)
				}
				return fmt.Errorf("%d validation error(s)", len(errs))
			}
			if err := importer.ValidateAgainstSchema(data); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d items)\n",
				formatter.StyleGreen.Render("✔"), doc.Title, len(doc.Items))
			return nil
		},
	}
}
