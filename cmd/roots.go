package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tamilwords/internal/output"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var rootsCmd = &cobra.Command{
	Use:   "roots [term]",
	Short: "List word roots, optionally filtered by a term",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		printer, err := newPrinter(cmd)
		if err != nil {
			return err
		}

		var term string
		if len(args) == 1 {
			term = args[0]
		}

		roots, err := app.Gateway.ListWordRoots(cmd.Context(), term)
		if err != nil {
			return fmt.Errorf("failed to list word roots: %w", err)
		}

		return printer.Print(roots, func(tw *tabwriter.Writer) {
			output.Row(tw, "ROOT", "USAGE")
			for _, r := range roots {
				output.Row(tw, r.WordRoot, r.UsageCount)
			}
		})
	},
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(rootsCmd)
}
