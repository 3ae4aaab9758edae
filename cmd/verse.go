package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tamilwords/internal/commands"
	"tamilwords/internal/output"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var verseCmd = &cobra.Command{
	Use:   "verse <id>...",
	Short: "Show one or more verses with all their lines",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		printer, err := newPrinter(cmd)
		if err != nil {
			return err
		}

		ids, err := parseIDs("verse_id", args)
		if err != nil {
			return err
		}

		versesCommand := commands.NewVersesCommand(app.Gateway, app.Logger)
		verses, err := versesCommand.Execute(cmd.Context(), commands.VersesRequest{VerseIDs: ids})
		if err != nil {
			return err
		}

		var v any = verses
		if len(verses) == 1 {
			v = verses[0]
		}
		return printer.Print(v, func(tw *tabwriter.Writer) {
			for i, verse := range verses {
				if i > 0 {
					fmt.Fprintln(tw)
				}
				fmt.Fprintf(tw, "%s %d", verse.WorkNameTamil, verse.VerseNumber)
				if verse.HierarchyPathTamil != nil {
					fmt.Fprintf(tw, " (%s)", *verse.HierarchyPathTamil)
				}
				fmt.Fprintln(tw)
				for _, line := range verse.Lines {
					output.Row(tw, line.LineNumber, line.LineText)
				}
			}
		})
	},
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(verseCmd)
}
