package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tamilwords/internal/commands"
	"tamilwords/internal/output"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var worksCmd = &cobra.Command{
	Use:   "works",
	Short: "List literary works",
	Long: `List every work in the corpus, or the works of one collection with
--collection. Works whose English or Tamil name matches an --exclude pattern
are hidden.`,
	Args: cobra.NoArgs,
	RunE: runWorks,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(worksCmd)

	worksCmd.Flags().String("sort", "", "Sort order: alphabetical, canonical, chronological or collection")
	worksCmd.Flags().Int("collection", 0, "List the works of this collection instead")
	worksCmd.Flags().StringSlice("exclude", nil, "Regex patterns for work names to hide (repeatable)")
}

func runWorks(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	printer, err := newPrinter(cmd)
	if err != nil {
		return err
	}

	req := commands.WorksRequest{CollectionID: optionalInt(cmd, "collection")}
	req.SortBy, _ = cmd.Flags().GetString("sort")
	req.ExcludePatterns, _ = cmd.Flags().GetStringSlice("exclude")

	worksCommand := commands.NewWorksCommand(app.Gateway, app.Logger)
	result, err := worksCommand.Execute(cmd.Context(), req)
	if err != nil {
		return err
	}

	return printer.Print(result.Works, func(tw *tabwriter.Writer) {
		output.Row(tw, "ID", "NAME", "TAMIL", "AUTHOR", "PERIOD")
		for _, w := range result.Works {
			output.Row(tw, w.WorkID, w.WorkName, w.WorkNameTamil, w.Author, w.Period)
		}
		if result.Excluded > 0 {
			fmt.Fprintf(tw, "\n%d works excluded\n", result.Excluded)
		}
	})
}
