package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tamilwords/internal/commands"
	"tamilwords/internal/domain"
	"tamilwords/internal/output"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var searchCmd = &cobra.Command{
	Use:   "search <word>",
	Short: "Search for a word across the literary works",
	Long: `Search for a Tamil word. By default the API matches partially anywhere in
the word; use --match exact for whole-word matches.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().String("match", "", "Match type: exact or partial")
	searchCmd.Flags().String("position", "", "Word position for partial matches: beginning, end or anywhere")
	searchCmd.Flags().IntSlice("work", nil, "Restrict to these work ids (repeatable or comma-separated)")
	searchCmd.Flags().String("root", "", "Restrict to words with this root")
	searchCmd.Flags().Int("limit", 0, "Maximum number of results")
	searchCmd.Flags().Int("offset", 0, "Number of results to skip")
	searchCmd.Flags().String("sort", "", "Sort order: alphabetical, canonical, chronological or collection")
	searchCmd.Flags().Int("collection", 0, "Restrict to works in this collection")
}

func runSearch(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	printer, err := newPrinter(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	params := domain.SearchParams{
		Query:        strings.TrimSpace(args[0]),
		Limit:        optionalInt(cmd, "limit"),
		Offset:       optionalInt(cmd, "offset"),
		CollectionID: optionalInt(cmd, "collection"),
	}
	params.MatchType, _ = flags.GetString("match")
	params.WordPosition, _ = flags.GetString("position")
	params.WorkIDs, _ = flags.GetIntSlice("work")
	params.WordRoot, _ = flags.GetString("root")
	params.SortBy, _ = flags.GetString("sort")

	searchCommand := commands.NewSearchCommand(app.Gateway, app.Logger)
	resp, err := searchCommand.Execute(cmd.Context(), commands.SearchRequest{Params: params})
	if err != nil {
		return err
	}

	return printer.Print(resp, func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "%d occurrences of %q (%s match), showing %d from offset %d\n\n",
			resp.TotalCount, resp.SearchTerm, resp.MatchType, len(resp.Results), resp.Offset)

		if len(resp.UniqueWords) > 0 {
			output.Row(tw, "WORD", "COUNT", "VERSES", "WORKS")
			for _, w := range resp.UniqueWords {
				works := make([]string, 0, len(w.WorkBreakdown))
				for _, b := range w.WorkBreakdown {
					works = append(works, fmt.Sprintf("%s (%d)", b.WorkNameTamil, b.Count))
				}
				output.Row(tw, w.WordText, w.Count, w.VerseCount, strings.Join(works, ", "))
			}
			fmt.Fprintln(tw)
		}

		output.Row(tw, "WORD", "ROOT", "WORK", "VERSE", "LINE", "TEXT")
		for _, r := range resp.Results {
			output.Row(tw, r.WordText, r.WordRoot, r.WorkNameTamil, r.VerseNumber, r.LineNumber, r.LineText)
		}
	})
}
