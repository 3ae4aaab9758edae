package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tamilwords/internal/domain"
	"tamilwords/internal/output"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "Browse the public collection hierarchy",
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var collectionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all collections",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		printer, err := newPrinter(cmd)
		if err != nil {
			return err
		}

		collections, err := app.Gateway.ListPublicCollections(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list collections: %w", err)
		}
		return printer.Print(collections, func(tw *tabwriter.Writer) { collectionsTable(tw, collections) })
	},
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var collectionsTreeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Show the collection hierarchy",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		printer, err := newPrinter(cmd)
		if err != nil {
			return err
		}

		tree, err := app.Gateway.GetPublicCollectionTree(cmd.Context(), optionalInt(cmd, "root"))
		if err != nil {
			return fmt.Errorf("failed to get collection tree: %w", err)
		}
		return printer.Print(tree, func(tw *tabwriter.Writer) { treeTable(tw, tree, 0) })
	},
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var collectionsWorksCmd = &cobra.Command{
	Use:   "works <collection-id>",
	Short: "List the works of a collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("collection_id", args[0])
		if err != nil {
			return err
		}
		if err := cmd.Flags().Set("collection", fmt.Sprint(id)); err != nil {
			return err
		}
		return runWorks(cmd, nil)
	},
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var collectionsDesignatedCmd = &cobra.Command{
	Use:   "designated",
	Short: "Show the collection that roots the search filter hierarchy",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		printer, err := newPrinter(cmd)
		if err != nil {
			return err
		}

		designated, err := app.Gateway.GetDesignatedFilterCollection(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get designated filter collection: %w", err)
		}
		return printer.Print(designated, func(tw *tabwriter.Writer) {
			output.Row(tw, "Collection", designated.CollectionID)
		})
	},
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(collectionsCmd)
	collectionsCmd.AddCommand(collectionsListCmd, collectionsTreeCmd, collectionsWorksCmd, collectionsDesignatedCmd)

	collectionsTreeCmd.Flags().Int("root", 0, "Only show the subtree under this collection")

	// collections works shares the works command's flags.
	collectionsWorksCmd.Flags().String("sort", "", "Sort order: alphabetical, canonical, chronological or collection")
	collectionsWorksCmd.Flags().StringSlice("exclude", nil, "Regex patterns for work names to hide (repeatable)")
	collectionsWorksCmd.Flags().Int("collection", 0, "")
	_ = collectionsWorksCmd.Flags().MarkHidden("collection")
}

func collectionsTable(tw *tabwriter.Writer, collections []domain.Collection) {
	output.Row(tw, "ID", "NAME", "TAMIL", "TYPE", "PARENT", "ORDER")
	for _, c := range collections {
		output.Row(tw, c.CollectionID, c.CollectionName, c.CollectionNameTamil, c.CollectionType,
			c.ParentCollectionID, c.SortOrder)
	}
}

func treeTable(tw *tabwriter.Writer, nodes []domain.CollectionTreeNode, depth int) {
	if depth == 0 {
		output.Row(tw, "COLLECTION", "ID", "TYPE", "WORKS")
	}
	for _, n := range nodes {
		name := strings.Repeat("  ", depth) + n.CollectionName
		if n.CollectionNameTamil != nil {
			name += " / " + *n.CollectionNameTamil
		}
		output.Row(tw, name, n.CollectionID, n.CollectionType, n.WorkCount)
		treeTable(tw, n.Children, depth+1)
	}
}
