package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tamilwords/internal/commands"
	"tamilwords/internal/domain"
	"tamilwords/internal/output"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrative operations",
	Long: `Administrative operations against the search API. The API keeps no
session, so login only verifies the credentials.`,
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var adminLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Verify admin credentials",
	Long: `Verify admin credentials. The password is taken from --password, the
TAMILWORDS_ADMIN_PASSWORD environment variable, or an interactive prompt.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}

		req := commands.LoginRequest{}
		req.Username, _ = cmd.Flags().GetString("username")
		req.Password, _ = cmd.Flags().GetString("password")

		loginCommand := commands.NewLoginCommand(app.Gateway, app.PasswordReader, app.Logger)
		resp, err := loginCommand.Execute(cmd.Context(), req)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", resp.User.Username)
		return nil
	},
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var adminCollectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "Manage collections",
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var adminCollectionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List collections with parent names and work counts",
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

		filter := domain.CollectionFilter{}
		filter.IncludeWorks, _ = cmd.Flags().GetBool("include-works")

		collections, err := app.Gateway.ListCollections(cmd.Context(), filter)
		if err != nil {
			return fmt.Errorf("failed to list collections: %w", err)
		}
		return printer.Print(collections, func(tw *tabwriter.Writer) {
			output.Row(tw, "ID", "NAME", "TYPE", "PARENT", "WORKS")
			for _, c := range collections {
				output.Row(tw, c.CollectionID, c.CollectionName, c.CollectionType, c.ParentName, c.WorkCount)
				for _, w := range c.Works {
					output.Row(tw, "", "  "+w.WorkName, "work", w.PositionInCollection, w.WorkID)
				}
			}
		})
	},
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var adminCollectionsTreeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Show the full collection hierarchy",
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

		tree, err := app.Gateway.GetCollectionTree(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get collection tree: %w", err)
		}
		return printer.Print(tree, func(tw *tabwriter.Writer) { treeTable(tw, tree, 0) })
	},
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var adminCollectionsGetCmd = &cobra.Command{
	Use:   "get <collection-id>",
	Short: "Show one collection with its works and children",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		printer, err := newPrinter(cmd)
		if err != nil {
			return err
		}
		id, err := parseID("collection_id", args[0])
		if err != nil {
			return err
		}

		collection, err := app.Gateway.GetCollection(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to get collection %d: %w", id, err)
		}
		return printer.Print(collection, func(tw *tabwriter.Writer) { collectionDetail(tw, collection) })
	},
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var adminCollectionsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a collection",
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

		payload := domain.CollectionCreate{
			CollectionNameTamil: optionalString(cmd, "tamil-name"),
			Description:         optionalString(cmd, "description"),
			ParentCollectionID:  optionalInt(cmd, "parent"),
			SortOrder:           optionalInt(cmd, "sort-order"),
		}
		payload.CollectionName, _ = cmd.Flags().GetString("name")
		payload.CollectionType, _ = cmd.Flags().GetString("type")

		created, err := commands.NewCollectionCommand(app.Gateway, app.Logger).Create(cmd.Context(), payload)
		if err != nil {
			return err
		}
		return printer.Print(created, func(tw *tabwriter.Writer) { collectionDetail(tw, created) })
	},
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var adminCollectionsUpdateCmd = &cobra.Command{
	Use:   "update <collection-id>",
	Short: "Update the given fields of a collection",
	Long: `Update the given fields of a collection. Fields without a flag keep
their current value. Use --no-parent to move the collection to the top level.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		printer, err := newPrinter(cmd)
		if err != nil {
			return err
		}
		id, err := parseID("collection_id", args[0])
		if err != nil {
			return err
		}

		changes := domain.CollectionChanges{
			CollectionName:      optionalString(cmd, "name"),
			CollectionNameTamil: optionalString(cmd, "tamil-name"),
			CollectionType:      optionalString(cmd, "type"),
			Description:         optionalString(cmd, "description"),
			ParentCollectionID:  optionalInt(cmd, "parent"),
			SortOrder:           optionalInt(cmd, "sort-order"),
		}
		changes.ClearParent, _ = cmd.Flags().GetBool("no-parent")

		updated, err := commands.NewCollectionCommand(app.Gateway, app.Logger).Update(cmd.Context(), id, changes)
		if err != nil {
			return err
		}
		return printer.Print(updated, func(tw *tabwriter.Writer) { collectionDetail(tw, updated) })
	},
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var adminCollectionsDeleteCmd = &cobra.Command{
	Use:   "delete <collection-id>",
	Short: "Delete a collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		id, err := parseID("collection_id", args[0])
		if err != nil {
			return err
		}

		msg, err := app.Gateway.DeleteCollection(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to delete collection %d: %w", id, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg.Message)
		return nil
	},
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var adminWorksCmd = &cobra.Command{
	Use:   "works",
	Short: "Manage work assignments within collections",
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var adminWorksAddCmd = &cobra.Command{
	Use:   "add <collection-id> <work-id>",
	Short: "Assign a work to a collection",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		ids, err := parseIDs("id", args)
		if err != nil {
			return err
		}

		payload := domain.WorkAssignment{
			WorkID:   ids[1],
			Position: optionalInt(cmd, "position"),
			Notes:    optionalString(cmd, "notes"),
		}
		payload.IsPrimary, _ = cmd.Flags().GetBool("primary")

		link, err := commands.NewCollectionCommand(app.Gateway, app.Logger).AddWork(cmd.Context(), ids[0], payload)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added work %d to collection %d at position %s\n",
			link.WorkID, link.CollectionID, output.Cell(link.PositionInCollection))
		return nil
	},
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var adminWorksRemoveCmd = &cobra.Command{
	Use:   "remove <collection-id> <work-id>",
	Short: "Remove a work from a collection",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		ids, err := parseIDs("id", args)
		if err != nil {
			return err
		}

		msg, err := app.Gateway.RemoveWorkFromCollection(cmd.Context(), ids[0], ids[1])
		if err != nil {
			return fmt.Errorf("failed to remove work %d from collection %d: %w", ids[1], ids[0], err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg.Message)
		return nil
	},
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var adminWorksPositionCmd = &cobra.Command{
	Use:   "position <collection-id> <work-id> <position>",
	Short: "Move a work to a new position within a collection",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		ids, err := parseIDs("id", args)
		if err != nil {
			return err
		}

		msg, err := commands.NewCollectionCommand(app.Gateway, app.Logger).
			MoveWork(cmd.Context(), ids[0], ids[1], ids[2])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg.Message)
		return nil
	},
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(adminLoginCmd, adminCollectionsCmd, adminWorksCmd)
	adminCollectionsCmd.AddCommand(
		adminCollectionsListCmd,
		adminCollectionsTreeCmd,
		adminCollectionsGetCmd,
		adminCollectionsCreateCmd,
		adminCollectionsUpdateCmd,
		adminCollectionsDeleteCmd,
	)
	adminWorksCmd.AddCommand(adminWorksAddCmd, adminWorksRemoveCmd, adminWorksPositionCmd)

	adminLoginCmd.Flags().StringP("username", "u", "", "Admin username")
	adminLoginCmd.Flags().String("password", "", "Admin password (prefer the prompt or TAMILWORDS_ADMIN_PASSWORD)")
	_ = adminLoginCmd.MarkFlagRequired("username")

	adminCollectionsListCmd.Flags().Bool("include-works", false, "Include each collection's works")

	for _, c := range []*cobra.Command{adminCollectionsCreateCmd, adminCollectionsUpdateCmd} {
		c.Flags().String("name", "", "Collection name")
		c.Flags().String("tamil-name", "", "Collection name in Tamil")
		c.Flags().String("type", "", "Collection type, such as period, tradition or genre")
		c.Flags().String("description", "", "Description")
		c.Flags().Int("parent", 0, "Parent collection id")
		c.Flags().Int("sort-order", 0, "Sort order among siblings")
	}
	_ = adminCollectionsCreateCmd.MarkFlagRequired("name")
	adminCollectionsUpdateCmd.Flags().Bool("no-parent", false, "Move the collection to the top level")
	adminCollectionsUpdateCmd.MarkFlagsMutuallyExclusive("parent", "no-parent")

	adminWorksAddCmd.Flags().Int("position", 0, "Position within the collection")
	adminWorksAddCmd.Flags().Bool("primary", false, "Mark this as the work's primary collection")
	adminWorksAddCmd.Flags().String("notes", "", "Notes on the assignment")
}

func collectionDetail(tw *tabwriter.Writer, c *domain.Collection) {
	output.Row(tw, "ID", c.CollectionID)
	output.Row(tw, "Name", c.CollectionName)
	output.Row(tw, "Tamil", c.CollectionNameTamil)
	output.Row(tw, "Type", c.CollectionType)
	output.Row(tw, "Description", c.Description)
	output.Row(tw, "Parent", c.ParentCollectionID)
	output.Row(tw, "Sort order", c.SortOrder)
	if len(c.Works) > 0 {
		fmt.Fprintln(tw)
		output.Row(tw, "POSITION", "WORK", "NAME", "PRIMARY")
		for _, w := range c.Works {
			output.Row(tw, w.PositionInCollection, w.WorkID, w.WorkName, w.IsPrimary)
		}
	}
	if len(c.Children) > 0 {
		fmt.Fprintln(tw)
		output.Row(tw, "CHILD", "NAME")
		for _, ch := range c.Children {
			output.Row(tw, ch.CollectionID, ch.CollectionName)
		}
	}
}
