package cmd

import (
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tamilwords/internal/output"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display version, commit, build date, and build information for tamilwords.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		printer, err := newPrinter(cmd)
		if err != nil {
			return err
		}

		info := GetVersionInfo()
		return printer.Print(info, func(tw *tabwriter.Writer) {
			output.Row(tw, "tamilwords version", info.Version)
			output.Row(tw, "  commit:", info.Commit)
			output.Row(tw, "  built:", info.Date)
			output.Row(tw, "  built by:", info.BuiltBy)
		})
	},
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(versionCmd)
}
