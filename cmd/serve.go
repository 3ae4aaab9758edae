package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tamilwords/internal/pages"
	"tamilwords/internal/server"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the frontend page routes",
	Long: `Serve the page shell for the main (/) and admin (/admin) routes so deep
links resolve. Each page is told the API base location derived from the
request's own scheme and host, unless an API URL is configured. Any other
path answers 404.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = app.Config.ServeAddr
		}
		script, _ := cmd.Flags().GetString("script")

		handler, err := pages.NewHandler(app.Config, script, app.Logger)
		if err != nil {
			return fmt.Errorf("failed to build page handler: %w", err)
		}

		app.Logger.InfoContext(cmd.Context(), "Serving page routes",
			"addr", addr,
			"routes", len(pages.Routes()))
		return server.New(addr, handler, app.Logger).Run(cmd.Context())
	},
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "Listen address (default serve.addr, :5173)")
	serveCmd.Flags().String("script", "", "URL of the frontend bundle the page shell loads")
}
