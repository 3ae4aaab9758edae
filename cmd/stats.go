package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tamilwords/internal/commands"
	"tamilwords/internal/domain"
	"tamilwords/internal/output"
)

// errUnhealthy is returned after printing a health report that is not healthy.
var errUnhealthy = errors.New("API is unhealthy")

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus statistics",
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

		stats, err := app.Gateway.GetStatistics(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get statistics: %w", err)
		}
		return printer.Print(stats, func(tw *tabwriter.Writer) { statsTable(tw, stats) })
	},
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check whether the API and its database are up",
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

		health, err := app.Gateway.HealthCheck(cmd.Context())
		if err != nil {
			return fmt.Errorf("health check failed: %w", err)
		}
		if err := printer.Print(health, func(tw *tabwriter.Writer) { healthTable(tw, health) }); err != nil {
			return err
		}
		if !health.Healthy() {
			return errUnhealthy
		}
		return nil
	},
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show health and statistics together",
	Long:  `Request the health check and the corpus statistics at the same time and print both.`,
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

		statusCommand := commands.NewStatusCommand(app.Gateway, app.Logger)
		result, callErr := statusCommand.Execute(cmd.Context())

		report := struct {
			BaseURL    string             `json:"base_url"`
			Health     *domain.Health     `json:"health"`
			Statistics *domain.Statistics `json:"statistics"`
		}{app.Gateway.BaseURL(), result.Health, result.Statistics}

		if err := printer.Print(report, func(tw *tabwriter.Writer) {
			output.Row(tw, "API", report.BaseURL)
			if report.Health != nil {
				healthTable(tw, report.Health)
			}
			if report.Statistics != nil {
				statsTable(tw, report.Statistics)
			}
		}); err != nil {
			return err
		}

		if callErr != nil {
			return callErr
		}
		if result.Health != nil && !result.Health.Healthy() {
			return errUnhealthy
		}
		return nil
	},
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(statusCmd)
}

func statsTable(tw *tabwriter.Writer, s *domain.Statistics) {
	output.Row(tw, "Works", s.TotalWorks)
	output.Row(tw, "Verses", s.TotalVerses)
	output.Row(tw, "Lines", s.TotalLines)
	output.Row(tw, "Words", s.TotalWords)
	output.Row(tw, "Distinct words", s.DistinctWords)
	output.Row(tw, "Unique roots", s.UniqueRoots)
}

func healthTable(tw *tabwriter.Writer, h *domain.Health) {
	output.Row(tw, "Status", h.Status)
	output.Row(tw, "Database", h.Database)
	if h.Error != "" {
		output.Row(tw, "Error", h.Error)
	}
}
