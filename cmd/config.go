package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tamilwords/internal/config"
	"tamilwords/internal/output"
	"tamilwords/internal/services/configfile"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit the configuration file",
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), app.ConfigFile.Path())
		return nil
	},
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file holding every default",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		force, _ := cmd.Flags().GetBool("force")

		if err := app.ConfigFile.Init(cmd.Context(), force); err != nil {
			if errors.Is(err, configfile.ErrExists) {
				return fmt.Errorf("%w (use --force to overwrite)", err)
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", app.ConfigFile.Path())
		return nil
	},
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var configGetCmd = &cobra.Command{
	Use:       "get <key>",
	Short:     "Print a value from the configuration file",
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.Keys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		value, ok := app.ConfigFile.Get(args[0])
		if !ok {
			return fmt.Errorf("key %s is not set in %s", args[0], app.ConfigFile.Path())
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var configSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Set a value in the configuration file",
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.Keys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		if err := app.ConfigFile.Set(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], args[1])
		return nil
	},
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var configUnsetCmd = &cobra.Command{
	Use:       "unset <key>",
	Short:     "Remove a value from the configuration file",
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.Keys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		if err := app.ConfigFile.Unset(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
		return nil
	},
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration and the resolved API base URL",
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

		cfg := app.Config
		effective := map[string]any{
			"base_url":               cfg.BaseURL(),
			"config_file":            app.ConfigFile.Path(),
			config.KeyAPIURL:         cfg.APIURL,
			config.KeyAPIPort:        cfg.APIPort,
			config.KeyEnvScheme:      cfg.Environment.Scheme,
			config.KeyEnvHost:        cfg.Environment.Host,
			config.KeyTimeout:        cfg.Timeout.String(),
			config.KeyRateLimitRPS:   cfg.RateLimit.RequestsPerSecond,
			config.KeyRateLimitBurst: cfg.RateLimit.Burst,
			config.KeyLogLevel:       cfg.Log.Level,
			config.KeyLogFormat:      cfg.Log.Format,
			config.KeyServeAddr:      cfg.ServeAddr,
		}

		return printer.Print(effective, func(tw *tabwriter.Writer) {
			output.Row(tw, "base_url", effective["base_url"])
			output.Row(tw, "config_file", effective["config_file"])
			for _, key := range config.Keys() {
				output.Row(tw, key, effective[key])
			}
		})
	},
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configInitCmd, configGetCmd, configSetCmd, configUnsetCmd, configShowCmd)

	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")
}
