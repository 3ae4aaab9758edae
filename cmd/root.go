package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tamilwords/internal/app"
	"tamilwords/internal/output"
)

//nolint:gochecknoglobals // Cobra CLI pattern for persistent flag variables
var (
	cfgFile      string
	verbose      bool
	apiURL       string
	outputFormat string

	application *app.App
	initErr     error
)

// VersionInfo holds build information.
type VersionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	BuiltBy string `json:"built_by"`
}

//nolint:gochecknoglobals // Package-level version info for CLI commands
var versionInfo = VersionInfo{
	Version: "dev",
	Commit:  "none",
	Date:    "unknown",
	BuiltBy: "unknown",
}

// SetVersionInfo updates the build information.
func SetVersionInfo(v, c, d, b string) {
	versionInfo.Version = v
	versionInfo.Commit = c
	versionInfo.Date = d
	versionInfo.BuiltBy = b
}

// GetVersionInfo returns the current version information.
func GetVersionInfo() VersionInfo {
	return versionInfo
}

// GetApp returns the initialized application instance.
func GetApp() *app.App {
	return application
}

//nolint:gochecknoglobals // Cobra CLI pattern for root command
var rootCmd = &cobra.Command{
	Use:   "tamilwords",
	Short: "A CLI client for the Tamil literary works search API",
	Long: `Tamilwords searches words across classical Tamil literary works, browses
works, verses and collections, manages collections as an administrator, and
serves the search frontend's page routes.`,
	SilenceUsage: true,
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra CLI pattern for flag initialization
func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/tamilwords/config.yaml)")
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().
		StringVar(&apiURL, "api-url", "", "API base URL (overrides api_url and the derived location)")
	rootCmd.PersistentFlags().
		StringVarP(&outputFormat, "output", "o", string(output.FormatTable), "Output format: table, json or yaml")
}

func initConfig() {
	v := viper.New()
	configPath := cfgFile
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			application, initErr = nil, fmt.Errorf("failed to get home directory: %w", err)
			return
		}

		configPath = filepath.Join(home, ".config", "tamilwords", "config.yaml")
		v.AddConfigPath(filepath.Join(home, ".config", "tamilwords"))
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	// A missing file means defaults; anything else is reported.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			application, initErr = nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
			return
		}
	}

	// Initialize the application with dependency injection
	opts := []app.Option{
		app.WithViper(v),
		app.WithConfigPath(configPath),
		app.WithAPIURL(apiURL),
	}
	if verbose {
		opts = append(opts, app.WithVerbose(true))
	}

	application, initErr = app.NewApp(context.Background(), opts...)
	if initErr != nil {
		initErr = fmt.Errorf("failed to initialize application: %w", initErr)
	}
}

// requireApp returns the application or the reason it could not be built.
func requireApp() (*app.App, error) {
	if initErr != nil {
		return nil, initErr
	}
	if application == nil {
		return nil, errors.New("application not initialized")
	}
	return application, nil
}

func newPrinter(cmd *cobra.Command) (*output.Printer, error) {
	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return nil, err
	}
	return output.NewPrinter(cmd.OutOrStdout(), format), nil
}
