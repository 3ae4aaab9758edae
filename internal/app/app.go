// Package app wires the tamilwords dependencies once per process.
package app

import (
	"context"
	"log/slog"

	"github.com/spf13/viper"

	"tamilwords/internal/config"
	"tamilwords/internal/domain"
	"tamilwords/internal/gateway"
	"tamilwords/internal/pages"
	"tamilwords/internal/services/configfile"
)

// App contains all application dependencies.
type App struct {
	// Resolved runtime configuration
	Config *config.Config

	// Endpoint gateway bound to Config's base location
	Gateway *gateway.Gateway

	// Page route table
	Routes *pages.Table

	// Editable configuration file
	ConfigFile *configfile.Repository

	// File operations (needed by multiple commands)
	FileSystem domain.FileSystemAdapter

	// I/O dependencies
	PasswordReader domain.PasswordReader

	// Logging
	Logger *slog.Logger

	// Bootstrap options the App was built with
	Options *Options
}

// Options holds bootstrap settings that come from the command line.
type Options struct {
	LogLevel   *slog.Level
	Verbose    bool
	APIURL     string
	ConfigPath string
	Viper      *viper.Viper
}

// Option is a functional option for configuring the App.
type Option func(*Options)

// WithLogLevel sets the logging level, overriding log.level.
func WithLogLevel(level slog.Level) Option {
	return func(o *Options) {
		o.LogLevel = &level
	}
}

// WithVerbose enables debug logging.
func WithVerbose(verbose bool) Option {
	return func(o *Options) {
		o.Verbose = verbose
		if verbose {
			level := slog.LevelDebug
			o.LogLevel = &level
		}
	}
}

// WithAPIURL overrides the API base location.
func WithAPIURL(apiURL string) Option {
	return func(o *Options) {
		o.APIURL = apiURL
	}
}

// WithConfigPath sets the configuration file the config commands edit.
func WithConfigPath(path string) Option {
	return func(o *Options) {
		o.ConfigPath = path
	}
}

// WithViper supplies the viper instance the configuration is read from.
func WithViper(v *viper.Viper) Option {
	return func(o *Options) {
		o.Viper = v
	}
}

// NewApp creates a new App with the given options.
func NewApp(ctx context.Context, opts ...Option) (*App, error) {
	options := &Options{}

	// Apply options.
	for _, opt := range opts {
		opt(options)
	}

	return NewAppWithOptions(ctx, options)
}
