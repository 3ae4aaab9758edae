package app

import (
	"context"
	"os"

	"github.com/spf13/viper"

	"tamilwords/internal/adapters/filesystem"
	"tamilwords/internal/adapters/terminal"
	"tamilwords/internal/config"
	"tamilwords/internal/logging"
	"tamilwords/internal/pages"
	"tamilwords/internal/services/configfile"
)

// NewAppWithOptions creates a new App with the given options, wiring all dependencies.
func NewAppWithOptions(ctx context.Context, opts *Options) (*App, error) {
	v := opts.Viper
	if v == nil {
		v = viper.New()
	}
	if opts.APIURL != "" {
		v.Set(config.KeyAPIURL, opts.APIURL)
	}

	// Resolve configuration once.
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	// Create logger.
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != nil {
		level = *opts.LogLevel
	}
	logger := logging.NewLogger(logging.Config{
		Level:  level,
		Format: cfg.Log.Format,
		Output: os.Stderr,
	})

	// Create filesystem adapter.
	fs := filesystem.New()

	// Create config file repository.
	configPath := opts.ConfigPath
	if configPath == "" {
		configPath, err = configfile.DefaultPath(fs)
		if err != nil {
			return nil, err
		}
	}
	configRepo, err := configfile.NewRepository(fs, configPath, logger)
	if err != nil {
		return nil, err
	}

	// Create the gateway bound to the resolved base location.
	gw, err := NewGatewayFactory(logger).Create(cfg)
	if err != nil {
		return nil, err
	}

	// Create password reader with environment variable support.
	passwordReader := terminal.NewAdapter(os.Stdin, os.Stderr)

	// Log configuration details.
	logger.DebugContext(ctx, "Initializing tamilwords with configuration",
		"logLevel", level.String(),
		"verbose", opts.Verbose,
		"configPath", configPath,
		"baseURL", gw.BaseURL())

	return &App{
		Config:         cfg,
		Gateway:        gw,
		Routes:         pages.NewTable(),
		ConfigFile:     configRepo,
		FileSystem:     fs,
		PasswordReader: passwordReader,
		Logger:         logger,
		Options:        opts,
	}, nil
}
