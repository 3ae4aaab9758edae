// Package config resolves the tamilwords runtime configuration once during bootstrap.
package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/spf13/viper"

	"tamilwords/internal/errors"
	"tamilwords/internal/logging"
)

const (
	// DefaultAPIPort is the well-known port the search API listens on.
	DefaultAPIPort = 8000

	// DefaultTimeout bounds every API request.
	DefaultTimeout = 10 * time.Second

	DefaultScheme    = "http"
	DefaultHost      = "localhost"
	DefaultServeAddr = ":5173"

	// EnvPrefix is prepended to every environment variable viper consults.
	EnvPrefix = "TAMILWORDS"
)

// Viper keys.
const (
	KeyAPIURL         = "api_url"
	KeyAPIPort        = "api_port"
	KeyEnvScheme      = "env.scheme"
	KeyEnvHost        = "env.host"
	KeyTimeout        = "timeout"
	KeyRateLimitRPS   = "rate_limit.rps"
	KeyRateLimitBurst = "rate_limit.burst"
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
	KeyServeAddr      = "serve.addr"
)

// Keys lists every key the configuration file may set.
func Keys() []string {
	return []string{
		KeyAPIURL,
		KeyAPIPort,
		KeyEnvScheme,
		KeyEnvHost,
		KeyTimeout,
		KeyRateLimitRPS,
		KeyRateLimitBurst,
		KeyLogLevel,
		KeyLogFormat,
		KeyServeAddr,
	}
}

// Environment describes where the client is running. Without an explicit API URL
// the base location is derived from it.
type Environment struct {
	Scheme string
	Host   string
}

// RateLimit configures client-side throttling. A zero RequestsPerSecond disables it.
type RateLimit struct {
	RequestsPerSecond float64
	Burst             int
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string
	Format string
}

// Config is the resolved configuration threaded through the application.
type Config struct {
	APIURL      string
	APIPort     int
	Environment Environment
	Timeout     time.Duration
	RateLimit   RateLimit
	Log         LogConfig
	ServeAddr   string
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		APIPort: DefaultAPIPort,
		Environment: Environment{
			Scheme: DefaultScheme,
			Host:   DefaultHost,
		},
		Timeout: DefaultTimeout,
		RateLimit: RateLimit{
			RequestsPerSecond: 10,
			Burst:             20,
		},
		Log: LogConfig{
			Level:  "info",
			Format: logging.FormatText,
		},
		ServeAddr: DefaultServeAddr,
	}
}

// SetDefaults registers defaults and environment bindings on v.
func SetDefaults(v *viper.Viper) {
	def := Default()

	v.SetDefault(KeyAPIPort, def.APIPort)
	v.SetDefault(KeyEnvScheme, def.Environment.Scheme)
	v.SetDefault(KeyEnvHost, def.Environment.Host)
	v.SetDefault(KeyTimeout, def.Timeout)
	v.SetDefault(KeyRateLimitRPS, def.RateLimit.RequestsPerSecond)
	v.SetDefault(KeyRateLimitBurst, def.RateLimit.Burst)
	v.SetDefault(KeyLogLevel, def.Log.Level)
	v.SetDefault(KeyLogFormat, def.Log.Format)
	v.SetDefault(KeyServeAddr, def.ServeAddr)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// VITE_API_URL is honoured so a frontend .env can be shared with the CLI.
	_ = v.BindEnv(KeyAPIURL, EnvPrefix+"_API_URL", "VITE_API_URL")
}

// Load builds a validated Config from v.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	cfg := &Config{
		APIURL:  v.GetString(KeyAPIURL),
		APIPort: v.GetInt(KeyAPIPort),
		Environment: Environment{
			Scheme: v.GetString(KeyEnvScheme),
			Host:   v.GetString(KeyEnvHost),
		},
		Timeout: v.GetDuration(KeyTimeout),
		RateLimit: RateLimit{
			RequestsPerSecond: v.GetFloat64(KeyRateLimitRPS),
			Burst:             v.GetInt(KeyRateLimitBurst),
		},
		Log: LogConfig{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
		ServeAddr: v.GetString(KeyServeAddr),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the gateway cannot work with.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.APIURL, is.URL),
		validation.Field(&c.APIPort, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.Timeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.Log, validation.By(func(value any) error {
			l, _ := value.(LogConfig)
			if _, err := logging.ParseLevel(l.Level); err != nil {
				return err
			}
			return validation.Validate(l.Format, validation.In(logging.FormatText, logging.FormatJSON))
		})),
		validation.Field(&c.RateLimit, validation.By(func(value any) error {
			rl, _ := value.(RateLimit)
			if rl.RequestsPerSecond < 0 {
				return fmt.Errorf("requests per second must not be negative")
			}
			if rl.RequestsPerSecond > 0 && rl.Burst < 1 {
				return fmt.Errorf("burst must be at least 1 when rate limiting is enabled")
			}
			return nil
		})),
	)
	if err != nil {
		return errors.NewConfigurationError("", "", err.Error(), err)
	}
	return nil
}

// BaseURL returns the base location every request is resolved against.
func (c *Config) BaseURL() string {
	return ResolveBaseURL(c.APIURL, c.Environment, c.APIPort)
}

// WithEnvironment returns a copy of c bound to env.
func (c *Config) WithEnvironment(env Environment) *Config {
	clone := *c
	clone.Environment = env
	return &clone
}

// ResolveBaseURL returns override verbatim when it is set. Otherwise it combines
// the environment's scheme and host with port.
func ResolveBaseURL(override string, env Environment, port int) string {
	if strings.TrimSpace(override) != "" {
		return override
	}

	scheme := strings.TrimSuffix(strings.TrimSpace(env.Scheme), ":")
	if scheme == "" {
		scheme = DefaultScheme
	}

	host := strings.TrimSpace(env.Host)
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.Trim(host, "[]")
	if host == "" {
		host = DefaultHost
	}

	if port <= 0 {
		port = DefaultAPIPort
	}
	return scheme + "://" + net.JoinHostPort(host, strconv.Itoa(port))
}
