// Package configfile reads and edits the tamilwords YAML configuration file.
package configfile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"tamilwords/internal/config"
	"tamilwords/internal/domain"
	twerrors "tamilwords/internal/errors"
)

const (
	dirPermissions  = 0o700 // Owner-only access for security
	filePermissions = 0o600 // Read/write owner only
)

// ErrExists is returned by Init when the file is already present.
var ErrExists = errors.New("configuration file already exists")

// Setting is one key and its value as written in the file.
type Setting struct {
	Key   string
	Value string
}

// DefaultPath returns $HOME/.config/tamilwords/config.yaml.
func DefaultPath(fs domain.FileSystemAdapter) (string, error) {
	homeDir, err := fs.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "tamilwords", "config.yaml"), nil
}

// Repository handles configuration file persistence.
type Repository struct {
	fs     domain.FileSystemAdapter
	path   string
	doc    map[string]any
	logger *slog.Logger
}

// NewRepository loads the file at path if it exists. A missing file yields an
// empty document.
func NewRepository(fs domain.FileSystemAdapter, path string, logger *slog.Logger) (*Repository, error) {
	repo := &Repository{
		fs:     fs,
		path:   path,
		doc:    map[string]any{},
		logger: logger,
	}

	if err := repo.Load(context.Background()); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("Failed to load existing config, starting with empty config", "error", err)
		}
	}

	return repo, nil
}

// Path returns the file location.
func (r *Repository) Path() string {
	return r.path
}

// Exists reports whether the file is present on disk.
func (r *Repository) Exists() bool {
	_, err := r.fs.Stat(r.path)
	return err == nil
}

// Get returns the value stored under key.
func (r *Repository) Get(key string) (string, bool) {
	v, ok := lookup(r.doc, key)
	if !ok {
		return "", false
	}
	return fmt.Sprint(v), true
}

// Settings returns every known key present in the file, in key order.
func (r *Repository) Settings() []Setting {
	var out []Setting
	for _, key := range config.Keys() {
		if v, ok := r.Get(key); ok {
			out = append(out, Setting{Key: key, Value: v})
		}
	}
	return out
}

// Set stores value under key and saves. The file is left unchanged when the
// result would not load.
func (r *Repository) Set(ctx context.Context, key, value string) error {
	if !slices.Contains(config.Keys(), key) {
		return twerrors.NewValidationError("key", key, "known",
			"unknown configuration key; expected one of "+strings.Join(config.Keys(), ", "))
	}

	previous := clone(r.doc)
	assign(r.doc, key, scalar(value))

	if err := r.validate(); err != nil {
		r.doc = previous
		return err
	}

	if err := r.Save(ctx); err != nil {
		r.doc = previous // Rollback
		return fmt.Errorf("failed to save configuration after setting %s: %w", key, err)
	}

	r.logger.InfoContext(ctx, "Updated configuration", "key", key, "path", r.path)
	return nil
}

// Unset removes key and saves.
func (r *Repository) Unset(ctx context.Context, key string) error {
	if _, ok := lookup(r.doc, key); !ok {
		return fmt.Errorf("key %s is not set in %s", key, r.path)
	}

	previous := clone(r.doc)
	remove(r.doc, key)

	if err := r.Save(ctx); err != nil {
		r.doc = previous // Rollback
		return fmt.Errorf("failed to save configuration after removing %s: %w", key, err)
	}

	r.logger.InfoContext(ctx, "Removed configuration key", "key", key, "path", r.path)
	return nil
}

// Init writes a file holding every default. An existing file is only replaced
// when force is set.
func (r *Repository) Init(ctx context.Context, force bool) error {
	if r.Exists() && !force {
		return fmt.Errorf("%w: %s", ErrExists, r.path)
	}

	previous := r.doc
	r.doc = defaults()
	if err := r.Save(ctx); err != nil {
		r.doc = previous
		return err
	}
	return nil
}

// Save writes the document to disk with owner-only permissions.
func (r *Repository) Save(ctx context.Context) error {
	if err := r.fs.MkdirAll(filepath.Dir(r.path), dirPermissions); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(r.doc)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if writeErr := r.fs.WriteFile(r.path, data, filePermissions); writeErr != nil {
		return fmt.Errorf("failed to write configuration file: %w", writeErr)
	}

	r.logger.DebugContext(ctx, "Configuration saved", "path", r.path)
	return nil
}

// Load reads the document from disk.
func (r *Repository) Load(ctx context.Context) error {
	data, err := r.fs.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.logger.DebugContext(ctx, "Configuration file does not exist", "path", r.path)
			return os.ErrNotExist
		}
		return fmt.Errorf("failed to read configuration file: %w", err)
	}

	doc := map[string]any{}
	if unmarshalErr := yaml.Unmarshal(data, &doc); unmarshalErr != nil {
		return fmt.Errorf("failed to unmarshal configuration: %w", unmarshalErr)
	}

	r.doc = doc
	r.logger.DebugContext(ctx, "Configuration loaded", "path", r.path, "keys", len(r.Settings()))
	return nil
}

func (r *Repository) validate() error {
	v := viper.New()
	if err := v.MergeConfigMap(r.doc); err != nil {
		return twerrors.NewConfigurationError("", "", err.Error(), err)
	}
	_, err := config.Load(v)
	return err
}

func defaults() map[string]any {
	def := config.Default()
	return map[string]any{
		"api_port": def.APIPort,
		"env": map[string]any{
			"scheme": def.Environment.Scheme,
			"host":   def.Environment.Host,
		},
		"timeout": def.Timeout.String(),
		"rate_limit": map[string]any{
			"rps":   def.RateLimit.RequestsPerSecond,
			"burst": def.RateLimit.Burst,
		},
		"log": map[string]any{
			"level":  def.Log.Level,
			"format": def.Log.Format,
		},
		"serve": map[string]any{
			"addr": def.ServeAddr,
		},
	}
}

// scalar types value the way YAML would, so ports stay numbers in the file.
func scalar(value string) any {
	var parsed any
	if err := yaml.Unmarshal([]byte(value), &parsed); err != nil || parsed == nil {
		return value
	}
	switch parsed.(type) {
	case map[string]any, []any:
		return value
	}
	return parsed
}

func lookup(doc map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	m := doc
	for _, p := range parts[:len(parts)-1] {
		next, ok := m[p].(map[string]any)
		if !ok {
			return nil, false
		}
		m = next
	}
	v, ok := m[parts[len(parts)-1]]
	return v, ok
}

func assign(doc map[string]any, key string, value any) {
	parts := strings.Split(key, ".")
	m := doc
	for _, p := range parts[:len(parts)-1] {
		next, ok := m[p].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[p] = next
		}
		m = next
	}
	m[parts[len(parts)-1]] = value
}

func remove(doc map[string]any, key string) {
	parts := strings.Split(key, ".")
	m := doc
	for _, p := range parts[:len(parts)-1] {
		next, ok := m[p].(map[string]any)
		if !ok {
			return
		}
		m = next
	}
	delete(m, parts[len(parts)-1])
	if len(parts) > 1 && len(m) == 0 {
		delete(doc, parts[0])
	}
}

func clone(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		if nested, ok := v.(map[string]any); ok {
			out[k] = clone(nested)
			continue
		}
		out[k] = v
	}
	return out
}
