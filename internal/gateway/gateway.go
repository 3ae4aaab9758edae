// Package gateway exposes every search API operation behind one value bound to a
// single base location.
package gateway

import (
	"log/slog"

	httpadapter "tamilwords/internal/adapters/http"
	"tamilwords/internal/config"
	"tamilwords/internal/domain"
	"tamilwords/internal/services/auth"
	"tamilwords/internal/services/catalog"
	"tamilwords/internal/services/collections"
)

// Gateway aggregates the catalog, admin login and collection management
// operations. It holds no mutable state and is safe for concurrent use.
type Gateway struct {
	domain.Catalog
	domain.AdminAuthenticator
	domain.CollectionManager

	baseURL string
}

// New resolves the base location from cfg and builds the shared request handle.
// The config is validated first so a gateway never exists without a usable base.
func New(cfg *config.Config, logger *slog.Logger) (*Gateway, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	adapter := httpadapter.NewAdapter(httpadapter.Options{
		BaseURL:           cfg.BaseURL(),
		Timeout:           cfg.Timeout,
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
	}, logger)

	logger.Debug("Endpoint gateway ready", "baseURL", adapter.BaseURL(), "timeout", cfg.Timeout)
	return NewWithAdapter(adapter, logger), nil
}

// NewWithAdapter wires the services over an existing adapter.
func NewWithAdapter(adapter domain.HTTPAdapter, logger *slog.Logger) *Gateway {
	return &Gateway{
		Catalog:            catalog.NewService(adapter, logger),
		AdminAuthenticator: auth.NewAuthenticator(adapter, logger),
		CollectionManager:  collections.NewManager(adapter, logger),
		baseURL:            adapter.BaseURL(),
	}
}

// BaseURL returns the base location every operation is resolved against.
func (g *Gateway) BaseURL() string {
	return g.baseURL
}
