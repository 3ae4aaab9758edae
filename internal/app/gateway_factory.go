package app

import (
	"log/slog"

	"tamilwords/internal/config"
	"tamilwords/internal/gateway"
)

// GatewayFactory builds endpoint gateways from resolved configuration.
type GatewayFactory struct {
	logger *slog.Logger
}

// NewGatewayFactory creates a new gateway factory.
func NewGatewayFactory(logger *slog.Logger) *GatewayFactory {
	return &GatewayFactory{
		logger: logger,
	}
}

// Create builds a gateway for cfg's base location.
func (f *GatewayFactory) Create(cfg *config.Config) (*gateway.Gateway, error) {
	return gateway.New(cfg, f.logger.With("component", "gateway"))
}
