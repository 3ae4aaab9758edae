package commands

import (
	"context"
	"fmt"
	"log/slog"

	"tamilwords/internal/domain"
	twerrors "tamilwords/internal/errors"
	"tamilwords/internal/gateway"
)

// StatusCommand reports API health and corpus statistics together.
type StatusCommand struct {
	catalog domain.Catalog
	logger  *slog.Logger
}

// NewStatusCommand creates a new status command.
func NewStatusCommand(catalog domain.Catalog, logger *slog.Logger) *StatusCommand {
	return &StatusCommand{
		catalog: catalog,
		logger:  logger,
	}
}

// StatusResult holds whatever could be fetched. A field is nil when its call failed.
type StatusResult struct {
	Health     *domain.Health
	Statistics *domain.Statistics
}

// Execute issues both calls at once and waits for both. Failures from either
// call are joined; the partial result is still returned.
func (c *StatusCommand) Execute(ctx context.Context) (*StatusResult, error) {
	health := gateway.Go(ctx, c.catalog.HealthCheck)
	stats := gateway.Go(ctx, c.catalog.GetStatistics)

	result := &StatusResult{}
	var healthErr, statsErr error

	result.Health, healthErr = health.Await(ctx)
	if healthErr != nil {
		healthErr = fmt.Errorf("health check failed: %w", healthErr)
	}
	result.Statistics, statsErr = stats.Await(ctx)
	if statsErr != nil {
		statsErr = fmt.Errorf("statistics failed: %w", statsErr)
	}

	if result.Health != nil && !result.Health.Healthy() {
		c.logger.WarnContext(ctx, "API reports unhealthy",
			"status", result.Health.Status,
			"database", result.Health.Database)
	}

	return result, twerrors.Join(healthErr, statsErr)
}
