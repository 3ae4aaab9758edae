package commands

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"tamilwords/internal/domain"
	twerrors "tamilwords/internal/errors"
)

// maxConcurrentVerses limits the number of verse requests in flight.
const maxConcurrentVerses = 4

// VersesCommand fetches one or more verses by id.
type VersesCommand struct {
	catalog domain.Catalog
	logger  *slog.Logger
}

// NewVersesCommand creates a new verses command.
func NewVersesCommand(catalog domain.Catalog, logger *slog.Logger) *VersesCommand {
	return &VersesCommand{
		catalog: catalog,
		logger:  logger,
	}
}

// VersesRequest lists the verse ids to fetch.
type VersesRequest struct {
	VerseIDs []int
}

// Execute fetches every verse concurrently. Results keep the order of the
// requested ids. The first failure cancels the remaining requests.
func (c *VersesCommand) Execute(ctx context.Context, req VersesRequest) ([]domain.Verse, error) {
	if len(req.VerseIDs) == 0 {
		return nil, twerrors.NewValidationError("verse_ids", "", "required", "at least one verse id is required")
	}
	for _, id := range req.VerseIDs {
		if id < 1 {
			return nil, twerrors.NewValidationError("verse_ids", fmt.Sprint(id), "positive", "verse ids must be positive")
		}
	}

	verses := make([]domain.Verse, len(req.VerseIDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentVerses)

	for i, id := range req.VerseIDs {
		i, id := i, id
		g.Go(func() error {
			verse, err := c.catalog.GetVerse(gctx, id)
			if err != nil {
				return fmt.Errorf("failed to get verse %d: %w", id, err)
			}
			verses[i] = *verse
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		c.logger.ErrorContext(ctx, "Error fetching verses", "error", err)
		return nil, err
	}

	c.logger.DebugContext(ctx, "Fetched verses", "count", len(verses))
	return verses, nil
}
