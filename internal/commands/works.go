package commands

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"tamilwords/internal/domain"
	"tamilwords/internal/services/filter"
)

// WorksCommand lists works, either the whole catalog or one collection's works.
type WorksCommand struct {
	catalog domain.Catalog
	logger  *slog.Logger
}

// NewWorksCommand creates a new works command.
func NewWorksCommand(catalog domain.Catalog, logger *slog.Logger) *WorksCommand {
	return &WorksCommand{
		catalog: catalog,
		logger:  logger,
	}
}

// WorksRequest contains the parameters for the works command.
type WorksRequest struct {
	SortBy          string
	CollectionID    *int
	ExcludePatterns []string
}

// WorksResult contains the works left after filtering.
type WorksResult struct {
	Works    []domain.Work
	Excluded int
}

// Execute fetches the works and drops any whose English or Tamil name matches
// an exclude pattern.
func (c *WorksCommand) Execute(ctx context.Context, req WorksRequest) (*WorksResult, error) {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.SortBy, validation.In(
			domain.SortAlphabetical, domain.SortCanonical, domain.SortChronological, domain.SortCollection)),
		validation.Field(&req.CollectionID, validation.By(positive)),
	)
	if err != nil {
		return nil, validationError(err)
	}

	workFilter, err := filter.New(req.ExcludePatterns, c.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create exclude filter: %w", err)
	}

	var works []domain.Work
	if req.CollectionID != nil {
		works, err = c.catalog.ListCollectionWorks(ctx, *req.CollectionID)
	} else {
		works, err = c.catalog.ListWorks(ctx, req.SortBy)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list works: %w", err)
	}

	result := &WorksResult{Works: make([]domain.Work, 0, len(works))}
	for _, w := range works {
		if workFilter.ShouldExclude(w.WorkName, w.WorkNameTamil) {
			result.Excluded++
			continue
		}
		result.Works = append(result.Works, w)
	}

	c.logger.InfoContext(ctx, "Retrieved works",
		"count", len(result.Works),
		"excluded", result.Excluded)
	return result, nil
}
