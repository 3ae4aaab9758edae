package commands

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"tamilwords/internal/domain"
)

// SearchCommand runs a word search against the catalog.
type SearchCommand struct {
	catalog domain.Catalog
	logger  *slog.Logger
}

// NewSearchCommand creates a new search command.
func NewSearchCommand(catalog domain.Catalog, logger *slog.Logger) *SearchCommand {
	return &SearchCommand{
		catalog: catalog,
		logger:  logger,
	}
}

// SearchRequest contains the parameters for the search command.
type SearchRequest struct {
	Params domain.SearchParams
}

// Validate checks the flags before anything is sent.
func (r *SearchRequest) Validate() error {
	p := &r.Params
	return validationError(validation.ValidateStruct(p,
		validation.Field(&p.Query, validation.Required),
		validation.Field(&p.MatchType, validation.In(domain.MatchExact, domain.MatchPartial)),
		validation.Field(&p.WordPosition,
			validation.In(domain.PositionBeginning, domain.PositionEnd, domain.PositionAnywhere)),
		validation.Field(&p.SortBy, validation.In(
			domain.SortAlphabetical, domain.SortCanonical, domain.SortChronological, domain.SortCollection)),
		validation.Field(&p.Limit, validation.By(positive)),
		validation.Field(&p.Offset, validation.By(nonNegative)),
	))
}

// Execute validates the request and runs the search.
func (c *SearchCommand) Execute(ctx context.Context, req SearchRequest) (*domain.SearchResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c.logger.DebugContext(ctx, "Searching",
		"query", req.Params.Query,
		"matchType", req.Params.MatchType,
		"workIds", req.Params.WorkIDs)

	resp, err := c.catalog.Search(ctx, req.Params)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	c.logger.InfoContext(ctx, "Search completed",
		"query", req.Params.Query,
		"total", resp.TotalCount,
		"returned", len(resp.Results))
	return resp, nil
}
