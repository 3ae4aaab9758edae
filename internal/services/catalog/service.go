// Package catalog implements the public, read-only operations of the search API.
package catalog

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	"tamilwords/internal/domain"
	"tamilwords/internal/endpoints"
	"tamilwords/internal/logging"
	"tamilwords/internal/services/response"
)

// Service issues the public catalog operations.
type Service struct {
	httpAdapter domain.HTTPAdapter
	logger      *slog.Logger
}

// NewService creates a new catalog service.
func NewService(httpAdapter domain.HTTPAdapter, logger *slog.Logger) *Service {
	return &Service{
		httpAdapter: httpAdapter,
		logger:      logger,
	}
}

// Search runs a word search. Unset parameters are left to the API's defaults.
func (s *Service) Search(ctx context.Context, params domain.SearchParams) (*domain.SearchResponse, error) {
	logger := logging.WithOperation(s.logger, endpoints.Search.Name)
	logger.DebugContext(ctx, "Searching words",
		"query", params.Query,
		"matchType", params.MatchType,
		"position", params.WordPosition)

	var result domain.SearchResponse
	if err := response.Do(ctx, s.httpAdapter, endpoints.Search, response.Call{Query: params.Values()}, &result); err != nil {
		return nil, err
	}

	logger.DebugContext(ctx, "Search completed",
		"total", result.TotalCount,
		"returned", len(result.Results))
	return &result, nil
}

// ListWorks returns every work, ordered by sortBy when it is set.
func (s *Service) ListWorks(ctx context.Context, sortBy string) ([]domain.Work, error) {
	query := url.Values{}
	if sortBy != "" {
		query.Set("sort_by", sortBy)
	}

	var works []domain.Work
	if err := response.Do(ctx, s.httpAdapter, endpoints.ListWorks, response.Call{Query: query}, &works); err != nil {
		return nil, err
	}
	return works, nil
}

// ListWordRoots returns word roots, filtered by term when it is non-empty.
func (s *Service) ListWordRoots(ctx context.Context, term string) ([]domain.WordRoot, error) {
	query := url.Values{}
	if term != "" {
		query.Set("q", term)
	}

	var roots []domain.WordRoot
	if err := response.Do(ctx, s.httpAdapter, endpoints.ListWordRoots, response.Call{Query: query}, &roots); err != nil {
		return nil, err
	}
	return roots, nil
}

// GetVerse returns one verse with all of its lines.
func (s *Service) GetVerse(ctx context.Context, verseID int) (*domain.Verse, error) {
	var verse domain.Verse
	call := response.Call{IDs: []string{strconv.Itoa(verseID)}}
	if err := response.Do(ctx, s.httpAdapter, endpoints.GetVerse, call, &verse); err != nil {
		return nil, err
	}
	return &verse, nil
}

// GetStatistics returns aggregate corpus counts.
func (s *Service) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	var stats domain.Statistics
	if err := response.Do(ctx, s.httpAdapter, endpoints.GetStatistics, response.Call{}, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// HealthCheck returns the API's liveness payload.
func (s *Service) HealthCheck(ctx context.Context) (*domain.Health, error) {
	var health domain.Health
	if err := response.Do(ctx, s.httpAdapter, endpoints.HealthCheck, response.Call{}, &health); err != nil {
		return nil, err
	}
	if !health.Healthy() {
		s.logger.WarnContext(ctx, "API reports unhealthy",
			"status", health.Status,
			"database", health.Database,
			"error", health.Error)
	}
	return &health, nil
}

func (s *Service) ListPublicCollections(ctx context.Context) ([]domain.Collection, error) {
	var collections []domain.Collection
	if err := response.Do(ctx, s.httpAdapter, endpoints.ListPublicCollections, response.Call{}, &collections); err != nil {
		return nil, err
	}
	return collections, nil
}

// GetPublicCollectionTree returns the collection hierarchy, starting at root
// when it is given.
func (s *Service) GetPublicCollectionTree(ctx context.Context, root *int) ([]domain.CollectionTreeNode, error) {
	query := url.Values{}
	if root != nil {
		query.Set("root", strconv.Itoa(*root))
	}

	var tree []domain.CollectionTreeNode
	if err := response.Do(ctx, s.httpAdapter, endpoints.GetPublicCollectionTree, response.Call{Query: query}, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

func (s *Service) ListCollectionWorks(ctx context.Context, collectionID int) ([]domain.Work, error) {
	var works []domain.Work
	call := response.Call{IDs: []string{strconv.Itoa(collectionID)}}
	if err := response.Do(ctx, s.httpAdapter, endpoints.ListCollectionWorks, call, &works); err != nil {
		return nil, err
	}
	return works, nil
}

// GetDesignatedFilterCollection returns the collection the search filter tree is
// rooted at.
func (s *Service) GetDesignatedFilterCollection(ctx context.Context) (*domain.DesignatedCollection, error) {
	var designated domain.DesignatedCollection
	err := response.Do(ctx, s.httpAdapter, endpoints.GetDesignatedFilterCollection, response.Call{}, &designated)
	if err != nil {
		return nil, err
	}
	return &designated, nil
}
