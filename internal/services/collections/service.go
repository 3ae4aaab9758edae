// Package collections implements the admin collection management operations.
package collections

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	"tamilwords/internal/domain"
	"tamilwords/internal/endpoints"
	"tamilwords/internal/services/response"
)

// Manager issues the admin collection operations.
type Manager struct {
	httpAdapter domain.HTTPAdapter
	logger      *slog.Logger
}

// NewManager creates a new collection manager.
func NewManager(httpAdapter domain.HTTPAdapter, logger *slog.Logger) *Manager {
	return &Manager{
		httpAdapter: httpAdapter,
		logger:      logger,
	}
}

func ids(values ...int) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.Itoa(v)
	}
	return out
}

// ListCollections returns the flat collection list.
func (m *Manager) ListCollections(ctx context.Context, filter domain.CollectionFilter) ([]domain.Collection, error) {
	var collections []domain.Collection
	call := response.Call{Query: filter.Values()}
	if err := response.Do(ctx, m.httpAdapter, endpoints.ListCollections, call, &collections); err != nil {
		return nil, err
	}
	return collections, nil
}

// GetCollectionTree returns every collection nested under its parent.
func (m *Manager) GetCollectionTree(ctx context.Context) ([]domain.CollectionTreeNode, error) {
	var tree []domain.CollectionTreeNode
	call := response.Call{Query: url.Values{"tree": []string{"true"}}}
	if err := response.Do(ctx, m.httpAdapter, endpoints.GetCollectionTree, call, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// GetCollection returns one collection with its works and direct children.
func (m *Manager) GetCollection(ctx context.Context, collectionID int) (*domain.Collection, error) {
	var collection domain.Collection
	call := response.Call{IDs: ids(collectionID)}
	if err := response.Do(ctx, m.httpAdapter, endpoints.GetCollection, call, &collection); err != nil {
		return nil, err
	}
	return &collection, nil
}

func (m *Manager) CreateCollection(ctx context.Context, payload domain.CollectionCreate) (*domain.Collection, error) {
	m.logger.InfoContext(ctx, "Creating collection", "name", payload.CollectionName)

	var collection domain.Collection
	if err := response.Do(ctx, m.httpAdapter, endpoints.CreateCollection, response.Call{Body: payload}, &collection); err != nil {
		return nil, err
	}

	m.logger.InfoContext(ctx, "Collection created", "collectionID", collection.CollectionID)
	return &collection, nil
}

// UpdateCollection sends only the fields set in payload.
func (m *Manager) UpdateCollection(
	ctx context.Context,
	collectionID int,
	payload domain.CollectionUpdate,
) (*domain.Collection, error) {
	m.logger.InfoContext(ctx, "Updating collection", "collectionID", collectionID)

	var collection domain.Collection
	call := response.Call{IDs: ids(collectionID), Body: payload}
	if err := response.Do(ctx, m.httpAdapter, endpoints.UpdateCollection, call, &collection); err != nil {
		return nil, err
	}
	return &collection, nil
}

func (m *Manager) DeleteCollection(ctx context.Context, collectionID int) (*domain.Message, error) {
	m.logger.InfoContext(ctx, "Deleting collection", "collectionID", collectionID)

	var msg domain.Message
	call := response.Call{IDs: ids(collectionID)}
	if err := response.Do(ctx, m.httpAdapter, endpoints.DeleteCollection, call, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (m *Manager) AddWorkToCollection(
	ctx context.Context,
	collectionID int,
	payload domain.WorkAssignment,
) (*domain.WorkLink, error) {
	m.logger.InfoContext(ctx, "Adding work to collection",
		"collectionID", collectionID,
		"workID", payload.WorkID)

	var link domain.WorkLink
	call := response.Call{IDs: ids(collectionID), Body: payload}
	if err := response.Do(ctx, m.httpAdapter, endpoints.AddWorkToCollection, call, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

func (m *Manager) RemoveWorkFromCollection(ctx context.Context, collectionID, workID int) (*domain.Message, error) {
	m.logger.InfoContext(ctx, "Removing work from collection",
		"collectionID", collectionID,
		"workID", workID)

	var msg domain.Message
	call := response.Call{IDs: ids(collectionID, workID)}
	if err := response.Do(ctx, m.httpAdapter, endpoints.RemoveWorkFromCollection, call, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// UpdateWorkPosition moves a work within a collection. The position travels as
// a query parameter and the request has no body.
func (m *Manager) UpdateWorkPosition(ctx context.Context, collectionID, workID, position int) (*domain.Message, error) {
	m.logger.InfoContext(ctx, "Updating work position",
		"collectionID", collectionID,
		"workID", workID,
		"position", position)

	var msg domain.Message
	call := response.Call{
		IDs:   ids(collectionID, workID),
		Query: url.Values{"position": []string{strconv.Itoa(position)}},
	}
	if err := response.Do(ctx, m.httpAdapter, endpoints.UpdateWorkPosition, call, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
