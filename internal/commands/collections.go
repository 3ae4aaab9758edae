package commands

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"tamilwords/internal/domain"
	twerrors "tamilwords/internal/errors"
)

// CollectionCommand wraps the admin collection mutations with argument checks.
type CollectionCommand struct {
	manager domain.CollectionManager
	logger  *slog.Logger
}

// NewCollectionCommand creates a new collection command.
func NewCollectionCommand(manager domain.CollectionManager, logger *slog.Logger) *CollectionCommand {
	return &CollectionCommand{
		manager: manager,
		logger:  logger,
	}
}

// Create validates and creates a collection.
func (c *CollectionCommand) Create(ctx context.Context, payload domain.CollectionCreate) (*domain.Collection, error) {
	if err := validation.ValidateStruct(&payload,
		validation.Field(&payload.CollectionName, validation.Required),
		validation.Field(&payload.ParentCollectionID, validation.By(positive)),
	); err != nil {
		return nil, validationError(err)
	}

	created, err := c.manager.CreateCollection(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}

	c.logger.InfoContext(ctx, "Created collection",
		"collectionId", created.CollectionID,
		"name", created.CollectionName)
	return created, nil
}

// Update changes the given fields of a collection. The backend replaces the
// whole record on PUT, so the current collection is fetched and the changes are
// laid over it before sending.
func (c *CollectionCommand) Update(
	ctx context.Context,
	collectionID int,
	changes domain.CollectionChanges,
) (*domain.Collection, error) {
	if collectionID < 1 {
		return nil, twerrors.NewValidationError("collection_id", fmt.Sprint(collectionID), "positive",
			"collection id must be positive")
	}
	if changes == (domain.CollectionChanges{}) {
		return nil, twerrors.NewValidationError("", "", "required", "nothing to update")
	}
	if changes.ClearParent && changes.ParentCollectionID != nil {
		return nil, twerrors.NewValidationError("parent_collection_id", fmt.Sprint(*changes.ParentCollectionID),
			"exclusive", "cannot both set and clear the parent")
	}
	if p := changes.ParentCollectionID; p != nil && *p == collectionID {
		return nil, twerrors.NewValidationError("parent_collection_id", fmt.Sprint(*p), "not_self",
			"a collection cannot be its own parent")
	}
	if err := validation.ValidateStruct(&changes,
		validation.Field(&changes.CollectionName, validation.NilOrNotEmpty),
		validation.Field(&changes.CollectionType, validation.NilOrNotEmpty),
		validation.Field(&changes.ParentCollectionID, validation.By(positive)),
	); err != nil {
		return nil, validationError(err)
	}

	current, err := c.manager.GetCollection(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load collection %d: %w", collectionID, err)
	}

	updated, err := c.manager.UpdateCollection(ctx, collectionID, changes.Apply(domain.UpdateOf(*current)))
	if err != nil {
		return nil, fmt.Errorf("failed to update collection %d: %w", collectionID, err)
	}

	c.logger.InfoContext(ctx, "Updated collection", "collectionId", collectionID)
	return updated, nil
}

// AddWork assigns a work to a collection.
func (c *CollectionCommand) AddWork(
	ctx context.Context,
	collectionID int,
	payload domain.WorkAssignment,
) (*domain.WorkLink, error) {
	if collectionID < 1 || payload.WorkID < 1 {
		return nil, twerrors.NewValidationError("", "", "positive", "collection and work ids must be positive")
	}
	if err := validation.ValidateStruct(&payload,
		validation.Field(&payload.Position, validation.By(positive)),
	); err != nil {
		return nil, validationError(err)
	}

	link, err := c.manager.AddWorkToCollection(ctx, collectionID, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to add work %d to collection %d: %w", payload.WorkID, collectionID, err)
	}

	c.logger.InfoContext(ctx, "Added work to collection",
		"collectionId", collectionID,
		"workId", payload.WorkID)
	return link, nil
}

// MoveWork sets a work's position within a collection.
func (c *CollectionCommand) MoveWork(ctx context.Context, collectionID, workID, position int) (*domain.Message, error) {
	if collectionID < 1 || workID < 1 {
		return nil, twerrors.NewValidationError("", "", "positive", "collection and work ids must be positive")
	}
	if position < 1 {
		return nil, twerrors.NewValidationError("position", fmt.Sprint(position), "positive",
			"position must be at least 1")
	}

	msg, err := c.manager.UpdateWorkPosition(ctx, collectionID, workID, position)
	if err != nil {
		return nil, fmt.Errorf("failed to move work %d in collection %d: %w", workID, collectionID, err)
	}

	c.logger.InfoContext(ctx, "Moved work",
		"collectionId", collectionID,
		"workId", workID,
		"position", position)
	return msg, nil
}
