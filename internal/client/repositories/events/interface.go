package events

import (
	"context"

	"teamcal/internal/client/models"
)

// Repository describes the local mirror of calendar events.
type Repository interface {
	// ReplaceAll swaps the mirrored events for the given snapshot.
	ReplaceAll(ctx context.Context, events []models.Event) error

	// GetAll returns all mirrored events ordered by start time.
	GetAll(ctx context.Context) ([]models.Event, error)

	// CreateOrUpdate upserts a single event by id.
	CreateOrUpdate(ctx context.Context, event *models.Event) error

	// DeleteByID removes a mirrored event.
	DeleteByID(ctx context.Context, id string) error

	// DeleteByCreator removes every mirrored event owned by the given user.
	// Applied locally when a user delete cascades on the server.
	DeleteByCreator(ctx context.Context, userID string) error

	// DeleteAll wipes the mirror.
	DeleteAll(ctx context.Context) error
}
