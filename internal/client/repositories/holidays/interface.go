package holidays

import (
	"context"

	"teamcal/internal/client/models"
)

// Repository describes the local mirror of the holiday list.
type Repository interface {
	// ReplaceAll swaps the mirrored holidays for the given snapshot.
	ReplaceAll(ctx context.Context, holidays []models.Holiday) error

	// GetAll returns all mirrored holidays ordered by date.
	GetAll(ctx context.Context) ([]models.Holiday, error)

	// CreateOrUpdate upserts a single holiday by id.
	CreateOrUpdate(ctx context.Context, holiday *models.Holiday) error

	// DeleteByID removes a mirrored holiday.
	DeleteByID(ctx context.Context, id string) error

	// DeleteAll wipes the mirror.
	DeleteAll(ctx context.Context) error
}
