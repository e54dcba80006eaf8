package events

import (
	"context"

	"teamcal/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, event *models.Event) (*models.Event, error)
	GetByID(ctx context.Context, id string) (*models.Event, error)
	List(ctx context.Context) ([]models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id string) error
	// DeleteByCreator removes every event owned by the given user and
	// returns how many were removed. Used inside the user-delete cascade.
	DeleteByCreator(ctx context.Context, userID string) (int64, error)
}
