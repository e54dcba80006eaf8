package holidays

import (
	"context"

	"teamcal/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, holiday *models.Holiday) (*models.Holiday, error)
	GetByID(ctx context.Context, id string) (*models.Holiday, error)
	List(ctx context.Context) ([]models.Holiday, error)
	Delete(ctx context.Context, id string) error
}
