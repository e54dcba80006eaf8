package users

import (
	"context"

	"teamcal/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	SetRole(ctx context.Context, id string, role models.Role) error
	Delete(ctx context.Context, id string) error
}
