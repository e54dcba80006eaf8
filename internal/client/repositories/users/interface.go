package users

import (
	"context"

	"teamcal/internal/client/models"
)

// Repository describes the local mirror of the user roster.
type Repository interface {
	// ReplaceAll swaps the mirrored roster for the given snapshot.
	ReplaceAll(ctx context.Context, users []models.User) error

	// GetAll returns all mirrored users.
	GetAll(ctx context.Context) ([]models.User, error)

	// CreateOrUpdate upserts a single user by id.
	CreateOrUpdate(ctx context.Context, user *models.User) error

	// SetAdmin flips the admin flag on a mirrored user.
	SetAdmin(ctx context.Context, id string, isAdmin bool) error

	// DeleteByID removes a mirrored user.
	DeleteByID(ctx context.Context, id string) error

	// DeleteAll wipes the mirror.
	DeleteAll(ctx context.Context) error
}
