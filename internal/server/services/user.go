// Package services contains server-side business logic. This file implements
// UserService: credential verification, session token issuance, account
// management, and the user-delete cascade.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"teamcal/internal/common"
	"teamcal/internal/dbx"
	"teamcal/internal/server/auth"
	"teamcal/internal/server/config"
	"teamcal/internal/server/models"
	"teamcal/internal/server/policy"
	"teamcal/internal/server/repositories/repomanager"
)

// UserService provides account and session operations:
// - Bootstrap: seed the initial super-user on first startup
// - Login: verify credentials and mint a session token
// - CreateUser / List / SetRole / Delete: admin-gated account management
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	bootstrapPassword     string
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		bootstrapPassword:     cfg.BootstrapPassword,
	}
}

// BootstrapUserID is the id of the seeded super-user account.
const BootstrapUserID = "admin"

// Bootstrap creates the super-user account on first startup when it does
// not exist yet. The account can never be deleted or demoted afterwards.
func (s *UserService) Bootstrap(ctx context.Context) error {
	repo := s.repomanager.Users(s.db)

	_, err := repo.GetByID(ctx, BootstrapUserID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("error checking bootstrap user: %w", err)
	}

	phc, err := auth.HashPassword(s.bootstrapPassword)
	if err != nil {
		return fmt.Errorf("error hashing bootstrap password: %w", err)
	}

	_, err = repo.Create(ctx, &models.User{
		ID:           BootstrapUserID,
		DisplayName:  "Administrator",
		PasswordHash: phc,
		Color:        "#9333FF",
		Role:         models.RoleSuperUser,
	})
	if err != nil && !errors.Is(err, common.ErrDuplicateID) {
		return fmt.Errorf("error creating bootstrap user: %w", err)
	}
	return nil
}

// Login verifies the credentials and returns a signed session token. The
// error is the same whether the id is unknown or the password is wrong, and
// the unknown-id path still burns a hash verification so timing does not
// leak account existence.
func (s *UserService) Login(ctx context.Context, id, rawPassword string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			auth.VerifyDummy(rawPassword)
			return "", common.ErrInvalidCredentials
		}
		return "", common.ErrInternal
	}

	if !auth.VerifyPassword(user.PasswordHash, rawPassword) {
		return "", common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrInternal
	}
	return token, nil
}

// CreateUser creates an account. Only admins may create users; new accounts
// are never super-users regardless of the requested flags.
func (s *UserService) CreateUser(ctx context.Context, claims *auth.Claims, id, displayName, rawPassword, color string, isAdmin bool) (*models.User, error) {
	if err := policy.Check(claims, policy.ActionCreateUser, policy.Target{}); err != nil {
		return nil, err
	}

	if strings.TrimSpace(id) == "" || strings.TrimSpace(displayName) == "" || rawPassword == "" {
		return nil, fmt.Errorf("%w: id, displayName and password are required", common.ErrValidation)
	}

	phc, err := auth.HashPassword(rawPassword)
	if err != nil {
		return nil, common.ErrInternal
	}

	role := models.RoleMember
	if isAdmin {
		role = models.RoleAdmin
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Create(ctx, &models.User{
		ID:           id,
		DisplayName:  displayName,
		PasswordHash: phc,
		Color:        color,
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateID) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return user, nil
}

// List returns all users; any authenticated caller may read the roster.
// Password hashes are excluded by the repository projection.
func (s *UserService) List(ctx context.Context, claims *auth.Claims) ([]models.User, error) {
	if err := policy.Check(claims, policy.ActionReadUsers, policy.Target{}); err != nil {
		return nil, err
	}
	return s.repomanager.Users(s.db).List(ctx)
}

// SetRole grants or revokes admin rights on the target account. Existence
// is checked before the policy decision so a missing target reports
// not-found rather than leaking through the super-user rules.
func (s *UserService) SetRole(ctx context.Context, claims *auth.Claims, targetID string, isAdmin bool) error {
	repo := s.repomanager.Users(s.db)

	target, err := repo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}

	if err := policy.Check(claims, policy.ActionSetRole, policy.Target{UserID: target.ID, UserRole: target.Role}); err != nil {
		return err
	}

	role := models.RoleMember
	if isAdmin {
		role = models.RoleAdmin
	}
	return repo.SetRole(ctx, targetID, role)
}

// Delete removes the target account and, in the same transaction, every
// event it owns. Either both deletions happen or neither does; a partial
// cascade would leave events referencing a missing user.
func (s *UserService) Delete(ctx context.Context, claims *auth.Claims, targetID string) error {
	repo := s.repomanager.Users(s.db)

	target, err := repo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}

	if err := policy.Check(claims, policy.ActionDeleteUser, policy.Target{UserID: target.ID, UserRole: target.Role}); err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Events(tx).DeleteByCreator(ctx, targetID); err != nil {
			return fmt.Errorf("error cascading event delete: %w", err)
		}
		if err := s.repomanager.Users(tx).Delete(ctx, targetID); err != nil {
			return fmt.Errorf("error deleting user: %w", err)
		}
		return nil
	})
}
