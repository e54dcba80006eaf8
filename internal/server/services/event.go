package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"teamcal/internal/common"
	"teamcal/internal/server/auth"
	"teamcal/internal/server/models"
	"teamcal/internal/server/policy"
	"teamcal/internal/server/repositories/repomanager"
)

// EventService provides calendar event operations. Ownership rules are
// enforced here: mutations first resolve the stored event so a missing id
// reports not-found before any ownership decision is made.
type EventService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewEventService(db *sql.DB, m repomanager.RepositoryManager) *EventService {
	return &EventService{db: db, repomanager: m}
}

func validateEvent(e *models.Event) error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("%w: title is required", common.ErrValidation)
	}
	if e.Start.IsZero() || e.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", common.ErrValidation)
	}
	// Start and end are stored as submitted; their ordering is the
	// caller's business.
	return nil
}

// List returns all events for any authenticated caller.
func (s *EventService) List(ctx context.Context, claims *auth.Claims) ([]models.Event, error) {
	if err := policy.Check(claims, policy.ActionReadEvents, policy.Target{}); err != nil {
		return nil, err
	}
	return s.repomanager.Events(s.db).List(ctx)
}

// Create stores a new event. The id is generated server-side and the owner
// is always the caller, whatever the submitted payload claims.
func (s *EventService) Create(ctx context.Context, claims *auth.Claims, e *models.Event) (*models.Event, error) {
	if err := policy.Check(claims, policy.ActionCreateEvent, policy.Target{}); err != nil {
		return nil, err
	}
	if err := validateEvent(e); err != nil {
		return nil, err
	}

	e.ID = uuid.NewString()
	e.CreatedBy = claims.UserID

	created, err := s.repomanager.Events(s.db).Create(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("error creating event: %w", err)
	}
	return created, nil
}

// Update replaces the stored event fields. Only the owner or an admin may
// update, and the owner recorded at creation never changes.
func (s *EventService) Update(ctx context.Context, claims *auth.Claims, id string, e *models.Event) (*models.Event, error) {
	repo := s.repomanager.Events(s.db)

	existing, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Check(claims, policy.ActionUpdateEvent, policy.Target{EventOwner: existing.CreatedBy}); err != nil {
		return nil, err
	}
	if err := validateEvent(e); err != nil {
		return nil, err
	}

	e.ID = id
	e.CreatedBy = existing.CreatedBy

	if err := repo.Update(ctx, e); err != nil {
		return nil, fmt.Errorf("error updating event: %w", err)
	}
	return e, nil
}

// Delete removes an event, subject to the same owner-or-admin rule.
func (s *EventService) Delete(ctx context.Context, claims *auth.Claims, id string) error {
	repo := s.repomanager.Events(s.db)

	existing, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := policy.Check(claims, policy.ActionDeleteEvent, policy.Target{EventOwner: existing.CreatedBy}); err != nil {
		return err
	}
	return repo.Delete(ctx, id)
}
