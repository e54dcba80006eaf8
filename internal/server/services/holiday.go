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

// HolidayService manages the recurring holiday list. Dates are normalized
// to the placeholder year on write so matching ignores the submitted year.
type HolidayService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewHolidayService(db *sql.DB, m repomanager.RepositoryManager) *HolidayService {
	return &HolidayService{db: db, repomanager: m}
}

// List returns all holidays for any authenticated caller.
func (s *HolidayService) List(ctx context.Context, claims *auth.Claims) ([]models.Holiday, error) {
	if err := policy.Check(claims, policy.ActionReadHolidays, policy.Target{}); err != nil {
		return nil, err
	}
	return s.repomanager.Holidays(s.db).List(ctx)
}

// Create stores a new holiday. Admin-only; the date is normalized to the
// placeholder year before storage.
func (s *HolidayService) Create(ctx context.Context, claims *auth.Claims, name, date string) (*models.Holiday, error) {
	if err := policy.Check(claims, policy.ActionCreateHoliday, policy.Target{}); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrValidation)
	}

	normalized, err := models.NormalizeHolidayDate(date)
	if err != nil {
		return nil, err
	}

	h := &models.Holiday{
		ID:   uuid.NewString(),
		Name: name,
		Date: normalized,
	}
	created, err := s.repomanager.Holidays(s.db).Create(ctx, h)
	if err != nil {
		return nil, fmt.Errorf("error creating holiday: %w", err)
	}
	return created, nil
}

// Delete removes a holiday. Admin-only; a missing id reports not-found
// before the policy decision, as with the other resources.
func (s *HolidayService) Delete(ctx context.Context, claims *auth.Claims, id string) error {
	repo := s.repomanager.Holidays(s.db)

	if _, err := repo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := policy.Check(claims, policy.ActionDeleteHoliday, policy.Target{}); err != nil {
		return err
	}
	return repo.Delete(ctx, id)
}
