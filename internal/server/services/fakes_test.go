package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"teamcal/internal/dbx"
	"teamcal/internal/server/auth"
	"teamcal/internal/server/models"
	eventsrepo "teamcal/internal/server/repositories/events"
	holidaysrepo "teamcal/internal/server/repositories/holidays"
	usersrepo "teamcal/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func memberClaims(id string) *auth.Claims {
	return &auth.Claims{UserID: id, Role: models.RoleMember.String()}
}

func adminClaims(id string) *auth.Claims {
	return &auth.Claims{UserID: id, Role: models.RoleAdmin.String()}
}

func superClaims(id string) *auth.Claims {
	return &auth.Claims{UserID: id, Role: models.RoleSuperUser.String()}
}

// --- fakes ---

type fakeUsersRepo struct {
	createOut *models.User
	createErr error
	createGot *models.User

	getOut *models.User
	getErr error

	listOut []models.User
	listErr error

	setRoleGotID   string
	setRoleGotRole models.Role
	setRoleErr     error

	deleteGotID string
	deleteErr   error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.createGot = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return u, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) List(ctx context.Context) ([]models.User, error) {
	return f.listOut, f.listErr
}

func (f *fakeUsersRepo) SetRole(ctx context.Context, id string, role models.Role) error {
	f.setRoleGotID = id
	f.setRoleGotRole = role
	return f.setRoleErr
}

func (f *fakeUsersRepo) Delete(ctx context.Context, id string) error {
	f.deleteGotID = id
	return f.deleteErr
}

type fakeEventsRepo struct {
	createErr error
	createGot *models.Event

	getOut *models.Event
	getErr error

	listOut []models.Event
	listErr error

	updateGot *models.Event
	updateErr error

	deleteGotID string
	deleteErr   error

	deleteByCreatorGot string
	deleteByCreatorN   int64
	deleteByCreatorErr error
}

func (f *fakeEventsRepo) Create(ctx context.Context, e *models.Event) (*models.Event, error) {
	f.createGot = e
	if f.createErr != nil {
		return nil, f.createErr
	}
	return e, nil
}

func (f *fakeEventsRepo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeEventsRepo) List(ctx context.Context) ([]models.Event, error) {
	return f.listOut, f.listErr
}

func (f *fakeEventsRepo) Update(ctx context.Context, e *models.Event) error {
	f.updateGot = e
	return f.updateErr
}

func (f *fakeEventsRepo) Delete(ctx context.Context, id string) error {
	f.deleteGotID = id
	return f.deleteErr
}

func (f *fakeEventsRepo) DeleteByCreator(ctx context.Context, userID string) (int64, error) {
	f.deleteByCreatorGot = userID
	return f.deleteByCreatorN, f.deleteByCreatorErr
}

type fakeHolidaysRepo struct {
	createErr error
	createGot *models.Holiday

	getOut *models.Holiday
	getErr error

	listOut []models.Holiday
	listErr error

	deleteGotID string
	deleteErr   error
}

func (f *fakeHolidaysRepo) Create(ctx context.Context, h *models.Holiday) (*models.Holiday, error) {
	f.createGot = h
	if f.createErr != nil {
		return nil, f.createErr
	}
	return h, nil
}

func (f *fakeHolidaysRepo) GetByID(ctx context.Context, id string) (*models.Holiday, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeHolidaysRepo) List(ctx context.Context) ([]models.Holiday, error) {
	return f.listOut, f.listErr
}

func (f *fakeHolidaysRepo) Delete(ctx context.Context, id string) error {
	f.deleteGotID = id
	return f.deleteErr
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	e *fakeEventsRepo
	h *fakeHolidaysRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }
func (m *fakeRepoManager) Events(db dbx.DBTX) eventsrepo.Repository     { return m.e }
func (m *fakeRepoManager) Holidays(db dbx.DBTX) holidaysrepo.Repository { return m.h }
