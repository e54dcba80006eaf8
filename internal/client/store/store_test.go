package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamcal/internal/client/api"
	"teamcal/internal/client/models"
	"teamcal/internal/common"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  id TEXT PRIMARY KEY,
  display_name TEXT NOT NULL,
  color TEXT NOT NULL DEFAULT '',
  is_admin INTEGER NOT NULL DEFAULT 0,
  is_super_user INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE events (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  start_at TEXT NOT NULL,
  end_at TEXT NOT NULL,
  created_by TEXT NOT NULL,
  color TEXT NOT NULL DEFAULT ''
);
CREATE TABLE holidays (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  date TEXT NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

// fakeClient scripts server responses and records calls.
type fakeClient struct {
	token string

	loginToken string
	loginErr   error

	usersOut    []models.User
	eventsOut   []models.Event
	holidaysOut []models.Holiday
	listErr     error

	createEventOut *models.Event
	createEventErr error
	createEventN   int

	updateEventOut *models.Event
	updateEventErr error

	deleteEventErr error

	createUserOut *models.User
	createUserErr error

	setRoleErr error

	deleteUserErr error

	createHolidayOut *models.Holiday
	createHolidayErr error

	deleteHolidayErr error
}

func (f *fakeClient) SetToken(token string) { f.token = token }
func (f *fakeClient) Token() string         { return f.token }

func (f *fakeClient) Login(ctx context.Context, id, password string) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.loginToken, nil
}

func (f *fakeClient) ListUsers(ctx context.Context) ([]models.User, error) {
	return f.usersOut, f.listErr
}

func (f *fakeClient) CreateUser(ctx context.Context, req api.CreateUserRequest) (*models.User, error) {
	if f.createUserErr != nil {
		return nil, f.createUserErr
	}
	return f.createUserOut, nil
}

func (f *fakeClient) SetRole(ctx context.Context, userID string, isAdmin bool) error {
	return f.setRoleErr
}

func (f *fakeClient) DeleteUser(ctx context.Context, userID string) error {
	return f.deleteUserErr
}

func (f *fakeClient) ListEvents(ctx context.Context) ([]models.Event, error) {
	return f.eventsOut, f.listErr
}

func (f *fakeClient) CreateEvent(ctx context.Context, req api.EventRequest) (*models.Event, error) {
	f.createEventN++
	if f.createEventErr != nil {
		return nil, f.createEventErr
	}
	return f.createEventOut, nil
}

func (f *fakeClient) UpdateEvent(ctx context.Context, eventID string, req api.EventRequest) (*models.Event, error) {
	if f.updateEventErr != nil {
		return nil, f.updateEventErr
	}
	return f.updateEventOut, nil
}

func (f *fakeClient) DeleteEvent(ctx context.Context, eventID string) error {
	return f.deleteEventErr
}

func (f *fakeClient) ListHolidays(ctx context.Context) ([]models.Holiday, error) {
	return f.holidaysOut, f.listErr
}

func (f *fakeClient) CreateHoliday(ctx context.Context, name, date string) (*models.Holiday, error) {
	if f.createHolidayErr != nil {
		return nil, f.createHolidayErr
	}
	return f.createHolidayOut, nil
}

func (f *fakeClient) DeleteHoliday(ctx context.Context, holidayID string) error {
	return f.deleteHolidayErr
}

func snapshotClient() *fakeClient {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	return &fakeClient{
		loginToken: "tok-1",
		usersOut: []models.User{
			{ID: "admin", DisplayName: "Administrator", IsAdmin: true, IsSuperUser: true},
			{ID: "alice", DisplayName: "Alice"},
		},
		eventsOut: []models.Event{
			{ID: "e1", Title: "standup", Start: start, End: start.Add(time.Hour), CreatedBy: "alice"},
		},
		holidaysOut: []models.Holiday{
			{ID: "h1", Name: "New Year", Date: "2000-01-01"},
		},
	}
}

func TestLogin_InstallsTokenAndFillsMirror(t *testing.T) {
	db := setupDB(t)
	c := snapshotClient()
	s := New(c, db)
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, "alice", "pw"))

	assert.True(t, s.LoggedIn())
	assert.Equal(t, "tok-1", c.Token())

	users, err := s.Users(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	events, err := s.Events(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 1)

	holidays, err := s.Holidays(ctx)
	require.NoError(t, err)
	assert.Len(t, holidays, 1)
}

func TestLogin_FailedAuthLeavesNoToken(t *testing.T) {
	db := setupDB(t)
	c := &fakeClient{loginErr: common.ErrInvalidCredentials}
	s := New(c, db)

	err := s.Login(context.Background(), "alice", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.False(t, s.LoggedIn())
}

func TestRefresh_ReplacesStaleMirror(t *testing.T) {
	db := setupDB(t)
	c := snapshotClient()
	s := New(c, db)
	ctx := context.Background()

	require.NoError(t, s.Refresh(ctx))

	// Server state changes; the next refresh must replace, not merge.
	c.usersOut = []models.User{{ID: "bob", DisplayName: "Bob"}}
	c.eventsOut = nil
	c.holidaysOut = nil

	require.NoError(t, s.Refresh(ctx))

	users, err := s.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "bob", users[0].ID)

	events, err := s.Events(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestRefresh_FetchErrorKeepsMirror(t *testing.T) {
	db := setupDB(t)
	c := snapshotClient()
	s := New(c, db)
	ctx := context.Background()

	require.NoError(t, s.Refresh(ctx))

	c.listErr = errors.New("server down")
	require.Error(t, s.Refresh(ctx))

	// Old snapshot still readable.
	users, err := s.Users(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestLogout_InvalidatesMirror(t *testing.T) {
	db := setupDB(t)
	c := snapshotClient()
	s := New(c, db)
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, "alice", "pw"))
	require.NoError(t, s.Logout(ctx))

	assert.False(t, s.LoggedIn())

	users, err := s.Users(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	events, err := s.Events(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestCreateEvent_MirrorsServerResult(t *testing.T) {
	db := setupDB(t)
	start := time.Date(2026, 9, 2, 14, 0, 0, 0, time.UTC)
	c := &fakeClient{createEventOut: &models.Event{
		ID: "e9", Title: "retro", Start: start, End: start.Add(time.Hour), CreatedBy: "alice",
	}}
	s := New(c, db)
	ctx := context.Background()

	created, err := s.CreateEvent(ctx, api.EventRequest{Title: "retro", Start: start, End: start.Add(time.Hour)})
	require.NoError(t, err)
	assert.Equal(t, "e9", created.ID)

	events, err := s.Events(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "e9", events[0].ID)
	assert.Equal(t, "alice", events[0].CreatedBy)
}

func TestCreateEvent_FailureIsNotRetriedAndNotMirrored(t *testing.T) {
	db := setupDB(t)
	c := &fakeClient{createEventErr: common.ErrForbidden}
	s := New(c, db)
	ctx := context.Background()

	_, err := s.CreateEvent(ctx, api.EventRequest{Title: "x"})
	require.ErrorIs(t, err, common.ErrForbidden)
	assert.Equal(t, 1, c.createEventN, "a failed mutation must not be retried")

	events, err := s.Events(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestDeleteUser_CascadesLocally(t *testing.T) {
	db := setupDB(t)
	c := snapshotClient()
	s := New(c, db)
	ctx := context.Background()

	require.NoError(t, s.Refresh(ctx))
	require.NoError(t, s.DeleteUser(ctx, "alice"))

	users, err := s.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "admin", users[0].ID)

	// alice's event went with her
	events, err := s.Events(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestDeleteUser_ServerRefusalLeavesMirror(t *testing.T) {
	db := setupDB(t)
	c := snapshotClient()
	s := New(c, db)
	ctx := context.Background()

	require.NoError(t, s.Refresh(ctx))

	c.deleteUserErr = common.ErrProtectedSuperUser
	require.ErrorIs(t, s.DeleteUser(ctx, "admin"), common.ErrProtectedSuperUser)

	users, err := s.Users(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestSetAdmin_MirrorsFlag(t *testing.T) {
	db := setupDB(t)
	c := snapshotClient()
	s := New(c, db)
	ctx := context.Background()

	require.NoError(t, s.Refresh(ctx))
	require.NoError(t, s.SetAdmin(ctx, "alice", true))

	users, err := s.Users(ctx)
	require.NoError(t, err)
	for _, u := range users {
		if u.ID == "alice" {
			assert.True(t, u.IsAdmin)
		}
	}
}

func TestHolidayMutations(t *testing.T) {
	db := setupDB(t)
	c := snapshotClient()
	c.createHolidayOut = &models.Holiday{ID: "h2", Name: "Labor Day", Date: "2000-09-07"}
	s := New(c, db)
	ctx := context.Background()

	require.NoError(t, s.Refresh(ctx))

	created, err := s.CreateHoliday(ctx, "Labor Day", "2026-09-07")
	require.NoError(t, err)
	assert.Equal(t, "h2", created.ID)

	holidays, err := s.Holidays(ctx)
	require.NoError(t, err)
	assert.Len(t, holidays, 2)

	require.NoError(t, s.DeleteHoliday(ctx, "h1"))
	holidays, err = s.Holidays(ctx)
	require.NoError(t, err)
	require.Len(t, holidays, 1)
	assert.Equal(t, "h2", holidays[0].ID)
}
