// Package store is the client's single source of calendar state. It owns
// the session token and a local SQLite mirror of the server data, exposed
// as an explicit repository object instead of ambient globals.
//
// Reads serve from the mirror. Mutations call the server first and apply
// the result to the mirror on success; a failed mutation changes nothing
// locally and is never retried automatically. Refresh replaces the whole
// mirror from the server; Invalidate wipes it.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"teamcal/internal/client/api"
	"teamcal/internal/client/models"
	eventsrepo "teamcal/internal/client/repositories/events"
	holidaysrepo "teamcal/internal/client/repositories/holidays"
	usersrepo "teamcal/internal/client/repositories/users"
	"teamcal/internal/dbx"
)

// Client is the server surface the store depends on. *api.Client satisfies it.
type Client interface {
	SetToken(token string)
	Token() string
	Login(ctx context.Context, id, password string) (string, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, req api.CreateUserRequest) (*models.User, error)
	SetRole(ctx context.Context, userID string, isAdmin bool) error
	DeleteUser(ctx context.Context, userID string) error

	ListEvents(ctx context.Context) ([]models.Event, error)
	CreateEvent(ctx context.Context, req api.EventRequest) (*models.Event, error)
	UpdateEvent(ctx context.Context, eventID string, req api.EventRequest) (*models.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error

	ListHolidays(ctx context.Context) ([]models.Holiday, error)
	CreateHoliday(ctx context.Context, name, date string) (*models.Holiday, error)
	DeleteHoliday(ctx context.Context, holidayID string) error
}

type Store struct {
	api Client
	db  *sql.DB
}

func New(apiClient Client, db *sql.DB) *Store {
	return &Store{api: apiClient, db: db}
}

func (s *Store) users(db dbx.DBTX) usersrepo.Repository { return usersrepo.NewSQLiteRepository(db) }

func (s *Store) events(db dbx.DBTX) eventsrepo.Repository { return eventsrepo.NewSQLiteRepository(db) }

func (s *Store) holidays(db dbx.DBTX) holidaysrepo.Repository {
	return holidaysrepo.NewSQLiteRepository(db)
}

// LoggedIn reports whether a session token is installed.
func (s *Store) LoggedIn() bool { return s.api.Token() != "" }

// Login authenticates against the server, installs the session token and
// fills the mirror with a fresh snapshot.
func (s *Store) Login(ctx context.Context, id, password string) error {
	token, err := s.api.Login(ctx, id, password)
	if err != nil {
		return err
	}
	s.api.SetToken(token)

	if err := s.Refresh(ctx); err != nil {
		return fmt.Errorf("error loading initial snapshot: %w", err)
	}
	return nil
}

// Logout drops the session token and invalidates the mirror.
func (s *Store) Logout(ctx context.Context) error {
	s.api.SetToken("")
	return s.Invalidate(ctx)
}

// Refresh pulls users, events and holidays from the server and replaces
// the mirror in one transaction, so readers switch snapshots atomically.
func (s *Store) Refresh(ctx context.Context) error {
	users, err := s.api.ListUsers(ctx)
	if err != nil {
		return err
	}
	events, err := s.api.ListEvents(ctx)
	if err != nil {
		return err
	}
	holidays, err := s.api.ListHolidays(ctx)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.users(tx).ReplaceAll(ctx, users); err != nil {
			return err
		}
		if err := s.events(tx).ReplaceAll(ctx, events); err != nil {
			return err
		}
		return s.holidays(tx).ReplaceAll(ctx, holidays)
	})
}

// Invalidate wipes the mirror wholesale. The next read after a Refresh
// sees fresh data; reads before that see nothing rather than stale state.
func (s *Store) Invalidate(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.users(tx).DeleteAll(ctx); err != nil {
			return err
		}
		if err := s.events(tx).DeleteAll(ctx); err != nil {
			return err
		}
		return s.holidays(tx).DeleteAll(ctx)
	})
}

// Users returns the mirrored roster.
func (s *Store) Users(ctx context.Context) ([]models.User, error) {
	return s.users(s.db).GetAll(ctx)
}

// Events returns the mirrored events ordered by start time.
func (s *Store) Events(ctx context.Context) ([]models.Event, error) {
	return s.events(s.db).GetAll(ctx)
}

// Holidays returns the mirrored holidays.
func (s *Store) Holidays(ctx context.Context) ([]models.Holiday, error) {
	return s.holidays(s.db).GetAll(ctx)
}

// CreateEvent submits the event and mirrors the stored result.
func (s *Store) CreateEvent(ctx context.Context, req api.EventRequest) (*models.Event, error) {
	created, err := s.api.CreateEvent(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.events(s.db).CreateOrUpdate(ctx, created); err != nil {
		return nil, fmt.Errorf("error mirroring event: %w", err)
	}
	return created, nil
}

// UpdateEvent submits the update and mirrors the stored result.
func (s *Store) UpdateEvent(ctx context.Context, eventID string, req api.EventRequest) (*models.Event, error) {
	updated, err := s.api.UpdateEvent(ctx, eventID, req)
	if err != nil {
		return nil, err
	}
	if err := s.events(s.db).CreateOrUpdate(ctx, updated); err != nil {
		return nil, fmt.Errorf("error mirroring event: %w", err)
	}
	return updated, nil
}

// DeleteEvent deletes on the server then locally.
func (s *Store) DeleteEvent(ctx context.Context, eventID string) error {
	if err := s.api.DeleteEvent(ctx, eventID); err != nil {
		return err
	}
	return s.events(s.db).DeleteByID(ctx, eventID)
}

// CreateUser creates the account and mirrors it.
func (s *Store) CreateUser(ctx context.Context, req api.CreateUserRequest) (*models.User, error) {
	created, err := s.api.CreateUser(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.users(s.db).CreateOrUpdate(ctx, created); err != nil {
		return nil, fmt.Errorf("error mirroring user: %w", err)
	}
	return created, nil
}

// SetAdmin grants or revokes admin rights and mirrors the change.
func (s *Store) SetAdmin(ctx context.Context, userID string, isAdmin bool) error {
	if err := s.api.SetRole(ctx, userID, isAdmin); err != nil {
		return err
	}
	return s.users(s.db).SetAdmin(ctx, userID, isAdmin)
}

// DeleteUser deletes the account on the server, then applies the same
// cascade to the mirror: the user and every event they own.
func (s *Store) DeleteUser(ctx context.Context, userID string) error {
	if err := s.api.DeleteUser(ctx, userID); err != nil {
		return err
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.events(tx).DeleteByCreator(ctx, userID); err != nil {
			return err
		}
		return s.users(tx).DeleteByID(ctx, userID)
	})
}

// CreateHoliday creates the holiday and mirrors it.
func (s *Store) CreateHoliday(ctx context.Context, name, date string) (*models.Holiday, error) {
	created, err := s.api.CreateHoliday(ctx, name, date)
	if err != nil {
		return nil, err
	}
	if err := s.holidays(s.db).CreateOrUpdate(ctx, created); err != nil {
		return nil, fmt.Errorf("error mirroring holiday: %w", err)
	}
	return created, nil
}

// DeleteHoliday deletes on the server then locally.
func (s *Store) DeleteHoliday(ctx context.Context, holidayID string) error {
	if err := s.api.DeleteHoliday(ctx, holidayID); err != nil {
		return err
	}
	return s.holidays(s.db).DeleteByID(ctx, holidayID)
}
