// Package httpapi exposes the calendar service over a JSON REST API.
// Routing is chi based; every route except /login requires a bearer token.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"teamcal/internal/logging"
	"teamcal/internal/server/auth"
	"teamcal/internal/server/models"
)

// UserService is the account surface the handlers need.
type UserService interface {
	Login(ctx context.Context, id, rawPassword string) (string, error)
	CreateUser(ctx context.Context, claims *auth.Claims, id, displayName, rawPassword, color string, isAdmin bool) (*models.User, error)
	List(ctx context.Context, claims *auth.Claims) ([]models.User, error)
	SetRole(ctx context.Context, claims *auth.Claims, targetID string, isAdmin bool) error
	Delete(ctx context.Context, claims *auth.Claims, targetID string) error
}

// EventService is the calendar event surface the handlers need.
type EventService interface {
	List(ctx context.Context, claims *auth.Claims) ([]models.Event, error)
	Create(ctx context.Context, claims *auth.Claims, e *models.Event) (*models.Event, error)
	Update(ctx context.Context, claims *auth.Claims, id string, e *models.Event) (*models.Event, error)
	Delete(ctx context.Context, claims *auth.Claims, id string) error
}

// HolidayService is the holiday surface the handlers need.
type HolidayService interface {
	List(ctx context.Context, claims *auth.Claims) ([]models.Holiday, error)
	Create(ctx context.Context, claims *auth.Claims, name, date string) (*models.Holiday, error)
	Delete(ctx context.Context, claims *auth.Claims, id string) error
}

type Server struct {
	address   string
	logger    logging.Logger
	users     UserService
	events    EventService
	holidays  HolidayService
	jwtSecret []byte
}

func NewServer(a string, l logging.Logger, us UserService, es EventService, hs HolidayService, secretKey string) *Server {
	return &Server{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		events:    es,
		holidays:  hs,
		jwtSecret: []byte(secretKey),
	}
}

// Router assembles the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Post("/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.authenticate)

		r.Get("/users", s.handleListUsers)
		r.Post("/users", s.handleCreateUser)
		r.Put("/users/{userID}/role", s.handleSetRole)
		r.Delete("/users/{userID}", s.handleDeleteUser)

		r.Get("/events", s.handleListEvents)
		r.Post("/events", s.handleCreateEvent)
		r.Put("/events/{eventID}", s.handleUpdateEvent)
		r.Delete("/events/{eventID}", s.handleDeleteEvent)

		r.Get("/holidays", s.handleListHolidays)
		r.Post("/holidays", s.handleCreateHoliday)
		r.Delete("/holidays/{holidayID}", s.handleDeleteHoliday)
	})

	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
