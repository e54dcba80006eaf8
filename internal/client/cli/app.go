// Package cli is the interactive terminal client for the calendar service.
// It drives a REPL over the store, which owns the session token and the
// local SQLite mirror.
package cli

import (
	"bufio"
	"context"
	"log"
	"os"

	"teamcal/internal/client/api"
	"teamcal/internal/client/config"
	"teamcal/internal/client/store"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	store  *store.Store
	userID string
	reader *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := store.OpenDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient := api.New(c.ServerAddr)
	st := store.New(apiClient, db)

	return &App{config: c, store: st, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) isLoggedIn() bool {
	return a.store.LoggedIn()
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
