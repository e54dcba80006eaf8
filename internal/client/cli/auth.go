package cli

import (
	"context"
	"fmt"
	"os"

	"teamcal/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. On success the store
// holds the session token and a fresh mirror of the server data. The
// password byte slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userID, err := getSimpleText(a.reader, "Enter user id", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.store.Login(ctx, userID, string(password)); err != nil {
		return err
	}

	a.userID = userID
	fmt.Println("Logged in.")
	return nil
}

// Logout drops the session and the mirrored data.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Logout(ctx); err != nil {
		return err
	}
	a.userID = ""
	fmt.Println("Logged out.")
	return nil
}

// Refresh re-pulls everything from the server.
func (a *App) Refresh(ctx context.Context) error {
	return a.store.Refresh(ctx)
}
