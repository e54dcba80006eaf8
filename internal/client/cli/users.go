package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"teamcal/internal/client/api"
	"teamcal/internal/common"
)

func roleLabel(isAdmin, isSuperUser bool) string {
	switch {
	case isSuperUser:
		return "superuser"
	case isAdmin:
		return "admin"
	default:
		return "member"
	}
}

// ListUsers prints the mirrored roster.
func (a *App) ListUsers(ctx context.Context) error {
	users, err := a.store.Users(ctx)
	if err != nil {
		return err
	}

	for _, u := range users {
		fmt.Printf("%-15s %-25s %-10s %s\n", u.ID, u.DisplayName, roleLabel(u.IsAdmin, u.IsSuperUser), u.Color)
	}
	return nil
}

// AddUser prompts for account fields and submits a create. Admin only on
// the server side; the error comes back if the caller lacks rights.
func (a *App) AddUser(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter user id", os.Stdout)
	if err != nil {
		return err
	}

	displayName, err := getSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	color, err := getSimpleText(a.reader, "Enter color (e.g. #336699)", os.Stdout)
	if err != nil {
		return err
	}

	isAdminText, err := getSimpleText(a.reader, "Admin? (y/n)", os.Stdout)
	if err != nil {
		return err
	}
	isAdmin := strings.EqualFold(isAdminText, "y")

	created, err := a.store.CreateUser(ctx, api.CreateUserRequest{
		ID:          id,
		DisplayName: displayName,
		Password:    string(password),
		Color:       color,
		IsAdmin:     isAdmin,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created user %s (%s)\n", created.ID, roleLabel(created.IsAdmin, created.IsSuperUser))
	return nil
}

// GrantAdmin promotes the target to admin.
func (a *App) GrantAdmin(ctx context.Context, targetID string) error {
	if err := a.store.SetAdmin(ctx, targetID, true); err != nil {
		return err
	}
	fmt.Printf("Granted admin to %s\n", targetID)
	return nil
}

// RevokeAdmin demotes the target to member.
func (a *App) RevokeAdmin(ctx context.Context, targetID string) error {
	if err := a.store.SetAdmin(ctx, targetID, false); err != nil {
		return err
	}
	fmt.Printf("Revoked admin from %s\n", targetID)
	return nil
}

// DeleteUser removes the target account and all their events.
func (a *App) DeleteUser(ctx context.Context, targetID string) error {
	if err := a.store.DeleteUser(ctx, targetID); err != nil {
		return err
	}
	fmt.Printf("Deleted user %s and their events\n", targetID)
	return nil
}
