package users

import (
	"context"
	"fmt"

	"teamcal/internal/client/models"
	"teamcal/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// ReplaceAll wipes the table and inserts the snapshot. Callers run it
// inside a transaction so readers never see a half-replaced roster.
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, users []models.User) error {
	if _, err := r.db.ExecContext(ctx, `delete from users`); err != nil {
		return fmt.Errorf("failed to clear users: %w", err)
	}
	for i := range users {
		if err := r.CreateOrUpdate(ctx, &users[i]); err != nil {
			return err
		}
	}
	return nil
}

// CreateOrUpdate upserts a user by id.
func (r *SQLiteRepository) CreateOrUpdate(ctx context.Context, u *models.User) error {
	query := ` INSERT INTO users (id, display_name, color, is_admin, is_super_user)
			values (?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET display_name = excluded.display_name,
				color = excluded.color,
				is_admin = excluded.is_admin,
				is_super_user = excluded.is_super_user
	`
	_, err := r.db.ExecContext(ctx, query,
		u.ID, u.DisplayName, u.Color, u.IsAdmin, u.IsSuperUser)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

// GetAll lists all mirrored users ordered by id.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.User, error) {
	query := `select id, display_name, color, is_admin, is_super_user from users order by id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	defer rows.Close()

	var result []models.User
	for rows.Next() {
		var item models.User
		if err := rows.Scan(&item.ID, &item.DisplayName, &item.Color, &item.IsAdmin, &item.IsSuperUser); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// SetAdmin flips the admin flag on a mirrored user.
func (r *SQLiteRepository) SetAdmin(ctx context.Context, id string, isAdmin bool) error {
	_, err := r.db.ExecContext(ctx, `update users set is_admin=? where id=?`, isAdmin, id)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// DeleteByID removes a mirrored user.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `delete from users where id=?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// DeleteAll wipes the mirror.
func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `delete from users`)
	if err != nil {
		return fmt.Errorf("failed to clear users: %w", err)
	}
	return nil
}
