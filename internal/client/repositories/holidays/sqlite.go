package holidays

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

// ReplaceAll wipes the table and inserts the snapshot.
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, holidays []models.Holiday) error {
	if _, err := r.db.ExecContext(ctx, `delete from holidays`); err != nil {
		return fmt.Errorf("failed to clear holidays: %w", err)
	}
	for i := range holidays {
		if err := r.CreateOrUpdate(ctx, &holidays[i]); err != nil {
			return err
		}
	}
	return nil
}

// CreateOrUpdate upserts a holiday by id.
func (r *SQLiteRepository) CreateOrUpdate(ctx context.Context, h *models.Holiday) error {
	query := ` INSERT INTO holidays (id, name, date)
			values (?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET name = excluded.name,
				date = excluded.date
	`
	_, err := r.db.ExecContext(ctx, query, h.ID, h.Name, h.Date)
	if err != nil {
		return fmt.Errorf("failed to upsert holiday: %w", err)
	}
	return nil
}

// GetAll lists all mirrored holidays ordered by date.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Holiday, error) {
	query := `select id, name, date from holidays order by date`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select holidays: %w", err)
	}
	defer rows.Close()

	var result []models.Holiday
	for rows.Next() {
		var item models.Holiday
		if err := rows.Scan(&item.ID, &item.Name, &item.Date); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteByID removes a mirrored holiday.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `delete from holidays where id=?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}

// DeleteAll wipes the mirror.
func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `delete from holidays`)
	if err != nil {
		return fmt.Errorf("failed to clear holidays: %w", err)
	}
	return nil
}
