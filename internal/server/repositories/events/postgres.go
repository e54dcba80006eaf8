package events

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"teamcal/internal/common"
	"teamcal/internal/dbx"
	"teamcal/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, event *models.Event) (*models.Event, error) {

	query :=
		`INSERT INTO events (id, title, description, start_at, end_at, created_by, color)
         VALUES ($1, $2, $3, $4, $5, $6, $7)
		 `

	_, err := r.db.ExecContext(ctx, query,
		event.ID, event.Title, event.Description, event.Start, event.End, event.CreatedBy, event.Color)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return event, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	query :=
		`SELECT id, title, description, start_at, end_at, created_by, color FROM events
		 WHERE id = $1
		 `

	e := &models.Event{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&e.ID, &e.Title, &e.Description, &e.Start, &e.End, &e.CreatedBy, &e.Color)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return e, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Event, error) {
	query :=
		`SELECT id, title, description, start_at, end_at, created_by, color FROM events
		 ORDER BY start_at
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Start, &e.End, &e.CreatedBy, &e.Color); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update rewrites the mutable columns. created_by is immutable and is
// deliberately absent from the SET list.
func (r *PostgresRepository) Update(ctx context.Context, event *models.Event) error {
	query :=
		`UPDATE events SET title = $2, description = $3, start_at = $4, end_at = $5, color = $6
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		event.ID, event.Title, event.Description, event.Start, event.End, event.Color)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if ra == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if ra == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteByCreator(ctx context.Context, userID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE created_by = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return ra, nil
}
