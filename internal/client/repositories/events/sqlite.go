package events

import (
	"context"
	"fmt"
	"time"

	"teamcal/internal/client/models"
	"teamcal/internal/dbx"
)

// Timestamps are stored as RFC 3339 text so lexicographic order matches
// chronological order.
const timeFormat = time.RFC3339Nano

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// ReplaceAll wipes the table and inserts the snapshot. Callers run it
// inside a transaction so readers never see a half-replaced calendar.
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, events []models.Event) error {
	if _, err := r.db.ExecContext(ctx, `delete from events`); err != nil {
		return fmt.Errorf("failed to clear events: %w", err)
	}
	for i := range events {
		if err := r.CreateOrUpdate(ctx, &events[i]); err != nil {
			return err
		}
	}
	return nil
}

// CreateOrUpdate upserts an event by id.
func (r *SQLiteRepository) CreateOrUpdate(ctx context.Context, e *models.Event) error {
	query := ` INSERT INTO events (id, title, description, start_at, end_at, created_by, color)
			values (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET title = excluded.title,
				description = excluded.description,
				start_at = excluded.start_at,
				end_at = excluded.end_at,
				created_by = excluded.created_by,
				color = excluded.color
	`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.Title, e.Description,
		e.Start.UTC().Format(timeFormat), e.End.UTC().Format(timeFormat),
		e.CreatedBy, e.Color)
	if err != nil {
		return fmt.Errorf("failed to upsert event: %w", err)
	}
	return nil
}

// GetAll lists all mirrored events ordered by start time.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Event, error) {
	query := `select id, title, description, start_at, end_at, created_by, color from events order by start_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select events: %w", err)
	}
	defer rows.Close()

	var result []models.Event
	for rows.Next() {
		var item models.Event
		var start, end string
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &start, &end, &item.CreatedBy, &item.Color); err != nil {
			return nil, err
		}
		if item.Start, err = time.Parse(timeFormat, start); err != nil {
			return nil, fmt.Errorf("failed to parse start time: %w", err)
		}
		if item.End, err = time.Parse(timeFormat, end); err != nil {
			return nil, fmt.Errorf("failed to parse end time: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteByID removes a mirrored event.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `delete from events where id=?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// DeleteByCreator removes every mirrored event owned by the given user.
func (r *SQLiteRepository) DeleteByCreator(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `delete from events where created_by=?`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete events by creator: %w", err)
	}
	return nil
}

// DeleteAll wipes the mirror.
func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `delete from events`)
	if err != nil {
		return fmt.Errorf("failed to clear events: %w", err)
	}
	return nil
}
