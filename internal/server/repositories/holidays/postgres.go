package holidays

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

func (r *PostgresRepository) Create(ctx context.Context, holiday *models.Holiday) (*models.Holiday, error) {

	query :=
		`INSERT INTO holidays (id, name, date)
         VALUES ($1, $2, $3)
		 `

	_, err := r.db.ExecContext(ctx, query, holiday.ID, holiday.Name, holiday.Date)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return holiday, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Holiday, error) {
	query :=
		`SELECT id, name, date FROM holidays
		 WHERE id = $1
		 `

	h := &models.Holiday{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&h.ID, &h.Name, &h.Date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return h, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Holiday, error) {
	query :=
		`SELECT id, name, date FROM holidays
		 ORDER BY date
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Holiday
	for rows.Next() {
		var h models.Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.Date); err != nil {
			return nil, err
		}
		result = append(result, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM holidays WHERE id = $1`, id)
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
