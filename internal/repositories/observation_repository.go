package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/isaqueks/tasks/internal/models"
)

// ObservationOwned is an observation joined with the user id that owns it
// through the task→company chain.
type ObservationOwned struct {
	models.Observation
	OwnerUserID string
}

type ObservationRepository interface {
	Store(ctx context.Context, obs *models.Observation) error
	// FindByID resolves the full ownership chain in one query.
	FindByID(ctx context.Context, id string) (*ObservationOwned, error)
	FindAllByTask(ctx context.Context, taskID string) ([]models.Observation, error)
	Delete(ctx context.Context, id string) error
}

type observationRepository struct {
	db *sql.DB
}

func NewObservationRepository(db *sql.DB) ObservationRepository {
	return &observationRepository{db: db}
}

func (r *observationRepository) Store(ctx context.Context, obs *models.Observation) error {
	const q = `
		INSERT INTO observations (id, content, task_id, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING created_at
	`
	if err := r.db.QueryRowContext(ctx, q, obs.ID, obs.Content, obs.TaskID).
		Scan(&obs.CreatedAt); err != nil {
		return fmt.Errorf("create observation: %w", err)
	}
	return nil
}

func (r *observationRepository) FindByID(ctx context.Context, id string) (*ObservationOwned, error) {
	const q = `
		SELECT o.id, o.content, o.task_id, o.created_at, c.user_id
		FROM observations o
		JOIN tasks t ON t.id = o.task_id
		JOIN companies c ON c.id = t.company_id
		WHERE o.id = $1
	`
	var o ObservationOwned
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&o.ID, &o.Content, &o.TaskID, &o.CreatedAt, &o.OwnerUserID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get observation: %w", err)
	}
	return &o, nil
}

func (r *observationRepository) FindAllByTask(ctx context.Context, taskID string) ([]models.Observation, error) {
	const q = `
		SELECT id, content, task_id, created_at
		FROM observations
		WHERE task_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, q, taskID)
	if err != nil {
		return nil, fmt.Errorf("list observations: %w", err)
	}
	defer rows.Close()

	var res []models.Observation
	for rows.Next() {
		var o models.Observation
		if err := rows.Scan(&o.ID, &o.Content, &o.TaskID, &o.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, o)
	}
	return res, rows.Err()
}

func (r *observationRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM observations WHERE id=$1`, id); err != nil {
		return fmt.Errorf("delete observation: %w", err)
	}
	return nil
}
