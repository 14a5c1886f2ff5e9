package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/isaqueks/tasks/internal/models"
)

type TaskRepository interface {
	Store(ctx context.Context, task *models.Task) error
	// FindByID loads the task together with its company and observations;
	// the caller resolves ownership from task.Company.UserID.
	FindByID(ctx context.Context, id string) (*models.Task, error)
	FindAll(ctx context.Context, userID string, filter models.TaskFilter) ([]models.Task, error)
	// FindWeekly returns the caller's tasks whose date falls inside
	// [start, end] plus every undated task, with companies and
	// observations attached.
	FindWeekly(ctx context.Context, userID string, start, end time.Time) ([]models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id string) error
}

type taskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) TaskRepository {
	return &taskRepository{db: db}
}

const taskJoinedColumns = `
	t.id, t.name, t.description, t.priority, t.date, t.completed,
	t.company_id, t.created_at,
	c.id, c.name, c.cnpj, c.user_id, c.created_at`

func scanJoinedTask(scan func(dest ...interface{}) error) (*models.Task, error) {
	var (
		t models.Task
		c models.Company
	)
	if err := scan(
		&t.ID, &t.Name, &t.Description, &t.Priority, &t.Date, &t.Completed,
		&t.CompanyID, &t.CreatedAt,
		&c.ID, &c.Name, &c.CNPJ, &c.UserID, &c.CreatedAt,
	); err != nil {
		return nil, err
	}
	t.Company = &c
	t.Observations = []models.Observation{}
	return &t, nil
}

func (r *taskRepository) Store(ctx context.Context, task *models.Task) error {
	const q = `
		INSERT INTO tasks (id, name, description, priority, date, completed, company_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`
	if err := r.db.QueryRowContext(ctx, q,
		task.ID, task.Name, task.Description, task.Priority, task.Date,
		task.Completed, task.CompanyID, time.Now(),
	).Scan(&task.CreatedAt); err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (r *taskRepository) FindByID(ctx context.Context, id string) (*models.Task, error) {
	q := `
		SELECT ` + taskJoinedColumns + `
		FROM tasks t
		JOIN companies c ON c.id = t.company_id
		WHERE t.id = $1
	`
	task, err := scanJoinedTask(r.db.QueryRowContext(ctx, q, id).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	if err := r.attachObservations(ctx, []*models.Task{task}); err != nil {
		return nil, err
	}
	return task, nil
}

func (r *taskRepository) FindAll(ctx context.Context, userID string, filter models.TaskFilter) ([]models.Task, error) {
	base := `
		SELECT ` + taskJoinedColumns + `
		FROM tasks t
		JOIN companies c ON c.id = t.company_id
	`
	conditions := []string{"c.user_id = $1"}
	args := []interface{}{userID}
	argID := 2

	if filter.CompanyID != nil {
		conditions = append(conditions, fmt.Sprintf("t.company_id = $%d", argID))
		args = append(args, *filter.CompanyID)
		argID++
	}
	if filter.Priority != nil {
		conditions = append(conditions, fmt.Sprintf("t.priority = $%d", argID))
		args = append(args, *filter.Priority)
		argID++
	}
	if filter.Completed != nil {
		conditions = append(conditions, fmt.Sprintf("t.completed = $%d", argID))
		args = append(args, *filter.Completed)
		argID++
	}
	if filter.Date != nil {
		conditions = append(conditions, fmt.Sprintf("t.date = $%d", argID))
		args = append(args, *filter.Date)
		argID++
	}

	base += " WHERE " + strings.Join(conditions, " AND ")
	// undated tasks sort after dated ones; within a day, newest first
	base += " ORDER BY t.date ASC NULLS LAST, t.created_at DESC"

	return r.queryTasks(ctx, base, args...)
}

func (r *taskRepository) FindWeekly(ctx context.Context, userID string, start, end time.Time) ([]models.Task, error) {
	q := `
		SELECT ` + taskJoinedColumns + `
		FROM tasks t
		JOIN companies c ON c.id = t.company_id
		WHERE c.user_id = $1
		  AND (t.date BETWEEN $2 AND $3 OR t.date IS NULL)
		ORDER BY t.date ASC NULLS LAST, t.created_at DESC
	`
	// bind calendar days, not instants: the date column must compare by
	// local day, never shifted through a timezone
	return r.queryTasks(ctx, q, userID,
		start.Format("2006-01-02"), end.Format("2006-01-02"))
}

func (r *taskRepository) queryTasks(ctx context.Context, q string, args ...interface{}) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		t, err := scanJoinedTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.attachObservations(ctx, tasks); err != nil {
		return nil, err
	}

	out := make([]models.Task, len(tasks))
	for i, t := range tasks {
		out[i] = *t
	}
	return out, nil
}

// attachObservations loads the observations of all given tasks in one query.
func (r *taskRepository) attachObservations(ctx context.Context, tasks []*models.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	ids := make([]string, len(tasks))
	byID := make(map[string]*models.Task, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
		byID[t.ID] = t
	}

	const q = `
		SELECT id, content, task_id, created_at
		FROM observations
		WHERE task_id = ANY($1)
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, q, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("load observations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var o models.Observation
		if err := rows.Scan(&o.ID, &o.Content, &o.TaskID, &o.CreatedAt); err != nil {
			return err
		}
		if t, ok := byID[o.TaskID]; ok {
			t.Observations = append(t.Observations, o)
		}
	}
	return rows.Err()
}

func (r *taskRepository) Update(ctx context.Context, task *models.Task) error {
	const q = `
		UPDATE tasks
		SET name=$1, description=$2, priority=$3, date=$4, completed=$5
		WHERE id=$6
	`
	if _, err := r.db.ExecContext(ctx, q,
		task.Name, task.Description, task.Priority, task.Date, task.Completed, task.ID,
	); err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	// observations go with the task (FK ON DELETE CASCADE)
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id=$1`, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
