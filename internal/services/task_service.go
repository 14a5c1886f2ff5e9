package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/isaqueks/tasks/internal/authz"
	"github.com/isaqueks/tasks/internal/models"
	"github.com/isaqueks/tasks/internal/repositories"
	"github.com/isaqueks/tasks/internal/week"
)

// CreateTaskInput carries the validated fields for a new task. Priority
// defaults to MEDIUM; a nil Date puts the task in the backlog.
type CreateTaskInput struct {
	Name        string
	Description string
	Priority    models.Priority
	Date        *models.Date
	CompanyID   string
}

type TaskService interface {
	Create(ctx context.Context, userID string, in CreateTaskInput) (*models.Task, error)
	GetByID(ctx context.Context, id, userID string) (*models.Task, error)
	List(ctx context.Context, userID string, filter models.TaskFilter) ([]models.Task, error)
	Update(ctx context.Context, id, userID string, patch models.TaskPatch) (*models.Task, error)
	Delete(ctx context.Context, id, userID string) error

	// Weekly groups the caller's tasks into the Monday-start week around
	// anchor (nil anchor means "now"), one 8-bucket entry per company.
	Weekly(ctx context.Context, userID string, anchor *time.Time) (*models.WeeklyBoard, error)
}

type taskService struct {
	repo      repositories.TaskRepository
	companies repositories.CompanyRepository
}

func NewTaskService(repo repositories.TaskRepository, companies repositories.CompanyRepository) TaskService {
	return &taskService{repo: repo, companies: companies}
}

func (s *taskService) Create(ctx context.Context, userID string, in CreateTaskInput) (*models.Task, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, validationf("name is required")
	}
	if in.CompanyID == "" {
		return nil, validationf("company_id is required")
	}
	if in.Priority == "" {
		in.Priority = models.PriorityMedium
	}
	if !in.Priority.Valid() {
		return nil, validationf("priority must be LOW, MEDIUM or HIGH")
	}

	// creating under a company is authorized by resolving that company
	// under the caller's ownership
	company, err := s.companies.FindByID(ctx, in.CompanyID, userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, notFoundf("company %s", in.CompanyID)
	}

	task := &models.Task{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Description:  in.Description,
		Priority:     in.Priority,
		Date:         in.Date,
		CompanyID:    company.ID,
		Company:      company,
		Observations: []models.Observation{},
	}
	if err := s.repo.Store(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) GetByID(ctx context.Context, id, userID string) (*models.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil || task.Company == nil {
		return nil, notFoundf("task %s", id)
	}
	if err := authz.CheckOwner(task.Company.UserID, userID); err != nil {
		return nil, notFoundf("task %s", id)
	}
	return task, nil
}

func (s *taskService) List(ctx context.Context, userID string, filter models.TaskFilter) ([]models.Task, error) {
	if filter.Priority != nil && !filter.Priority.Valid() {
		return nil, validationf("priority must be LOW, MEDIUM or HIGH")
	}
	return s.repo.FindAll(ctx, userID, filter)
}

func (s *taskService) Update(ctx context.Context, id, userID string, patch models.TaskPatch) (*models.Task, error) {
	task, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, validationf("name cannot be empty")
		}
		task.Name = name
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Priority != nil {
		if !patch.Priority.Valid() {
			return nil, validationf("priority must be LOW, MEDIUM or HIGH")
		}
		task.Priority = *patch.Priority
	}
	if patch.DateSet {
		task.Date = patch.Date
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, id, userID string) error {
	task, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, task.ID)
}

func (s *taskService) Weekly(ctx context.Context, userID string, anchor *time.Time) (*models.WeeklyBoard, error) {
	at := time.Now()
	if anchor != nil {
		at = *anchor
	}
	start, end := week.Window(at)

	companies, err := s.companies.FindAllByUserOrderedByName(ctx, userID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.repo.FindWeekly(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	board := &models.WeeklyBoard{
		StartDate: start,
		EndDate:   end,
		Data:      make([]models.CompanyWeek, 0, len(companies)),
	}
	for _, company := range companies {
		buckets := models.NewDayBuckets()
		for _, task := range tasks {
			if task.CompanyID != company.ID {
				continue
			}
			if task.Date == nil {
				buckets.Backlog = append(buckets.Backlog, task)
				continue
			}
			// stable partition: fetch order carries into each bucket
			buckets.Add(week.DayIndex(task.Date.Time), task)
		}
		board.Data = append(board.Data, models.CompanyWeek{
			Company: company,
			Tasks:   buckets,
		})
	}
	return board, nil
}
