package services

import (
	"context"
	"sort"
	"time"

	"github.com/isaqueks/tasks/internal/models"
	"github.com/isaqueks/tasks/internal/repositories"
)

// in-memory repositories for service tests

type fakeCompanyRepo struct {
	companies []models.Company
	taskCount map[string]int
	deleted   []string
}

var _ repositories.CompanyRepository = (*fakeCompanyRepo)(nil)

func (r *fakeCompanyRepo) Store(_ context.Context, c *models.Company) error {
	c.CreatedAt = time.Now()
	r.companies = append(r.companies, *c)
	return nil
}

func (r *fakeCompanyRepo) FindByID(_ context.Context, id, userID string) (*models.Company, error) {
	for _, c := range r.companies {
		if c.ID == id && c.UserID == userID {
			cp := c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) FindAllByUser(_ context.Context, userID string) ([]models.Company, error) {
	var out []models.Company
	for _, c := range r.companies {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCompanyRepo) FindAllByUserOrderedByName(ctx context.Context, userID string) ([]models.Company, error) {
	out, _ := r.FindAllByUser(ctx, userID)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, c *models.Company) error {
	for i := range r.companies {
		if r.companies[i].ID == c.ID {
			r.companies[i] = *c
		}
	}
	return nil
}

func (r *fakeCompanyRepo) Delete(_ context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	for i := range r.companies {
		if r.companies[i].ID == id {
			r.companies = append(r.companies[:i], r.companies[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeCompanyRepo) CountTasks(_ context.Context, companyID string) (int, error) {
	return r.taskCount[companyID], nil
}

type fakeTaskRepo struct {
	tasks   []models.Task
	deleted []string
}

var _ repositories.TaskRepository = (*fakeTaskRepo)(nil)

func (r *fakeTaskRepo) Store(_ context.Context, t *models.Task) error {
	t.CreatedAt = time.Now()
	r.tasks = append(r.tasks, *t)
	return nil
}

func (r *fakeTaskRepo) FindByID(_ context.Context, id string) (*models.Task, error) {
	for _, t := range r.tasks {
		if t.ID == id {
			cp := t
			return &cp, nil
		}
	}
	return nil, nil
}

func sortTasks(tasks []models.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		switch {
		case a.Date == nil && b.Date == nil:
			return a.CreatedAt.After(b.CreatedAt)
		case a.Date == nil:
			return false
		case b.Date == nil:
			return true
		case !a.Date.Equal(b.Date.Time):
			return a.Date.Before(b.Date.Time)
		default:
			return a.CreatedAt.After(b.CreatedAt)
		}
	})
}

func (r *fakeTaskRepo) FindAll(_ context.Context, userID string, filter models.TaskFilter) ([]models.Task, error) {
	var out []models.Task
	for _, t := range r.tasks {
		if t.Company == nil || t.Company.UserID != userID {
			continue
		}
		if filter.CompanyID != nil && t.CompanyID != *filter.CompanyID {
			continue
		}
		if filter.Priority != nil && t.Priority != *filter.Priority {
			continue
		}
		if filter.Completed != nil && t.Completed != *filter.Completed {
			continue
		}
		if filter.Date != nil && (t.Date == nil || !t.Date.Equal(filter.Date.Time)) {
			continue
		}
		out = append(out, t)
	}
	sortTasks(out)
	return out, nil
}

func (r *fakeTaskRepo) FindWeekly(_ context.Context, userID string, start, end time.Time) ([]models.Task, error) {
	var out []models.Task
	for _, t := range r.tasks {
		if t.Company == nil || t.Company.UserID != userID {
			continue
		}
		if t.Date != nil && (t.Date.Before(start) || t.Date.After(end)) {
			continue
		}
		out = append(out, t)
	}
	sortTasks(out)
	return out, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, t *models.Task) error {
	for i := range r.tasks {
		if r.tasks[i].ID == t.ID {
			r.tasks[i] = *t
		}
	}
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			break
		}
	}
	return nil
}
