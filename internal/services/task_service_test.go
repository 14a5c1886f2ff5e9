package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isaqueks/tasks/internal/models"
)

const (
	ownerID    = "11111111-1111-1111-1111-111111111111"
	intruderID = "22222222-2222-2222-2222-222222222222"
)

func newWeeklyFixture(t *testing.T) (TaskService, *fakeTaskRepo, *fakeCompanyRepo) {
	t.Helper()

	companies := &fakeCompanyRepo{taskCount: map[string]int{}}
	tasks := &fakeTaskRepo{}
	svc := NewTaskService(tasks, companies)

	// insertion order on purpose differs from name order
	beta := models.Company{ID: "c-beta", Name: "Beta", UserID: ownerID}
	acme := models.Company{ID: "c-acme", Name: "Acme", UserID: ownerID}
	other := models.Company{ID: "c-other", Name: "Other", UserID: intruderID}
	companies.companies = append(companies.companies, beta, acme, other)

	addTask := func(id, companyID string, owner *models.Company, date *models.Date) {
		tasks.tasks = append(tasks.tasks, models.Task{
			ID:        id,
			Name:      "task " + id,
			Priority:  models.PriorityMedium,
			Date:      date,
			CompanyID: companyID,
			Company:   owner,
			CreatedAt: time.Now(),
		})
	}

	d := func(y int, m time.Month, day int) *models.Date {
		v := models.NewDate(y, m, day)
		return &v
	}

	addTask("t-friday", acme.ID, &acme, d(2024, 6, 14))
	addTask("t-monday", acme.ID, &acme, d(2024, 6, 10))
	addTask("t-sunday", acme.ID, &acme, d(2024, 6, 16))
	addTask("t-backlog", acme.ID, &acme, nil)
	addTask("t-next-week", acme.ID, &acme, d(2024, 6, 20))
	addTask("t-foreign", other.ID, &other, d(2024, 6, 12))

	return svc, tasks, companies
}

func anchorJune12() *time.Time {
	t := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC) // a Wednesday
	return &t
}

func TestWeeklyWindowBounds(t *testing.T) {
	svc, _, _ := newWeeklyFixture(t)

	board, err := svc.Weekly(context.Background(), ownerID, anchorJune12())
	require.NoError(t, err)

	assert.Equal(t, "2024-06-10", board.StartDate.Format("2006-01-02"))
	assert.Equal(t, "2024-06-16", board.EndDate.Format("2006-01-02"))
	assert.Equal(t, 23, board.EndDate.Hour())
}

func TestWeeklyCompaniesInNameOrder(t *testing.T) {
	svc, _, _ := newWeeklyFixture(t)

	board, err := svc.Weekly(context.Background(), ownerID, anchorJune12())
	require.NoError(t, err)

	require.Len(t, board.Data, 2)
	assert.Equal(t, "Acme", board.Data[0].Company.Name)
	assert.Equal(t, "Beta", board.Data[1].Company.Name)
}

func TestWeeklyBucketAssignment(t *testing.T) {
	svc, _, _ := newWeeklyFixture(t)

	board, err := svc.Weekly(context.Background(), ownerID, anchorJune12())
	require.NoError(t, err)

	acme := board.Data[0].Tasks
	require.Len(t, acme.Monday, 1)
	assert.Equal(t, "t-monday", acme.Monday[0].ID)
	require.Len(t, acme.Friday, 1)
	assert.Equal(t, "t-friday", acme.Friday[0].ID)
	// Sunday is the inclusive upper bound of the window
	require.Len(t, acme.Sunday, 1)
	assert.Equal(t, "t-sunday", acme.Sunday[0].ID)
	require.Len(t, acme.Backlog, 1)
	assert.Equal(t, "t-backlog", acme.Backlog[0].ID)

	assert.Empty(t, acme.Tuesday)
	assert.Empty(t, acme.Wednesday)
	assert.Empty(t, acme.Thursday)
	assert.Empty(t, acme.Saturday)

	// a task dated outside the window lands in no bucket at all
	total := 0
	for day := 0; day < 7; day++ {
		total += len(acme.At(day))
	}
	total += len(acme.Backlog)
	assert.Equal(t, 4, total)
}

func TestWeeklyCompanyWithNoTasksHasEmptyBuckets(t *testing.T) {
	svc, _, _ := newWeeklyFixture(t)

	board, err := svc.Weekly(context.Background(), ownerID, anchorJune12())
	require.NoError(t, err)

	beta := board.Data[1].Tasks
	for day := 0; day < 7; day++ {
		bucket := beta.At(day)
		assert.NotNil(t, bucket)
		assert.Empty(t, bucket)
	}
	assert.NotNil(t, beta.Backlog)
	assert.Empty(t, beta.Backlog)
}

func TestWeeklyNeverLeaksForeignTasks(t *testing.T) {
	svc, _, _ := newWeeklyFixture(t)

	board, err := svc.Weekly(context.Background(), ownerID, anchorJune12())
	require.NoError(t, err)

	for _, entry := range board.Data {
		assert.NotEqual(t, "Other", entry.Company.Name)
		for day := 0; day < 7; day++ {
			for _, task := range entry.Tasks.At(day) {
				assert.NotEqual(t, "t-foreign", task.ID)
			}
		}
	}
}

func TestWeeklyIsIdempotent(t *testing.T) {
	svc, _, _ := newWeeklyFixture(t)

	first, err := svc.Weekly(context.Background(), ownerID, anchorJune12())
	require.NoError(t, err)
	second, err := svc.Weekly(context.Background(), ownerID, anchorJune12())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestWeeklyWithNoCompaniesSucceedsEmpty(t *testing.T) {
	svc := NewTaskService(&fakeTaskRepo{}, &fakeCompanyRepo{taskCount: map[string]int{}})

	board, err := svc.Weekly(context.Background(), ownerID, anchorJune12())
	require.NoError(t, err)
	assert.Empty(t, board.Data)
}

func TestWeeklyDefaultsAnchorToNow(t *testing.T) {
	svc, _, _ := newWeeklyFixture(t)

	board, err := svc.Weekly(context.Background(), ownerID, nil)
	require.NoError(t, err)

	assert.Equal(t, time.Monday, board.StartDate.Weekday())
	assert.False(t, board.StartDate.After(time.Now()))
}

func TestCreateDefaultsPriorityToMedium(t *testing.T) {
	svc, _, _ := newWeeklyFixture(t)

	task, err := svc.Create(context.Background(), ownerID, CreateTaskInput{
		Name:      "write invoice",
		CompanyID: "c-acme",
	})
	require.NoError(t, err)
	assert.Equal(t, models.PriorityMedium, task.Priority)
	assert.Nil(t, task.Date)
	assert.False(t, task.Completed)
}

func TestCreateRejectsUnknownPriority(t *testing.T) {
	svc, _, _ := newWeeklyFixture(t)

	_, err := svc.Create(context.Background(), ownerID, CreateTaskInput{
		Name:      "x",
		CompanyID: "c-acme",
		Priority:  "URGENT",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateUnderForeignCompanyIsNotFound(t *testing.T) {
	svc, _, _ := newWeeklyFixture(t)

	_, err := svc.Create(context.Background(), ownerID, CreateTaskInput{
		Name:      "sneaky",
		CompanyID: "c-other",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetByIDForeignTaskIsNotFound(t *testing.T) {
	svc, _, _ := newWeeklyFixture(t)

	// the owner sees it
	_, err := svc.GetByID(context.Background(), "t-monday", ownerID)
	require.NoError(t, err)

	// anyone else gets the same answer as for an absent id
	_, err = svc.GetByID(context.Background(), "t-monday", intruderID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.GetByID(context.Background(), "does-not-exist", intruderID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	svc, _, _ := newWeeklyFixture(t)

	done := true
	task, err := svc.Update(context.Background(), "t-monday", ownerID, models.TaskPatch{
		Completed: &done,
	})
	require.NoError(t, err)

	assert.True(t, task.Completed)
	assert.Equal(t, "task t-monday", task.Name)
	require.NotNil(t, task.Date)
	assert.Equal(t, "2024-06-10", task.Date.String())
}

func TestUpdateCanClearDate(t *testing.T) {
	svc, _, _ := newWeeklyFixture(t)

	task, err := svc.Update(context.Background(), "t-monday", ownerID, models.TaskPatch{
		DateSet: true,
	})
	require.NoError(t, err)
	assert.Nil(t, task.Date)

	// it now shows up in the backlog
	board, err := svc.Weekly(context.Background(), ownerID, anchorJune12())
	require.NoError(t, err)
	ids := []string{}
	for _, bt := range board.Data[0].Tasks.Backlog {
		ids = append(ids, bt.ID)
	}
	assert.Contains(t, ids, "t-monday")
	assert.Empty(t, board.Data[0].Tasks.Monday)
}

func TestUpdateForeignTaskIsNotFound(t *testing.T) {
	svc, repo, _ := newWeeklyFixture(t)

	name := "hijacked"
	_, err := svc.Update(context.Background(), "t-monday", intruderID, models.TaskPatch{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)

	stored, _ := repo.FindByID(context.Background(), "t-monday")
	assert.Equal(t, "task t-monday", stored.Name)
}

func TestDeleteForeignTaskIsNotFound(t *testing.T) {
	svc, repo, _ := newWeeklyFixture(t)

	err := svc.Delete(context.Background(), "t-monday", intruderID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, repo.deleted)

	require.NoError(t, svc.Delete(context.Background(), "t-monday", ownerID))
	assert.Equal(t, []string{"t-monday"}, repo.deleted)
}

func TestListRejectsUnknownPriorityFilter(t *testing.T) {
	svc, _, _ := newWeeklyFixture(t)

	bad := models.Priority("urgent")
	_, err := svc.List(context.Background(), ownerID, models.TaskFilter{Priority: &bad})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListFiltersCombineWithAnd(t *testing.T) {
	svc, _, _ := newWeeklyFixture(t)

	companyID := "c-acme"
	completed := false
	d := models.NewDate(2024, 6, 10)
	tasks, err := svc.List(context.Background(), ownerID, models.TaskFilter{
		CompanyID: &companyID,
		Completed: &completed,
		Date:      &d,
	})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "t-monday", tasks[0].ID)
}
