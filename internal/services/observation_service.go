package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/isaqueks/tasks/internal/authz"
	"github.com/isaqueks/tasks/internal/models"
	"github.com/isaqueks/tasks/internal/repositories"
)

type ObservationService interface {
	Create(ctx context.Context, taskID, userID, content string) (*models.Observation, error)
	ListByTask(ctx context.Context, taskID, userID string) ([]models.Observation, error)
	Delete(ctx context.Context, id, userID string) error
}

type observationService struct {
	repo  repositories.ObservationRepository
	tasks TaskService
}

func NewObservationService(repo repositories.ObservationRepository, tasks TaskService) ObservationService {
	return &observationService{repo: repo, tasks: tasks}
}

func (s *observationService) Create(ctx context.Context, taskID, userID, content string) (*models.Observation, error) {
	if strings.TrimSpace(content) == "" {
		return nil, validationf("content is required")
	}

	// resolving the task under the caller's ownership authorizes the create
	task, err := s.tasks.GetByID(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	obs := &models.Observation{
		ID:      uuid.NewString(),
		Content: content,
		TaskID:  task.ID,
	}
	if err := s.repo.Store(ctx, obs); err != nil {
		return nil, err
	}
	return obs, nil
}

func (s *observationService) ListByTask(ctx context.Context, taskID, userID string) ([]models.Observation, error) {
	task, err := s.tasks.GetByID(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.FindAllByTask(ctx, task.ID)
}

func (s *observationService) Delete(ctx context.Context, id, userID string) error {
	obs, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if obs == nil {
		return notFoundf("observation %s", id)
	}
	if err := authz.CheckOwner(obs.OwnerUserID, userID); err != nil {
		return notFoundf("observation %s", id)
	}
	return s.repo.Delete(ctx, obs.ID)
}
