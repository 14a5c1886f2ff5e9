package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/isaqueks/tasks/internal/models"
	"github.com/isaqueks/tasks/internal/repositories"
)

const maxCNPJLen = 18

type CompanyService interface {
	Create(ctx context.Context, userID, name, cnpj string) (*models.Company, error)
	GetByID(ctx context.Context, id, userID string) (*models.Company, error)
	List(ctx context.Context, userID string) ([]models.Company, error)
	Update(ctx context.Context, id, userID string, patch models.CompanyPatch) (*models.Company, error)
	Delete(ctx context.Context, id, userID string) error
}

type companyService struct {
	repo repositories.CompanyRepository
}

func NewCompanyService(repo repositories.CompanyRepository) CompanyService {
	return &companyService{repo: repo}
}

func (s *companyService) Create(ctx context.Context, userID, name, cnpj string) (*models.Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationf("name is required")
	}
	if len(cnpj) > maxCNPJLen {
		return nil, validationf("cnpj must be at most %d characters", maxCNPJLen)
	}

	company := &models.Company{
		ID:     uuid.NewString(),
		Name:   name,
		CNPJ:   cnpj,
		UserID: userID,
	}
	if err := s.repo.Store(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *companyService) GetByID(ctx context.Context, id, userID string) (*models.Company, error) {
	company, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		// absent and not-owned look exactly the same from here
		return nil, notFoundf("company %s", id)
	}
	return company, nil
}

func (s *companyService) List(ctx context.Context, userID string) ([]models.Company, error) {
	return s.repo.FindAllByUser(ctx, userID)
}

func (s *companyService) Update(ctx context.Context, id, userID string, patch models.CompanyPatch) (*models.Company, error) {
	company, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, validationf("name cannot be empty")
		}
		company.Name = name
	}
	if patch.CNPJ != nil {
		if len(*patch.CNPJ) > maxCNPJLen {
			return nil, validationf("cnpj must be at most %d characters", maxCNPJLen)
		}
		company.CNPJ = *patch.CNPJ
	}

	if err := s.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Delete rejects companies that still have tasks. Removing a client must not
// silently take its tasks (and their observations) with it.
func (s *companyService) Delete(ctx context.Context, id, userID string) error {
	company, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}

	n, err := s.repo.CountTasks(ctx, company.ID)
	if err != nil {
		return err
	}
	if n > 0 {
		return validationf("company still has %d task(s); delete them first", n)
	}
	return s.repo.Delete(ctx, company.ID)
}
