package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/isaqueks/tasks/internal/models"
)

type CompanyRepository interface {
	Store(ctx context.Context, company *models.Company) error
	// FindByID is ownership-scoped: a company that exists but belongs to a
	// different user comes back as nil, exactly like an absent one.
	FindByID(ctx context.Context, id, userID string) (*models.Company, error)
	FindAllByUser(ctx context.Context, userID string) ([]models.Company, error)
	FindAllByUserOrderedByName(ctx context.Context, userID string) ([]models.Company, error)
	Update(ctx context.Context, company *models.Company) error
	Delete(ctx context.Context, id string) error
	CountTasks(ctx context.Context, companyID string) (int, error)
}

type companyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Store(ctx context.Context, company *models.Company) error {
	const q = `
		INSERT INTO companies (id, name, cnpj, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	if err := r.db.QueryRowContext(ctx, q,
		company.ID, company.Name, company.CNPJ, company.UserID, time.Now(),
	).Scan(&company.CreatedAt); err != nil {
		return fmt.Errorf("create company: %w", err)
	}
	return nil
}

func (r *companyRepository) FindByID(ctx context.Context, id, userID string) (*models.Company, error) {
	const q = `
		SELECT id, name, cnpj, user_id, created_at
		FROM companies
		WHERE id=$1 AND user_id=$2
	`
	var c models.Company
	err := r.db.QueryRowContext(ctx, q, id, userID).
		Scan(&c.ID, &c.Name, &c.CNPJ, &c.UserID, &c.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

func (r *companyRepository) FindAllByUser(ctx context.Context, userID string) ([]models.Company, error) {
	const q = `
		SELECT id, name, cnpj, user_id, created_at
		FROM companies
		WHERE user_id=$1
		ORDER BY created_at DESC
	`
	return r.queryCompanies(ctx, q, userID)
}

// FindAllByUserOrderedByName feeds the weekly board, which lists companies
// alphabetically.
func (r *companyRepository) FindAllByUserOrderedByName(ctx context.Context, userID string) ([]models.Company, error) {
	const q = `
		SELECT id, name, cnpj, user_id, created_at
		FROM companies
		WHERE user_id=$1
		ORDER BY name ASC
	`
	return r.queryCompanies(ctx, q, userID)
}

func (r *companyRepository) queryCompanies(ctx context.Context, q, userID string) ([]models.Company, error) {
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var res []models.Company
	for rows.Next() {
		var c models.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.CNPJ, &c.UserID, &c.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

func (r *companyRepository) Update(ctx context.Context, company *models.Company) error {
	const q = `UPDATE companies SET name=$1, cnpj=$2 WHERE id=$3`
	if _, err := r.db.ExecContext(ctx, q, company.Name, company.CNPJ, company.ID); err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

func (r *companyRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM companies WHERE id=$1`, id); err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}

func (r *companyRepository) CountTasks(ctx context.Context, companyID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tasks WHERE company_id=$1`, companyID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count company tasks: %w", err)
	}
	return n, nil
}
