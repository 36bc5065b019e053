package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/ops_backend/internal/apperrors"
	"github.com/SscSPs/ops_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/ops_backend/internal/core/ports/repositories"
	"github.com/SscSPs/ops_backend/internal/models"
	"github.com/SscSPs/ops_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxCompanyRepository struct {
	db DBTX
}

func newPgxCompanyRepository(db DBTX) *PgxCompanyRepository {
	return &PgxCompanyRepository{db: db}
}

var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM companies
		WHERE id = $1;
	`
	var m models.Company
	err := r.db.QueryRow(ctx, query, companyID).Scan(&m.ID, &m.Name, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find company by ID %d: %w", companyID, err)
	}

	company := mapping.ToDomainCompany(m)
	return &company, nil
}
