package repositories

import (
	"context"

	"github.com/SscSPs/ops_backend/internal/core/domain"
)

// CompanyReader defines read operations for company data
type CompanyReader interface {
	// FindCompanyByID retrieves a company by id. It returns apperrors.ErrNotFound when absent.
	FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error)
}

// CompanyRepositoryFacade combines all company-related repository interfaces
type CompanyRepositoryFacade interface {
	CompanyReader
}
