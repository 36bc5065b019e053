package mapping

import (
	"github.com/SscSPs/ops_backend/internal/core/domain"
	"github.com/SscSPs/ops_backend/internal/models"
)

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		ID:         m.ID,
		Name:       m.Name,
		Role:       domain.UserRole(m.Role),
		CompanyID:  m.CompanyID,
		Timestamps: ToDomainTimestamps(m.Timestamps),
	}
}

// ToDomainUserSlice converts a slice of model Users to a slice of domain Users
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}

// ToDomainCompany converts a model Company to a domain Company
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		ID:         m.ID,
		Name:       m.Name,
		Timestamps: ToDomainTimestamps(m.Timestamps),
	}
}
