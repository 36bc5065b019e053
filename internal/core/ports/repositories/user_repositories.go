package repositories

import (
	"context"

	"github.com/SscSPs/ops_backend/internal/core/domain"
)

// UserFilter selects the users of one company holding one role.
type UserFilter struct {
	CompanyID int64
	Role      domain.UserRole
	// NewestFirst orders the result by created_at descending. Otherwise the order is unspecified.
	NewestFirst bool
}

// UserReader defines read operations for user data
type UserReader interface {
	// FindUsers retrieves the users matching the filter.
	FindUsers(ctx context.Context, filter UserFilter) ([]domain.User, error)
}

// UserRepositoryFacade combines all user-related repository interfaces.
// Users are read-only from the application's point of view.
type UserRepositoryFacade interface {
	UserReader
}
