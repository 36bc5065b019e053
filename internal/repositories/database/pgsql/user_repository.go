package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/ops_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/ops_backend/internal/core/ports/repositories"
	"github.com/SscSPs/ops_backend/internal/models"
	"github.com/SscSPs/ops_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxUserRepository struct {
	db DBTX
}

func newPgxUserRepository(db DBTX) *PgxUserRepository {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) FindUsers(ctx context.Context, filter portsrepo.UserFilter) ([]domain.User, error) {
	query := `
		SELECT id, name, role, company_id, created_at, updated_at
		FROM users
		WHERE company_id = $1 AND role = $2`
	if filter.NewestFirst {
		query += " ORDER BY created_at DESC, id DESC"
	}

	rows, err := r.db.Query(ctx, query, filter.CompanyID, string(filter.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to query users with role %s: %w", filter.Role, err)
	}

	modelUsers, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, fmt.Errorf("failed to scan users: %w", err)
	}
	return mapping.ToDomainUserSlice(modelUsers), nil
}
