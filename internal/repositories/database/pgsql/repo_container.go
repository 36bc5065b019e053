package pgsql

import (
	portsrepo "github.com/SscSPs/ops_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CompanyRepo: newPgxCompanyRepository(dbPool),
		UserRepo:    newPgxUserRepository(dbPool),
		TicketRepo:  newPgxTicketRepository(dbPool),
		TxManager:   newPgxTransactionManager(dbPool),
		Health:      &pgxHealthChecker{pool: dbPool},
	}
}
