package pgsql

import (
	"context"
	"log/slog"

	portsrepo "github.com/SscSPs/ops_backend/internal/core/ports/repositories"
	"github.com/SscSPs/ops_backend/internal/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTransactionManager runs units of work on a single pgx transaction.
type PgxTransactionManager struct {
	BaseRepository
}

func newPgxTransactionManager(pool *pgxpool.Pool) *PgxTransactionManager {
	return &PgxTransactionManager{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionManager = (*PgxTransactionManager)(nil)

// WithinTransaction hands fn repositories bound to one transaction and commits only if fn succeeds.
func (m *PgxTransactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := m.Rollback(ctx, tx); rbErr != nil {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to rollback transaction", slog.String("error", rbErr.Error()))
		}
	}()

	if err := fn(ctx, portsrepo.TxRepositories{
		Companies: newPgxCompanyRepository(tx),
		Users:     newPgxUserRepository(tx),
		Tickets:   newPgxTicketRepository(tx),
	}); err != nil {
		return err
	}

	return m.Commit(ctx, tx)
}
