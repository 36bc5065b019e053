package pgsql

import (
	"context"

	portsrepo "github.com/SscSPs/ops_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxHealthChecker struct {
	pool *pgxpool.Pool
}

var _ portsrepo.HealthChecker = (*pgxHealthChecker)(nil)

func (h *pgxHealthChecker) Ping(ctx context.Context) error {
	return h.pool.Ping(ctx)
}
