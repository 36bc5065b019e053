package repositories

import (
	"context"
)

// TxRepositories is the set of repositories bound to a single database transaction.
// Everything done through it commits or rolls back together.
type TxRepositories struct {
	Companies CompanyReader
	Users     UserReader
	Tickets   TicketRepositoryFacade
}

// TransactionManager defines methods for transaction management
type TransactionManager interface {
	// WithinTransaction runs fn inside a database transaction. The transaction is
	// committed when fn returns nil and rolled back otherwise; fn's error is returned unchanged.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error
}
