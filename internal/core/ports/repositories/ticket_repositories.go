package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ops_backend/internal/core/domain"
)

// TicketFilter narrows ticket queries. Nil fields are not filtered on.
type TicketFilter struct {
	CompanyID *int64
	Type      *domain.TicketType
	Status    *domain.TicketStatus
	// ExcludeID drops the ticket with this id from the result.
	ExcludeID *int64
}

// TicketReader defines read operations for ticket data
type TicketReader interface {
	// FindTickets retrieves every ticket matching the filter, ordered by id.
	FindTickets(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error)

	// FindOneTicket retrieves the first ticket matching the filter.
	// It returns apperrors.ErrNotFound when none matches.
	FindOneTicket(ctx context.Context, filter TicketFilter) (*domain.Ticket, error)
}

// TicketWriter defines write operations for ticket data
type TicketWriter interface {
	// CreateTicket persists a new ticket and returns it with its generated id and timestamps.
	CreateTicket(ctx context.Context, ticket domain.Ticket) (*domain.Ticket, error)

	// UpdateTicketStatuses sets status on every ticket matching the filter and returns the number of rows changed.
	UpdateTicketStatuses(ctx context.Context, filter TicketFilter, status domain.TicketStatus, updatedAt time.Time) (int64, error)
}

// TicketRepositoryFacade combines all ticket-related repository interfaces
type TicketRepositoryFacade interface {
	TicketReader
	TicketWriter
}
