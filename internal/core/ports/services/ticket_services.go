package services

import (
	"context"

	"github.com/SscSPs/ops_backend/internal/core/domain"
)

// TicketReaderSvc defines read operations for tickets
type TicketReaderSvc interface {
	// ListTickets retrieves every ticket. There is no pagination.
	ListTickets(ctx context.Context) ([]domain.Ticket, error)
}

// TicketWriterSvc defines write operations for tickets
type TicketWriterSvc interface {
	// CreateTicket validates, routes and persists a new ticket.
	CreateTicket(ctx context.Context, ticketType domain.TicketType, companyID int64) (*domain.Ticket, error)
}

// TicketSvcFacade combines all ticket-related service interfaces
type TicketSvcFacade interface {
	TicketReaderSvc
	TicketWriterSvc
}
