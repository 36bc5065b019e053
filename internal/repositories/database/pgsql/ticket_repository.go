package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/ops_backend/internal/apperrors"
	"github.com/SscSPs/ops_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/ops_backend/internal/core/ports/repositories"
	"github.com/SscSPs/ops_backend/internal/models"
	"github.com/SscSPs/ops_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const ticketColumns = "id, type, status, category, company_id, assignee_id, created_at, updated_at"

type PgxTicketRepository struct {
	db DBTX
}

func newPgxTicketRepository(db DBTX) *PgxTicketRepository {
	return &PgxTicketRepository{db: db}
}

var _ portsrepo.TicketRepositoryFacade = (*PgxTicketRepository)(nil)

// ticketConditions renders the filter as a WHERE clause whose placeholders start after args.
func ticketConditions(filter portsrepo.TicketFilter, args []any) (string, []any) {
	var conds []string
	add := func(expr string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(expr, len(args)))
	}

	if filter.CompanyID != nil {
		add("company_id = $%d", *filter.CompanyID)
	}
	if filter.Type != nil {
		add("type = $%d", string(*filter.Type))
	}
	if filter.Status != nil {
		add("status = $%d", string(*filter.Status))
	}
	if filter.ExcludeID != nil {
		add("id <> $%d", *filter.ExcludeID)
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// FindTickets retrieves every ticket matching the filter, ordered by id.
func (r *PgxTicketRepository) FindTickets(ctx context.Context, filter portsrepo.TicketFilter) ([]domain.Ticket, error) {
	where, args := ticketConditions(filter, nil)
	query := "SELECT " + ticketColumns + " FROM tickets" + where + " ORDER BY id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tickets: %w", err)
	}

	modelTickets, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Ticket])
	if err != nil {
		return nil, fmt.Errorf("failed to scan tickets: %w", err)
	}
	return mapping.ToDomainTicketSlice(modelTickets), nil
}

// FindOneTicket retrieves the lowest-id ticket matching the filter.
func (r *PgxTicketRepository) FindOneTicket(ctx context.Context, filter portsrepo.TicketFilter) (*domain.Ticket, error) {
	where, args := ticketConditions(filter, nil)
	query := "SELECT " + ticketColumns + " FROM tickets" + where + " ORDER BY id LIMIT 1"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ticket: %w", err)
	}

	modelTicket, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Ticket])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan ticket: %w", err)
	}

	ticket := mapping.ToDomainTicket(modelTicket)
	return &ticket, nil
}

// CreateTicket inserts a ticket and returns it with the database-assigned id and timestamps.
func (r *PgxTicketRepository) CreateTicket(ctx context.Context, ticket domain.Ticket) (*domain.Ticket, error) {
	m := mapping.ToModelTicket(ticket)
	query := `
		INSERT INTO tickets (type, status, category, company_id, assignee_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + ticketColumns

	rows, err := r.db.Query(ctx, query, m.Type, m.Status, m.Category, m.CompanyID, m.AssigneeID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert ticket: %w", err)
	}

	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Ticket])
	if err != nil {
		return nil, fmt.Errorf("failed to insert ticket: %w", err)
	}

	result := mapping.ToDomainTicket(created)
	return &result, nil
}

// UpdateTicketStatuses sets the status of every matching ticket.
func (r *PgxTicketRepository) UpdateTicketStatuses(ctx context.Context, filter portsrepo.TicketFilter, status domain.TicketStatus, updatedAt time.Time) (int64, error) {
	where, args := ticketConditions(filter, []any{string(status), updatedAt})
	query := "UPDATE tickets SET status = $1, updated_at = $2" + where

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update ticket statuses: %w", err)
	}
	return tag.RowsAffected(), nil
}
