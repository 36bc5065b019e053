package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/ops_backend/internal/apperrors"
	"github.com/SscSPs/ops_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/ops_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ops_backend/internal/core/ports/services"
	"github.com/SscSPs/ops_backend/internal/metrics"
)

// ticketService routes new tickets to the right company member and runs the strike-off cascade.
type ticketService struct {
	BaseService
	repos     portsrepo.TxRepositories
	txManager portsrepo.TransactionManager
	metrics   *metrics.Collector
	nowFunc   func() time.Time
}

// TicketServiceOption is a functional option for configuring the ticket service
type TicketServiceOption func(*ticketService)

// WithTicketMetrics records ticket creations and cascaded resolutions.
func WithTicketMetrics(collector *metrics.Collector) TicketServiceOption {
	return func(s *ticketService) {
		s.metrics = collector
	}
}

// WithTicketClock overrides the clock used for the strike-off resolution timestamp.
func WithTicketClock(now func() time.Time) TicketServiceOption {
	return func(s *ticketService) {
		s.nowFunc = now
	}
}

// NewTicketService creates a new ticket service with the provided options
func NewTicketService(repos portsrepo.RepositoryProvider, options ...TicketServiceOption) portssvc.TicketSvcFacade {
	svc := &ticketService{
		repos: portsrepo.TxRepositories{
			Companies: repos.CompanyRepo,
			Users:     repos.UserRepo,
			Tickets:   repos.TicketRepo,
		},
		txManager: repos.TxManager,
		nowFunc:   time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.TicketSvcFacade = (*ticketService)(nil)

// ListTickets returns every ticket ordered by id.
func (s *ticketService) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	tickets, err := s.repos.Tickets.FindTickets(ctx, portsrepo.TicketFilter{})
	if err != nil {
		s.LogError(ctx, err, "Failed to list tickets")
		return nil, fmt.Errorf("failed to list tickets in service: %w", err)
	}
	if tickets == nil {
		return []domain.Ticket{}, nil
	}
	return tickets, nil
}

// CreateTicket validates the request against the company's current state and persists an
// open ticket assigned to the resolved user. Strike-off tickets are created together with
// the resolution of every other open ticket of the company in one transaction.
func (s *ticketService) CreateTicket(ctx context.Context, ticketType domain.TicketType, companyID int64) (*domain.Ticket, error) {
	logger := s.GetLogger(ctx).With(
		slog.String("ticket_type", string(ticketType)),
		slog.Int64("company_id", companyID),
	)

	var (
		created  *domain.Ticket
		resolved int64
	)

	var err error
	if ticketType == domain.TicketTypeStrikeOff {
		err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context, repos portsrepo.TxRepositories) error {
			var txErr error
			created, txErr = s.createTicket(txCtx, repos, ticketType, companyID)
			if txErr != nil {
				return txErr
			}
			resolved, txErr = s.resolveOpenTickets(txCtx, repos, created)
			return txErr
		})
	} else {
		created, err = s.createTicket(ctx, s.repos, ticketType, companyID)
	}

	if err != nil {
		if isBusinessRuleError(err) {
			logger.Warn("Ticket creation rejected", slog.String("reason", apperrors.Message(err)))
		} else {
			logger.Error("Failed to create ticket", slog.String("error", err.Error()))
		}
		return nil, err
	}

	s.metrics.RecordTicketCreated(string(created.Type))
	s.metrics.RecordTicketsResolved(resolved)

	logger.Info("Ticket created",
		slog.Int64("ticket_id", created.ID),
		slog.Int64("assignee_id", created.AssigneeID),
		slog.Int64("resolved_tickets", resolved),
	)
	return created, nil
}

func (s *ticketService) createTicket(ctx context.Context, repos portsrepo.TxRepositories, ticketType domain.TicketType, companyID int64) (*domain.Ticket, error) {
	if _, err := repos.Companies.FindCompanyByID(ctx, companyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("Company not found")
		}
		return nil, fmt.Errorf("failed to look up company %d: %w", companyID, err)
	}

	rule, ok := domain.ResolveAssignment(ticketType)
	if !ok {
		return nil, apperrors.InvalidInput("Invalid ticket type")
	}

	if ticketType == domain.TicketTypeRegistrationAddressChange {
		if err := s.ensureNoOpenTicket(ctx, repos, ticketType, companyID); err != nil {
			return nil, err
		}
	}

	assignee, err := s.resolveAssignee(ctx, repos, rule, companyID)
	if err != nil {
		return nil, err
	}

	ticket, err := repos.Tickets.CreateTicket(ctx, domain.Ticket{
		Type:       ticketType,
		Status:     domain.TicketStatusOpen,
		Category:   rule.Category,
		CompanyID:  companyID,
		AssigneeID: assignee.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}
	return ticket, nil
}

// ensureNoOpenTicket rejects a second open ticket of the same type for a company.
// The check and the later insert are not serialized against concurrent requests.
func (s *ticketService) ensureNoOpenTicket(ctx context.Context, repos portsrepo.TxRepositories, ticketType domain.TicketType, companyID int64) error {
	open := domain.TicketStatusOpen
	_, err := repos.Tickets.FindOneTicket(ctx, portsrepo.TicketFilter{
		CompanyID: &companyID,
		Type:      &ticketType,
		Status:    &open,
	})
	switch {
	case err == nil:
		return apperrors.Conflict("duplicate ticket")
	case errors.Is(err, apperrors.ErrNotFound):
		return nil
	default:
		return fmt.Errorf("failed to check for duplicate ticket: %w", err)
	}
}

// resolveAssignee picks the single eligible user for the rule. Accountants may be
// plural, in which case the most recently created one is chosen.
func (s *ticketService) resolveAssignee(ctx context.Context, repos portsrepo.TxRepositories, rule domain.AssignmentRule, companyID int64) (*domain.User, error) {
	role := rule.Role
	candidates, err := repos.Users.FindUsers(ctx, portsrepo.UserFilter{
		CompanyID:   companyID,
		Role:        role,
		NewestFirst: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find users with role %s: %w", role, err)
	}

	if len(candidates) == 0 && rule.HasFallback() {
		role = rule.FallbackRole
		candidates, err = repos.Users.FindUsers(ctx, portsrepo.UserFilter{
			CompanyID: companyID,
			Role:      role,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to find users with role %s: %w", role, err)
		}
	}

	if len(candidates) == 0 {
		return nil, apperrors.NotFound(fmt.Sprintf("Cannot find user with role %s to create a ticket", role))
	}
	if len(candidates) > 1 && !role.AllowsMultipleAssignees() {
		return nil, apperrors.InvalidInput(fmt.Sprintf("Multiple users with role %s. Cannot create a ticket", role))
	}

	return &candidates[0], nil
}

func (s *ticketService) resolveOpenTickets(ctx context.Context, repos portsrepo.TxRepositories, created *domain.Ticket) (int64, error) {
	open := domain.TicketStatusOpen
	companyID := created.CompanyID
	exclude := created.ID

	n, err := repos.Tickets.UpdateTicketStatuses(ctx, portsrepo.TicketFilter{
		CompanyID: &companyID,
		Status:    &open,
		ExcludeID: &exclude,
	}, domain.TicketStatusResolved, s.nowFunc().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to resolve open tickets of company %d: %w", companyID, err)
	}
	return n, nil
}

func isBusinessRuleError(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrDuplicate) ||
		errors.Is(err, apperrors.ErrValidation)
}
