package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/ops_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/ops_backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock CompanyRepository ---
type MockCompanyRepository struct {
	mock.Mock
}

var _ portsrepo.CompanyRepositoryFacade = (*MockCompanyRepository)(nil)

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUsers(ctx context.Context, filter portsrepo.UserFilter) ([]domain.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// --- Mock TicketRepository ---
type MockTicketRepository struct {
	mock.Mock
}

var _ portsrepo.TicketRepositoryFacade = (*MockTicketRepository)(nil)

func (m *MockTicketRepository) FindTickets(ctx context.Context, filter portsrepo.TicketFilter) ([]domain.Ticket, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) FindOneTicket(ctx context.Context, filter portsrepo.TicketFilter) (*domain.Ticket, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) CreateTicket(ctx context.Context, ticket domain.Ticket) (*domain.Ticket, error) {
	args := m.Called(ctx, ticket)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) UpdateTicketStatuses(ctx context.Context, filter portsrepo.TicketFilter, status domain.TicketStatus, updatedAt time.Time) (int64, error) {
	args := m.Called(ctx, filter, status, updatedAt)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock TransactionManager ---
// It runs fn against the same mocked repositories, so expectations set on them apply inside the transaction.
type MockTxManager struct {
	mock.Mock
	repos portsrepo.TxRepositories
}

var _ portsrepo.TransactionManager = (*MockTxManager)(nil)

func (m *MockTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx, m.repos)
}
