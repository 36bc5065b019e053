package services_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/ops_backend/internal/apperrors"
	"github.com/SscSPs/ops_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/ops_backend/internal/core/ports/repositories"
)

// memStore is an in-memory entity store whose transactions work on a private copy of
// the ticket table that is swapped in on commit.
type memStore struct {
	mu        sync.Mutex
	companies map[int64]domain.Company
	users     []domain.User
	tickets   []domain.Ticket
	nextID    int64

	failCreate error
	failUpdate error
	// afterDuplicateCheck runs after FindOneTicket has computed its answer, outside the lock.
	afterDuplicateCheck func()
}

func newMemStore() *memStore {
	return &memStore{companies: make(map[int64]domain.Company)}
}

func (s *memStore) addCompany(id int64) {
	s.companies[id] = domain.Company{ID: id, Name: "Company"}
}

func (s *memStore) addUser(id, companyID int64, role domain.UserRole, createdAt time.Time) {
	s.users = append(s.users, domain.User{
		ID: id, CompanyID: companyID, Role: role,
		Timestamps: domain.Timestamps{CreatedAt: createdAt, UpdatedAt: createdAt},
	})
}

func (s *memStore) addTicket(companyID int64, ticketType domain.TicketType, status domain.TicketStatus) int64 {
	s.nextID++
	s.tickets = append(s.tickets, domain.Ticket{ID: s.nextID, CompanyID: companyID, Type: ticketType, Status: status})
	return s.nextID
}

func (s *memStore) snapshot() []domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Ticket(nil), s.tickets...)
}

func (s *memStore) provider() portsrepo.RepositoryProvider {
	shared := &memTicketRepo{store: s, shared: true}
	return portsrepo.RepositoryProvider{
		CompanyRepo: memCompanyRepo{s},
		UserRepo:    memUserRepo{s},
		TicketRepo:  shared,
		TxManager:   s,
	}
}

func (s *memStore) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	tx := &memTicketRepo{store: s, own: s.snapshot()}
	if err := fn(ctx, portsrepo.TxRepositories{
		Companies: memCompanyRepo{s},
		Users:     memUserRepo{s},
		Tickets:   tx,
	}); err != nil {
		return err
	}

	s.mu.Lock()
	s.tickets = tx.own
	s.mu.Unlock()
	return nil
}

type memCompanyRepo struct{ s *memStore }

func (r memCompanyRepo) FindCompanyByID(_ context.Context, id int64) (*domain.Company, error) {
	c, ok := r.s.companies[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

type memUserRepo struct{ s *memStore }

func (r memUserRepo) FindUsers(_ context.Context, f portsrepo.UserFilter) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.s.users {
		if u.CompanyID == f.CompanyID && u.Role == f.Role {
			out = append(out, u)
		}
	}
	if f.NewestFirst {
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out, nil
}

// memTicketRepo reads and writes either the store's table (shared) or a transaction's copy.
type memTicketRepo struct {
	store  *memStore
	shared bool
	own    []domain.Ticket
}

func (r *memTicketRepo) with(fn func(tickets *[]domain.Ticket)) {
	if r.shared {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
		fn(&r.store.tickets)
		return
	}
	fn(&r.own)
}

func matches(f portsrepo.TicketFilter, t domain.Ticket) bool {
	return (f.CompanyID == nil || *f.CompanyID == t.CompanyID) &&
		(f.Type == nil || *f.Type == t.Type) &&
		(f.Status == nil || *f.Status == t.Status) &&
		(f.ExcludeID == nil || *f.ExcludeID != t.ID)
}

func (r *memTicketRepo) FindTickets(_ context.Context, f portsrepo.TicketFilter) ([]domain.Ticket, error) {
	var out []domain.Ticket
	r.with(func(tickets *[]domain.Ticket) {
		for _, t := range *tickets {
			if matches(f, t) {
				out = append(out, t)
			}
		}
	})
	return out, nil
}

func (r *memTicketRepo) FindOneTicket(ctx context.Context, f portsrepo.TicketFilter) (*domain.Ticket, error) {
	found, _ := r.FindTickets(ctx, f)
	if r.store.afterDuplicateCheck != nil {
		r.store.afterDuplicateCheck()
	}
	if len(found) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &found[0], nil
}

func (r *memTicketRepo) CreateTicket(_ context.Context, t domain.Ticket) (*domain.Ticket, error) {
	if r.store.failCreate != nil {
		return nil, r.store.failCreate
	}
	r.with(func(tickets *[]domain.Ticket) {
		r.store.nextID++
		t.ID = r.store.nextID
		*tickets = append(*tickets, t)
	})
	return &t, nil
}

func (r *memTicketRepo) UpdateTicketStatuses(_ context.Context, f portsrepo.TicketFilter, status domain.TicketStatus, at time.Time) (int64, error) {
	if r.store.failUpdate != nil {
		return 0, r.store.failUpdate
	}
	var n int64
	r.with(func(tickets *[]domain.Ticket) {
		for i := range *tickets {
			if matches(f, (*tickets)[i]) {
				(*tickets)[i].Status = status
				(*tickets)[i].UpdatedAt = at
				n++
			}
		}
	})
	return n, nil
}
