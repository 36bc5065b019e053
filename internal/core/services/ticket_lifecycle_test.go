package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/ops_backend/internal/apperrors"
	"github.com/SscSPs/ops_backend/internal/core/domain"
	"github.com/SscSPs/ops_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countByStatus(tickets []domain.Ticket, companyID int64, status domain.TicketStatus) int {
	n := 0
	for _, t := range tickets {
		if t.CompanyID == companyID && t.Status == status {
			n++
		}
	}
	return n
}

func TestCreateTicket_AssignmentTable(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		ticketType   domain.TicketType
		wantCategory domain.TicketCategory
		wantAssignee int64
	}{
		{domain.TicketTypeManagementReport, domain.TicketCategoryAccounting, 3},
		{domain.TicketTypeRegistrationAddressChange, domain.TicketCategoryCorporate, 4},
		{domain.TicketTypeStrikeOff, domain.TicketCategoryManagement, 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.ticketType), func(t *testing.T) {
			store := newMemStore()
			store.addCompany(1)
			store.addUser(2, 1, domain.RoleAccountant, base)
			store.addUser(3, 1, domain.RoleAccountant, base.Add(time.Hour))
			store.addUser(4, 1, domain.RoleCorporateSecretary, base)
			store.addUser(5, 1, domain.RoleDirector, base)

			svc := services.NewTicketService(store.provider())
			ticket, err := svc.CreateTicket(context.Background(), tt.ticketType, 1)

			require.NoError(t, err)
			assert.Equal(t, tt.wantCategory, ticket.Category)
			assert.Equal(t, tt.wantAssignee, ticket.AssigneeID)
			assert.Equal(t, domain.TicketStatusOpen, ticket.Status)
		})
	}
}

func TestCreateTicket_DuplicateIgnoresOtherTypesAndStates(t *testing.T) {
	store := newMemStore()
	store.addCompany(1)
	store.addUser(4, 1, domain.RoleCorporateSecretary, time.Now())
	store.addTicket(1, domain.TicketTypeRegistrationAddressChange, domain.TicketStatusResolved)
	store.addTicket(1, domain.TicketTypeManagementReport, domain.TicketStatusOpen)
	store.addTicket(2, domain.TicketTypeRegistrationAddressChange, domain.TicketStatusOpen)

	svc := services.NewTicketService(store.provider())

	_, err := svc.CreateTicket(context.Background(), domain.TicketTypeRegistrationAddressChange, 1)
	require.NoError(t, err)

	_, err = svc.CreateTicket(context.Background(), domain.TicketTypeRegistrationAddressChange, 1)
	require.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestCreateTicket_StrikeOffCascade(t *testing.T) {
	store := newMemStore()
	store.addCompany(1)
	store.addCompany(2)
	store.addUser(5, 1, domain.RoleDirector, time.Now())
	store.addTicket(1, domain.TicketTypeManagementReport, domain.TicketStatusOpen)
	store.addTicket(1, domain.TicketTypeRegistrationAddressChange, domain.TicketStatusOpen)
	store.addTicket(1, domain.TicketTypeManagementReport, domain.TicketStatusOpen)
	store.addTicket(1, domain.TicketTypeManagementReport, domain.TicketStatusResolved)
	otherCompany := store.addTicket(2, domain.TicketTypeManagementReport, domain.TicketStatusOpen)

	svc := services.NewTicketService(store.provider())
	created, err := svc.CreateTicket(context.Background(), domain.TicketTypeStrikeOff, 1)
	require.NoError(t, err)

	after := store.snapshot()
	assert.Equal(t, 1, countByStatus(after, 1, domain.TicketStatusOpen), "only the strike-off stays open")
	assert.Equal(t, 4, countByStatus(after, 1, domain.TicketStatusResolved))
	for _, tk := range after {
		if tk.ID == created.ID {
			assert.Equal(t, domain.TicketStatusOpen, tk.Status)
		}
		if tk.ID == otherCompany {
			assert.Equal(t, domain.TicketStatusOpen, tk.Status, "other companies are untouched")
		}
	}
}

func TestCreateTicket_StrikeOffRollsBackOnFailure(t *testing.T) {
	updateErr := errors.New("update failed")
	createErr := errors.New("insert failed")

	tests := []struct {
		name       string
		failCreate error
		failUpdate error
		want       error
	}{
		{"bulk update fails", nil, updateErr, updateErr},
		{"creation fails", createErr, nil, createErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			store.addCompany(1)
			store.addUser(5, 1, domain.RoleDirector, time.Now())
			store.addTicket(1, domain.TicketTypeManagementReport, domain.TicketStatusOpen)
			store.addTicket(1, domain.TicketTypeRegistrationAddressChange, domain.TicketStatusOpen)
			before := store.snapshot()

			store.failCreate = tt.failCreate
			store.failUpdate = tt.failUpdate

			svc := services.NewTicketService(store.provider())
			_, err := svc.CreateTicket(context.Background(), domain.TicketTypeStrikeOff, 1)

			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, before, store.snapshot(), "no partial state is visible")
		})
	}
}

// Two concurrent requests can both pass the duplicate check before either inserts.
// This documents the accepted race rather than a guarantee.
func TestCreateTicket_DuplicateCheckIsNotSerialized(t *testing.T) {
	store := newMemStore()
	store.addCompany(1)
	store.addUser(4, 1, domain.RoleCorporateSecretary, time.Now())

	var barrier sync.WaitGroup
	barrier.Add(2)
	store.afterDuplicateCheck = func() {
		barrier.Done()
		barrier.Wait()
	}

	svc := services.NewTicketService(store.provider())

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateTicket(context.Background(), domain.TicketTypeRegistrationAddressChange, 1)
		}(i)
	}
	wg.Wait()

	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
	assert.Equal(t, 2, countByStatus(store.snapshot(), 1, domain.TicketStatusOpen))
}
