package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/ops_backend/internal/core/domain"
	"github.com/SscSPs/ops_backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestTicketMapping(t *testing.T) {
	now := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	d := domain.Ticket{
		ID:         9,
		Type:       domain.TicketTypeStrikeOff,
		Status:     domain.TicketStatusOpen,
		Category:   domain.TicketCategoryManagement,
		CompanyID:  3,
		AssigneeID: 4,
		Timestamps: domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	m := ToModelTicket(d)
	assert.Equal(t, "strikeOff", m.Type)
	assert.Equal(t, "management", m.Category)
	assert.Equal(t, d, ToDomainTicket(m))
}

func TestUserMapping(t *testing.T) {
	users := ToDomainUserSlice([]models.User{
		{ID: 1, Name: "Ada", Role: "director", CompanyID: 2},
	})

	assert.Len(t, users, 1)
	assert.Equal(t, domain.RoleDirector, users[0].Role)
	assert.Equal(t, int64(2), users[0].CompanyID)
	assert.Empty(t, ToDomainTicketSlice(nil))
}
