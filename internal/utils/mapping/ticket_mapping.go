package mapping

import (
	"github.com/SscSPs/ops_backend/internal/core/domain"
	"github.com/SscSPs/ops_backend/internal/models"
)

// ToModelTicket converts a domain Ticket to a model Ticket
func ToModelTicket(d domain.Ticket) models.Ticket {
	return models.Ticket{
		ID:         d.ID,
		Type:       string(d.Type),
		Status:     string(d.Status),
		Category:   string(d.Category),
		CompanyID:  d.CompanyID,
		AssigneeID: d.AssigneeID,
		Timestamps: ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainTicket converts a model Ticket to a domain Ticket
func ToDomainTicket(m models.Ticket) domain.Ticket {
	return domain.Ticket{
		ID:         m.ID,
		Type:       domain.TicketType(m.Type),
		Status:     domain.TicketStatus(m.Status),
		Category:   domain.TicketCategory(m.Category),
		CompanyID:  m.CompanyID,
		AssigneeID: m.AssigneeID,
		Timestamps: ToDomainTimestamps(m.Timestamps),
	}
}

// ToDomainTicketSlice converts a slice of model Tickets to a slice of domain Tickets
func ToDomainTicketSlice(ms []models.Ticket) []domain.Ticket {
	ds := make([]domain.Ticket, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTicket(m)
	}
	return ds
}
