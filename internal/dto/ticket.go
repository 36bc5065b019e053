package dto

import (
	"time"

	"github.com/SscSPs/ops_backend/internal/core/domain"
)

// CreateTicketRequest defines the data needed to create a new ticket.
// Binding only checks the JSON shape. The service validates the values so that an
// unknown company is reported before an unknown or empty type.
type CreateTicketRequest struct {
	Type      domain.TicketType `json:"type"`
	CompanyID int64             `json:"companyId"`
}

// TicketResponse defines the data returned for a ticket.
type TicketResponse struct {
	ID         int64                 `json:"id"`
	Type       domain.TicketType     `json:"type"`
	CompanyID  int64                 `json:"companyId"`
	AssigneeID int64                 `json:"assigneeId"`
	Status     domain.TicketStatus   `json:"status"`
	Category   domain.TicketCategory `json:"category"`
	CreatedAt  time.Time             `json:"createdAt"`
	UpdatedAt  time.Time             `json:"updatedAt"`
}

// ToTicketResponse converts a domain.Ticket to TicketResponse DTO
func ToTicketResponse(t *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:         t.ID,
		Type:       t.Type,
		CompanyID:  t.CompanyID,
		AssigneeID: t.AssigneeID,
		Status:     t.Status,
		Category:   t.Category,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

// ToListTicketResponse converts a slice of domain.Ticket to a slice of TicketResponse DTOs
func ToListTicketResponse(tickets []domain.Ticket) []TicketResponse {
	res := make([]TicketResponse, len(tickets))
	for i := range tickets {
		res[i] = ToTicketResponse(&tickets[i])
	}
	return res
}
