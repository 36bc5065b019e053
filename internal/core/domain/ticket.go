package domain

// TicketType identifies the kind of work a ticket represents.
type TicketType string

const (
	TicketTypeManagementReport          TicketType = "managementReport"
	TicketTypeRegistrationAddressChange TicketType = "registrationAddressChange"
	TicketTypeStrikeOff                 TicketType = "strikeOff"
)

// TicketTypes lists every recognised ticket type.
var TicketTypes = []TicketType{
	TicketTypeManagementReport,
	TicketTypeRegistrationAddressChange,
	TicketTypeStrikeOff,
}

// IsValid reports whether t is one of the recognised ticket types.
func (t TicketType) IsValid() bool {
	for _, known := range TicketTypes {
		if t == known {
			return true
		}
	}
	return false
}

// TicketStatus is the lifecycle state of a ticket.
type TicketStatus string

const (
	TicketStatusOpen     TicketStatus = "open"
	TicketStatusResolved TicketStatus = "resolved"
)

// TicketCategory groups tickets by the department that handles them.
type TicketCategory string

const (
	TicketCategoryAccounting TicketCategory = "accounting"
	TicketCategoryCorporate  TicketCategory = "corporate"
	TicketCategoryManagement TicketCategory = "management"
)

// Ticket is a unit of required work routed to a company role.
type Ticket struct {
	ID         int64          `json:"id"`
	Type       TicketType     `json:"type"`
	Status     TicketStatus   `json:"status"`
	Category   TicketCategory `json:"category"`
	CompanyID  int64          `json:"companyId"`
	AssigneeID int64          `json:"assigneeId"`
	Timestamps
}
