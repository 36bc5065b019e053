package models

// Ticket is the row shape of the tickets table.
type Ticket struct {
	ID         int64  `db:"id"`
	Type       string `db:"type"`
	Status     string `db:"status"`
	Category   string `db:"category"`
	CompanyID  int64  `db:"company_id"`
	AssigneeID int64  `db:"assignee_id"`
	Timestamps
}
