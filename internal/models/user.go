package models

// User represents a company member row.
type User struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	Role      string `db:"role"`
	CompanyID int64  `db:"company_id"`
	Timestamps
}
