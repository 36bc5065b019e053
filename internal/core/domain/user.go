package domain

// UserRole is the position a user holds inside a company. Tickets are routed by role.
type UserRole string

const (
	RoleAccountant         UserRole = "accountant"
	RoleCorporateSecretary UserRole = "corporateSecretary"
	RoleDirector           UserRole = "director"
)

// AllowsMultipleAssignees reports whether more than one user holding the role may be a
// candidate assignee. Only accountants tolerate plurality; the most recently added one wins.
func (r UserRole) AllowsMultipleAssignees() bool {
	return r == RoleAccountant
}

// User represents a member of a company in the domain.
type User struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Role      UserRole `json:"role"`
	CompanyID int64    `json:"companyId"`
	Timestamps
}
