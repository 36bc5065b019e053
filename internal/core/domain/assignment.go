package domain

// AssignmentRule describes how a ticket type is categorised and which roles may receive it.
type AssignmentRule struct {
	Category TicketCategory
	// Role is the primary role queried for candidates.
	Role UserRole
	// FallbackRole is queried only when no user holds Role. Empty when there is no fallback.
	FallbackRole UserRole
}

// HasFallback reports whether the rule defines a fallback role.
func (r AssignmentRule) HasFallback() bool {
	return r.FallbackRole != ""
}

var assignmentRules = map[TicketType]AssignmentRule{
	TicketTypeManagementReport: {
		Category: TicketCategoryAccounting,
		Role:     RoleAccountant,
	},
	TicketTypeRegistrationAddressChange: {
		Category:     TicketCategoryCorporate,
		Role:         RoleCorporateSecretary,
		FallbackRole: RoleDirector,
	},
	TicketTypeStrikeOff: {
		Category: TicketCategoryManagement,
		Role:     RoleDirector,
	},
}

// ResolveAssignment maps a ticket type to its category and candidate roles.
// The boolean is false for unrecognised types.
func ResolveAssignment(t TicketType) (AssignmentRule, bool) {
	rule, ok := assignmentRules[t]
	return rule, ok
}
