package pgsql

import (
	"testing"

	"github.com/SscSPs/ops_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/ops_backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/assert"
)

func TestTicketConditions(t *testing.T) {
	companyID := int64(4)
	ticketType := domain.TicketTypeRegistrationAddressChange
	open := domain.TicketStatusOpen
	exclude := int64(11)

	tests := []struct {
		name      string
		filter    portsrepo.TicketFilter
		prefix    []any
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "empty filter",
			wantWhere: "",
			wantArgs:  nil,
		},
		{
			name:      "duplicate check",
			filter:    portsrepo.TicketFilter{CompanyID: &companyID, Type: &ticketType, Status: &open},
			wantWhere: " WHERE company_id = $1 AND type = $2 AND status = $3",
			wantArgs:  []any{companyID, "registrationAddressChange", "open"},
		},
		{
			name:      "strike-off cascade after update arguments",
			filter:    portsrepo.TicketFilter{CompanyID: &companyID, Status: &open, ExcludeID: &exclude},
			prefix:    []any{"resolved", "ts"},
			wantWhere: " WHERE company_id = $3 AND status = $4 AND id <> $5",
			wantArgs:  []any{"resolved", "ts", companyID, "open", exclude},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := ticketConditions(tt.filter, tt.prefix)
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
