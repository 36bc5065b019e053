package reports

import (
	"context"

	"github.com/SscSPs/ops_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountsFile is the artifact name of the accounts report.
const AccountsFile = "accounts.csv"

// RenderAccounts emits one "account,balance" line per account in first-seen order.
func RenderAccounts(ctx context.Context, reader *LedgerReader) ([]string, error) {
	var order []string
	balances := make(map[string]decimal.Decimal)

	err := reader.Scan(ctx, func(e domain.LedgerEntry) error {
		if _, seen := balances[e.Account]; !seen {
			order = append(order, e.Account)
			balances[e.Account] = decimal.Zero
		}
		balances[e.Account] = balances[e.Account].Add(e.SignedAmount())
		return nil
	})
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(order)+1)
	lines = append(lines, "Account,Balance")
	for _, account := range order {
		lines = append(lines, account+","+formatAmount(balances[account]))
	}
	return lines, nil
}
