package reports

import (
	"context"
	"fmt"

	"github.com/SscSPs/ops_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FinancialStatementFile is the artifact name of the financial statement.
const FinancialStatementFile = "fs.csv"

// RenderFinancialStatement lays out the income statement and balance sheet for the
// fixed chart of accounts. Accounts outside the chart are ignored. The closing
// balance check line is reported as computed, never enforced.
func RenderFinancialStatement(ctx context.Context, reader *LedgerReader) ([]string, error) {
	balances := make(map[string]decimal.Decimal)
	for _, groups := range [][]domain.AccountGroup{domain.IncomeStatementGroups, domain.BalanceSheetGroups} {
		for _, g := range groups {
			for _, name := range g.Accounts {
				balances[name] = decimal.Zero
			}
		}
	}

	err := reader.Scan(ctx, func(e domain.LedgerEntry) error {
		if _, ok := balances[e.Account]; ok {
			balances[e.Account] = balances[e.Account].Add(e.SignedAmount())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := []string{"Basic Financial Statement", "", "Income Statement"}

	totals := make(map[domain.AccountType]decimal.Decimal)
	for _, g := range domain.IncomeStatementGroups {
		for _, name := range g.Accounts {
			out = append(out, name+","+formatAmount(balances[name]))
			totals[g.Type] = totals[g.Type].Add(balances[name])
		}
	}
	netIncome := totals[domain.Revenue].Sub(totals[domain.Expense])
	out = append(out, "Net Income,"+formatAmount(netIncome), "", "Balance Sheet")

	for _, g := range domain.BalanceSheetGroups {
		out = append(out, g.Label)
		for _, name := range g.Accounts {
			out = append(out, name+","+formatAmount(balances[name]))
			totals[g.Type] = totals[g.Type].Add(balances[name])
		}
		if g.Type == domain.Equity {
			out = append(out, "Retained Earnings (Net Income),"+formatAmount(netIncome))
			totals[domain.Equity] = totals[domain.Equity].Add(netIncome)
		}
		out = append(out, fmt.Sprintf("Total %s,%s", g.Label, formatAmount(totals[g.Type])), "")
	}

	out = append(out, fmt.Sprintf("Assets = Liabilities + Equity, %s = %s",
		formatAmount(totals[domain.Asset]),
		formatAmount(totals[domain.Liability].Add(totals[domain.Equity])),
	))
	return out, nil
}
