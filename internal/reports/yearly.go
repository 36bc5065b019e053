package reports

import (
	"context"
	"sort"

	"github.com/SscSPs/ops_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// YearlyFile is the artifact name of the yearly cash report.
const YearlyFile = "yearly.csv"

// RenderYearly emits the Cash balance movement per calendar year, years ascending.
func RenderYearly(ctx context.Context, reader *LedgerReader) ([]string, error) {
	byYear := make(map[string]decimal.Decimal)

	err := reader.Scan(ctx, func(e domain.LedgerEntry) error {
		if e.Account != domain.CashAccount {
			return nil
		}
		year := e.Year()
		byYear[year] = byYear[year].Add(e.SignedAmount())
		return nil
	})
	if err != nil {
		return nil, err
	}

	years := make([]string, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Strings(years)

	lines := make([]string, 0, len(years)+1)
	lines = append(lines, "Financial Year,Cash Balance")
	for _, y := range years {
		lines = append(lines, y+","+formatAmount(byYear[y]))
	}
	return lines, nil
}
