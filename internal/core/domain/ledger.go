package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// UnknownYear buckets ledger entries whose date cannot be parsed.
const UnknownYear = "unknown"

var ledgerDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
}

// LedgerEntry is one dated debit/credit line read from a ledger source file.
type LedgerEntry struct {
	Date    string
	Account string
	Debit   decimal.Decimal
	Credit  decimal.Decimal
	// Source is the file the entry was read from; Line its 1-based line number.
	Source string
	Line   int
}

// Net returns debit minus credit.
func (e LedgerEntry) Net() decimal.Decimal {
	return e.Debit.Sub(e.Credit)
}

// SignedAmount applies the normal-balance convention of the account:
// DEBIT to ASSET/EXPENSE -> Positive (+), CREDIT to LIABILITY/EQUITY/REVENUE -> Positive (+).
// Accounts outside the chart are treated as debit-normal.
func (e LedgerEntry) SignedAmount() decimal.Decimal {
	if t, ok := ClassifyAccount(e.Account); ok && t.IsCreditNormal() {
		return e.Net().Neg()
	}
	return e.Net()
}

// Year returns the calendar year of the entry date, or UnknownYear.
func (e LedgerEntry) Year() string {
	raw := strings.TrimSpace(e.Date)
	for _, layout := range ledgerDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006")
		}
	}
	return UnknownYear
}
