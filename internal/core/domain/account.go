package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsCreditNormal reports whether balances of this type grow with credits.
func (t AccountType) IsCreditNormal() bool {
	return t == Liability || t == Equity || t == Revenue
}

// CashAccount is the ledger account the yearly cash report follows.
const CashAccount = "Cash"

// AccountGroup is one labelled block of the fixed chart of accounts.
type AccountGroup struct {
	Type     AccountType
	Label    string
	Accounts []string
}

// IncomeStatementGroups is the income statement half of the chart, in report order.
var IncomeStatementGroups = []AccountGroup{
	{Type: Revenue, Label: "Revenues", Accounts: []string{"Sales Revenue"}},
	{Type: Expense, Label: "Expenses", Accounts: []string{
		"Cost of Goods Sold",
		"Salaries Expense",
		"Rent Expense",
		"Utilities Expense",
		"Interest Expense",
		"Tax Expense",
	}},
}

// BalanceSheetGroups is the balance sheet half of the chart, in report order.
var BalanceSheetGroups = []AccountGroup{
	{Type: Asset, Label: "Assets", Accounts: []string{
		CashAccount,
		"Accounts Receivable",
		"Inventory",
		"Fixed Assets",
		"Prepaid Expenses",
	}},
	{Type: Liability, Label: "Liabilities", Accounts: []string{
		"Accounts Payable",
		"Loan Payable",
		"Sales Tax Payable",
		"Accrued Liabilities",
		"Unearned Revenue",
		"Dividends Payable",
	}},
	{Type: Equity, Label: "Equity", Accounts: []string{"Common Stock", "Retained Earnings"}},
}

var chartOfAccounts = func() map[string]AccountType {
	chart := make(map[string]AccountType)
	for _, groups := range [][]AccountGroup{IncomeStatementGroups, BalanceSheetGroups} {
		for _, g := range groups {
			for _, name := range g.Accounts {
				chart[name] = g.Type
			}
		}
	}
	return chart
}()

// ClassifyAccount returns the account type of a name in the fixed chart of accounts.
func ClassifyAccount(name string) (AccountType, bool) {
	t, ok := chartOfAccounts[name]
	return t, ok
}
