package coa

// AccountType classifies a chart-of-accounts entry.
type AccountType string

const (
	TypeAsset       AccountType = "Asset"
	TypeContraAsset AccountType = "ContraAsset"
	TypeLiability   AccountType = "Liability"
	TypeEquity      AccountType = "Equity"
	TypeRevenue     AccountType = "Revenue"
	TypeExpense     AccountType = "Expense"
)

// Account is a static chart-of-accounts entry. The registry is reference
// data: it is compiled in, seeded into the accounts table on startup, and
// never mutated at runtime.
type Account struct {
	Number      string      `json:"number"`
	Description string      `json:"description"`
	Type        AccountType `json:"type"`
	Category    string      `json:"category"`
}

// Registry is the brokerage chart of accounts, ordered by account number.
var Registry = []Account{
	// Assets (1xxxx)
	{Number: "10001", Description: "Cash - Operating", Type: TypeAsset, Category: "Current Assets"},
	{Number: "10002", Description: "Cash - Commission Trust", Type: TypeAsset, Category: "Current Assets"},
	{Number: "10003", Description: "Cash - Deposit Trust", Type: TypeAsset, Category: "Current Assets"},
	{Number: "10100", Description: "Accounts Receivable", Type: TypeAsset, Category: "Current Assets"},
	{Number: "10200", Description: "Commissions Receivable", Type: TypeAsset, Category: "Current Assets"},
	{Number: "10300", Description: "Prepaid Expenses", Type: TypeAsset, Category: "Current Assets"},
	{Number: "15000", Description: "Office Equipment", Type: TypeAsset, Category: "Fixed Assets"},
	{Number: "15100", Description: "Computer Equipment", Type: TypeAsset, Category: "Fixed Assets"},
	{Number: "15900", Description: "Accumulated Depreciation", Type: TypeContraAsset, Category: "Fixed Assets"},

	// Liabilities (2xxxx)
	{Number: "20001", Description: "Accounts Payable", Type: TypeLiability, Category: "Current Liabilities"},
	{Number: "20100", Description: "Commissions Payable - Agents", Type: TypeLiability, Category: "Current Liabilities"},
	{Number: "20200", Description: "Deposits Held In Trust", Type: TypeLiability, Category: "Current Liabilities"},
	{Number: "20300", Description: "HST Payable", Type: TypeLiability, Category: "Current Liabilities"},
	{Number: "20400", Description: "Payroll Liabilities", Type: TypeLiability, Category: "Current Liabilities"},

	// Equity (3xxxx)
	{Number: "30001", Description: "Common Shares", Type: TypeEquity, Category: "Equity"},
	{Number: "30100", Description: "Retained Earnings", Type: TypeEquity, Category: "Equity"},

	// Revenue (4xxxx)
	{Number: "40001", Description: "Commission Revenue", Type: TypeRevenue, Category: "Revenue"},
	{Number: "40100", Description: "Referral Fee Revenue", Type: TypeRevenue, Category: "Revenue"},
	{Number: "40200", Description: "Desk Fee Revenue", Type: TypeRevenue, Category: "Revenue"},
	{Number: "40300", Description: "Interest Income", Type: TypeRevenue, Category: "Revenue"},

	// Expenses (5xxxx)
	{Number: "50001", Description: "Agent Commission Expense", Type: TypeExpense, Category: "Cost of Sales"},
	{Number: "50100", Description: "Referral Fees Paid", Type: TypeExpense, Category: "Cost of Sales"},
	{Number: "51000", Description: "Salaries and Wages", Type: TypeExpense, Category: "Operating Expenses"},
	{Number: "51100", Description: "Rent Expense", Type: TypeExpense, Category: "Operating Expenses"},
	{Number: "51200", Description: "Advertising and Promotion", Type: TypeExpense, Category: "Operating Expenses"},
	{Number: "51300", Description: "Office Supplies", Type: TypeExpense, Category: "Operating Expenses"},
	{Number: "51400", Description: "Insurance Expense", Type: TypeExpense, Category: "Operating Expenses"},
	{Number: "51500", Description: "Bank Charges", Type: TypeExpense, Category: "Operating Expenses"},
	{Number: "51600", Description: "Board and MLS Fees", Type: TypeExpense, Category: "Operating Expenses"},
	{Number: "51900", Description: "Depreciation Expense", Type: TypeExpense, Category: "Operating Expenses"},
}

var byNumber = func() map[string]Account {
	index := make(map[string]Account, len(Registry))
	for _, account := range Registry {
		index[account.Number] = account
	}
	return index
}()

// All returns the full registry in account-number order.
func All() []Account {
	out := make([]Account, len(Registry))
	copy(out, Registry)
	return out
}

// Lookup finds an account by number.
func Lookup(number string) (Account, bool) {
	account, ok := byNumber[number]
	return account, ok
}
