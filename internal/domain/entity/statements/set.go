package statements

import "time"

// CompanyProfile is the descriptive metadata record returned alongside the
// statements.
type CompanyProfile struct {
	Ticker       string  `json:"ticker"`
	Name         string  `json:"name"`
	Sector       string  `json:"sector"`
	Industry     string  `json:"industry"`
	MarketCap    float64 `json:"market_cap"`
	CurrentPrice float64 `json:"current_price"`
}

// StatementSet bundles the three statements and the company profile for
// one ticker. Created fresh per fetch, cached by ticker, never mutated.
type StatementSet struct {
	Ticker    string         `json:"ticker"`
	Profile   CompanyProfile `json:"profile"`
	Income    Statement      `json:"income_statement"`
	Balance   Statement      `json:"balance_sheet"`
	CashFlow  Statement      `json:"cash_flow"`
	FetchedAt time.Time      `json:"fetched_at"`
}

// ByType returns the statement of the given type.
func (s *StatementSet) ByType(t StatementType) Statement {
	switch t {
	case BalanceSheetType:
		return s.Balance
	case CashFlowType:
		return s.CashFlow
	default:
		return s.Income
	}
}
