package statements

import (
	"fmt"
	"time"
)

type StatementType string

const (
	IncomeStatementType StatementType = "income-statement"
	BalanceSheetType    StatementType = "balance-sheet"
	CashFlowType        StatementType = "cash-flow"
)

func (st StatementType) String() string {
	return string(st)
}

func (st StatementType) IsValid() bool {
	switch st {
	case IncomeStatementType, BalanceSheetType, CashFlowType:
		return true
	default:
		return false
	}
}

func NewStatementType(s string) (StatementType, error) {
	st := StatementType(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid statement type: %s", s)
	}
	return st, nil
}

// LineItem is a named row of a financial statement. The set of names is
// closed: it covers every row the ratio engine and the statement excerpts
// consume. Provider rows outside this set are carried through untyped.
type LineItem string

const (
	// Income statement.
	LineTotalRevenue    LineItem = "Total Revenue"
	LineCostOfRevenue   LineItem = "Cost Of Revenue"
	LineGrossProfit     LineItem = "Gross Profit"
	LineOperatingIncome LineItem = "Operating Income"
	LineEBIT            LineItem = "EBIT"
	LineNetIncome       LineItem = "Net Income"

	// Balance sheet.
	LineTotalAssets        LineItem = "Total Assets"
	LineCurrentAssets      LineItem = "Current Assets"
	LineCash               LineItem = "Cash And Cash Equivalents"
	LineTotalLiabilities   LineItem = "Total Liabilities Net Minority Interest"
	LineCurrentLiabilities LineItem = "Current Liabilities"
	LineTotalDebt          LineItem = "Total Debt"
	LineTotalEquity        LineItem = "Total Stockholder Equity"
	LineInventory          LineItem = "Inventory"

	// Cash flow.
	LineOperatingCashFlow  LineItem = "Operating Cash Flow"
	LineInvestingCashFlow  LineItem = "Investing Cash Flow"
	LineFinancingCashFlow  LineItem = "Financing Cash Flow"
	LineFreeCashFlow       LineItem = "Free Cash Flow"
	LineCapitalExpenditure LineItem = "Capital Expenditure"
)

// Period is one reporting column of a statement.
type Period struct {
	EndDate time.Time            `json:"end_date"`
	Items   map[LineItem]float64 `json:"items"`
}

// Item looks up a line item and reports whether it was present. Absence is
// surfaced to the caller instead of being defaulted here; the ratio engine
// decides what a missing row means.
func (p Period) Item(name LineItem) (float64, bool) {
	value, ok := p.Items[name]
	return value, ok
}

// Year returns the fiscal year of the reporting period.
func (p Period) Year() int {
	return p.EndDate.Year()
}

// Statement is a 2-D financial statement table: line items by reporting
// period, periods ordered most recent first. Immutable after creation.
type Statement struct {
	Type    StatementType `json:"type"`
	Periods []Period      `json:"periods"`
}

func (s Statement) Empty() bool {
	return len(s.Periods) == 0
}

// Latest returns the most recent reporting period.
func (s Statement) Latest() (Period, bool) {
	if s.Empty() {
		return Period{}, false
	}
	return s.Periods[0], true
}

// Recent returns up to limit most recent periods.
func (s Statement) Recent(limit int) []Period {
	if limit <= 0 || limit > len(s.Periods) {
		limit = len(s.Periods)
	}
	return s.Periods[:limit]
}

// Series extracts a line item across up to limit recent periods, most
// recent first. Missing values are reported per-period via the ok slice.
func (s Statement) Series(name LineItem, limit int) ([]float64, []bool) {
	periods := s.Recent(limit)
	values := make([]float64, len(periods))
	present := make([]bool, len(periods))
	for i, p := range periods {
		values[i], present[i] = p.Item(name)
	}
	return values, present
}
