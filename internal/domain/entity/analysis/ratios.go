package analysis

import (
	statements "main/internal/domain/entity/statements"
)

// Ratio names as rendered in panels and comparison tables.
const (
	RatioNetProfitMargin  = "Net Profit Margin"
	RatioROA              = "ROA"
	RatioROE              = "ROE"
	RatioOperatingMargin  = "Operating Margin"
	RatioCurrentRatio     = "Current Ratio"
	RatioQuickRatio       = "Quick Ratio"
	RatioCashRatio        = "Cash Ratio"
	RatioDebtToEquity     = "Debt to Equity"
	RatioDebtToAssets     = "Debt to Assets"
	RatioEquityMultiplier = "Equity Multiplier"
	RatioAssetTurnover    = "Asset Turnover"
)

// ComparisonRatios is the ordered subset shown in the peer table.
var ComparisonRatios = []string{
	RatioNetProfitMargin,
	RatioROE,
	RatioROA,
	RatioCurrentRatio,
	RatioDebtToEquity,
}

// RatioSet holds the ratios derived from the most recent reporting period
// of one company. Margin ratios are percentages; the rest are unitless.
type RatioSet struct {
	NetProfitMargin float64 `json:"net_profit_margin"`
	ROA             float64 `json:"roa"`
	ROE             float64 `json:"roe"`
	OperatingMargin float64 `json:"operating_margin"`

	CurrentRatio float64 `json:"current_ratio"`
	QuickRatio   float64 `json:"quick_ratio"`
	CashRatio    float64 `json:"cash_ratio"`

	DebtToEquity     float64 `json:"debt_to_equity"`
	DebtToAssets     float64 `json:"debt_to_assets"`
	EquityMultiplier float64 `json:"equity_multiplier"`

	AssetTurnover float64 `json:"asset_turnover"`

	// MissingInputs lists line items that were absent from the latest
	// period and were substituted with a neutral default. Any ratio
	// touching one of them is a degraded placeholder, not a true ratio.
	MissingInputs []statements.LineItem `json:"missing_inputs,omitempty"`
}

// ByName returns the ratios keyed by display name.
func (r *RatioSet) ByName() map[string]float64 {
	return map[string]float64{
		RatioNetProfitMargin:  r.NetProfitMargin,
		RatioROA:              r.ROA,
		RatioROE:              r.ROE,
		RatioOperatingMargin:  r.OperatingMargin,
		RatioCurrentRatio:     r.CurrentRatio,
		RatioQuickRatio:       r.QuickRatio,
		RatioCashRatio:        r.CashRatio,
		RatioDebtToEquity:     r.DebtToEquity,
		RatioDebtToAssets:     r.DebtToAssets,
		RatioEquityMultiplier: r.EquityMultiplier,
		RatioAssetTurnover:    r.AssetTurnover,
	}
}

// Compute derives the ratio set from the most recent period of each
// statement. It returns nil when the income statement or balance sheet has
// no periods: that signals "insufficient data", not an error.
//
// A line item absent from the latest period substitutes 0 when it acts as
// a numerator and 1 when it acts as a denominator; a denominator that is
// present but zero yields ratio value 0. Both substitutions silently
// degrade accuracy rather than failing, and are reported in MissingInputs.
func Compute(set *statements.StatementSet) *RatioSet {
	if set == nil {
		return nil
	}
	income, ok := set.Income.Latest()
	if !ok {
		return nil
	}
	balance, ok := set.Balance.Latest()
	if !ok {
		return nil
	}

	r := &RatioSet{}

	lookup := func(p statements.Period, name statements.LineItem, fallback float64) float64 {
		value, found := p.Item(name)
		if !found {
			r.MissingInputs = append(r.MissingInputs, name)
			return fallback
		}
		return value
	}

	netIncome := lookup(income, statements.LineNetIncome, 0)
	revenue := lookup(income, statements.LineTotalRevenue, 1)
	operatingIncome := lookup(income, statements.LineOperatingIncome, 0)

	totalAssets := lookup(balance, statements.LineTotalAssets, 1)
	totalEquity := lookup(balance, statements.LineTotalEquity, 1)
	currentAssets := lookup(balance, statements.LineCurrentAssets, 0)
	currentLiabilities := lookup(balance, statements.LineCurrentLiabilities, 1)
	cash := lookup(balance, statements.LineCash, 0)
	inventory := lookup(balance, statements.LineInventory, 0)
	totalDebt := lookup(balance, statements.LineTotalDebt, 0)

	r.NetProfitMargin = ratio(netIncome, revenue) * 100
	r.ROA = ratio(netIncome, totalAssets) * 100
	r.ROE = ratio(netIncome, totalEquity) * 100
	r.OperatingMargin = ratio(operatingIncome, revenue) * 100

	r.CurrentRatio = ratio(currentAssets, currentLiabilities)
	r.QuickRatio = ratio(currentAssets-inventory, currentLiabilities)
	r.CashRatio = ratio(cash, currentLiabilities)

	r.DebtToEquity = ratio(totalDebt, totalEquity)
	r.DebtToAssets = ratio(totalDebt, totalAssets)
	r.EquityMultiplier = ratio(totalAssets, totalEquity)

	r.AssetTurnover = ratio(revenue, totalAssets)

	return r
}

// ratio divides num by den, mapping a zero denominator to 0 instead of an
// arithmetic failure.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
