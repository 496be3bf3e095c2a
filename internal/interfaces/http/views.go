package http

import (
	"fmt"

	appanalysis "main/internal/application/service/analysis"
	domainanalysis "main/internal/domain/entity/analysis"
	domain "main/internal/domain/entity/statements"
)

// View payloads are shaped for direct chart and table consumption by the
// dashboard page; no presentation logic lives client-side beyond drawing.

const notAvailable = "N/A"

type profileView struct {
	Ticker       string `json:"ticker"`
	Name         string `json:"name"`
	Sector       string `json:"sector"`
	Industry     string `json:"industry"`
	MarketCap    string `json:"market_cap"`
	CurrentPrice string `json:"current_price"`
}

func newProfileView(p domain.CompanyProfile) profileView {
	return profileView{
		Ticker:       p.Ticker,
		Name:         p.Name,
		Sector:       orNA(p.Sector),
		Industry:     orNA(p.Industry),
		MarketCap:    formatBillions(p.MarketCap),
		CurrentPrice: formatPrice(p.CurrentPrice),
	}
}

type tableRow struct {
	Metric string   `json:"metric"`
	Values []string `json:"values"`
}

type chartSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

type chartPayload struct {
	Labels []string      `json:"labels"`
	Series []chartSeries `json:"series"`
}

type statementView struct {
	Ticker  string        `json:"ticker"`
	Type    string        `json:"type"`
	Years   []string      `json:"years"`
	Rows    []tableRow    `json:"rows"`
	Chart   chartPayload  `json:"chart"`
	Margins *chartPayload `json:"margins,omitempty"`
}

// excerptItems lists the key line items shown per statement type, in
// display order.
var excerptItems = map[domain.StatementType][]domain.LineItem{
	domain.IncomeStatementType: {
		domain.LineTotalRevenue,
		domain.LineCostOfRevenue,
		domain.LineGrossProfit,
		domain.LineOperatingIncome,
		domain.LineEBIT,
		domain.LineNetIncome,
	},
	domain.BalanceSheetType: {
		domain.LineTotalAssets,
		domain.LineCurrentAssets,
		domain.LineCash,
		domain.LineTotalLiabilities,
		domain.LineCurrentLiabilities,
		domain.LineTotalDebt,
		domain.LineTotalEquity,
	},
	domain.CashFlowType: {
		domain.LineOperatingCashFlow,
		domain.LineInvestingCashFlow,
		domain.LineFinancingCashFlow,
		domain.LineFreeCashFlow,
		domain.LineCapitalExpenditure,
	},
}

// chartItems lists the series charted per statement type.
var chartItems = map[domain.StatementType][]struct {
	Name string
	Item domain.LineItem
}{
	domain.IncomeStatementType: {
		{Name: "Revenue", Item: domain.LineTotalRevenue},
		{Name: "Net Income", Item: domain.LineNetIncome},
	},
	domain.BalanceSheetType: {
		{Name: "Total Assets", Item: domain.LineTotalAssets},
		{Name: "Total Liabilities", Item: domain.LineTotalLiabilities},
		{Name: "Stockholder Equity", Item: domain.LineTotalEquity},
	},
	domain.CashFlowType: {
		{Name: "Operating CF", Item: domain.LineOperatingCashFlow},
		{Name: "Investing CF", Item: domain.LineInvestingCashFlow},
		{Name: "Financing CF", Item: domain.LineFinancingCashFlow},
	},
}

func newStatementView(set *domain.StatementSet, statementType domain.StatementType, periods int) statementView {
	statement := set.ByType(statementType)
	recent := statement.Recent(periods)

	view := statementView{
		Ticker: set.Ticker,
		Type:   statementType.String(),
	}
	for _, p := range recent {
		view.Years = append(view.Years, fmt.Sprintf("%d", p.Year()))
	}

	for _, item := range excerptItems[statementType] {
		row := tableRow{Metric: string(item)}
		present := false
		for _, p := range recent {
			value, ok := p.Item(item)
			if ok {
				present = true
			}
			row.Values = append(row.Values, formatCell(value, ok))
		}
		if present {
			view.Rows = append(view.Rows, row)
		}
	}

	view.Chart = chartPayload{Labels: view.Years}
	for _, series := range chartItems[statementType] {
		values := make([]float64, len(recent))
		for i, p := range recent {
			if value, ok := p.Item(series.Item); ok {
				values[i] = value / 1e9
			}
		}
		view.Chart.Series = append(view.Chart.Series, chartSeries{Name: series.Name, Values: values})
	}

	if statementType == domain.IncomeStatementType {
		view.Margins = marginsPayload(recent)
	}
	return view
}

// marginsPayload builds the profit-margins-over-time chart: one series per
// period over the three margin kinds.
func marginsPayload(recent []domain.Period) *chartPayload {
	payload := &chartPayload{
		Labels: []string{"Gross Margin", "Operating Margin", "Net Margin"},
	}
	for _, p := range recent {
		revenue, ok := p.Item(domain.LineTotalRevenue)
		if !ok || revenue == 0 {
			continue
		}
		gross, _ := p.Item(domain.LineGrossProfit)
		operating, _ := p.Item(domain.LineOperatingIncome)
		net, _ := p.Item(domain.LineNetIncome)
		payload.Series = append(payload.Series, chartSeries{
			Name: fmt.Sprintf("%d", p.Year()),
			Values: []float64{
				gross / revenue * 100,
				operating / revenue * 100,
				net / revenue * 100,
			},
		})
	}
	return payload
}

type ratioMetric struct {
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

type ratioPanel struct {
	Metrics    []ratioMetric              `json:"metrics"`
	Assessment *domainanalysis.Assessment `json:"assessment,omitempty"`
}

type ratiosView struct {
	Available     bool                        `json:"available"`
	Profitability ratioPanel                  `json:"profitability,omitempty"`
	Liquidity     ratioPanel                  `json:"liquidity,omitempty"`
	Leverage      ratioPanel                  `json:"leverage,omitempty"`
	Efficiency    ratioPanel                  `json:"efficiency,omitempty"`
	Radar         []domainanalysis.RadarScore `json:"radar,omitempty"`
	MissingInputs []string                    `json:"missing_inputs,omitempty"`
}

func newRatiosView(r *domainanalysis.RatioSet) ratiosView {
	if r == nil {
		return ratiosView{Available: false}
	}

	liquidity := domainanalysis.AssessLiquidity(r.CurrentRatio)
	leverage := domainanalysis.AssessLeverage(r.DebtToEquity)

	view := ratiosView{
		Available: true,
		Profitability: ratioPanel{Metrics: []ratioMetric{
			percentMetric(domainanalysis.RatioNetProfitMargin, r.NetProfitMargin),
			percentMetric("Return on Assets (ROA)", r.ROA),
			percentMetric("Return on Equity (ROE)", r.ROE),
			percentMetric(domainanalysis.RatioOperatingMargin, r.OperatingMargin),
		}},
		Liquidity: ratioPanel{
			Metrics: []ratioMetric{
				plainMetric(domainanalysis.RatioCurrentRatio, r.CurrentRatio),
				plainMetric(domainanalysis.RatioQuickRatio, r.QuickRatio),
				plainMetric(domainanalysis.RatioCashRatio, r.CashRatio),
			},
			Assessment: &liquidity,
		},
		Leverage: ratioPanel{
			Metrics: []ratioMetric{
				plainMetric(domainanalysis.RatioDebtToEquity, r.DebtToEquity),
				plainMetric(domainanalysis.RatioDebtToAssets, r.DebtToAssets),
				plainMetric(domainanalysis.RatioEquityMultiplier, r.EquityMultiplier),
			},
			Assessment: &leverage,
		},
		Efficiency: ratioPanel{Metrics: []ratioMetric{
			{
				Name:    domainanalysis.RatioAssetTurnover,
				Value:   r.AssetTurnover,
				Display: fmt.Sprintf("%.2fx", r.AssetTurnover),
			},
		}},
		Radar: r.RadarScores(),
	}
	for _, item := range r.MissingInputs {
		view.MissingInputs = append(view.MissingInputs, string(item))
	}
	return view
}

type trendsView struct {
	Ticker        string       `json:"ticker"`
	RevenueGrowth chartPayload `json:"revenue_growth"`
	NetIncome     chartPayload `json:"net_income"`
}

func newTrendsView(t *appanalysis.Trends) trendsView {
	view := trendsView{Ticker: t.Ticker}

	growth := chartSeries{Name: "Revenue Growth"}
	for _, point := range t.RevenueGrowth {
		view.RevenueGrowth.Labels = append(view.RevenueGrowth.Labels, fmt.Sprintf("%d", point.Year))
		growth.Values = append(growth.Values, point.Value)
	}
	view.RevenueGrowth.Series = []chartSeries{growth}

	netIncome := chartSeries{Name: "Net Income"}
	for _, point := range t.NetIncome {
		view.NetIncome.Labels = append(view.NetIncome.Labels, fmt.Sprintf("%d", point.Year))
		netIncome.Values = append(netIncome.Values, point.Value/1e9)
	}
	view.NetIncome.Series = []chartSeries{netIncome}

	return view
}

type peersView struct {
	Primary   string       `json:"primary"`
	Companies []string     `json:"companies"`
	Rows      []tableRow   `json:"rows"`
	ROEChart  chartPayload `json:"roe_chart"`
}

func newPeersView(primary string, rows []appanalysis.PeerRatios) peersView {
	view := peersView{Primary: primary}

	roe := chartSeries{Name: "ROE"}
	for _, row := range rows {
		view.Companies = append(view.Companies, row.Ticker)
		if row.Ratios != nil {
			roe.Values = append(roe.Values, row.Ratios.ROE)
		} else {
			roe.Values = append(roe.Values, 0)
		}
	}
	view.ROEChart = chartPayload{Labels: view.Companies, Series: []chartSeries{roe}}

	for _, name := range domainanalysis.ComparisonRatios {
		tr := tableRow{Metric: name}
		for _, row := range rows {
			if row.Ratios == nil {
				tr.Values = append(tr.Values, notAvailable)
				continue
			}
			tr.Values = append(tr.Values, fmt.Sprintf("%.2f", row.Ratios.ByName()[name]))
		}
		view.Rows = append(view.Rows, tr)
	}
	return view
}

// Formatting helpers. Zero values render as N/A, matching the statement
// tables' treatment of absent or empty figures.

func formatBillions(value float64) string {
	if value == 0 {
		return notAvailable
	}
	return fmt.Sprintf("$%.2fB", value/1e9)
}

func formatPrice(value float64) string {
	if value == 0 {
		return notAvailable
	}
	return fmt.Sprintf("$%.2f", value)
}

func formatCell(value float64, present bool) string {
	if !present || value == 0 {
		return notAvailable
	}
	return fmt.Sprintf("$%.2fB", value/1e9)
}

func percentMetric(name string, value float64) ratioMetric {
	return ratioMetric{Name: name, Value: value, Display: fmt.Sprintf("%.2f%%", value)}
}

func plainMetric(name string, value float64) ratioMetric {
	return ratioMetric{Name: name, Value: value, Display: fmt.Sprintf("%.2f", value)}
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
