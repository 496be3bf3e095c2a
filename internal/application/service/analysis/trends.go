package analysis

import (
	"context"

	domain "main/internal/domain/entity/statements"
)

// TrendPoint is one year of a trend series.
type TrendPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// Trends carries the trend-analysis series for one company. RevenueGrowth
// holds year-over-year percentages, most recent first; NetIncome holds raw
// amounts per period.
type Trends struct {
	Ticker        string       `json:"ticker"`
	RevenueGrowth []TrendPoint `json:"revenue_growth"`
	NetIncome     []TrendPoint `json:"net_income"`
}

// Trends fetches a ticker and derives its growth series over up to the
// given number of periods.
func (s *Service) Trends(ctx context.Context, ticker string, periods int) (*Trends, error) {
	set, err := s.statements.Fetch(ctx, ticker)
	if err != nil {
		return nil, err
	}

	periods = ClampPeriods(periods)
	recent := set.Income.Recent(periods)

	trends := &Trends{Ticker: set.Ticker}

	for _, p := range recent {
		if value, ok := p.Item(domain.LineNetIncome); ok {
			trends.NetIncome = append(trends.NetIncome, TrendPoint{Year: p.Year(), Value: value})
		}
	}

	// Year-over-year growth needs the next-older period; the oldest one
	// in the window has no comparison point.
	for i := 0; i < len(recent)-1; i++ {
		current, okCurrent := recent[i].Item(domain.LineTotalRevenue)
		previous, okPrevious := recent[i+1].Item(domain.LineTotalRevenue)
		if !okCurrent || !okPrevious || previous == 0 {
			continue
		}
		trends.RevenueGrowth = append(trends.RevenueGrowth, TrendPoint{
			Year:  recent[i].Year(),
			Value: (current - previous) / previous * 100,
		})
	}

	return trends, nil
}
