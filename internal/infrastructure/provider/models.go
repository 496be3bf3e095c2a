package provider

import (
	"fmt"
	"sort"
	"time"

	statements "main/internal/domain/entity/statements"
)

// periodPayload is one reporting column as the provider serializes it.
type periodPayload struct {
	Date  string             `json:"date"`
	Items map[string]float64 `json:"items"`
}

// profilePayload is the provider's company metadata record.
type profilePayload struct {
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	Sector       string  `json:"sector"`
	Industry     string  `json:"industry"`
	MarketCap    float64 `json:"market_capitalization"`
	CurrentPrice float64 `json:"current_price"`
}

func (p profilePayload) toDomain(ticker string) statements.CompanyProfile {
	name := p.Name
	if name == "" {
		name = ticker
	}
	return statements.CompanyProfile{
		Ticker:       ticker,
		Name:         name,
		Sector:       p.Sector,
		Industry:     p.Industry,
		MarketCap:    p.MarketCap,
		CurrentPrice: p.CurrentPrice,
	}
}

func toStatement(statementType statements.StatementType, payload []periodPayload) (statements.Statement, error) {
	periods := make([]statements.Period, 0, len(payload))
	for _, raw := range payload {
		endDate, err := time.Parse("2006-01-02", raw.Date)
		if err != nil {
			return statements.Statement{}, fmt.Errorf("parse period date %q: %w", raw.Date, err)
		}
		items := make(map[statements.LineItem]float64, len(raw.Items))
		for name, value := range raw.Items {
			items[statements.LineItem(name)] = value
		}
		periods = append(periods, statements.Period{
			EndDate: endDate,
			Items:   items,
		})
	}

	// Most recent first, regardless of provider ordering.
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].EndDate.After(periods[j].EndDate)
	})

	return statements.Statement{
		Type:    statementType,
		Periods: periods,
	}, nil
}
