package statements

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "main/internal/domain/entity/statements"
	interfaces "main/internal/domain/interfaces"
)

var (
	ErrNilProvider = errors.New("statement provider is nil")
	ErrNilCache    = errors.New("statement cache is nil")
)

// Service fetches statement sets from the provider, memoizing successful
// results by ticker. A failed fetch is surfaced directly; there is no
// retry policy.
type Service struct {
	provider interfaces.StatementProvider
	cache    interfaces.StatementCache
}

func NewService(provider interfaces.StatementProvider, cache interfaces.StatementCache) (*Service, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if cache == nil {
		return nil, ErrNilCache
	}
	return &Service{provider: provider, cache: cache}, nil
}

// Fetch returns the statement set for a ticker, from cache when a fresh
// entry exists, otherwise issuing one provider call per statement type
// plus one for the profile. The ticker goes to the provider as given; no
// format validation happens here.
func (s *Service) Fetch(ctx context.Context, ticker string) (*domain.StatementSet, error) {
	if set, ok := s.cache.Get(ticker); ok {
		return set, nil
	}

	income, err := s.provider.FetchStatement(ctx, ticker, domain.IncomeStatementType)
	if err != nil {
		return nil, fmt.Errorf("fetch income statement: %w", err)
	}
	balance, err := s.provider.FetchStatement(ctx, ticker, domain.BalanceSheetType)
	if err != nil {
		return nil, fmt.Errorf("fetch balance sheet: %w", err)
	}
	cashFlow, err := s.provider.FetchStatement(ctx, ticker, domain.CashFlowType)
	if err != nil {
		return nil, fmt.Errorf("fetch cash flow: %w", err)
	}
	profile, err := s.provider.FetchProfile(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	set := &domain.StatementSet{
		Ticker:    ticker,
		Profile:   profile,
		Income:    income,
		Balance:   balance,
		CashFlow:  cashFlow,
		FetchedAt: time.Now().UTC(),
	}
	s.cache.Set(ticker, set)
	return set, nil
}
