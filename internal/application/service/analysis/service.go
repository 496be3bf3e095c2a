package analysis

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	appstatements "main/internal/application/service/statements"
	domainanalysis "main/internal/domain/entity/analysis"
	domain "main/internal/domain/entity/statements"
)

var ErrNilStatements = errors.New("statements service is nil")

const (
	// MinPeriods and MaxPeriods bound the analysis window.
	MinPeriods = 1
	MaxPeriods = 5
)

// Service derives ratios, trends, and peer comparisons from fetched
// statement sets. Each operation triggers a full fetch-compute pass; only
// the fetch layer memoizes.
type Service struct {
	statements *appstatements.Service
	logger     *logrus.Logger
}

func NewService(statements *appstatements.Service, logger *logrus.Logger) (*Service, error) {
	if statements == nil {
		return nil, ErrNilStatements
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Service{statements: statements, logger: logger}, nil
}

// ClampPeriods forces a period count into the supported 1..5 window.
func ClampPeriods(periods int) int {
	if periods < MinPeriods {
		return MinPeriods
	}
	if periods > MaxPeriods {
		return MaxPeriods
	}
	return periods
}

// Statements returns the full statement set for a ticker.
func (s *Service) Statements(ctx context.Context, ticker string) (*domain.StatementSet, error) {
	return s.statements.Fetch(ctx, ticker)
}

// Ratios fetches a ticker and computes its ratio set. A nil ratio set with
// a nil error means the statements carried too little data to derive
// ratios; callers render an absent panel, not an error.
func (s *Service) Ratios(ctx context.Context, ticker string) (*domainanalysis.RatioSet, error) {
	set, err := s.statements.Fetch(ctx, ticker)
	if err != nil {
		return nil, err
	}
	return domainanalysis.Compute(set), nil
}

// PeerRatios is one row of the peer comparison.
type PeerRatios struct {
	Ticker string                   `json:"ticker"`
	Ratios *domainanalysis.RatioSet `json:"ratios"`
}

// Compare computes ratios for the primary ticker and each peer, fetched
// sequentially. A peer whose fetch fails, or whose data yields no ratios,
// is omitted from the result; only the primary ticker's failure aborts the
// comparison.
func (s *Service) Compare(ctx context.Context, primary string, peers []string) ([]PeerRatios, error) {
	primaryRatios, err := s.Ratios(ctx, primary)
	if err != nil {
		return nil, err
	}

	result := make([]PeerRatios, 0, len(peers)+1)
	result = append(result, PeerRatios{Ticker: primary, Ratios: primaryRatios})

	for _, peer := range peers {
		ratios, err := s.Ratios(ctx, peer)
		if err != nil {
			s.logger.WithFields(logrus.Fields{
				"peer": peer,
			}).WithError(err).Warn("skip peer")
			continue
		}
		if ratios == nil {
			continue
		}
		result = append(result, PeerRatios{Ticker: peer, Ratios: ratios})
	}
	return result, nil
}
