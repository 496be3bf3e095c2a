package interfaces

import (
	"context"

	statements "main/internal/domain/entity/statements"
)

// StatementProvider fetches financial statements and company metadata from
// the external market-data provider. One call covers one (ticker,
// statement type) combination.
type StatementProvider interface {
	FetchStatement(ctx context.Context, ticker string, statementType statements.StatementType) (statements.Statement, error)
	FetchProfile(ctx context.Context, ticker string) (statements.CompanyProfile, error)
}
