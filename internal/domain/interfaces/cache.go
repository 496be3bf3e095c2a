package interfaces

import (
	statements "main/internal/domain/entity/statements"
)

// StatementCache memoizes fetched statement sets keyed by ticker for a
// fixed time window. Entries are immutable once written; a replacement
// race is harmless because concurrent writers store equivalent values.
type StatementCache interface {
	Get(ticker string) (*statements.StatementSet, bool)
	Set(ticker string, set *statements.StatementSet)
}
