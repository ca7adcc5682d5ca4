package port

import "ledgerly/internal/domain"

// LedgerParser turns the text of a legacy ledger export into parsed records.
// Parsing is pure and in-memory, so it takes no context.
type LedgerParser interface {
	Parse(markup string) (*domain.ParsedDocument, error)
}
