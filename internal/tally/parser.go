package tally

import (
	"strings"

	"ledgerly/internal/domain"
	"ledgerly/internal/port"
)

// Parse runs the four record parsers over the same text. Empty or
// whitespace-only input is the only failure and is reported before any parser
// runs.
func Parse(markup string) (*domain.ParsedDocument, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, domain.ErrNoContent
	}
	return &domain.ParsedDocument{
		Items:    ParseItems(markup),
		Ledgers:  ParseLedgers(markup),
		Parties:  ParseParties(markup),
		Vouchers: ParseVouchers(markup),
	}, nil
}

type parser struct{}

// NewParser returns the Tally implementation of port.LedgerParser.
func NewParser() port.LedgerParser {
	return parser{}
}

func (parser) Parse(markup string) (*domain.ParsedDocument, error) {
	return Parse(markup)
}
