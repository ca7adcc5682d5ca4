package tally

import "ledgerly/internal/domain"

const defaultLedgerType = "Current Assets"

// ParseLedgers reads every LEDGER element as a chart-of-accounts entry.
// Unnamed ledgers and profit/loss rows are skipped.
func ParseLedgers(markup string) []domain.ParsedLedger {
	var ledgers []domain.ParsedLedger
	for _, el := range Blocks(markup, "LEDGER") {
		name := elementName(el)
		if name == "" || isProfitLoss(name) {
			continue
		}
		ledgers = append(ledgers, domain.ParsedLedger{
			Name:           name,
			Type:           fieldOr(el.Body, defaultLedgerType, "PARENT"),
			OpeningBalance: fieldOr(el.Body, defaultAmount, "OPENINGBALANCE"),
			ClosingBalance: fieldOr(el.Body, defaultAmount, "CLOSINGBALANCE"),
		})
	}
	return ledgers
}
