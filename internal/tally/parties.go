package tally

import "ledgerly/internal/domain"

// ParseParties reads the LEDGER elements grouped under sundry debtors or
// creditors as customers and suppliers. The profit/loss filter of
// ParseLedgers does not apply here.
func ParseParties(markup string) []domain.ParsedParty {
	var parties []domain.ParsedParty
	for _, el := range Blocks(markup, "LEDGER") {
		name := elementName(el)
		parent := field(el.Body, "PARENT")
		if name == "" || !IsPartyLabel(parent) {
			continue
		}
		parties = append(parties, domain.ParsedParty{
			Name:        name,
			Kind:        ClassifyPartyKind(parent),
			GSTIN:       field(el.Body, "PARTYGSTIN", "GSTIN"),
			Address:     field(el.Body, "ADDRESS"),
			Phone:       field(el.Body, "PHONE", "MOBILE"),
			Outstanding: fieldOr(el.Body, defaultAmount, "CLOSINGBALANCE"),
		})
	}
	return parties
}
