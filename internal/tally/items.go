package tally

import "ledgerly/internal/domain"

const (
	defaultUnit   = "Nos"
	defaultAmount = "0"
)

// ParseItems reads every STOCKITEM element. Items without a name are skipped.
func ParseItems(markup string) []domain.ParsedItem {
	var items []domain.ParsedItem
	for _, el := range Blocks(markup, "STOCKITEM") {
		name := elementName(el)
		if name == "" {
			continue
		}
		items = append(items, domain.ParsedItem{
			Name:     name,
			Category: ClassifyItemCategory(field(el.Body, "CATEGORY", "PARENT")),
			Unit:     fieldOr(el.Body, defaultUnit, "BASEUNITS"),
			Rate:     fieldOr(el.Body, defaultAmount, "RATE", "STANDARDRATE"),
			HSNCode:  field(el.Body, "HSNCODE", "GSTDETAILS.LIST/HSNCODE"),
			TaxRate:  fieldOr(el.Body, defaultAmount, "GSTRATE", "VATRATE"),
		})
	}
	return items
}

// elementName prefers the NAME child and falls back to the NAME attribute
// Tally puts on master elements (<LEDGER NAME="...">).
func elementName(el Element) string {
	if name := field(el.Body, "NAME"); name != "" {
		return name
	}
	if attr, ok := Attr(el.Attrs, "NAME"); ok {
		return Sanitize(attr)
	}
	return ""
}
