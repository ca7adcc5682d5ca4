// Package export renders parsed Tally records as spreadsheet previews.
package export

import (
	"fmt"

	"ledgerly/internal/domain"
)

// Kind names one record population of a parsed document.
type Kind string

const (
	KindItems    Kind = "items"
	KindLedgers  Kind = "ledgers"
	KindParties  Kind = "parties"
	KindVouchers Kind = "vouchers"
)

// Kinds lists the record kinds in workbook sheet order.
var Kinds = []Kind{KindItems, KindLedgers, KindParties, KindVouchers}

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown record kind %q; allowed: items, ledgers, parties, vouchers", s)
}

// Sheet is a header row plus data rows for one record kind.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]string
}

// BuildSheet converts the records of one kind into rows.
func BuildSheet(doc *domain.ParsedDocument, kind Kind) Sheet {
	switch kind {
	case KindItems:
		s := Sheet{Name: "Items", Header: []string{"Name", "Category", "Unit", "Rate", "HSN Code", "Tax Rate"}}
		for _, it := range doc.Items {
			s.Rows = append(s.Rows, []string{it.Name, string(it.Category), it.Unit, it.Rate, it.HSNCode, it.TaxRate})
		}
		return s
	case KindLedgers:
		s := Sheet{Name: "Ledgers", Header: []string{"Name", "Group", "Opening Balance", "Closing Balance"}}
		for _, l := range doc.Ledgers {
			s.Rows = append(s.Rows, []string{l.Name, l.Type, l.OpeningBalance, l.ClosingBalance})
		}
		return s
	case KindParties:
		s := Sheet{Name: "Parties", Header: []string{"Name", "Kind", "GSTIN", "Address", "Phone", "Outstanding"}}
		for _, p := range doc.Parties {
			s.Rows = append(s.Rows, []string{p.Name, string(p.Kind), p.GSTIN, p.Address, p.Phone, p.Outstanding})
		}
		return s
	default:
		s := Sheet{Name: "Vouchers", Header: []string{"Type", "Date", "Number", "Party", "Amount"}}
		for _, v := range doc.Vouchers {
			s.Rows = append(s.Rows, []string{v.Type, v.Date, v.Number, v.Party, v.Amount})
		}
		return s
	}
}
