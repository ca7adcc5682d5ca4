package domain

// ParsedItem is a stock item read from a Tally export. Numeric fields keep
// the sanitized source text; they are coerced when mapped to an Item.
type ParsedItem struct {
	Name     string       `json:"name"`
	Category ItemCategory `json:"category"`
	Unit     string       `json:"unit"`
	Rate     string       `json:"rate"`
	HSNCode  string       `json:"hsnCode"`
	TaxRate  string       `json:"taxRate"`
}

// ParsedLedger is a ledger account read from a Tally export. Type is the free
// text parent group label.
type ParsedLedger struct {
	Name           string `json:"name"`
	Type           string `json:"type"`
	OpeningBalance string `json:"openingBalance"`
	ClosingBalance string `json:"closingBalance"`
}

// ParsedParty is a customer or supplier derived from a ledger grouped under a
// sundry debtors/creditors parent.
type ParsedParty struct {
	Name        string    `json:"name"`
	Kind        PartyKind `json:"kind"`
	GSTIN       string    `json:"gstin"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Outstanding string    `json:"outstanding"`
}

// ParsedVoucher is a flat summary of a Tally voucher.
type ParsedVoucher struct {
	Type   string `json:"type"`
	Date   string `json:"date"`
	Number string `json:"number"`
	Party  string `json:"party"`
	Amount string `json:"amount"`
}

// ParsedDocument groups all records produced by one parse pass.
type ParsedDocument struct {
	Items    []ParsedItem    `json:"items"`
	Ledgers  []ParsedLedger  `json:"ledgers"`
	Parties  []ParsedParty   `json:"parties"`
	Vouchers []ParsedVoucher `json:"vouchers"`
}

// Counts returns the record counts of the document.
func (d *ParsedDocument) Counts() ImportCounts {
	return ImportCounts{
		Items:    len(d.Items),
		Ledgers:  len(d.Ledgers),
		Parties:  len(d.Parties),
		Vouchers: len(d.Vouchers),
	}
}
