package tally

import "ledgerly/internal/domain"

// ParseVouchers reads every VOUCHER element as a flat summary. Vouchers
// without a voucher type are skipped. Dates are kept in the source format.
func ParseVouchers(markup string) []domain.ParsedVoucher {
	var vouchers []domain.ParsedVoucher
	for _, el := range Blocks(markup, "VOUCHER") {
		voucherType := field(el.Body, "VOUCHERTYPENAME")
		if voucherType == "" {
			continue
		}
		vouchers = append(vouchers, domain.ParsedVoucher{
			Type:   voucherType,
			Date:   field(el.Body, "DATE"),
			Number: field(el.Body, "VOUCHERNUMBER"),
			Party:  field(el.Body, "PARTYNAME"),
			Amount: fieldOr(el.Body, defaultAmount, "AMOUNT"),
		})
	}
	return vouchers
}
