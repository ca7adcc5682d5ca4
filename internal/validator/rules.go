package validator

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ledgerly/internal/domain"
	"ledgerly/internal/tally"
)

var (
	gstinPattern = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	hsnPattern   = regexp.MustCompile(`^\d{4,8}$`)
	numberPrefix = regexp.MustCompile(`^\s*[+-]?(\d|\.\d)`)
)

var maxTaxRate = decimal.NewFromInt(100)

// Tally writes dates as YYYYMMDD; older exports and hand edits use the others.
var voucherDateFormats = []string{
	"20060102",
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"2-Jan-2006",
	"02-Jan-2006",
}

// builtinValidator adapts a check function to Validator.
type builtinValidator struct {
	key  string
	name string
	fn   func(*domain.ParsedDocument) []domain.ImportWarning
}

func (v *builtinValidator) RuleKey() string  { return v.key }
func (v *builtinValidator) RuleName() string { return v.name }

func (v *builtinValidator) Validate(doc *domain.ParsedDocument) []domain.ImportWarning {
	return v.fn(doc)
}

// BuiltinValidators returns all built-in validators.
func BuiltinValidators() []Validator {
	return []Validator{
		&builtinValidator{key: "format.party.gstin", name: "Format: Party GSTIN", fn: partyGSTIN},
		&builtinValidator{key: "format.item.hsn_code", name: "Format: Item HSN/SAC Code", fn: itemHSN},
		&builtinValidator{key: "logic.item.rate", name: "Logical: Item Rate Non-negative", fn: itemRate},
		&builtinValidator{key: "logic.item.tax_rate", name: "Logical: Item Tax Rate Range", fn: itemTaxRate},
		&builtinValidator{key: "format.ledger.balance", name: "Format: Ledger Balance Numeric", fn: ledgerBalances},
		&builtinValidator{key: "format.voucher.date", name: "Format: Voucher Date", fn: voucherDate},
	}
}

func partyGSTIN(doc *domain.ParsedDocument) []domain.ImportWarning {
	var out []domain.ImportWarning
	for i, p := range doc.Parties {
		if p.GSTIN == "" {
			continue
		}
		if !gstinPattern.MatchString(strings.ToUpper(p.GSTIN)) {
			out = append(out, warning("format.party.gstin", fmt.Sprintf("parties[%d].gstin", i), p.GSTIN,
				fmt.Sprintf("GSTIN of %q does not match the 15 character GSTIN format", p.Name)))
		}
	}
	return out
}

func itemHSN(doc *domain.ParsedDocument) []domain.ImportWarning {
	var out []domain.ImportWarning
	for i, it := range doc.Items {
		if it.HSNCode == "" {
			continue
		}
		if !hsnPattern.MatchString(it.HSNCode) {
			out = append(out, warning("format.item.hsn_code", fmt.Sprintf("items[%d].hsnCode", i), it.HSNCode,
				fmt.Sprintf("HSN/SAC code of %q should be 4 to 8 digits", it.Name)))
		}
	}
	return out
}

func itemRate(doc *domain.ParsedDocument) []domain.ImportWarning {
	var out []domain.ImportWarning
	for i, it := range doc.Items {
		fp := fmt.Sprintf("items[%d].rate", i)
		if !numeric(it.Rate) {
			out = append(out, warning("logic.item.rate", fp, it.Rate,
				fmt.Sprintf("rate of %q is not a number and will be imported as 0", it.Name)))
			continue
		}
		if tally.ParseAmount(it.Rate).IsNegative() {
			out = append(out, warning("logic.item.rate", fp, it.Rate,
				fmt.Sprintf("rate of %q is negative", it.Name)))
		}
	}
	return out
}

func itemTaxRate(doc *domain.ParsedDocument) []domain.ImportWarning {
	var out []domain.ImportWarning
	for i, it := range doc.Items {
		rate := tally.ParseAmount(it.TaxRate)
		if rate.IsNegative() || rate.GreaterThan(maxTaxRate) {
			out = append(out, warning("logic.item.tax_rate", fmt.Sprintf("items[%d].taxRate", i), it.TaxRate,
				fmt.Sprintf("tax rate of %q is outside 0-100%% and will be imported as 0", it.Name)))
		}
	}
	return out
}

func ledgerBalances(doc *domain.ParsedDocument) []domain.ImportWarning {
	var out []domain.ImportWarning
	for i, l := range doc.Ledgers {
		if !numeric(l.OpeningBalance) {
			out = append(out, warning("format.ledger.balance", fmt.Sprintf("ledgers[%d].openingBalance", i), l.OpeningBalance,
				fmt.Sprintf("opening balance of %q is not a number and will be imported as 0", l.Name)))
		}
		if !numeric(l.ClosingBalance) {
			out = append(out, warning("format.ledger.balance", fmt.Sprintf("ledgers[%d].closingBalance", i), l.ClosingBalance,
				fmt.Sprintf("closing balance of %q is not a number and will be imported as 0", l.Name)))
		}
	}
	return out
}

func voucherDate(doc *domain.ParsedDocument) []domain.ImportWarning {
	var out []domain.ImportWarning
	for i, v := range doc.Vouchers {
		if v.Date == "" {
			continue
		}
		if _, err := parseDate(v.Date); err != nil {
			out = append(out, warning("format.voucher.date", fmt.Sprintf("vouchers[%d].date", i), v.Date,
				fmt.Sprintf("date of %s voucher %q is not a recognised date", v.Type, v.Number)))
		}
	}
	return out
}

// numeric reports whether s starts with a number after the lenient coercion
// rules of tally.ParseAmount.
func numeric(s string) bool {
	return numberPrefix.MatchString(strings.ReplaceAll(s, ",", ""))
}

func parseDate(s string) (time.Time, error) {
	for _, f := range voucherDateFormats {
		if t, err := time.Parse(f, strings.TrimSpace(s)); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date: %s", s)
}

func warning(key, fieldPath, value, msg string) domain.ImportWarning {
	return domain.ImportWarning{RuleKey: key, FieldPath: fieldPath, ActualValue: value, Message: msg}
}
