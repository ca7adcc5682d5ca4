package tally

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)`)

// ParseAmount coerces a Tally numeric field into a decimal. Thousands
// separators are dropped and the leading number is used, so "12,000.00 Dr"
// yields 12000. Anything without a leading number is zero.
func ParseAmount(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	m := leadingNumber.FindString(s)
	if m == "" {
		return decimal.Zero
	}
	m = strings.TrimSuffix(strings.TrimPrefix(m, "+"), ".")
	if strings.HasPrefix(m, "-.") {
		m = "-0" + m[1:]
	} else if strings.HasPrefix(m, ".") {
		m = "0" + m
	}
	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero
	}
	return d
}
