package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerly/internal/domain"
	"ledgerly/internal/validator"
)

func ruleKeys(ws []domain.ImportWarning) []string {
	keys := make([]string, len(ws))
	for i, w := range ws {
		keys[i] = w.RuleKey
	}
	return keys
}

func TestEngine_CleanDocument(t *testing.T) {
	doc := &domain.ParsedDocument{
		Items: []domain.ParsedItem{
			{Name: "Rice", Category: domain.ItemCategoryGoods, Unit: "Nos", Rate: "45.50", HSNCode: "1006", TaxRate: "5"},
			{Name: "Repairs", Category: domain.ItemCategoryServices, Unit: "Nos", Rate: "0", TaxRate: "0"},
		},
		Ledgers: []domain.ParsedLedger{
			{Name: "HDFC Bank", Type: "Bank Accounts", OpeningBalance: "0", ClosingBalance: "50,000.00 Dr"},
		},
		Parties: []domain.ParsedParty{
			{Name: "Acme Co", Kind: domain.PartyKindCustomer, GSTIN: "27AAPFU0939F1ZV", Outstanding: "0"},
			{Name: "Walk-in", Kind: domain.PartyKindCustomer, Outstanding: "0"},
		},
		Vouchers: []domain.ParsedVoucher{
			{Type: "Sales", Date: "20240401", Amount: "0"},
			{Type: "Receipt", Amount: "0"},
		},
	}

	warnings := validator.NewDefaultEngine().Validate(doc)

	assert.Empty(t, warnings)
	assert.NotNil(t, warnings)
}

func TestEngine_NilDocument(t *testing.T) {
	assert.Empty(t, validator.NewDefaultEngine().Validate(nil))
}

func TestEngine_ReportsEveryRule(t *testing.T) {
	doc := &domain.ParsedDocument{
		Items: []domain.ParsedItem{
			{Name: "Bolt", Rate: "-3", HSNCode: "73-18", TaxRate: "118"},
			{Name: "Nut", Rate: "NA", TaxRate: "0"},
		},
		Ledgers: []domain.ParsedLedger{
			{Name: "Cash", OpeningBalance: "Dr", ClosingBalance: "0"},
		},
		Parties: []domain.ParsedParty{
			{Name: "Acme Co", GSTIN: "27AAPFU0939F1Z"},
		},
		Vouchers: []domain.ParsedVoucher{
			{Type: "Sales", Number: "INV-1", Date: "1st April"},
		},
	}

	warnings := validator.NewDefaultEngine().Validate(doc)

	assert.Equal(t, []string{
		"format.party.gstin",
		"format.item.hsn_code",
		"logic.item.rate",
		"logic.item.rate",
		"logic.item.tax_rate",
		"format.ledger.balance",
		"format.voucher.date",
	}, ruleKeys(warnings))

	require.Len(t, warnings, 7)
	assert.Equal(t, "parties[0].gstin", warnings[0].FieldPath)
	assert.Equal(t, "27AAPFU0939F1Z", warnings[0].ActualValue)
	assert.Equal(t, "items[0].hsnCode", warnings[1].FieldPath)
	assert.Equal(t, "items[0].rate", warnings[2].FieldPath)
	assert.Contains(t, warnings[2].Message, "negative")
	assert.Equal(t, "items[1].rate", warnings[3].FieldPath)
	assert.Contains(t, warnings[3].Message, "imported as 0")
	assert.Equal(t, "ledgers[0].openingBalance", warnings[5].FieldPath)
	assert.Equal(t, "vouchers[0].date", warnings[6].FieldPath)
}

func TestGSTIN_LowercaseAccepted(t *testing.T) {
	doc := &domain.ParsedDocument{
		Parties: []domain.ParsedParty{{Name: "Acme Co", GSTIN: "27aapfu0939f1zv"}},
	}
	assert.Empty(t, validator.NewDefaultEngine().Validate(doc))
}

func TestVoucherDateFormats(t *testing.T) {
	for _, date := range []string{"20240401", "2024-04-01", "01-04-2024", "01/04/2024", "1-Apr-2024"} {
		t.Run(date, func(t *testing.T) {
			doc := &domain.ParsedDocument{
				Vouchers: []domain.ParsedVoucher{{Type: "Sales", Date: date}},
			}
			assert.Empty(t, validator.NewDefaultEngine().Validate(doc))
		})
	}
}

func TestNewEngine_Subset(t *testing.T) {
	all := validator.BuiltinValidators()
	engine := validator.NewEngine(all[0])

	assert.Equal(t, []string{"format.party.gstin"}, engine.RuleKeys())

	doc := &domain.ParsedDocument{
		Items: []domain.ParsedItem{{Name: "Bolt", Rate: "-3", HSNCode: "x"}},
	}
	assert.Empty(t, engine.Validate(doc))
}
