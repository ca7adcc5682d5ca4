package tally

import (
	"strings"

	"ledgerly/internal/domain"
)

type rule[T any] struct {
	keywords []string
	value    T
}

// Rules are checked in order; the first rule with a keyword contained in the
// lowered label wins.
var itemCategoryRules = []rule[domain.ItemCategory]{
	{[]string{"raw", "material"}, domain.ItemCategoryRawMaterial},
	{[]string{"finished"}, domain.ItemCategoryFinishedGoods},
	{[]string{"service"}, domain.ItemCategoryServices},
	{[]string{"consumable"}, domain.ItemCategoryConsumables},
}

var accountTypeRules = []rule[domain.AccountType]{
	{[]string{"bank", "cash"}, domain.AccountTypeAsset},
	{[]string{"capital", "loan"}, domain.AccountTypeLiability},
	{[]string{"sales", "income"}, domain.AccountTypeIncome},
	{[]string{"purchase", "expense"}, domain.AccountTypeExpense},
}

var (
	partyKeywords    = []string{"sundry", "debtor", "creditor"}
	customerKeywords = []string{"debtor", "customer"}
	// Ledgers with these words in their name are computed P&L rows, not accounts.
	profitLossKeywords = []string{"profit", "loss"}
)

func classify[T any](label string, rules []rule[T], fallback T) T {
	label = strings.ToLower(label)
	for _, r := range rules {
		if containsAny(label, r.keywords) {
			return r.value
		}
	}
	return fallback
}

// ClassifyItemCategory maps a stock group or category label to an item category.
// Unknown and empty labels resolve to goods.
func ClassifyItemCategory(label string) domain.ItemCategory {
	return classify(label, itemCategoryRules, domain.ItemCategoryGoods)
}

// ClassifyAccountType maps a ledger parent group label to an account type.
// Unknown and empty labels resolve to asset.
func ClassifyAccountType(label string) domain.AccountType {
	return classify(label, accountTypeRules, domain.AccountTypeAsset)
}

// IsPartyLabel reports whether a ledger parent label marks a sundry debtor or
// creditor, i.e. a customer or supplier ledger.
func IsPartyLabel(label string) bool {
	return containsAny(strings.ToLower(label), partyKeywords)
}

// ClassifyPartyKind returns customer for debtor/customer labels and supplier
// otherwise. It does not check IsPartyLabel.
func ClassifyPartyKind(label string) domain.PartyKind {
	if containsAny(strings.ToLower(label), customerKeywords) {
		return domain.PartyKindCustomer
	}
	return domain.PartyKindSupplier
}

func isProfitLoss(name string) bool {
	return containsAny(strings.ToLower(name), profitLossKeywords)
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
