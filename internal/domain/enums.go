package domain

// ItemCategory classifies a stock item in the items master.
type ItemCategory string

const (
	ItemCategoryGoods         ItemCategory = "goods"
	ItemCategoryServices      ItemCategory = "services"
	ItemCategoryRawMaterial   ItemCategory = "raw_material"
	ItemCategoryFinishedGoods ItemCategory = "finished_goods"
	ItemCategoryConsumables   ItemCategory = "consumables"
)

// AccountType is the fundamental accounting type of a chart-of-accounts entry.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeIncome    AccountType = "income"
	AccountTypeExpense   AccountType = "expense"
)

// PartyKind tells whether a party is a customer (sundry debtor) or a supplier
// (sundry creditor).
type PartyKind string

const (
	PartyKindCustomer PartyKind = "customer"
	PartyKindSupplier PartyKind = "supplier"
)

// AllowedImportExtensions lists the accepted Tally backup file extensions (without dot).
var AllowedImportExtensions = map[string]bool{
	"xml": true,
	"tsf": true,
}

// CommitPolicy controls how the import phases are committed to the destination store.
type CommitPolicy string

const (
	// CommitTransactional runs every insert phase inside one transaction.
	CommitTransactional CommitPolicy = "transactional"
	// CommitCompensating commits phase by phase and deletes the run's rows on failure.
	CommitCompensating CommitPolicy = "compensating"
	// CommitSequential commits phase by phase and leaves earlier phases in place on failure.
	CommitSequential CommitPolicy = "sequential"
)

// Valid reports whether p is a known commit policy.
func (p CommitPolicy) Valid() bool {
	switch p {
	case CommitTransactional, CommitCompensating, CommitSequential:
		return true
	}
	return false
}
