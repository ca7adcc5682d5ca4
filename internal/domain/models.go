package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is a row of the items master.
type Item struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	UserID      uuid.UUID       `db:"user_id" json:"user_id"`
	ImportID    *uuid.UUID      `db:"import_id" json:"import_id,omitempty"`
	Name        string          `db:"name" json:"name"`
	Category    ItemCategory    `db:"category" json:"category"`
	HSNCode     string          `db:"hsn_code" json:"hsn_code"`
	Unit        string          `db:"unit" json:"unit"`
	Rate        decimal.Decimal `db:"rate" json:"rate"`
	TaxRate     decimal.Decimal `db:"tax_rate" json:"tax_rate"`
	Description string          `db:"description" json:"description"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

// Account is an entry of the user's chart of accounts.
type Account struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	UserID         uuid.UUID       `db:"user_id" json:"user_id"`
	ImportID       *uuid.UUID      `db:"import_id" json:"import_id,omitempty"`
	Name           string          `db:"name" json:"name"`
	Type           AccountType     `db:"type" json:"type"`
	OpeningBalance decimal.Decimal `db:"opening_balance" json:"opening_balance"`
	CurrentBalance decimal.Decimal `db:"current_balance" json:"current_balance"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
}

// Party is a client or vendor. Clients and vendors share the same shape and
// live in separate tables.
type Party struct {
	ID                 uuid.UUID       `db:"id" json:"id"`
	UserID             uuid.UUID       `db:"user_id" json:"user_id"`
	ImportID           *uuid.UUID      `db:"import_id" json:"import_id,omitempty"`
	Name               string          `db:"name" json:"name"`
	GSTIN              string          `db:"gstin" json:"gstin"`
	Phone              string          `db:"phone" json:"phone"`
	Address            string          `db:"address" json:"address"`
	OutstandingBalance decimal.Decimal `db:"outstanding_balance" json:"outstanding_balance"`
	CreatedAt          time.Time       `db:"created_at" json:"created_at"`
}

// ImportSummary is what the uploader is told once an import completes.
type ImportSummary struct {
	ImportID uuid.UUID
	FileName string
	Counts   ImportCounts
}
