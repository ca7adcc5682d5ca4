package port

import (
	"context"

	"github.com/google/uuid"

	"ledgerly/internal/domain"
)

// ImportWriter bulk-inserts imported masters. Callers assign row IDs.
type ImportWriter interface {
	InsertItems(ctx context.Context, items []domain.Item) error
	InsertAccounts(ctx context.Context, accounts []domain.Account) error
	InsertClients(ctx context.Context, clients []domain.Party) error
	InsertVendors(ctx context.Context, vendors []domain.Party) error
}

// ImportStore is the destination of an import run.
type ImportStore interface {
	ImportWriter
	// WithinTx runs fn against a writer bound to one transaction. The
	// transaction commits only when fn returns nil.
	WithinTx(ctx context.Context, fn func(w ImportWriter) error) error
	// DeleteByImport removes every row written by the given import run.
	DeleteByImport(ctx context.Context, importID uuid.UUID) error
}
