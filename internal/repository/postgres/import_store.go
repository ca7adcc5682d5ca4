package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"ledgerly/internal/domain"
	"ledgerly/internal/port"
)

// batchSize keeps each multi-row INSERT well below the PostgreSQL bind
// parameter limit.
const batchSize = 500

const (
	insertItemSQL = `INSERT INTO items
		(id, user_id, import_id, name, category, hsn_code, unit, rate, tax_rate, description, created_at)
		VALUES (:id, :user_id, :import_id, :name, :category, :hsn_code, :unit, :rate, :tax_rate, :description, :created_at)`

	insertAccountSQL = `INSERT INTO accounts
		(id, user_id, import_id, name, type, opening_balance, current_balance, created_at)
		VALUES (:id, :user_id, :import_id, :name, :type, :opening_balance, :current_balance, :created_at)`

	insertClientSQL = `INSERT INTO clients
		(id, user_id, import_id, name, gstin, phone, address, outstanding_balance, created_at)
		VALUES (:id, :user_id, :import_id, :name, :gstin, :phone, :address, :outstanding_balance, :created_at)`

	insertVendorSQL = `INSERT INTO vendors
		(id, user_id, import_id, name, gstin, phone, address, outstanding_balance, created_at)
		VALUES (:id, :user_id, :import_id, :name, :gstin, :phone, :address, :outstanding_balance, :created_at)`
)

// deleteOrder removes dependents first.
var deleteOrder = []string{"vendors", "clients", "accounts", "items"}

type importWriter struct {
	ext sqlx.ExtContext
}

type importStore struct {
	importWriter
	db *sqlx.DB
}

// NewImportStore creates a PostgreSQL-backed ImportStore.
func NewImportStore(db *sqlx.DB) port.ImportStore {
	return &importStore{importWriter: importWriter{ext: db}, db: db}
}

func (s *importStore) WithinTx(ctx context.Context, fn func(w port.ImportWriter) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("importStore.WithinTx begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(&importWriter{ext: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("importStore.WithinTx commit: %w", err)
	}
	return nil
}

func (s *importStore) DeleteByImport(ctx context.Context, importID uuid.UUID) error {
	for _, table := range deleteOrder {
		query := fmt.Sprintf("DELETE FROM %s WHERE import_id = $1", table)
		if _, err := s.db.ExecContext(ctx, query, importID); err != nil {
			return fmt.Errorf("importStore.DeleteByImport %s: %w", table, err)
		}
	}
	return nil
}

func (w *importWriter) InsertItems(ctx context.Context, items []domain.Item) error {
	if err := insertBatches(ctx, w.ext, insertItemSQL, items); err != nil {
		return fmt.Errorf("importStore.InsertItems: %w", err)
	}
	return nil
}

func (w *importWriter) InsertAccounts(ctx context.Context, accounts []domain.Account) error {
	if err := insertBatches(ctx, w.ext, insertAccountSQL, accounts); err != nil {
		return fmt.Errorf("importStore.InsertAccounts: %w", err)
	}
	return nil
}

func (w *importWriter) InsertClients(ctx context.Context, clients []domain.Party) error {
	if err := insertBatches(ctx, w.ext, insertClientSQL, clients); err != nil {
		return fmt.Errorf("importStore.InsertClients: %w", err)
	}
	return nil
}

func (w *importWriter) InsertVendors(ctx context.Context, vendors []domain.Party) error {
	if err := insertBatches(ctx, w.ext, insertVendorSQL, vendors); err != nil {
		return fmt.Errorf("importStore.InsertVendors: %w", err)
	}
	return nil
}

// insertBatches runs a named multi-row INSERT per batch of rows.
func insertBatches[T any](ctx context.Context, ext sqlx.ExtContext, query string, rows []T) error {
	for start := 0; start < len(rows); start += batchSize {
		end := min(start+batchSize, len(rows))
		if _, err := sqlx.NamedExecContext(ctx, ext, query, rows[start:end]); err != nil {
			return err
		}
	}
	return nil
}
