package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"ledgerly/internal/domain"
	"ledgerly/internal/port"
)

// MockImportWriter is a mock implementation of port.ImportWriter.
type MockImportWriter struct {
	mock.Mock
}

func (m *MockImportWriter) InsertItems(ctx context.Context, items []domain.Item) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockImportWriter) InsertAccounts(ctx context.Context, accounts []domain.Account) error {
	args := m.Called(ctx, accounts)
	return args.Error(0)
}

func (m *MockImportWriter) InsertClients(ctx context.Context, clients []domain.Party) error {
	args := m.Called(ctx, clients)
	return args.Error(0)
}

func (m *MockImportWriter) InsertVendors(ctx context.Context, vendors []domain.Party) error {
	args := m.Called(ctx, vendors)
	return args.Error(0)
}

// MockImportStore is a mock implementation of port.ImportStore. WithinTx
// runs the callback against Tx, so expectations for transactional writes
// are set on Tx and expectations for direct writes on the store itself.
type MockImportStore struct {
	MockImportWriter
	Tx *MockImportWriter
}

// NewMockImportStore returns a store whose transactional writer is ready
// for expectations.
func NewMockImportStore() *MockImportStore {
	return &MockImportStore{Tx: &MockImportWriter{}}
}

func (m *MockImportStore) WithinTx(ctx context.Context, fn func(w port.ImportWriter) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(m.Tx)
}

func (m *MockImportStore) DeleteByImport(ctx context.Context, importID uuid.UUID) error {
	args := m.Called(ctx, importID)
	return args.Error(0)
}
