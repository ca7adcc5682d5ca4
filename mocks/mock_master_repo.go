package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"ledgerly/internal/domain"
)

// MockMasterRepo is a mock implementation of port.MasterRepository.
type MockMasterRepo struct {
	mock.Mock
}

func (m *MockMasterRepo) ListItems(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Item, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Item), args.Int(1), args.Error(2)
}

func (m *MockMasterRepo) ListAccounts(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Account, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Account), args.Int(1), args.Error(2)
}

func (m *MockMasterRepo) ListClients(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Party, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Party), args.Int(1), args.Error(2)
}

func (m *MockMasterRepo) ListVendors(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Party, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Party), args.Int(1), args.Error(2)
}
