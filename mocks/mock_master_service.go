package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"ledgerly/internal/domain"
)

// MockMasterService is a mock implementation of service.MasterService.
type MockMasterService struct {
	mock.Mock
}

func (m *MockMasterService) ListItems(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Item, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Item), args.Int(1), args.Error(2)
}

func (m *MockMasterService) ListAccounts(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Account, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Account), args.Int(1), args.Error(2)
}

func (m *MockMasterService) ListClients(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Party, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Party), args.Int(1), args.Error(2)
}

func (m *MockMasterService) ListVendors(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Party, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Party), args.Int(1), args.Error(2)
}
