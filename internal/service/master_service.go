package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"ledgerly/internal/domain"
	"ledgerly/internal/port"
)

// MasterService lists the masters owned by a user.
type MasterService interface {
	ListItems(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Item, int, error)
	ListAccounts(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Account, int, error)
	ListClients(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Party, int, error)
	ListVendors(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Party, int, error)
}

type masterService struct {
	repo port.MasterRepository
}

// NewMasterService creates a new MasterService implementation.
func NewMasterService(repo port.MasterRepository) MasterService {
	return &masterService{repo: repo}
}

func (s *masterService) ListItems(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Item, int, error) {
	items, total, err := s.repo.ListItems(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("masterService.ListItems: %w", err)
	}
	return items, total, nil
}

func (s *masterService) ListAccounts(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Account, int, error) {
	accounts, total, err := s.repo.ListAccounts(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("masterService.ListAccounts: %w", err)
	}
	return accounts, total, nil
}

func (s *masterService) ListClients(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Party, int, error) {
	clients, total, err := s.repo.ListClients(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("masterService.ListClients: %w", err)
	}
	return clients, total, nil
}

func (s *masterService) ListVendors(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Party, int, error) {
	vendors, total, err := s.repo.ListVendors(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("masterService.ListVendors: %w", err)
	}
	return vendors, total, nil
}
