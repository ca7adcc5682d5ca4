package port

import (
	"context"

	"github.com/google/uuid"

	"ledgerly/internal/domain"
)

// MasterRepository reads the masters owned by a user, newest first.
// All methods are scoped by userID.
type MasterRepository interface {
	ListItems(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Item, int, error)
	ListAccounts(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Account, int, error)
	ListClients(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Party, int, error)
	ListVendors(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Party, int, error)
}
