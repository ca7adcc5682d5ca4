package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"ledgerly/internal/domain"
	"ledgerly/internal/port"
)

type masterRepo struct {
	db *sqlx.DB
}

// NewMasterRepo creates a new PostgreSQL-backed MasterRepository.
func NewMasterRepo(db *sqlx.DB) port.MasterRepository {
	return &masterRepo{db: db}
}

func (r *masterRepo) ListItems(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Item, int, error) {
	var items []domain.Item
	total, err := listByUser(ctx, r.db, &items, "items", userID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("masterRepo.ListItems: %w", err)
	}
	return items, total, nil
}

func (r *masterRepo) ListAccounts(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Account, int, error) {
	var accounts []domain.Account
	total, err := listByUser(ctx, r.db, &accounts, "accounts", userID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("masterRepo.ListAccounts: %w", err)
	}
	return accounts, total, nil
}

func (r *masterRepo) ListClients(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Party, int, error) {
	var clients []domain.Party
	total, err := listByUser(ctx, r.db, &clients, "clients", userID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("masterRepo.ListClients: %w", err)
	}
	return clients, total, nil
}

func (r *masterRepo) ListVendors(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Party, int, error) {
	var vendors []domain.Party
	total, err := listByUser(ctx, r.db, &vendors, "vendors", userID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("masterRepo.ListVendors: %w", err)
	}
	return vendors, total, nil
}

// listByUser counts and selects one page of a user's rows. table is always
// one of the fixed master table names above.
func listByUser(ctx context.Context, db *sqlx.DB, dest interface{}, table string, userID uuid.UUID, offset, limit int) (int, error) {
	var total int
	err := db.GetContext(ctx, &total,
		fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE user_id = $1", table), userID)
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}

	err = db.SelectContext(ctx, dest,
		fmt.Sprintf(`SELECT * FROM %s
		 WHERE user_id = $1
		 ORDER BY created_at DESC, name LIMIT $2 OFFSET $3`, table),
		userID, limit, offset)
	if err != nil {
		return 0, err
	}
	return total, nil
}
