// Package store is the record-store client: filtered selects, inserts,
// updates and deletes by exact-match predicate against the wallet tables.
// Services depend on the interfaces so tests can run against a throwaway
// database instead of the shared postgres instance.
package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/ormeredost-cmd/withdraw-server/internal/models"
)

// BankDetails reads and mutates user_bank_details rows.
// Single-row lookups return (nil, nil) when no row matches.
type BankDetails interface {
	// FindByUserID returns the bank row for one user, or nil.
	FindByUserID(ctx context.Context, userID string) (*models.BankDetail, error)
	// FindAll returns every bank row, newest first.
	FindAll(ctx context.Context) ([]models.BankDetail, error)
	// FindAllByUserID returns all rows for one user, newest first.
	FindAllByUserID(ctx context.Context, userID string) ([]models.BankDetail, error)
	// UpdateByUserID applies patch to the user's row and returns the
	// updated row, or nil when no row matched.
	UpdateByUserID(ctx context.Context, userID string, patch map[string]interface{}) (*models.BankDetail, error)
}

// Users reads the external registeruser identity table.
type Users interface {
	// FindByProfileID returns one identity row, or nil.
	FindByProfileID(ctx context.Context, profileID string) (*models.User, error)
	// FindByProfileIDs batch-fetches every identity whose profile id is in
	// ids, in a single query.
	FindByProfileIDs(ctx context.Context, ids []string) ([]models.User, error)
}

// Withdrawals reads and mutates withdraw_requests rows. Updates and deletes
// are keyed separately by the two identifier spaces; callers own the
// fallback policy.
type Withdrawals interface {
	Insert(ctx context.Context, req *models.WithdrawalRequest) error
	// FindAll returns every request, newest first.
	FindAll(ctx context.Context) ([]models.WithdrawalRequest, error)
	// UpdateByID / UpdateByWithdrawID return the updated row, or nil when
	// no row matched.
	UpdateByID(ctx context.Context, id uint, patch map[string]interface{}) (*models.WithdrawalRequest, error)
	UpdateByWithdrawID(ctx context.Context, withdrawID string, patch map[string]interface{}) (*models.WithdrawalRequest, error)
	// DeleteByID / DeleteByWithdrawID hard-delete and report rows removed.
	DeleteByID(ctx context.Context, id uint) (int64, error)
	DeleteByWithdrawID(ctx context.Context, withdrawID string) (int64, error)
}

// Store bundles the table clients over one gorm connection.
type Store struct {
	Banks       BankDetails
	Users       Users
	Withdrawals Withdrawals
}

func New(db *gorm.DB) *Store {
	return &Store{
		Banks:       &bankDetailStore{db: db},
		Users:       &userStore{db: db},
		Withdrawals: &withdrawalStore{db: db},
	}
}
