package services

import (
	"context"
	"fmt"

	"github.com/ormeredost-cmd/withdraw-server/internal/models"
	"github.com/ormeredost-cmd/withdraw-server/internal/store"
)

// DefaultAdminID is recorded as the verifier when the caller doesn't
// identify the acting admin.
const DefaultAdminID = "admin"

// BankUser is the display object attached to aggregated bank rows.
type BankUser struct {
	Username  string `json:"username"`
	ProfileID string `json:"profile_id"`
}

// BankWithUser is one bank row joined with its owner's identity.
type BankWithUser struct {
	models.BankDetail
	User BankUser `json:"user"`
}

// BankOverview is the admin view over all registered banks. Pending and
// Verified partition Banks: every row is counted exactly once.
type BankOverview struct {
	Pending  int            `json:"pending"`
	Verified int            `json:"verified"`
	Banks    []BankWithUser `json:"banks"`
}

// BankService owns the verification gate, the admin verify/reject actions
// and the bank/user aggregation views.
type BankService struct {
	banks  store.BankDetails
	users  store.Users
	emails *EmailService
}

func NewBankService(banks store.BankDetails, users store.Users, emails *EmailService) *BankService {
	return &BankService{banks: banks, users: users, emails: emails}
}

// GetBankDetail returns the user's bank row (nil when none is on file) and
// its verified flag. Absence is not an error.
func (s *BankService) GetBankDetail(ctx context.Context, profileID string) (*models.BankDetail, bool, error) {
	bank, err := s.banks.FindByUserID(ctx, profileID)
	if err != nil {
		return nil, false, fmt.Errorf("load bank detail: %w", err)
	}
	if bank == nil {
		return nil, false, nil
	}
	return bank, bank.IsVerified, nil
}

// CanWithdraw is the eligibility gate: true only when the user has a bank
// on file that is both verified and active. A store failure is returned as
// an error, never folded into a deny.
func (s *BankService) CanWithdraw(ctx context.Context, profileID string) (bool, error) {
	bank, err := s.banks.FindByUserID(ctx, profileID)
	if err != nil {
		return false, fmt.Errorf("load bank detail: %w", err)
	}
	return bank != nil && bank.Eligible(), nil
}

// VerifyBank marks the user's bank verified and active and records the
// acting admin. Idempotent. Returns ErrNotFound when the user has no bank
// on file.
func (s *BankService) VerifyBank(ctx context.Context, profileID, adminID string) (*models.BankDetail, error) {
	if adminID == "" {
		adminID = DefaultAdminID
	}
	bank, err := s.banks.UpdateByUserID(ctx, profileID, map[string]interface{}{
		"is_verified": true,
		"is_active":   true,
		"verified_by": adminID,
	})
	if err != nil {
		return nil, fmt.Errorf("verify bank: %w", err)
	}
	if bank == nil {
		return nil, ErrNotFound
	}
	s.notifyVerified(ctx, bank)
	return bank, nil
}

// RejectBank clears the verified/active flags and the verifier. Idempotent;
// same return contract as VerifyBank.
func (s *BankService) RejectBank(ctx context.Context, profileID string) (*models.BankDetail, error) {
	bank, err := s.banks.UpdateByUserID(ctx, profileID, map[string]interface{}{
		"is_verified": false,
		"is_active":   false,
		"verified_by": nil,
	})
	if err != nil {
		return nil, fmt.Errorf("reject bank: %w", err)
	}
	if bank == nil {
		return nil, ErrNotFound
	}
	return bank, nil
}

// ListAllBanksWithUsers fetches every bank row newest-first, batch-loads the
// matching identities in one query, and merges in memory. No store-level
// join is used.
func (s *BankService) ListAllBanksWithUsers(ctx context.Context) (*BankOverview, error) {
	banks, err := s.banks.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load banks: %w", err)
	}

	seen := make(map[string]bool, len(banks))
	ids := make([]string, 0, len(banks))
	for _, bank := range banks {
		if bank.UserID != "" && !seen[bank.UserID] {
			seen[bank.UserID] = true
			ids = append(ids, bank.UserID)
		}
	}

	users, err := s.users.FindByProfileIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load bank owners: %w", err)
	}
	byProfile := make(map[string]models.User, len(users))
	for _, u := range users {
		byProfile[u.ProfileID] = u
	}

	overview := &BankOverview{Banks: make([]BankWithUser, 0, len(banks))}
	for _, bank := range banks {
		overview.Banks = append(overview.Banks, joinBankUser(bank, byProfile))
		if bank.IsVerified {
			overview.Verified++
		} else {
			overview.Pending++
		}
	}
	return overview, nil
}

// ListBanksForUser returns one user's bank rows with the same joined shape,
// plus the display object itself. An empty list is not an error.
func (s *BankService) ListBanksForUser(ctx context.Context, userID string) ([]BankWithUser, BankUser, error) {
	display := BankUser{Username: userID, ProfileID: userID}

	banks, err := s.banks.FindAllByUserID(ctx, userID)
	if err != nil {
		return nil, display, fmt.Errorf("load banks: %w", err)
	}
	user, err := s.users.FindByProfileID(ctx, userID)
	if err != nil {
		return nil, display, fmt.Errorf("load bank owner: %w", err)
	}
	if user != nil {
		display.Username = user.Username
	}

	joined := make([]BankWithUser, 0, len(banks))
	for _, bank := range banks {
		joined = append(joined, BankWithUser{BankDetail: bank, User: display})
	}
	return joined, display, nil
}

func (s *BankService) notifyVerified(ctx context.Context, bank *models.BankDetail) {
	if s.emails == nil {
		return
	}
	user, err := s.users.FindByProfileID(ctx, bank.UserID)
	if err != nil || user == nil {
		return
	}
	s.emails.SendBankVerifiedEmail(user.Email, user.Username)
}

func joinBankUser(bank models.BankDetail, byProfile map[string]models.User) BankWithUser {
	display := BankUser{Username: bank.UserID, ProfileID: bank.UserID}
	if u, ok := byProfile[bank.UserID]; ok {
		display.Username = u.Username
	}
	return BankWithUser{BankDetail: bank, User: display}
}
