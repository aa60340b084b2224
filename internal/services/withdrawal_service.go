package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/ormeredost-cmd/withdraw-server/internal/models"
	"github.com/ormeredost-cmd/withdraw-server/internal/store"
)

// fallbackEmail is stored when neither the identity record nor the bank
// snapshot carries one.
const fallbackEmail = "user@bgmi.com"

// minWithdrawAmount is a fixed business constant, not configuration.
var minWithdrawAmount = decimal.NewFromInt(100)

// EligibilityGate decides whether a user may withdraw. Satisfied by
// *BankService.
type EligibilityGate interface {
	CanWithdraw(ctx context.Context, profileID string) (bool, error)
}

// WithdrawalService owns the withdrawal request lifecycle: creation behind
// the eligibility gate, listing, and dual-identifier status updates and
// deletes.
//
// There is deliberately no lock or transaction spanning the gate check and
// the insert: two concurrent creates for one user can both pass the gate
// and both land as pending. The store is the source of truth and an admin
// approves exactly one.
type WithdrawalService struct {
	withdrawals store.Withdrawals
	users       store.Users
	gate        EligibilityGate
	emails      *EmailService
}

func NewWithdrawalService(withdrawals store.Withdrawals, users store.Users, gate EligibilityGate, emails *EmailService) *WithdrawalService {
	return &WithdrawalService{withdrawals: withdrawals, users: users, gate: gate, emails: emails}
}

// CreateRequest validates, checks the gate, and persists a new pending
// withdrawal. Validation and eligibility failures happen before any write;
// no partial record is ever created.
func (s *WithdrawalService) CreateRequest(ctx context.Context, profileID string, amount decimal.Decimal, snapshot json.RawMessage) (*models.WithdrawalRequest, error) {
	if profileID == "" || amount.IsZero() {
		return nil, ErrMissingFields
	}
	if amount.LessThan(minWithdrawAmount) {
		return nil, ErrBelowMinimum
	}

	ok, err := s.gate.CanWithdraw(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotEligible
	}

	if len(snapshot) == 0 {
		snapshot = json.RawMessage("{}")
	}
	name, email := s.resolveIdentity(ctx, profileID, snapshot)

	req := &models.WithdrawalRequest{
		WithdrawID:     NewWithdrawID(),
		ProfileID:      profileID,
		ProfileName:    name,
		UserEmail:      email,
		WithdrawAmount: amount,
		BankDetails:    snapshot,
		Status:         models.WithdrawalPending,
	}
	if err := s.withdrawals.Insert(ctx, req); err != nil {
		return nil, fmt.Errorf("insert withdrawal: %w", err)
	}
	return req, nil
}

// ListRequests returns every withdrawal, newest first. No pagination.
func (s *WithdrawalService) ListRequests(ctx context.Context) ([]models.WithdrawalRequest, error) {
	reqs, err := s.withdrawals.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load withdrawals: %w", err)
	}
	return reqs, nil
}

// UpdateStatus sets the status (stored verbatim) on the request matching
// identifier, refreshing updated_at. The identifier may be either the store
// id or the generated withdraw id; store id wins when both could match.
func (s *WithdrawalService) UpdateStatus(ctx context.Context, identifier, status string) (*models.WithdrawalRequest, error) {
	patch := map[string]interface{}{"status": status}

	if id, numeric := parseStoreID(identifier); numeric {
		req, err := s.withdrawals.UpdateByID(ctx, id, patch)
		if err != nil {
			return nil, fmt.Errorf("update withdrawal: %w", err)
		}
		if req != nil {
			s.notifyStatus(req)
			return req, nil
		}
	}

	req, err := s.withdrawals.UpdateByWithdrawID(ctx, identifier, patch)
	if err != nil {
		return nil, fmt.Errorf("update withdrawal: %w", err)
	}
	if req == nil {
		return nil, ErrNotFound
	}
	s.notifyStatus(req)
	return req, nil
}

// DeleteRequest hard-deletes the request matching identifier, with the same
// resolution policy as UpdateStatus.
func (s *WithdrawalService) DeleteRequest(ctx context.Context, identifier string) error {
	if id, numeric := parseStoreID(identifier); numeric {
		removed, err := s.withdrawals.DeleteByID(ctx, id)
		if err != nil {
			return fmt.Errorf("delete withdrawal: %w", err)
		}
		if removed > 0 {
			return nil
		}
	}

	removed, err := s.withdrawals.DeleteByWithdrawID(ctx, identifier)
	if err != nil {
		return fmt.Errorf("delete withdrawal: %w", err)
	}
	if removed == 0 {
		return ErrNotFound
	}
	return nil
}

// resolveIdentity denormalizes the requester's display name and email into
// the new record. A missing identity row never fails the request: the name
// falls back to the profile id, the email to the snapshot's "email" field
// and then to a placeholder.
func (s *WithdrawalService) resolveIdentity(ctx context.Context, profileID string, snapshot json.RawMessage) (string, string) {
	user, err := s.users.FindByProfileID(ctx, profileID)
	if err == nil && user != nil {
		return user.Username, user.Email
	}

	email := fallbackEmail
	var fields struct {
		Email string `json:"email"`
	}
	if json.Unmarshal(snapshot, &fields) == nil && fields.Email != "" {
		email = fields.Email
	}
	return profileID, email
}

func (s *WithdrawalService) notifyStatus(req *models.WithdrawalRequest) {
	s.emails.SendWithdrawalStatusEmail(req.UserEmail, req.WithdrawID, req.Status, req.WithdrawAmount)
}

// parseStoreID reports whether identifier lives in the numeric store-id
// space. Generated withdraw ids carry the WD_ prefix and never do, so the
// two spaces cannot collide.
func parseStoreID(identifier string) (uint, bool) {
	id, err := strconv.ParseUint(identifier, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
