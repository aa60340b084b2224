package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Known withdrawal statuses. The set is open: admins may store other values
// and they are accepted verbatim.
const (
	WithdrawalPending    = "pending"
	WithdrawalProcessing = "processing"
	WithdrawalCompleted  = "completed"
	WithdrawalRejected   = "rejected"
)

// WithdrawalRequest is one payout claim. It carries two immutable
// identifiers: the store-assigned ID and the generated WithdrawID that users
// and admins pass around. ProfileName, UserEmail and BankDetails are
// snapshots taken at creation time and never re-derived.
type WithdrawalRequest struct {
	ID             uint            `gorm:"primarykey" json:"id"`
	WithdrawID     string          `gorm:"uniqueIndex;not null" json:"withdraw_id"`
	ProfileID      string          `gorm:"not null;index" json:"profile_id"`
	ProfileName    string          `json:"profile_name"`
	UserEmail      string          `json:"user_email"`
	WithdrawAmount decimal.Decimal `gorm:"type:numeric(20,2)" json:"withdraw_amount"`
	BankDetails    json.RawMessage `gorm:"type:jsonb" json:"bank_details"`
	Status         string          `gorm:"default:'pending'" json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (WithdrawalRequest) TableName() string {
	return "withdraw_requests"
}
