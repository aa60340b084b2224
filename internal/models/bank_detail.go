package models

import (
	"time"
)

// BankDetail is a user's registered payout destination. One active row is
// expected per user. Rows are created by the bank-registration flow in the
// user-facing server; this service only reads them and flips the
// verification flags. They are never deleted here.
type BankDetail struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	UserID        string    `gorm:"not null;index" json:"user_id"`
	BankName      string    `json:"bank_name"`
	AccountHolder string    `json:"account_holder"`
	AccountNumber string    `json:"account_number"`
	UPIID         string    `gorm:"column:upi_id" json:"upi_id"`
	IFSC          string    `gorm:"column:ifsc" json:"ifsc"`
	Branch        string    `json:"branch"`
	IsVerified    bool      `gorm:"default:false" json:"is_verified"`
	IsActive      bool      `gorm:"default:false" json:"is_active"`
	VerifiedBy    *string   `json:"verified_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (BankDetail) TableName() string {
	return "user_bank_details"
}

// Eligible reports whether this bank may back a withdrawal.
func (b *BankDetail) Eligible() bool {
	return b.IsVerified && b.IsActive
}
