package models

import (
	"time"
)

// User mirrors the external registeruser identity table. This service only
// reads it — registration lives in a separate server.
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ProfileID string    `gorm:"uniqueIndex;not null" json:"profile_id"`
	Username  string    `gorm:"not null" json:"username"`
	Email     string    `gorm:"not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "registeruser"
}
