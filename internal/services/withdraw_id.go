package services

import (
	"crypto/rand"
	"fmt"
)

const (
	withdrawIDPrefix = "WD_"
	withdrawIDLength = 8
	// URL-safe alphabet, 64 characters so a masked byte is uniform.
	withdrawIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

// NewWithdrawID returns a fresh "WD_"-prefixed 8-character identifier.
// Collisions are treated as negligible, not retried. The prefix means a
// generated id can never parse as a numeric store id, which the
// dual-identifier resolution in WithdrawalService relies on.
func NewWithdrawID() string {
	buf := make([]byte, withdrawIDLength)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("withdraw id generation: %v", err))
	}
	for i, b := range buf {
		buf[i] = withdrawIDAlphabet[b&63]
	}
	return withdrawIDPrefix + string(buf)
}
