package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ormeredost-cmd/withdraw-server/internal/database"
	"github.com/ormeredost-cmd/withdraw-server/internal/models"
	"github.com/ormeredost-cmd/withdraw-server/internal/store"
)

type testEnv struct {
	ctx         context.Context
	db          *gorm.DB
	banks       *BankService
	withdrawals *WithdrawalService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// Named in-memory database so the connection pool shares one instance.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	st := store.New(db)
	banks := NewBankService(st.Banks, st.Users, nil)
	withdrawals := NewWithdrawalService(st.Withdrawals, st.Users, banks, nil)

	return &testEnv{
		ctx:         context.Background(),
		db:          db,
		banks:       banks,
		withdrawals: withdrawals,
	}
}

func (e *testEnv) seedUser(t *testing.T, profileID, username, email string) {
	t.Helper()
	require.NoError(t, e.db.Create(&models.User{
		ProfileID: profileID,
		Username:  username,
		Email:     email,
	}).Error)
}

func (e *testEnv) seedBank(t *testing.T, userID string, verified, active bool) *models.BankDetail {
	t.Helper()
	bank := &models.BankDetail{
		UserID:        userID,
		BankName:      "State Bank",
		AccountHolder: "Holder",
		AccountNumber: "1234567890",
		IFSC:          "SBIN0000001",
		IsVerified:    verified,
		IsActive:      active,
	}
	require.NoError(t, e.db.Create(bank).Error)
	return bank
}

// backdate pushes a row's created_at into the past so newest-first ordering
// is deterministic.
func (e *testEnv) backdate(t *testing.T, model interface{}, id uint, age time.Duration) {
	t.Helper()
	when := time.Now().Add(-age)
	require.NoError(t, e.db.Model(model).Where("id = ?", id).UpdateColumn("created_at", when).Error)
}
