package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ormeredost-cmd/withdraw-server/internal/database"
	"github.com/ormeredost-cmd/withdraw-server/internal/handlers"
	"github.com/ormeredost-cmd/withdraw-server/internal/models"
	"github.com/ormeredost-cmd/withdraw-server/internal/routes"
	"github.com/ormeredost-cmd/withdraw-server/internal/services"
	"github.com/ormeredost-cmd/withdraw-server/internal/store"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	st := store.New(db)
	bankService := services.NewBankService(st.Banks, st.Users, nil)
	withdrawalService := services.NewWithdrawalService(st.Withdrawals, st.Users, bankService, nil)

	app := fiber.New()
	routes.Setup(app, handlers.NewBankHandler(bankService), handlers.NewWithdrawalHandler(withdrawalService))
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var payload map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &payload))
	return resp.StatusCode, payload
}

func seedVerifiedBank(t *testing.T, db *gorm.DB, userID string) {
	t.Helper()
	require.NoError(t, db.Create(&models.BankDetail{
		UserID:     userID,
		BankName:   "State Bank",
		IsVerified: true,
		IsActive:   true,
	}).Error)
}

func TestGetBankDetail_NullWhenAbsent(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/api/bank-details/p1", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Nil(t, body["bank"])
	assert.Equal(t, false, body["verified"])
}

func TestVerifyAndRejectBank(t *testing.T) {
	app, db := newTestApp(t)
	require.NoError(t, db.Create(&models.BankDetail{UserID: "p1", BankName: "State Bank"}).Error)

	status, body := doJSON(t, app, http.MethodPut, "/api/admin/verify-bank/p1", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, true, data["is_verified"])
	assert.Equal(t, "admin", data["verified_by"])

	status, body = doJSON(t, app, http.MethodPut, "/api/admin/reject-bank/p1", nil)
	assert.Equal(t, http.StatusOK, status)
	data = body["data"].(map[string]interface{})
	assert.Equal(t, false, data["is_verified"])
	assert.Equal(t, false, data["is_active"])
	assert.Nil(t, data["verified_by"])
}

func TestVerifyBank_NotFound(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPut, "/api/admin/verify-bank/ghost", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.NotEmpty(t, body["error"])
}

func TestCreateWithdrawal_Validation(t *testing.T) {
	app, db := newTestApp(t)
	seedVerifiedBank(t, db, "p1")

	status, body := doJSON(t, app, http.MethodPost, "/api/withdraw-request", fiber.Map{
		"amount": 500,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.NotEmpty(t, body["error"])

	status, body = doJSON(t, app, http.MethodPost, "/api/withdraw-request", fiber.Map{
		"profile_id": "p1",
		"amount":     99,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["error"], "minimum")
}

func TestCreateWithdrawal_NotEligible(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/withdraw-request", fiber.Map{
		"profile_id": "p1",
		"amount":     500,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["error"], "verified")
}

func TestWithdrawalFlowOverHTTP(t *testing.T) {
	app, db := newTestApp(t)
	require.NoError(t, db.Create(&models.User{ProfileID: "p1", Username: "alice", Email: "alice@example.com"}).Error)
	seedVerifiedBank(t, db, "p1")

	status, body := doJSON(t, app, http.MethodPost, "/api/withdraw-request", fiber.Map{
		"profile_id":   "p1",
		"amount":       500,
		"bank_details": fiber.Map{"bank": "X"},
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, true, body["success"])
	withdrawID := body["withdraw_id"].(string)
	assert.Regexp(t, `^WD_[A-Za-z0-9_-]{8}$`, withdrawID)

	status, body = doJSON(t, app, http.MethodPut, "/api/admin/withdraw-status/"+withdrawID, fiber.Map{
		"status": "completed",
	})
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "completed", data["status"])

	status, body = doJSON(t, app, http.MethodGet, "/api/admin/withdraw-requests", nil)
	require.Equal(t, http.StatusOK, status)
	withdraws := body["withdraws"].([]interface{})
	require.Len(t, withdraws, 1)
	assert.Equal(t, "completed", withdraws[0].(map[string]interface{})["status"])

	status, body = doJSON(t, app, http.MethodDelete, "/api/admin/withdraw/"+withdrawID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])

	status, _ = doJSON(t, app, http.MethodDelete, "/api/admin/withdraw/"+withdrawID, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestUpdateWithdrawalStatus_RequiresStatus(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPut, "/api/admin/withdraw-status/1", fiber.Map{})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "status is required", body["error"])
}

func TestGetAllBanks(t *testing.T) {
	app, db := newTestApp(t)
	require.NoError(t, db.Create(&models.User{ProfileID: "p1", Username: "alice", Email: "alice@example.com"}).Error)
	seedVerifiedBank(t, db, "p1")
	require.NoError(t, db.Create(&models.BankDetail{UserID: "p2", BankName: "Other Bank"}).Error)

	status, body := doJSON(t, app, http.MethodGet, "/api/admin/all-banks", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["pending"])
	assert.Equal(t, float64(1), body["verified"])

	banks := body["banks"].([]interface{})
	require.Len(t, banks, 2)
	for _, raw := range banks {
		bank := raw.(map[string]interface{})
		user := bank["user"].(map[string]interface{})
		if bank["user_id"] == "p1" {
			assert.Equal(t, "alice", user["username"])
		} else {
			assert.Equal(t, "p2", user["username"])
		}
	}
}

func TestGetUserBanks_EmptyList(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/api/admin/user-banks/nobody", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["banks"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "nobody", user["username"])
}
