package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ormeredost-cmd/withdraw-server/internal/handlers"
)

// Setup wires the wallet endpoints. Admin routes are grouped under
// /api/admin; gateway-level authentication in front of them is out of scope
// for this service.
func Setup(app *fiber.App, banks *handlers.BankHandler, withdrawals *handlers.WithdrawalHandler) {
	api := app.Group("/api")

	api.Get("/bank-details/:profileId", banks.GetBankDetail)
	api.Post("/withdraw-request", withdrawals.CreateWithdrawal)

	admin := api.Group("/admin")

	admin.Put("/verify-bank/:profileId", banks.VerifyBank)
	admin.Put("/reject-bank/:profileId", banks.RejectBank)
	admin.Get("/all-banks", banks.GetAllBanks)
	admin.Get("/user-banks/:userId", banks.GetUserBanks)

	admin.Get("/withdraw-requests", withdrawals.ListWithdrawals)
	admin.Put("/withdraw-status/:id", withdrawals.UpdateWithdrawalStatus)
	admin.Delete("/withdraw/:id", withdrawals.DeleteWithdrawal)
}
