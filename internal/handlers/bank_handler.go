package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/ormeredost-cmd/withdraw-server/internal/services"
)

type BankHandler struct {
	banks *services.BankService
}

func NewBankHandler(banks *services.BankService) *BankHandler {
	return &BankHandler{banks: banks}
}

// GetBankDetail returns the user's bank row and verified flag. A user with
// no bank on file gets a null bank, not a 404.
func (h *BankHandler) GetBankDetail(c *fiber.Ctx) error {
	profileID := c.Params("profileId")

	bank, verified, err := h.banks.GetBankDetail(c.UserContext(), profileID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"bank":     bank,
		"verified": verified,
	})
}

// VerifyBank marks a user's bank verified and active. The acting admin can
// identify themselves with the X-Admin-ID header.
func (h *BankHandler) VerifyBank(c *fiber.Ctx) error {
	profileID := c.Params("profileId")
	adminID := c.Get("X-Admin-ID", services.DefaultAdminID)

	bank, err := h.banks.VerifyBank(c.UserContext(), profileID, adminID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Bank verified for %s", profileID),
		"data":    bank,
	})
}

// RejectBank clears a user's bank verification.
func (h *BankHandler) RejectBank(c *fiber.Ctx) error {
	profileID := c.Params("profileId")

	bank, err := h.banks.RejectBank(c.UserContext(), profileID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Bank rejected for %s", profileID),
		"data":    bank,
	})
}

// GetAllBanks is the admin overview: every bank row joined with its owner,
// plus pending/verified counts.
func (h *BankHandler) GetAllBanks(c *fiber.Ctx) error {
	overview, err := h.banks.ListAllBanksWithUsers(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(overview)
}

// GetUserBanks returns one user's banks with the same joined shape.
func (h *BankHandler) GetUserBanks(c *fiber.Ctx) error {
	userID := c.Params("userId")

	banks, user, err := h.banks.ListBanksForUser(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"banks": banks,
		"user":  user,
	})
}
