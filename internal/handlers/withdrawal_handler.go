package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/ormeredost-cmd/withdraw-server/internal/services"
)

type CreateWithdrawalRequest struct {
	ProfileID   string          `json:"profile_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	BankDetails json.RawMessage `json:"bank_details"`
}

type UpdateWithdrawalStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type WithdrawalHandler struct {
	withdrawals *services.WithdrawalService
}

func NewWithdrawalHandler(withdrawals *services.WithdrawalService) *WithdrawalHandler {
	return &WithdrawalHandler{withdrawals: withdrawals}
}

// CreateWithdrawal submits a new withdrawal request for a user with a
// verified bank.
func (h *WithdrawalHandler) CreateWithdrawal(c *fiber.Ctx) error {
	req := new(CreateWithdrawalRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validate.Struct(req); err != nil {
		return respondError(c, services.ErrMissingFields)
	}

	created, err := h.withdrawals.CreateRequest(c.UserContext(), req.ProfileID, req.Amount, req.BankDetails)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":     true,
		"withdraw_id": created.WithdrawID,
		"message":     "Withdrawal request submitted. An admin will process it within 24 hours.",
		"data":        created,
	})
}

// ListWithdrawals returns every request, newest first.
func (h *WithdrawalHandler) ListWithdrawals(c *fiber.Ctx) error {
	reqs, err := h.withdrawals.ListRequests(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"withdraws": reqs,
	})
}

// UpdateWithdrawalStatus sets a new status on the request matching the path
// identifier, which may be either the store id or the withdraw id.
func (h *WithdrawalHandler) UpdateWithdrawalStatus(c *fiber.Ctx) error {
	req := new(UpdateWithdrawalStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "status is required",
		})
	}

	updated, err := h.withdrawals.UpdateStatus(c.UserContext(), c.Params("id"), req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    updated,
	})
}

// DeleteWithdrawal hard-deletes the request matching the path identifier.
func (h *WithdrawalHandler) DeleteWithdrawal(c *fiber.Ctx) error {
	if err := h.withdrawals.DeleteRequest(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
	})
}
