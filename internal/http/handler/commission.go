package handler

import (
	"github.com/gofiber/fiber/v2"

	"claimdesk/internal/service"
)

// GetCommission godoc
// @Summary Get a case's commission
// @Tags commissions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Case ID"
// @Success 200 {object} model.Commission
// @Failure 404 {object} errorPayload
// @Router /cases/{id}/commission [get]
func GetCommission(svc service.CommissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		found, err := svc.Get(c.UserContext(), principal(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(found)
	}
}

// SaveCommission godoc
// @Summary Create or replace a case's commission
// @Tags commissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Case ID"
// @Param body body service.CommissionInput true "Commission"
// @Success 200 {object} model.Commission
// @Failure 400 {object} errorPayload
// @Router /cases/{id}/commission [put]
func SaveCommission(svc service.CommissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in service.CommissionInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		}
		saved, err := svc.Save(c.UserContext(), principal(c), id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(saved)
	}
}
