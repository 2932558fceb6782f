package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"claimdesk/internal/service"
)

// MyBilling godoc
// @Summary The caller's open cases with approved field-officer expenses
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.OfficerBilling
// @Router /billing/me [get]
func MyBilling(svc service.BillingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Mine(c.UserContext(), principal(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// BillingReport godoc
// @Summary Approved field-officer expenses grouped per officer
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Param field_officer_id query int false "limit to one field officer"
// @Param month query int false "1-12, requires year"
// @Param year query int false "calendar year"
// @Success 200 {array} model.OfficerBilling
// @Failure 400 {object} errorPayload
// @Router /billing/reports [get]
func BillingReport(svc service.BillingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var q service.BillingQuery
		if raw := c.Query("field_officer_id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				return writeError(c, fiber.StatusBadRequest, "INVALID_FIELD_OFFICER", "invalid field_officer_id")
			}
			q.FieldOfficerID = &id
		}
		var err error
		if q.Month, err = strconv.Atoi(c.Query("month", "0")); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_MONTH", "invalid month")
		}
		if q.Year, err = strconv.Atoi(c.Query("year", "0")); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_YEAR", "invalid year")
		}

		res, err := svc.Report(c.UserContext(), principal(c), q)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
