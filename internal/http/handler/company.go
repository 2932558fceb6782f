package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"claimdesk/internal/service"
)

type createCompanyRequest struct {
	Name string `json:"name"`
}

// ListCompanies godoc
// @Summary List insurance companies
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param active query bool false "only active companies"
// @Success 200 {array} model.Company
// @Router /companies [get]
func ListCompanies(svc service.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		activeOnly := false
		if raw := c.Query("active"); raw != "" {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_ACTIVE", "active must be true or false")
			}
			activeOnly = v
		}
		items, err := svc.List(c.UserContext(), principal(c), activeOnly)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

// CreateCompany godoc
// @Summary Register an insurance company
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body createCompanyRequest true "Company"
// @Success 201 {object} model.Company
// @Failure 409 {object} errorPayload
// @Router /companies [post]
func CreateCompany(svc service.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createCompanyRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		}
		created, err := svc.Create(c.UserContext(), principal(c), req.Name)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// ToggleCompany godoc
// @Summary Activate or deactivate an insurance company
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Success 200 {object} model.Company
// @Failure 404 {object} errorPayload
// @Router /companies/{id}/toggle [post]
func ToggleCompany(svc service.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		updated, err := svc.ToggleActive(c.UserContext(), principal(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(updated)
	}
}
