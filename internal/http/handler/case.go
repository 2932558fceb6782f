package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"claimdesk/internal/model"
	"claimdesk/internal/service"
)

type updateStatusRequest struct {
	Status model.CaseStatus `json:"status"`
}

// CreateCase godoc
// @Summary Open a case
// @Tags cases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CreateCaseInput true "Case"
// @Success 201 {object} model.Case
// @Failure 400 {object} errorPayload
// @Router /cases [post]
func CreateCase(svc service.CaseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CreateCaseInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		}
		created, err := svc.Create(c.UserContext(), principal(c), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// ListCases godoc
// @Summary List cases visible to the caller
// @Tags cases
// @Produce json
// @Security BearerAuth
// @Param status query string false "open, in_progress or closed"
// @Param limit query int false "page size" default(20)
// @Param offset query int false "offset" default(0)
// @Success 200 {object} service.CaseListResult
// @Router /cases [get]
func ListCases(svc service.CaseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "20"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), principal(c), model.CaseStatus(c.Query("status")), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetCase godoc
// @Summary Get a case with its details
// @Tags cases
// @Produce json
// @Security BearerAuth
// @Param id path int true "Case ID"
// @Success 200 {object} model.Case
// @Failure 404 {object} errorPayload
// @Router /cases/{id} [get]
func GetCase(svc service.CaseService) fiber.Handler {
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

// UpdateCaseStatus godoc
// @Summary Change a case's status
// @Tags cases
// @Accept json
// @Security BearerAuth
// @Param id path int true "Case ID"
// @Param body body updateStatusRequest true "Status"
// @Success 204
// @Failure 409 {object} errorPayload
// @Router /cases/{id}/status [patch]
func UpdateCaseStatus(svc service.CaseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req updateStatusRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		}
		if err := svc.UpdateStatus(c.UserContext(), principal(c), id, req.Status); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// SaveCaseDetails godoc
// @Summary Upsert patient, hospital, policy, bill, investigation or dispatch details
// @Tags cases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Case ID"
// @Param body body service.CaseDetails true "Details"
// @Success 200 {object} model.Case
// @Router /cases/{id}/details [put]
func SaveCaseDetails(svc service.CaseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var d service.CaseDetails
		if err := c.BodyParser(&d); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		}
		updated, err := svc.SaveDetails(c.UserContext(), principal(c), id, d)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(updated)
	}
}

// DeleteCase godoc
// @Summary Delete a case with its details, documents and reports
// @Tags cases
// @Security BearerAuth
// @Param id path int true "Case ID"
// @Success 204
// @Failure 403 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /cases/{id} [delete]
func DeleteCase(svc service.CaseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), principal(c), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
