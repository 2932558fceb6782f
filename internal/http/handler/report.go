package handler

import (
	"github.com/gofiber/fiber/v2"

	"claimdesk/internal/service"
)

// ListReports godoc
// @Summary List generated reports of a case
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Case ID"
// @Success 200 {array} model.GeneratedReport
// @Router /cases/{id}/reports [get]
func ListReports(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		reports, err := svc.ListForCase(c.UserContext(), principal(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"data": reports})
	}
}

// GenerateReport godoc
// @Summary Render a template for a case and store the result
// @Description Failures carry the stage they happened in and a user-facing cause.
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Case ID"
// @Param body body service.GenerateInput true "Generation input"
// @Success 201 {object} model.GeneratedReport
// @Failure 422 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /cases/{id}/reports [post]
func GenerateReport(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in service.GenerateInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		}
		rep, err := svc.Generate(c.UserContext(), principal(c), id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(rep)
	}
}

// DownloadReport godoc
// @Summary Redirect to a signed download URL
// @Tags reports
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 302
// @Failure 404 {object} errorPayload
// @Router /reports/{id}/download [get]
func DownloadReport(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		url, err := svc.DownloadURL(c.UserContext(), principal(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Redirect(url, fiber.StatusFound)
	}
}

// DeleteReport godoc
// @Summary Delete a report and its file
// @Tags reports
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 204
// @Router /reports/{id} [delete]
func DeleteReport(svc service.ReportService) fiber.Handler {
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
