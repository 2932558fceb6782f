package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"claimdesk/internal/service"
)

// CreateTemplate godoc
// @Summary Create a report template
// @Description Accepts inline content, an uploaded .docx (field template_file) or a link to one.
// @Tags templates
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param insurance_company formData string true "Insurance company"
// @Param template_name formData string true "Template name"
// @Param template_content formData string false "Inline content with token markers"
// @Param file_url formData string false "http(s) link to a .docx"
// @Param template_file formData file false ".docx template"
// @Success 201 {object} model.Template
// @Failure 400 {object} errorPayload
// @Router /templates [post]
func CreateTemplate(svc service.TemplateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := service.TemplateInput{
			InsuranceCompany: c.FormValue("insurance_company"),
			Name:             c.FormValue("template_name"),
			Content:          c.FormValue("template_content"),
			FileURL:          c.FormValue("file_url"),
		}

		fh, err := c.FormFile("template_file")
		switch {
		case err == nil:
			f, err := readUpload(fh)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
			}
			in.File = &f
		case errors.Is(err, fasthttp.ErrMissingFile), errors.Is(err, fasthttp.ErrNoMultipartForm):
		default:
			return writeError(c, fiber.StatusBadRequest, "INVALID_FORM", "request must be multipart/form-data")
		}

		tpl, err := svc.Create(c.UserContext(), principal(c), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(tpl)
	}
}

// ListTemplates godoc
// @Summary List templates of an insurance company
// @Tags templates
// @Produce json
// @Security BearerAuth
// @Param insurance_company query string true "Insurance company"
// @Success 200 {array} model.Template
// @Router /templates [get]
func ListTemplates(svc service.TemplateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		company := c.Query("insurance_company")
		if company == "" {
			return writeError(c, fiber.StatusBadRequest, "INVALID_INPUT", "insurance_company is required")
		}
		templates, err := svc.ListByCompany(c.UserContext(), company)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"data": templates})
	}
}

// GetTemplate godoc
// @Summary Get a template
// @Tags templates
// @Produce json
// @Security BearerAuth
// @Param id path int true "Template ID"
// @Success 200 {object} model.Template
// @Failure 404 {object} errorPayload
// @Router /templates/{id} [get]
func GetTemplate(svc service.TemplateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		tpl, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(tpl)
	}
}

// DeleteTemplate godoc
// @Summary Delete a template
// @Tags templates
// @Security BearerAuth
// @Param id path int true "Template ID"
// @Success 204
// @Router /templates/{id} [delete]
func DeleteTemplate(svc service.TemplateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
