package handler

import (
	"github.com/gofiber/fiber/v2"

	"claimdesk/internal/service"
)

// UploadDocuments godoc
// @Summary Upload evidence files for a case
// @Description All files are stored or none are.
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Case ID"
// @Param documents formData file true "Files (repeat the field, up to the configured maximum)"
// @Param document_type formData string false "Document type"
// @Param doc_source formData string false "Where the document came from"
// @Success 201 {array} model.CaseDocument
// @Failure 400 {object} errorPayload
// @Router /cases/{id}/documents [post]
func UploadDocuments(svc service.CaseDocumentService, maxFiles int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		form, err := c.MultipartForm()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "at least one file is required in field documents")
		}
		headers := form.File["documents"]
		if len(headers) == 0 {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "at least one file is required in field documents")
		}
		if maxFiles > 0 && len(headers) > maxFiles {
			return writeError(c, fiber.StatusBadRequest, "TOO_MANY_FILES", "too many files in one upload")
		}

		files := make([]service.UploadFile, 0, len(headers))
		for _, fh := range headers {
			f, err := readUpload(fh)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
			}
			files = append(files, f)
		}

		docs, err := svc.UploadBatch(c.UserContext(), principal(c), id, files, c.FormValue("document_type"), c.FormValue("doc_source"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": docs})
	}
}

// ListDocuments godoc
// @Summary List evidence files of a case
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Case ID"
// @Success 200 {array} model.CaseDocument
// @Router /cases/{id}/documents [get]
func ListDocuments(svc service.CaseDocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		docs, err := svc.ListForCase(c.UserContext(), principal(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"data": docs})
	}
}

// ViewDocument godoc
// @Summary Signed inline URL for a document
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 200 {object} map[string]string
// @Router /documents/{id}/view [get]
func ViewDocument(svc service.CaseDocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		url, err := svc.ViewURL(c.UserContext(), principal(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"url": url})
	}
}

// DownloadDocument godoc
// @Summary Signed attachment URL for a document
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 200 {object} map[string]string
// @Router /documents/{id}/download [get]
func DownloadDocument(svc service.CaseDocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		url, err := svc.DownloadURL(c.UserContext(), principal(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"url": url})
	}
}

// DeleteDocument godoc
// @Summary Delete a document and its file
// @Tags documents
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 204
// @Failure 409 {object} errorPayload
// @Router /documents/{id} [delete]
func DeleteDocument(svc service.CaseDocumentService) fiber.Handler {
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
