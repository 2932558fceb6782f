package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"claimdesk/internal/http/middleware"
	"claimdesk/internal/report"
	"claimdesk/internal/service"
	"claimdesk/internal/storage"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Stage is set for failed report generations.
	Stage string `json:"stage,omitempty"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: middleware.GetRequestID(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	})
}

// writeServiceError translates a service error into the envelope.
// Only messages written for users are passed through.
func writeServiceError(c *fiber.Ctx, err error) error {
	var ge *service.GenerationError
	if errors.As(err, &ge) {
		return c.Status(generationStatus(ge)).JSON(errorPayload{
			RequestID: middleware.GetRequestID(c),
			Error: errorEnvelope{
				Code:    "REPORT_GENERATION_FAILED",
				Message: ge.Cause(),
				Stage:   string(ge.Stage),
			},
		})
	}

	switch {
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id is required")
	case errors.Is(err, service.ErrInvalidInput):
		return writeError(c, fiber.StatusBadRequest, "INVALID_INPUT", err.Error())
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, service.ErrForbidden):
		return writeError(c, fiber.StatusForbidden, "FORBIDDEN", "you do not have access to this case")
	case errors.Is(err, service.ErrCaseClosed):
		return writeError(c, fiber.StatusConflict, "CASE_CLOSED", "case is closed and can only be changed by an administrator")
	case errors.Is(err, service.ErrConflict):
		return writeError(c, fiber.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, service.ErrFileMissing):
		return writeError(c, fiber.StatusNotFound, "FILE_MISSING", "file is missing from storage; it may have been removed")
	case errors.Is(err, storage.ErrUnavailable):
		return writeError(c, fiber.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", storage.ErrUnavailable.Error())
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

func generationStatus(ge *service.GenerationError) int {
	switch {
	case errors.Is(ge, service.ErrInvalidInput), errors.Is(ge, service.ErrIDRequired):
		return fiber.StatusBadRequest
	case errors.Is(ge, service.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(ge, service.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(ge, report.ErrUnsupportedFormat),
		errors.Is(ge, report.ErrMalformedPackage),
		errors.Is(ge, report.ErrUnresolvedToken):
		return fiber.StatusUnprocessableEntity
	case errors.Is(ge, report.ErrTemplateFetch):
		return fiber.StatusBadGateway
	case errors.Is(ge, storage.ErrUnavailable):
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusUnauthorized:
			return writeError(c, status, "UNAUTHORIZED", fe.Message)
		case fiber.StatusForbidden:
			return writeError(c, status, "FORBIDDEN", fe.Message)
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body is too large")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
