package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"claimdesk/internal/authz"
	"claimdesk/internal/http/middleware"
)

// parseID reads a positive integer path parameter.
func parseID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func principal(c *fiber.Ctx) authz.Principal {
	p, _ := middleware.GetPrincipal(c)
	return p
}
