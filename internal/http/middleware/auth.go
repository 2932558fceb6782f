package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"claimdesk/internal/authz"
)

// PrincipalLocalKey is the Fiber locals key holding the authenticated authz.Principal.
const PrincipalLocalKey = "principal"

// TokenParser turns a bearer token into a principal.
type TokenParser interface {
	Parse(raw string) (authz.Principal, error)
}

// Authenticate requires a valid "Authorization: Bearer <token>" header.
func Authenticate(tp TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}
		scheme, raw, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(raw) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization format")
		}

		p, err := tp.Parse(strings.TrimSpace(raw))
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}
		c.Locals(PrincipalLocalKey, p)
		return c.Next()
	}
}

// Authorize consults policy once for action and stores the granted scope on the principal.
func Authorize(policy authz.Policy, action authz.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := GetPrincipal(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
		}
		granted, err := policy.Grant(p, action)
		if err != nil {
			if errors.Is(err, authz.ErrForbidden) {
				return fiber.NewError(fiber.StatusForbidden, "not allowed to "+string(action))
			}
			return err
		}
		c.Locals(PrincipalLocalKey, granted)
		return c.Next()
	}
}

// GetPrincipal returns the principal stored by Authenticate.
func GetPrincipal(c *fiber.Ctx) (authz.Principal, bool) {
	p, ok := c.Locals(PrincipalLocalKey).(authz.Principal)
	return p, ok
}
