package httpapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/heliotrack/solar-installations/internal/auth"
	"github.com/heliotrack/solar-installations/internal/httperr"
)

// principalKey is the fiber.Ctx locals key holding the verified *auth.Claims.
const principalKey = "principal"

// RequireAuth verifies the bearer token and stores the authenticated
// principal on the request context.
func RequireAuth(tokens *auth.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)

		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			return denied(c, httperr.New(fiber.StatusUnauthorized, "Authentication required"))
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, prefix))
		if err != nil {
			return denied(c, err)
		}

		c.Locals(principalKey, claims)
		return c.Next()
	}
}

// RequirePermission checks the authenticated principal against the RBAC
// table. It must run after RequireAuth.
func RequirePermission(perm auth.Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, _ := c.Locals(principalKey).(*auth.Claims)
		if err := auth.HasPermission(principal, perm); err != nil {
			return denied(c, err)
		}
		return c.Next()
	}
}

// denied renders an auth failure. Auth responses use a `message` body, unlike
// the `error` body of the centralized handler; both shapes are part of the
// existing API contract.
func denied(c *fiber.Ctx, err error) error {
	status := fiber.StatusUnauthorized
	if s, ok := httperr.StatusOf(err); ok {
		status = s
	}
	return c.Status(status).JSON(fiber.Map{"message": err.Error()})
}
