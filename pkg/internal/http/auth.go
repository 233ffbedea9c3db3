package http

import (
	"strings"

	"github.com/conclave-dev/conclave/pkg/internal/security"
	"github.com/gofiber/fiber/v2"
)

// authMiddleware verifies the bearer credential once per request. A
// missing or invalid token does not reject the request; the viewer is
// simply anonymous and every operation requiring identity refuses later.
// The raw token is kept in locals for the subscription upgrade, which
// verifies per connection.
func authMiddleware(verifier security.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		c.Locals("token", token)

		if identity := verifier.Verify(token); identity.Authenticated {
			c.Locals("userID", identity.AccountID)
		}

		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if parts := strings.Split(header, " "); len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return c.Query("tk")
}
