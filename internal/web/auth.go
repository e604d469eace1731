package web

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/config"
)

// bearerPrefix per RFC 6750.
const bearerPrefix = "Bearer "

// AuthMiddleware is a Fiber middleware that checks every API request for the
// configured token, either as a bearer credential or in the X-API-Key
// header. Issuing and rotating tokens is an external concern.
//
// The liveness endpoint stays open so load balancers can probe without
// credentials.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	token := []byte(cfg.Webserver.APIToken)

	return func(c *fiber.Ctx) error {
		if c.Path() == CheckAliveURI {
			return c.Next()
		}

		candidate := c.Get("X-API-Key")

		if candidate == "" {
			authHeader := c.Get(fiber.HeaderAuthorization)
			if strings.HasPrefix(authHeader, bearerPrefix) {
				candidate = strings.TrimPrefix(authHeader, bearerPrefix)
			}
		}

		if subtle.ConstantTimeCompare(token, []byte(candidate)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		}

		return c.Next()
	}
}
