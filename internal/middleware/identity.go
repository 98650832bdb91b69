package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/types"
)

// RequireUser resolves the acting user id from the X-User-Id header and
// stores it in context. Session and credential handling live upstream; this
// middleware only plumbs the identity the service attributes records to.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := c.Get("X-User-Id")
		if user == "" {
			return &types.CustomError{
				Code:    fiber.StatusBadRequest,
				Message: "X-User-Id header is required",
				Type:    "inspection.identity.user",
			}
		}

		c.Locals("userId", user)

		return c.Next()
	}
}
