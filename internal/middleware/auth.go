package middleware

import (
	"strings"

	"krishiseva/internal/apperror"
	"krishiseva/internal/services"

	"github.com/gofiber/fiber/v2"
)

const identityKey = "identity"

// TokenVerifier resolves a bearer token to an identity.
type TokenVerifier interface {
	Verify(token string) (*services.Identity, error)
}

// AuthRequired is a Fiber middleware to check for a valid bearer token.
// The resolved identity is available to later handlers through CurrentUser.
func AuthRequired(tokens TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Expected format: "Bearer <token>"
		parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			return deny(c, "Access denied. No token provided.")
		}

		identity, err := tokens.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			if apperror.Is(err, apperror.TokenExpired) {
				return deny(c, "Token has expired. Please login again.")
			}
			return deny(c, "Invalid token. Authentication failed.")
		}

		c.Locals(identityKey, identity)
		return c.Next()
	}
}

// CurrentUser returns the identity stored by AuthRequired, or nil.
func CurrentUser(c *fiber.Ctx) *services.Identity {
	identity, _ := c.Locals(identityKey).(*services.Identity)
	return identity
}

func deny(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}
