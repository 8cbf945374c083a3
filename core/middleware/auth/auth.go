package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Config holds configuration for the auth middleware.
type Config struct {
	// Secret is the key session tokens were signed with.
	Secret string
}

// LocalsAdminID is the fiber locals key under which the authenticated admin
// identifier is stored.
const LocalsAdminID = "admin_id"

// New creates a middleware that rejects requests without a valid bearer
// session token. Expiry is enforced by the token's exp claim.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return unauthorized(c, "missing bearer token")
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if tokenStr == "" {
			return unauthorized(c, "missing session token")
		}

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.Secret), nil
		})
		if err != nil || !token.Valid {
			return unauthorized(c, "invalid or expired session token")
		}

		sub, err := token.Claims.GetSubject()
		if err != nil || sub == "" {
			return unauthorized(c, "invalid session token")
		}

		c.Locals(LocalsAdminID, sub)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msg})
}
