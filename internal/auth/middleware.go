package auth

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
)

// CookieToAuthHeader copies the session cookie into the Authorization header
// so the JWT middleware accepts either transport. The SPA rides on the
// cookie; API clients send a bearer token directly.
func CookieToAuthHeader(c *fiber.Ctx) error {
	if c.Get(fiber.HeaderAuthorization) == "" {
		if tok := c.Cookies(TokenCookie); tok != "" {
			c.Request().Header.Set(fiber.HeaderAuthorization, "Bearer "+tok)
		}
	}
	return c.Next()
}

// NewMiddleware validates the session JWT on every route registered after it.
// A missing or invalid token is a 401 with no side effect.
func NewMiddleware(jwtSecret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: []byte(jwtSecret),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		},
	})
}
