package auth

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Middleware returns a Fiber handler that validates Bearer tokens on
// protected routes. On success the username lands in
// c.Locals("username"). The subject is cross-checked against the users
// file so revoking an account takes effect without waiting for token
// expiry.
func Middleware(issuer *TokenIssuer, users *UserStore) (handler fiber.Handler) {
	handler = func(c *fiber.Ctx) (err error) {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "missing Authorization header")
		}

		// Accept both "Bearer <token>" and a bare token
		tokenString := strings.TrimSpace(authHeader)
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenString = strings.TrimSpace(parts[1])
		}
		if tokenString == "" {
			return unauthorized(c, "empty token")
		}

		username, validateErr := issuer.Validate(tokenString)
		if validateErr != nil {
			return unauthorized(c, "could not validate credentials")
		}

		found, existsErr := users.Exists(username)
		if existsErr != nil || !found {
			return unauthorized(c, "could not validate credentials")
		}

		c.Locals("username", username)
		err = c.Next()
		return err
	}
	return handler
}

// unauthorized writes a 401 with the WWW-Authenticate header.
func unauthorized(c *fiber.Ctx, message string) (err error) {
	c.Set("WWW-Authenticate", "Bearer")
	err = c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": message})
	return err
}
