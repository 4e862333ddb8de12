// Package identity extracts the authenticated user from the request context
// populated by the auth middleware.
package identity

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// UserID returns the user id embedded in the verified token's {user:{id}}
// claim.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, errors.New("no token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid claims")
	}

	userClaim, ok := claims["user"].(map[string]interface{})
	if !ok {
		return uuid.Nil, errors.New("missing user claim")
	}

	id, ok := userClaim["id"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing user id claim")
	}

	return uuid.Parse(id)
}
