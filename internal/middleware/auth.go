package middleware

import (
	"errors"

	"github.com/devconnect/backend/internal/config"
	"github.com/devconnect/backend/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// Protected gates a route on a valid bearer token carried in the x-auth-token
// header. On success the parsed token lands in c.Locals("user").
func Protected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		TokenLookup: "header:x-auth-token",
		AuthScheme:  "",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{
					Msg: "No token, authorization denied",
				})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{
				Msg: "Token is not valid",
			})
		},
	})
}
