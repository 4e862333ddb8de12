package handlers

import (
	"errors"
	"log/slog"

	"github.com/devconnect/backend/internal/dto"
	"github.com/devconnect/backend/internal/identity"
	"github.com/devconnect/backend/internal/services"
	"github.com/devconnect/backend/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// GetCurrentUser returns the authenticated user without the password hash.
func (h *AuthHandler) GetCurrentUser(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Msg: "Token is not valid"})
	}

	user, err := h.authService.CurrentUser(userID)
	if err != nil {
		slog.Error("failed to load current user", "user_id", userID.String(), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Msg: "Server Error"})
	}

	return c.JSON(user)
}

// Login authenticates credentials and returns a token. Unknown email and
// wrong password produce the identical response.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(validation.ErrorsResponse{
			Errors: []validation.FieldError{{Msg: "Invalid request body"}},
		})
	}

	if errs := validation.Check(&req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(validation.ErrorsResponse{Errors: errs})
	}

	token, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusBadRequest).JSON(validation.ErrorsResponse{
				Errors: []validation.FieldError{{Msg: "Invalid Credentials"}},
			})
		}
		slog.Error("login failed", "action", "login", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Msg: "Server Error"})
	}

	return c.JSON(dto.TokenResponse{Token: token})
}
