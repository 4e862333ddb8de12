package handlers

import (
	"errors"
	"log/slog"

	"github.com/devconnect/backend/internal/dto"
	"github.com/devconnect/backend/internal/services"
	"github.com/devconnect/backend/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	authService *services.AuthService
}

func NewUserHandler(authService *services.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// Register creates a new user and returns a token for it.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(validation.ErrorsResponse{
			Errors: []validation.FieldError{{Msg: "Invalid request body"}},
		})
	}

	if errs := validation.Check(&req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(validation.ErrorsResponse{Errors: errs})
	}

	token, err := h.authService.Register(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(validation.ErrorsResponse{
				Errors: []validation.FieldError{{Msg: "User already exists"}},
			})
		}
		slog.Error("registration failed", "action", "register", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Msg: "Server Error"})
	}

	return c.JSON(dto.TokenResponse{Token: token})
}
