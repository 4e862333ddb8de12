package handlers

import (
	"errors"
	"log/slog"

	"github.com/devconnect/backend/internal/dto"
	"github.com/devconnect/backend/internal/identity"
	"github.com/devconnect/backend/internal/services"
	"github.com/devconnect/backend/internal/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetMyProfile returns the caller's profile with the owning user attached.
func (h *ProfileHandler) GetMyProfile(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Msg: "Token is not valid"})
	}

	profile, err := h.profileService.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: "There is no profile for this user"})
		}
		slog.Error("failed to load own profile", "user_id", userID.String(), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Msg: "Server Error"})
	}

	return c.JSON(profile)
}

// Upsert creates or sparsely updates the caller's profile.
func (h *ProfileHandler) Upsert(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Msg: "Token is not valid"})
	}

	var req dto.UpsertProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(validation.ErrorsResponse{
			Errors: []validation.FieldError{{Msg: "Invalid request body"}},
		})
	}

	if errs := validation.Check(&req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(validation.ErrorsResponse{Errors: errs})
	}

	profile, err := h.profileService.Upsert(userID, &req)
	if err != nil {
		slog.Error("profile upsert failed", "user_id", userID.String(), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Msg: "Server Error"})
	}

	return c.JSON(profile)
}

// List returns all profiles with their users attached.
func (h *ProfileHandler) List(c *fiber.Ctx) error {
	profiles, err := h.profileService.List()
	if err != nil {
		slog.Error("failed to list profiles", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Msg: "Server Error"})
	}
	return c.JSON(profiles)
}

// GetByUserID returns any user's profile. A malformed id reads as an absent
// profile, not a server error.
func (h *ProfileHandler) GetByUserID(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: "Profile not found"})
	}

	profile, err := h.profileService.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: "Profile not found"})
		}
		slog.Error("failed to load profile", "user_id", userID.String(), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Msg: "Server Error"})
	}

	return c.JSON(profile)
}

// DeleteAccount removes the caller's profile and user.
func (h *ProfileHandler) DeleteAccount(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Msg: "Token is not valid"})
	}

	if err := h.profileService.DeleteAccount(userID); err != nil {
		slog.Error("account deletion failed", "user_id", userID.String(), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Msg: "Server Error"})
	}

	return c.JSON(dto.MessageResponse{Msg: "User deleted"})
}

func (h *ProfileHandler) AddExperience(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Msg: "Token is not valid"})
	}

	var req dto.ExperienceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(validation.ErrorsResponse{
			Errors: []validation.FieldError{{Msg: "Invalid request body"}},
		})
	}

	if errs := validation.Check(&req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(validation.ErrorsResponse{Errors: errs})
	}

	profile, err := h.profileService.AddExperience(userID, &req)
	return h.respondMutation(c, userID, profile, err)
}

func (h *ProfileHandler) RemoveExperience(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Msg: "Token is not valid"})
	}

	profile, err := h.profileService.RemoveExperience(userID, c.Params("exp_id"))
	return h.respondMutation(c, userID, profile, err)
}

func (h *ProfileHandler) AddEducation(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Msg: "Token is not valid"})
	}

	var req dto.EducationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(validation.ErrorsResponse{
			Errors: []validation.FieldError{{Msg: "Invalid request body"}},
		})
	}

	if errs := validation.Check(&req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(validation.ErrorsResponse{Errors: errs})
	}

	profile, err := h.profileService.AddEducation(userID, &req)
	return h.respondMutation(c, userID, profile, err)
}

func (h *ProfileHandler) RemoveEducation(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Msg: "Token is not valid"})
	}

	profile, err := h.profileService.RemoveEducation(userID, c.Params("edu_id"))
	return h.respondMutation(c, userID, profile, err)
}

func (h *ProfileHandler) respondMutation(c *fiber.Ctx, userID uuid.UUID, profile interface{}, err error) error {
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: "There is no profile for this user"})
		}
		slog.Error("profile mutation failed", "user_id", userID.String(), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Msg: "Server Error"})
	}
	return c.JSON(profile)
}
