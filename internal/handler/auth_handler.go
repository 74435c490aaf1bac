package handler

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mystfest/registration-backend/internal/models"
	"github.com/mystfest/registration-backend/internal/service"
	jwtPkg "github.com/mystfest/registration-backend/pkg/jwt"
	"github.com/mystfest/registration-backend/pkg/utils"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *utils.Validator
}

func NewAuthHandler(authService *service.AuthService, validator *utils.Validator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
	}
}

func (h *AuthHandler) ValidateToken(c *fiber.Ctx) error {
	var req models.ValidateTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	resp, err := h.authService.ValidateToken(req.AccessToken, req.RegistrationType)
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    resp.Token,
		HTTPOnly: true,
		Secure:   os.Getenv("APP_ENV") == "production",
		SameSite: "Lax",
		Expires:  time.Now().Add(jwtPkg.TokenExpiry),
		Path:     "/",
	})

	return c.JSON(models.SuccessResponse(resp.User, "Token validated successfully"))
}

func (h *AuthHandler) GetCurrentUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	info, err := h.authService.GetUserInfo(userID)
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(info, "User retrieved successfully"))
}

func (h *AuthHandler) CanAccessDashboard(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	canAccess, err := h.authService.CanAccessDashboard(userID)
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"canAccess": canAccess}, ""))
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		HTTPOnly: true,
		Secure:   os.Getenv("APP_ENV") == "production",
		SameSite: "Lax",
		Expires:  time.Now().Add(-time.Hour),
		Path:     "/",
	})

	return c.JSON(models.SuccessResponse(nil, "Logged out successfully"))
}

func (h *AuthHandler) BlockUser(c *fiber.Ctx) error {
	var req models.BlockUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("userId is required"))
	}

	if err := h.authService.BlockUser(req.UserID); err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(nil, "User blocked successfully"))
}

func (h *AuthHandler) UnblockUser(c *fiber.Ctx) error {
	var req models.BlockUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("userId is required"))
	}

	if err := h.authService.UnblockUser(req.UserID); err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(nil, "User unblocked successfully"))
}
