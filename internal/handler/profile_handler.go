package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mystfest/registration-backend/internal/models"
	"github.com/mystfest/registration-backend/internal/service"
	"github.com/mystfest/registration-backend/pkg/utils"
)

type ProfileHandler struct {
	profileService *service.ProfileService
	validator      *utils.Validator
}

func NewProfileHandler(profileService *service.ProfileService, validator *utils.Validator) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		validator:      validator,
	}
}

func (h *ProfileHandler) CreateProfile(c *fiber.Ctx) error {
	var req models.CreateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	userID := c.Locals("userID").(string)

	profile, err := h.profileService.CreateProfile(userID, req)
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(profile, "Profile created successfully"))
}

func (h *ProfileHandler) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	profile, err := h.profileService.GetMyProfile(userID)
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(profile, "Profile retrieved successfully"))
}

func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	var req models.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	userID := c.Locals("userID").(string)

	profile, err := h.profileService.UpdateProfile(userID, req)
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(profile, "Profile updated successfully"))
}

func (h *ProfileHandler) GetAllProfiles(c *fiber.Ctx) error {
	profiles, err := h.profileService.GetAllProfiles(
		models.Status(c.Query("status")),
		c.Query("search"),
	)
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(profiles, "Profiles retrieved successfully"))
}

func (h *ProfileHandler) GetProfileByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid profile ID"))
	}

	profile, err := h.profileService.GetProfileByID(uint(id))
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(profile, "Profile retrieved successfully"))
}

func (h *ProfileHandler) ApproveProfile(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid profile ID"))
	}

	profile, err := h.profileService.ApproveProfile(uint(id))
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(profile, "Profile approved successfully"))
}

func (h *ProfileHandler) RejectProfile(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid profile ID"))
	}

	// Reason is optional; an empty body is fine.
	var req models.RejectProfileRequest
	_ = c.BodyParser(&req)

	profile, err := h.profileService.RejectProfile(uint(id), req.RejectionReason)
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(profile, "Profile rejected successfully"))
}
