package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mystfest/registration-backend/internal/models"
	"github.com/mystfest/registration-backend/internal/service"
	"github.com/mystfest/registration-backend/pkg/utils"
)

type ParticipantHandler struct {
	participantService *service.ParticipantService
	validator          *utils.Validator
}

func NewParticipantHandler(participantService *service.ParticipantService, validator *utils.Validator) *ParticipantHandler {
	return &ParticipantHandler{
		participantService: participantService,
		validator:          validator,
	}
}

func (h *ParticipantHandler) CreateParticipant(c *fiber.Ctx) error {
	var req models.CreateParticipantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	clID := c.Locals("userID").(string)

	participant, err := h.participantService.CreateParticipant(clID, req)
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(participant, "Participant registered successfully"))
}

func (h *ParticipantHandler) GetMyParticipants(c *fiber.Ctx) error {
	clID := c.Locals("userID").(string)

	participants, err := h.participantService.GetMyParticipants(clID)
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(participants, "Participants retrieved successfully"))
}

func (h *ParticipantHandler) GetAllParticipants(c *fiber.Ctx) error {
	participants, err := h.participantService.GetAllParticipants(models.ParticipantFilters{
		Status:  models.Status(c.Query("status")),
		EventID: c.Query("eventId"),
		Search:  c.Query("search"),
	})
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(participants, "Participants retrieved successfully"))
}

func (h *ParticipantHandler) GetParticipantsByEvent(c *fiber.Ctx) error {
	participants, err := h.participantService.GetParticipantsByEvent(c.Params("eventId"))
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(participants, "Participants retrieved successfully"))
}

func (h *ParticipantHandler) ApproveParticipant(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid participant ID"))
	}

	if err := h.participantService.ApproveParticipant(uint(id)); err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(nil, "Participant approved successfully"))
}

func (h *ParticipantHandler) RejectParticipant(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid participant ID"))
	}

	// Reason is optional; an empty body is fine.
	var req models.RejectParticipantRequest
	_ = c.BodyParser(&req)

	if err := h.participantService.RejectParticipant(uint(id), req.RejectionReason); err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"reason": req.RejectionReason}, "Participant rejected"))
}

func (h *ParticipantHandler) UpdateParticipant(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid participant ID"))
	}

	var req models.UpdateParticipantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	clID := c.Locals("userID").(string)

	participant, err := h.participantService.UpdateParticipant(uint(id), clID, req)
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(participant, "Participant updated successfully"))
}

func (h *ParticipantHandler) DeleteParticipant(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid participant ID"))
	}

	clID := c.Locals("userID").(string)

	if err := h.participantService.DeleteParticipant(uint(id), clID); err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(nil, "Participant deleted successfully"))
}
