package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mystfest/registration-backend/internal/models"
	"github.com/mystfest/registration-backend/internal/service"
	"github.com/mystfest/registration-backend/pkg/utils"
)

type EventHandler struct {
	eventService *service.EventService
	validator    *utils.Validator
}

func NewEventHandler(eventService *service.EventService, validator *utils.Validator) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		validator:    validator,
	}
}

func (h *EventHandler) GetAllEvents(c *fiber.Ctx) error {
	events, err := h.eventService.ListEvents(c.Query("category"))
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(events, "Events retrieved successfully"))
}

func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	event, err := h.eventService.GetEvent(c.Params("eventId"))
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(event, "Event retrieved successfully"))
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req models.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	event, err := h.eventService.CreateEvent(req)
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(event, "Event created successfully"))
}

func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	var req models.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	event, err := h.eventService.UpdateEvent(c.Params("eventId"), req)
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(event, "Event updated successfully"))
}

func (h *EventHandler) AdjustSlots(c *fiber.Ctx) error {
	var req models.AdjustSlotsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	event, err := h.eventService.AdjustSlots(c.Params("eventId"), req.MaxSlots, req.FilledSlots)
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(event, "Slots adjusted successfully"))
}

func (h *EventHandler) ToggleActive(c *fiber.Ctx) error {
	event, err := h.eventService.ToggleActive(c.Params("eventId"))
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(event, "Event active state toggled"))
}

func (h *EventHandler) ToggleLock(c *fiber.Ctx) error {
	event, err := h.eventService.ToggleLock(c.Params("eventId"))
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(event, "Event lock state toggled"))
}

func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	if err := h.eventService.DeleteEvent(c.Params("eventId")); err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(nil, "Event deleted successfully"))
}
