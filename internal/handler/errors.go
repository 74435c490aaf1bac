package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mystfest/registration-backend/internal/service"
)

// statusForError maps service sentinels onto the four error classes the API
// exposes: 401 for authentication failures, 403 for role or ownership
// mismatches, 404 for missing rows, 400 for invariant violations.
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidProviderToken),
		errors.Is(err, service.ErrUserBlocked):
		return fiber.StatusUnauthorized
	case errors.Is(err, service.ErrProfileNotRejected),
		errors.Is(err, service.ErrNotParticipantOwner):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrEventNotFound),
		errors.Is(err, service.ErrProfileNotFound),
		errors.Is(err, service.ErrParticipantNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrAlreadyRegistered),
		errors.Is(err, service.ErrTeamSizeInvalid),
		errors.Is(err, service.ErrSlotsExceedMax),
		errors.Is(err, service.ErrNegativeSlots),
		errors.Is(err, service.ErrEventHasParticipants),
		errors.Is(err, service.ErrProfileExists),
		errors.Is(err, service.ErrProfileAlreadyApproved),
		errors.Is(err, service.ErrProfileAlreadyRejected),
		errors.Is(err, service.ErrEventClosed),
		errors.Is(err, service.ErrDuplicateRegistration),
		errors.Is(err, service.ErrParticipantApproved),
		errors.Is(err, service.ErrEventFull),
		errors.Is(err, service.ErrParticipantNotPending),
		errors.Is(err, service.ErrDocumentTooLarge),
		errors.Is(err, service.ErrUnsupportedDocument):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
